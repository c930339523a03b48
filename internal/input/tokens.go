// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package input

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Placeholders kept verbatim while the user is still typing.
const (
	emptyToken = ""
	minusToken = "-"
)

var integerToken = regexp.MustCompile(`^-?\d+$`)

// ParseTokens parses free-form integer-sequence text. Every whitespace
// character separates two tokens, so consecutive separators produce empty
// tokens. Each token is normalized on its own:
//
//	"" and "-"        kept as placeholders
//	optional - digits parsed and rendered in canonical form ("007" -> "7")
//	anything else     "0"
//
// A digit run that does not fit into int64 also becomes "0". Empty text
// yields an empty draft.
func ParseTokens(text string) []string {
	if text == "" {
		return nil
	}

	raw := splitOnWhitespace(text)
	tokens := make([]string, len(raw))
	for i, token := range raw {
		tokens[i] = normalizeToken(token)
	}
	return tokens
}

func splitOnWhitespace(text string) []string {
	var tokens []string
	start := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			tokens = append(tokens, text[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	return append(tokens, text[start:])
}

func normalizeToken(token string) string {
	if IsPlaceholder(token) {
		return token
	}
	if !integerToken.MatchString(token) {
		return "0"
	}

	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return "0"
	}
	return strconv.FormatInt(n, 10)
}

// IsPlaceholder reports whether token is an in-progress placeholder.
func IsPlaceholder(token string) bool {
	return token == emptyToken || token == minusToken
}

// RenderTokens is the inverse of [ParseTokens] for its own output.
func RenderTokens(tokens []string) string {
	return strings.Join(tokens, " ")
}

// AppendToken commits one token of token-at-a-time entry. Blank input is
// ignored; anything else is normalized like a bulk token.
func AppendToken(tokens []string, token string) []string {
	token = strings.TrimSpace(token)
	if token == "" {
		return tokens
	}
	return append(tokens, normalizeToken(token))
}

// Coerce converts tokens to integers for submission. Placeholders and
// non-numeric tokens become 0.
func Coerce(tokens []string) []int64 {
	data := make([]int64, len(tokens))
	for i, token := range tokens {
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			n = 0
		}
		data[i] = n
	}
	return data
}

// FromInts renders data as draft tokens.
func FromInts(data []int64) []string {
	tokens := make([]string, len(data))
	for i, n := range data {
		tokens[i] = strconv.FormatInt(n, 10)
	}
	return tokens
}
