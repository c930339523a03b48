// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// FileSuffix is the only accepted import extension. The match is
// case-sensitive.
const FileSuffix = ".txt"

// ImportFile reads the array stored at path. The name is checked before the
// file is opened.
func ImportFile(path string) ([]int64, error) {
	if !strings.HasSuffix(path, FileSuffix) {
		return nil, ErrFileWrongExtension
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileRead, err)
	}

	data := ParseFileContent(string(content))
	if len(data) == 0 {
		return nil, ErrFileNoValidData
	}
	return data, nil
}

// ParseFileContent keeps every line that is a base-10 integer after trimming
// and drops the rest.
func ParseFileContent(content string) []int64 {
	var data []int64
	for _, line := range strings.Split(content, "\n") {
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			continue
		}
		data = append(data, n)
	}
	return data
}

// ExportFile writes data to path, one integer per line, and returns the path
// actually written. FileSuffix is appended when missing. An existing file is
// replaced only when overwrite is set.
func ExportFile(path string, data []int64, overwrite bool) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("export: empty file name")
	}
	if !strings.HasSuffix(path, FileSuffix) {
		path += FileSuffix
	}

	if !overwrite {
		_, err := os.Stat(path)
		if err == nil {
			return path, ErrExportFileExists
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return path, fmt.Errorf("export: %w", err)
		}
	}

	var b strings.Builder
	for _, n := range data {
		b.WriteString(strconv.FormatInt(n, 10))
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return path, fmt.Errorf("export: %w", err)
	}
	return path, nil
}
