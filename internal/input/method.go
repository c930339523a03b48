// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package input implements the ways a user can obtain an integer array before
// it is persisted: manual entry, random generation, import from a text file and
// selection of an already stored array.
//
// The acquisition method is a closed sum type: [Method] is implemented only by
// [Manual], [Random], [File] and [RemoteSelection]. Code that must behave
// differently per method implements [Visitor]; adding a method to the set adds
// a Visitor method, so every dispatcher stops compiling until it handles it.
package input

import "fmt"

// Kind enumerates acquisition methods in presentation order.
type Kind int

const (
	KindManual Kind = iota
	KindRandom
	KindFile
	KindRemoteSelection
)

func (k Kind) String() string {
	switch k {
	case KindManual:
		return "manual"
	case KindRandom:
		return "random"
	case KindFile:
		return "file"
	case KindRemoteSelection:
		return "remote-selection"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Method is the active acquisition strategy.
type Method interface {
	Kind() Kind
	sealed()
}

// Manual is keyboard entry. Bulk selects whitespace-delimited entry of the
// whole array; otherwise tokens are committed one at a time.
type Manual struct {
	Bulk bool
}

// Random is generation of N uniform integers in [min, max].
type Random struct{}

// File is import of a .txt file holding one integer per line.
type File struct{}

// RemoteSelection copies the data of an already stored array into the draft.
type RemoteSelection struct{}

func (Manual) Kind() Kind          { return KindManual }
func (Random) Kind() Kind          { return KindRandom }
func (File) Kind() Kind            { return KindFile }
func (RemoteSelection) Kind() Kind { return KindRemoteSelection }

func (Manual) sealed()          {}
func (Random) sealed()          {}
func (File) sealed()            {}
func (RemoteSelection) sealed() {}

// Methods returns one value of every method, in [Kind] order.
func Methods() []Method {
	return []Method{Manual{}, Random{}, File{}, RemoteSelection{}}
}

// Visitor handles every acquisition method.
type Visitor interface {
	VisitManual(m Manual)
	VisitRandom(m Random)
	VisitFile(m File)
	VisitRemoteSelection(m RemoteSelection)
}

// Accept dispatches m to the matching Visitor method.
func Accept(m Method, v Visitor) {
	switch m := m.(type) {
	case Manual:
		v.VisitManual(m)
	case Random:
		v.VisitRandom(m)
	case File:
		v.VisitFile(m)
	case RemoteSelection:
		v.VisitRemoteSelection(m)
	default:
		panic(fmt.Sprintf("input: unhandled method %T", m))
	}
}
