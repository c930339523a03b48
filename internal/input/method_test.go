// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingVisitor struct {
	visited []Kind
	bulk    bool
}

func (v *recordingVisitor) VisitManual(m Manual) {
	v.visited = append(v.visited, m.Kind())
	v.bulk = m.Bulk
}
func (v *recordingVisitor) VisitRandom(m Random) { v.visited = append(v.visited, m.Kind()) }
func (v *recordingVisitor) VisitFile(m File)     { v.visited = append(v.visited, m.Kind()) }
func (v *recordingVisitor) VisitRemoteSelection(m RemoteSelection) {
	v.visited = append(v.visited, m.Kind())
}

func TestAccept_DispatchesEveryMethod(t *testing.T) {
	v := &recordingVisitor{}
	for _, m := range Methods() {
		Accept(m, v)
	}

	assert.Equal(t, []Kind{KindManual, KindRandom, KindFile, KindRemoteSelection}, v.visited)
}

func TestAccept_ManualCarriesMode(t *testing.T) {
	v := &recordingVisitor{}
	Accept(Manual{Bulk: true}, v)
	assert.True(t, v.bulk)
}

func TestAccept_NilPanics(t *testing.T) {
	assert.Panics(t, func() { Accept(nil, &recordingVisitor{}) })
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "manual", KindManual.String())
	assert.Equal(t, "remote-selection", KindRemoteSelection.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
