// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-array-keeper/models"

// Pager derives pagination controls from a fetched page.
type Pager struct {
	Page       int
	ItemCount  int
	TotalCount int
	Searching  bool
}

// Visible reports whether pagination controls are shown at all.
func (p Pager) Visible() bool {
	return !p.Searching && p.TotalCount > models.PageSize
}

func (p Pager) CanFirst() bool { return p.Page > 1 }
func (p Pager) CanPrev() bool  { return p.Page > 1 }

// CanNext is false once a page comes back short, which means no further
// page exists.
func (p Pager) CanNext() bool { return p.ItemCount >= models.PageSize }
func (p Pager) CanLast() bool { return p.ItemCount >= models.PageSize }

// LastPage is ceil(TotalCount / PageSize), at least 1.
func (p Pager) LastPage() int {
	if p.TotalCount <= 0 {
		return 1
	}
	return (p.TotalCount + models.PageSize - 1) / models.PageSize
}
