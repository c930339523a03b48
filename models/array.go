// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PageSize is the number of records the array store returns per list page.
const PageSize = 50

// ArrayRecord is a persisted integer array as exchanged with the array store.
//
// ID, CreationDate and UpdateDate are assigned by the server. IsSorted is
// written by the caller on every create/update and set to true by the server
// after a successful sort.
type ArrayRecord struct {
	ID           int64     `json:"id"`
	Data         []int64   `json:"data"`
	IsSorted     bool      `json:"is_sorted"`
	CreationDate time.Time `json:"creation_date"`
	UpdateDate   time.Time `json:"update_date"`
}

// ArrayPage is one page of the paginated array listing.
type ArrayPage struct {
	// Results holds at most [PageSize] records ordered by id.
	Results []ArrayRecord `json:"results"`
	// Count is the total number of stored records across all pages.
	Count int `json:"count"`
}

// WriteArrayRequest is the body of create and update requests.
type WriteArrayRequest struct {
	Data     []int64 `json:"data"`
	IsSorted bool    `json:"is_sorted"`
}

// SortRequest is the body of the sort-by-id request.
type SortRequest struct {
	ID int64 `json:"id"`
}

// SortResult is returned by the sort endpoint.
type SortResult struct {
	Data []int64 `json:"data"`
	// ExecutionTime is the server-side sort duration in milliseconds.
	ExecutionTime float64 `json:"execution_time"`
}

// ErrorResponse is the JSON body the array store writes for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
