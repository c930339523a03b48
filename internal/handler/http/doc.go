// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the array store.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, panic recovery, request timeouts and response compression
// are handled here before requests are delegated to the service layer.
//
// Routes (all under /api):
//
//	GET    /arrays/?page=N   one page of arrays, 50 per page, ordered by id
//	POST   /arrays/          create an array, 201
//	GET    /arrays/{id}/     one array
//	PUT    /arrays/{id}/     replace data and is_sorted
//	DELETE /arrays/{id}/     delete, 204
//	POST   /sort/            bucket-sort a stored array by id
//	GET    /version          build information
package http
