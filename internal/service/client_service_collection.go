// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-array-keeper/internal/adapter"
	"github.com/MKhiriev/go-array-keeper/internal/input"
	"github.com/MKhiriev/go-array-keeper/internal/logger"
	"github.com/MKhiriev/go-array-keeper/models"
)

type collectionController struct {
	client adapter.ArrayClient

	mu         sync.Mutex
	page       int
	searchID   *int64
	items      []models.ArrayRecord
	totalCount int
	err        error
	editing    *models.ArrayRecord

	logger *logger.Logger
}

// NewCollectionController creates a [CollectionController] on page 1. Nothing
// is fetched until Refresh is called.
func NewCollectionController(client adapter.ArrayClient, logger *logger.Logger) CollectionController {
	return &collectionController{
		client: client,
		page:   1,
		logger: logger,
	}
}

func (c *collectionController) Refresh(ctx context.Context) error {
	c.mu.Lock()
	page, searchID := c.page, c.searchID
	c.mu.Unlock()

	if searchID != nil {
		return c.fetchOne(ctx, *searchID)
	}
	return c.fetchPage(ctx, page)
}

func (c *collectionController) SetPage(ctx context.Context, page int) error {
	page = max(page, 1)

	c.mu.Lock()
	changed := c.page != page
	c.page = page
	c.mu.Unlock()

	if !changed {
		return nil
	}
	return c.Refresh(ctx)
}

func (c *collectionController) Search(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		c.mu.Lock()
		c.searchID = nil
		c.mu.Unlock()
		return c.Refresh(ctx)
	}

	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		id = 0
	}

	c.mu.Lock()
	c.searchID = &id
	c.mu.Unlock()
	return c.fetchOne(ctx, id)
}

func (c *collectionController) fetchPage(ctx context.Context, page int) error {
	result, found, err := c.client.FetchPage(ctx, page)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.err = remoteFailure(err)
		return c.err
	}

	c.err = nil
	if !found {
		c.items = nil
		return nil
	}
	c.items = result.Results
	c.totalCount = result.Count
	return nil
}

// fetchOne loads a single record. Ids are positive, so anything else is a
// local not-found.
func (c *collectionController) fetchOne(ctx context.Context, id int64) error {
	if id <= 0 {
		c.mu.Lock()
		c.items = nil
		c.err = nil
		c.mu.Unlock()
		return nil
	}

	record, found, err := c.client.FetchByID(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.err = remoteFailure(err)
		return c.err
	}

	c.err = nil
	if !found {
		c.items = nil
		return nil
	}
	c.items = []models.ArrayRecord{record}
	return nil
}

func (c *collectionController) OpenEdit(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if item.ID == id {
			record := item
			record.Data = slices.Clone(item.Data)
			c.editing = &record
			return true
		}
	}
	return false
}

func (c *collectionController) CloseEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.editing = nil
}

func (c *collectionController) SaveEdit(ctx context.Context, id int64, tokens []string) error {
	if err := c.update(ctx, id, tokens); err != nil {
		return err
	}

	c.CloseEdit()
	return c.Refresh(ctx)
}

func (c *collectionController) SortRecord(ctx context.Context, id int64, tokens []string) error {
	if err := c.update(ctx, id, tokens); err != nil {
		return err
	}

	if _, err := c.client.Sort(ctx, id); err != nil {
		sortErr := c.fail(err)
		// the update already landed
		_ = c.Refresh(ctx)
		c.setErr(sortErr)
		return sortErr
	}

	c.CloseEdit()
	return c.Refresh(ctx)
}

func (c *collectionController) Delete(ctx context.Context, id int64) error {
	if err := c.client.Delete(ctx, id); err != nil {
		return c.fail(err)
	}

	c.mu.Lock()
	if c.editing != nil && c.editing.ID == id {
		c.editing = nil
	}
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// update writes the edited data; editing always invalidates sortedness.
func (c *collectionController) update(ctx context.Context, id int64, tokens []string) error {
	data := input.Coerce(tokens)
	if len(data) == 0 {
		c.setErr(input.ErrEmptyDraft)
		return input.ErrEmptyDraft
	}

	if err := c.client.Update(ctx, id, models.WriteArrayRequest{Data: data, IsSorted: false}); err != nil {
		return c.fail(err)
	}
	return nil
}

func (c *collectionController) fail(err error) error {
	err = remoteFailure(err)
	c.setErr(err)
	return err
}

func (c *collectionController) setErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.err = err
}

func (c *collectionController) View() CollectionView {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := CollectionView{
		Page:       c.page,
		Items:      slices.Clone(c.items),
		TotalCount: c.totalCount,
		Err:        c.err,
	}
	if c.searchID != nil {
		id := *c.searchID
		view.SearchID = &id
	}
	if c.editing != nil {
		editing := *c.editing
		view.Editing = &editing
	}
	return view
}
