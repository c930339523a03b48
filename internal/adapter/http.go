// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-array-keeper/internal/config"
	"github.com/MKhiriev/go-array-keeper/internal/logger"
	"github.com/MKhiriev/go-array-keeper/internal/utils"
	"github.com/MKhiriev/go-array-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	arraysPath = "/arrays/"
	arrayPath  = "/arrays/{id}/"
	sortPath   = "/sort/"
)

type httpArrayClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPArrayClient constructs an HTTP/REST implementation of [ArrayClient].
// adapterCfg.APIURL is the API base ({apiUrl}); every endpoint path is appended
// to it, so a base of "http://host:8000/api" yields "http://host:8000/api/arrays/".
//
// Returns an error if adapterCfg.APIURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPArrayClient(adapterCfg config.ClientAdapter, logger *logger.Logger) (ArrayClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpArrayClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchPage implements [ArrayClient]. It issues GET /arrays/?page=N.
func (h *httpArrayClient) FetchPage(ctx context.Context, page int) (models.ArrayPage, bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		Get(arraysPath)
	if err != nil {
		h.logFailure("FetchPage", nil, 0, err)
		return models.ArrayPage{}, false, fmt.Errorf("fetch page request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.ArrayPage{}, false, nil
	}
	if err = expectStatus(resp, http.StatusOK); err != nil {
		h.logFailure("FetchPage", resp, 0, err)
		return models.ArrayPage{}, false, err
	}

	var result models.ArrayPage
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		h.logFailure("FetchPage", resp, 0, err)
		return models.ArrayPage{}, false, fmt.Errorf("decode page response: %w", err)
	}

	return result, true, nil
}

// FetchByID implements [ArrayClient]. It issues GET /arrays/{id}/.
func (h *httpArrayClient) FetchByID(ctx context.Context, id int64) (models.ArrayRecord, bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get(arrayPath)
	if err != nil {
		h.logFailure("FetchByID", nil, id, err)
		return models.ArrayRecord{}, false, fmt.Errorf("fetch array request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.ArrayRecord{}, false, nil
	}
	if err = expectStatus(resp, http.StatusOK); err != nil {
		h.logFailure("FetchByID", resp, id, err)
		return models.ArrayRecord{}, false, err
	}

	var record models.ArrayRecord
	if err = json.Unmarshal(resp.Body(), &record); err != nil {
		h.logFailure("FetchByID", resp, id, err)
		return models.ArrayRecord{}, false, fmt.Errorf("decode array response: %w", err)
	}

	return record, true, nil
}

// Create implements [ArrayClient]. It issues POST /arrays/ and expects 201.
func (h *httpArrayClient) Create(ctx context.Context, req models.WriteArrayRequest) (models.ArrayRecord, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(arraysPath)
	if err != nil {
		h.logFailure("Create", nil, 0, err)
		return models.ArrayRecord{}, fmt.Errorf("create request: %w", err)
	}
	if err = expectStatus(resp, http.StatusCreated); err != nil {
		h.logFailure("Create", resp, 0, err)
		return models.ArrayRecord{}, err
	}

	var record models.ArrayRecord
	if err = json.Unmarshal(resp.Body(), &record); err != nil {
		h.logFailure("Create", resp, 0, err)
		return models.ArrayRecord{}, fmt.Errorf("decode create response: %w", err)
	}

	return record, nil
}

// Update implements [ArrayClient]. It issues PUT /arrays/{id}/ and expects 200.
func (h *httpArrayClient) Update(ctx context.Context, id int64, req models.WriteArrayRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(req).
		Put(arrayPath)
	if err != nil {
		h.logFailure("Update", nil, id, err)
		return fmt.Errorf("update request: %w", err)
	}
	if err = expectStatus(resp, http.StatusOK); err != nil {
		h.logFailure("Update", resp, id, err)
		return err
	}

	return nil
}

// Delete implements [ArrayClient]. It issues DELETE /arrays/{id}/ and expects
// 204.
func (h *httpArrayClient) Delete(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete(arrayPath)
	if err != nil {
		h.logFailure("Delete", nil, id, err)
		return fmt.Errorf("delete request: %w", err)
	}
	if err = expectStatus(resp, http.StatusNoContent); err != nil {
		h.logFailure("Delete", resp, id, err)
		return err
	}

	return nil
}

// Sort implements [ArrayClient]. It issues POST /sort/ with {"id": id}.
func (h *httpArrayClient) Sort(ctx context.Context, id int64) (models.SortResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SortRequest{ID: id}).
		Post(sortPath)
	if err != nil {
		h.logFailure("Sort", nil, id, err)
		return models.SortResult{}, fmt.Errorf("sort request: %w", err)
	}
	if err = expectStatus(resp, http.StatusOK); err != nil {
		h.logFailure("Sort", resp, id, err)
		return models.SortResult{}, err
	}

	var result models.SortResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		h.logFailure("Sort", resp, id, err)
		return models.SortResult{}, fmt.Errorf("decode sort response: %w", err)
	}

	return result, nil
}

func (h *httpArrayClient) logFailure(op string, resp *resty.Response, id int64, err error) {
	event := h.logger.Err(err).Str("func", "httpArrayClient."+op)
	if resp != nil {
		event = event.Int("status", resp.StatusCode())
	}
	if id != 0 {
		event = event.Int64("array_id", id)
	}
	event.Msg("remote array store call failed")
}
