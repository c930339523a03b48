// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/MKhiriev/go-array-keeper/internal/logger"
	"github.com/MKhiriev/go-array-keeper/internal/store"
	"github.com/MKhiriev/go-array-keeper/models"
)

type arrayService struct {
	arrayRepository store.ArrayRepository
	buckets         int
	now             func() time.Time

	logger *logger.Logger
}

func NewArrayService(arrayRepository store.ArrayRepository, logger *logger.Logger) ArrayService {
	return &arrayService{
		arrayRepository: arrayRepository,
		buckets:         DefaultBucketCount,
		now:             time.Now,
		logger:          logger,
	}
}

func (a *arrayService) List(ctx context.Context, page int) (models.ArrayPage, error) {
	if page < 1 {
		return models.ArrayPage{}, ErrInvalidPage
	}

	count, err := a.arrayRepository.CountArrays(ctx)
	if err != nil {
		return models.ArrayPage{}, fmt.Errorf("error counting arrays: %w", err)
	}

	offset := (page - 1) * models.PageSize
	if offset >= count && page != 1 {
		return models.ArrayPage{}, ErrInvalidPage
	}

	records, err := a.arrayRepository.ListArrays(ctx, models.PageSize, offset)
	if err != nil {
		return models.ArrayPage{}, fmt.Errorf("error listing arrays: %w", err)
	}
	if records == nil {
		records = []models.ArrayRecord{}
	}

	return models.ArrayPage{Results: records, Count: count}, nil
}

func (a *arrayService) Get(ctx context.Context, id int64) (models.ArrayRecord, error) {
	return a.arrayRepository.GetArray(ctx, id)
}

func (a *arrayService) Create(ctx context.Context, req models.WriteArrayRequest) (models.ArrayRecord, error) {
	now := a.now().UTC()
	return a.arrayRepository.CreateArray(ctx, models.ArrayRecord{
		Data:         req.Data,
		IsSorted:     req.IsSorted,
		CreationDate: now,
		UpdateDate:   now,
	})
}

func (a *arrayService) Update(ctx context.Context, id int64, req models.WriteArrayRequest) (models.ArrayRecord, error) {
	return a.arrayRepository.UpdateArray(ctx, models.ArrayRecord{
		ID:         id,
		Data:       req.Data,
		IsSorted:   req.IsSorted,
		UpdateDate: a.now().UTC(),
	})
}

func (a *arrayService) Delete(ctx context.Context, id int64) error {
	return a.arrayRepository.DeleteArray(ctx, id)
}

func (a *arrayService) Sort(ctx context.Context, req models.SortRequest) (models.SortResult, error) {
	log := logger.FromContext(ctx)

	record, err := a.arrayRepository.GetArray(ctx, req.ID)
	if err != nil {
		return models.SortResult{}, err
	}

	data := slices.Clone(record.Data)
	start := time.Now()
	BucketSort(data, a.buckets)
	elapsed := time.Since(start)

	record.Data = data
	record.IsSorted = true
	record.UpdateDate = a.now().UTC()

	updated, err := a.arrayRepository.UpdateArray(ctx, record)
	if err != nil {
		return models.SortResult{}, fmt.Errorf("error saving sorted array: %w", err)
	}

	executionTime := roundMillis(elapsed)
	log.Info().
		Str("func", "arrayService.Sort").
		Int64("array_id", updated.ID).
		Int("length", len(updated.Data)).
		Float64("execution_time_ms", executionTime).
		Msg("array sorted")

	return models.SortResult{Data: updated.Data, ExecutionTime: executionTime}, nil
}

// roundMillis converts d to milliseconds rounded to 4 decimal places.
func roundMillis(d time.Duration) float64 {
	ms := float64(d) / float64(time.Millisecond)
	return math.Round(ms*1e4) / 1e4
}
