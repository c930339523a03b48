// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-array-keeper/internal/config"
	"github.com/MKhiriev/go-array-keeper/models"
)

const (
	arraysTable      = "arrays"
	preferencesTable = "preferences"
)

var arrayColumns = []string{"id", "data", "is_sorted", "creation_date", "update_date"}

// queryBuilder renders statements with the placeholder format of one driver.
type queryBuilder struct {
	sq.StatementBuilderType
}

func newQueryBuilder(driver string) queryBuilder {
	var format sq.PlaceholderFormat = sq.Question
	if driver == config.DriverPostgres {
		format = sq.Dollar
	}
	return queryBuilder{sq.StatementBuilder.PlaceholderFormat(format)}
}

func returningArrayColumns() string {
	return "RETURNING id, data, is_sorted, creation_date, update_date"
}

func (b queryBuilder) buildListArraysQuery(limit, offset int) (string, []any, error) {
	return b.Select(arrayColumns...).
		From(arraysTable).
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
}

func (b queryBuilder) buildCountArraysQuery() (string, []any, error) {
	return b.Select("COUNT(*)").From(arraysTable).ToSql()
}

func (b queryBuilder) buildGetArrayQuery(id int64) (string, []any, error) {
	return b.Select(arrayColumns...).
		From(arraysTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (b queryBuilder) buildCreateArrayQuery(record models.ArrayRecord) (string, []any, error) {
	data, err := encodeArrayData(record.Data)
	if err != nil {
		return "", nil, err
	}

	return b.Insert(arraysTable).
		Columns("data", "is_sorted", "creation_date", "update_date").
		Values(data, record.IsSorted, record.CreationDate, record.UpdateDate).
		Suffix(returningArrayColumns()).
		ToSql()
}

func (b queryBuilder) buildUpdateArrayQuery(record models.ArrayRecord) (string, []any, error) {
	data, err := encodeArrayData(record.Data)
	if err != nil {
		return "", nil, err
	}

	return b.Update(arraysTable).
		Set("data", data).
		Set("is_sorted", record.IsSorted).
		Set("update_date", record.UpdateDate).
		Where(sq.Eq{"id": record.ID}).
		Suffix(returningArrayColumns()).
		ToSql()
}

func (b queryBuilder) buildDeleteArrayQuery(id int64) (string, []any, error) {
	return b.Delete(arraysTable).Where(sq.Eq{"id": id}).ToSql()
}

func (b queryBuilder) buildGetPreferenceQuery(key string) (string, []any, error) {
	return b.Select("value").From(preferencesTable).Where(sq.Eq{"key": key}).ToSql()
}

func (b queryBuilder) buildSetPreferenceQuery(key, value string, now time.Time) (string, []any, error) {
	return b.Insert(preferencesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, now).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

// encodeArrayData stores the sequence as JSON text, keeping the element
// order.
func encodeArrayData(data []int64) (string, error) {
	if data == nil {
		data = []int64{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return string(raw), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArray(row rowScanner) (models.ArrayRecord, error) {
	var record models.ArrayRecord
	var raw []byte

	if err := row.Scan(&record.ID, &raw, &record.IsSorted, &record.CreationDate, &record.UpdateDate); err != nil {
		return models.ArrayRecord{}, err
	}
	if err := json.Unmarshal(raw, &record.Data); err != nil {
		return models.ArrayRecord{}, fmt.Errorf("%w: %w", ErrDecodingArrayData, err)
	}
	if record.Data == nil {
		record.Data = []int64{}
	}

	return record, nil
}
