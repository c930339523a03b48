// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppBuildInfo_FillsBlanks(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "  ")

	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.Equal(t, "N/A", info.Commit)
	assert.Equal(t, "Build version: 1.0.0\nBuild date: N/A\nBuild commit: N/A\n", info.String())
}

func TestTheme_Toggled(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggled())
	assert.Equal(t, ThemeLight, ThemeDark.Toggled())
	assert.Equal(t, ThemeDark, Theme("").Toggled())
	assert.False(t, Theme("blue").Valid())
}

// ArrayPage must decode the paginated listing the store writes.
func TestArrayPage_DecodesListingBody(t *testing.T) {
	body := `{"count":2,"next":null,"previous":null,"results":[
		{"id":1,"data":[3,1,2],"is_sorted":false,"creation_date":"2024-05-01T10:00:00Z","update_date":"2024-05-01T10:00:00Z"},
		{"id":2,"data":[],"is_sorted":true,"creation_date":"2024-05-01T10:00:00Z","update_date":"2024-05-02T10:00:00Z"}]}`

	var page ArrayPage
	require.NoError(t, json.Unmarshal([]byte(body), &page))

	assert.Equal(t, 2, page.Count)
	require.Len(t, page.Results, 2)
	assert.Equal(t, []int64{3, 1, 2}, page.Results[0].Data)
	assert.True(t, page.Results[1].IsSorted)
	assert.True(t, page.Results[1].UpdateDate.After(page.Results[1].CreationDate))
}
