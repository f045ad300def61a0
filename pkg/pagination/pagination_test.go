// Copyright (c) 2026 audio-server. All rights reserved.

package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest(t *testing.T) {
	testCases := []struct {
		name      string
		target    string
		wantPage  int
		wantLimit int
	}{
		{
			name:      "defaults when absent",
			target:    "/authors/all",
			wantPage:  DefaultPage,
			wantLimit: DefaultLimit,
		},
		{
			name:      "explicit page and limit",
			target:    "/authors/all?page=3&limit=25",
			wantPage:  3,
			wantLimit: 25,
		},
		{
			name:      "limit clamped to the maximum",
			target:    "/authors/all?limit=5000",
			wantPage:  DefaultPage,
			wantLimit: MaxLimit,
		},
		{
			name:      "zero and negative values fall back",
			target:    "/authors/all?page=0&limit=-5",
			wantPage:  DefaultPage,
			wantLimit: DefaultLimit,
		},
		{
			name:      "malformed values fall back",
			target:    "/authors/all?page=abc&limit=ten",
			wantPage:  DefaultPage,
			wantLimit: DefaultLimit,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", testCase.target, nil)

			params := FromRequest(request)

			assert.Equal(t, testCase.wantPage, params.Page)
			assert.Equal(t, testCase.wantLimit, params.Limit)
		})
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 0, Params{Page: 0, Limit: 20}.Offset())
	assert.Equal(t, 20, Params{Page: 2, Limit: 20}.Offset())
	assert.Equal(t, 90, Params{Page: 10, Limit: 10}.Offset())
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(2, 20, 45)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, 45, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	assert.Equal(t, 0, NewMeta(1, 20, 0).TotalPages)
	assert.Equal(t, 1, NewMeta(1, 20, 20).TotalPages)
	assert.Equal(t, 0, NewMeta(1, 0, 45).TotalPages)
}
