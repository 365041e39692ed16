package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostSearch_Offset(t *testing.T) {
	tests := []struct {
		name       string
		search     PostSearch
		wantOffset int
		wantLimit  int
	}{
		{
			name:       "defaults",
			search:     NewPostSearch(),
			wantOffset: 0,
			wantLimit:  10,
		},
		{
			name:       "page zero floors to first page",
			search:     PostSearch{Page: 0, Size: 10},
			wantOffset: 0,
			wantLimit:  10,
		},
		{
			name:       "negative page floors to first page",
			search:     PostSearch{Page: -5, Size: 10},
			wantOffset: 0,
			wantLimit:  10,
		},
		{
			name:       "second page",
			search:     PostSearch{Page: 2, Size: 10},
			wantOffset: 10,
			wantLimit:  10,
		},
		{
			name:       "size capped at maximum",
			search:     PostSearch{Page: 2, Size: 5000},
			wantOffset: 2000,
			wantLimit:  2000,
		},
		{
			name:       "custom size",
			search:     PostSearch{Page: 3, Size: 25},
			wantOffset: 50,
			wantLimit:  25,
		},
		{
			name:       "negative size floors to zero",
			search:     PostSearch{Page: 1, Size: -1},
			wantOffset: 0,
			wantLimit:  0,
		},
		{
			name:       "negative size on a later page still floors",
			search:     PostSearch{Page: 4, Size: -20},
			wantOffset: 0,
			wantLimit:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOffset, tt.search.Offset())
			assert.Equal(t, tt.wantLimit, tt.search.Limit())
		})
	}
}

func TestPostSearch_PageZeroEqualsPageOne(t *testing.T) {
	pageZero := PostSearch{Page: 0, Size: 10}
	pageOne := PostSearch{Page: 1, Size: 10}

	assert.Equal(t, pageOne.Offset(), pageZero.Offset())
	assert.Equal(t, pageOne.Limit(), pageZero.Limit())
}
