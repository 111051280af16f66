package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name      string
		totalDocs int64
		page      int64
		perPage   int64
		want      Meta
	}{
		{
			name:      "empty result set",
			totalDocs: 0,
			page:      1,
			perPage:   10,
			want:      Meta{CurrentPage: 1, PerPage: 10, From: 0, To: 0, TotalPages: 0, TotalDocs: 0},
		},
		{
			name:      "single full page",
			totalDocs: 10,
			page:      1,
			perPage:   10,
			want:      Meta{CurrentPage: 1, PerPage: 10, From: 1, To: 10, TotalPages: 1, TotalDocs: 10},
		},
		{
			name:      "partial last page",
			totalDocs: 25,
			page:      3,
			perPage:   10,
			want:      Meta{CurrentPage: 3, PerPage: 10, From: 21, To: 25, TotalPages: 3, TotalDocs: 25},
		},
		{
			name:      "one record per page",
			totalDocs: 2,
			page:      1,
			perPage:   1,
			want:      Meta{CurrentPage: 1, PerPage: 1, From: 1, To: 1, TotalPages: 2, TotalDocs: 2},
		},
		{
			name:      "total not divisible by per page rounds up",
			totalDocs: 11,
			page:      1,
			perPage:   10,
			want:      Meta{CurrentPage: 1, PerPage: 10, From: 1, To: 10, TotalPages: 2, TotalDocs: 11},
		},
		{
			name:      "page past the end echoes the requested page",
			totalDocs: 5,
			page:      100,
			perPage:   10,
			want:      Meta{CurrentPage: 100, PerPage: 10, From: 991, To: 5, TotalPages: 1, TotalDocs: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Calculate(tt.totalDocs, tt.page, tt.perPage))
		})
	}
}

func TestCalculateIsTotal(t *testing.T) {
	// No input combination may panic or produce negative fields.
	for _, totalDocs := range []int64{0, 1, 9, 10, 11, 1000} {
		for _, page := range []int64{1, 2, 50} {
			for _, perPage := range []int64{1, 7, 10} {
				meta := Calculate(totalDocs, page, perPage)

				assert.Equal(t, page, meta.CurrentPage)
				assert.Equal(t, perPage, meta.PerPage)
				assert.Equal(t, totalDocs, meta.TotalDocs)
				assert.GreaterOrEqual(t, meta.From, int64(0))
				assert.GreaterOrEqual(t, meta.TotalPages, int64(0))
			}
		}
	}
}
