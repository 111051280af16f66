package post

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewListQueryDefaults(t *testing.T) {
	tests := []struct {
		name        string
		page        int64
		perPage     int64
		search      string
		wantPage    int64
		wantPerPage int64
		wantSearch  string
	}{
		{"all absent", 0, 0, "", 1, 10, ""},
		{"negative values", -3, -1, "", 1, 10, ""},
		{"valid values pass through", 4, 25, "rust", 4, 25, "rust"},
		{"search is trimmed", 1, 10, "  go  ", 1, 10, "go"},
		{"whitespace-only search means match all", 1, 10, "   ", 1, 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewListQuery(tt.page, tt.perPage, tt.search)

			assert.Equal(t, tt.wantPage, q.Page)
			assert.Equal(t, tt.wantPerPage, q.PerPage)
			assert.Equal(t, tt.wantSearch, q.Search)
		})
	}
}

func TestListQueryOffset(t *testing.T) {
	assert.Equal(t, int64(0), NewListQuery(1, 10, "").Offset())
	assert.Equal(t, int64(10), NewListQuery(2, 10, "").Offset())
	assert.Equal(t, int64(99), NewListQuery(100, 1, "").Offset())
}

func TestPlanWithoutSearch(t *testing.T) {
	plan := NewListQuery(2, 10, "").Plan()

	assert.Empty(t, plan.Where, "empty search must match everything")
	assert.Empty(t, plan.Args)
	assert.Equal(t, "p.created_at DESC, p.id DESC", plan.OrderBy)
	assert.Equal(t, int64(10), plan.Limit)
	assert.Equal(t, int64(10), plan.Offset)
}

func TestPlanWithSearch(t *testing.T) {
	plan := NewListQuery(1, 10, "rust").Plan()

	// One case-insensitive substring argument shared by all clauses.
	assert.Equal(t, []any{"%rust%"}, plan.Args)

	// OR across post, author and tag fields: existential match.
	for _, col := range []string{"p.title", "p.body", "u.username", "u.first_name", "u.last_name", "pt.tag"} {
		assert.Contains(t, plan.Where, col+" ILIKE $1")
	}
	assert.Equal(t, 5, strings.Count(plan.Where, " OR "))
}

func TestPlanIsPure(t *testing.T) {
	q := NewListQuery(3, 20, "go")

	first := q.Plan()
	second := q.Plan()

	assert.Equal(t, first, second)
}

