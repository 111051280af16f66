package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/post"
)

func TestBuildListQueriesWithoutSearch(t *testing.T) {
	plan := post.NewListQuery(2, 10, "").Plan()

	countQuery, dataQuery, dataArgs := buildListQueries(plan)

	assert.NotContains(t, countQuery, "WHERE")
	assert.NotContains(t, dataQuery, "WHERE")

	// Fan-out must never inflate the total.
	assert.Contains(t, countQuery, "COUNT(DISTINCT p.id)")

	// Window binds follow the (empty) predicate args.
	assert.Contains(t, dataQuery, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{int64(10), int64(10)}, dataArgs)
}

func TestBuildListQueriesWithSearch(t *testing.T) {
	plan := post.NewListQuery(1, 10, "rust").Plan()

	countQuery, dataQuery, dataArgs := buildListQueries(plan)

	// Count and data share the predicate verbatim.
	assert.Contains(t, countQuery, plan.Where)
	assert.Contains(t, dataQuery, plan.Where)

	assert.Contains(t, dataQuery, "LIMIT $2 OFFSET $3")
	assert.Equal(t, []any{"%rust%", int64(10), int64(0)}, dataArgs)
}

func TestBuildListQueriesJoinsAreOuter(t *testing.T) {
	plan := post.NewListQuery(1, 10, "").Plan()

	countQuery, dataQuery, _ := buildListQueries(plan)

	// Posts without an author or without tags must stay listed.
	require.Contains(t, countQuery, "LEFT JOIN users u")
	require.Contains(t, countQuery, "LEFT JOIN posts_tags pt")
	assert.Equal(t, 2, strings.Count(dataQuery, "LEFT JOIN users u"))
	assert.Equal(t, 2, strings.Count(dataQuery, "LEFT JOIN posts_tags pt"))
}

func TestBuildListQueriesOrderIsDeterministic(t *testing.T) {
	plan := post.NewListQuery(1, 10, "").Plan()

	_, dataQuery, _ := buildListQueries(plan)

	// Ordering applies both when selecting the page of post ids and
	// when emitting the flat rows, so the fold sees posts in plan
	// order.
	assert.Equal(t, 2, strings.Count(dataQuery, "ORDER BY p.created_at DESC, p.id DESC"))
}
