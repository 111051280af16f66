package post

import (
	"strings"

	"blog-backend/internal/shared/utils"
)

const (
	DefaultPage    int64 = 1
	DefaultPerPage int64 = 10
)

// searchColumns are the six fields an existential search probes. A
// post qualifies if any one of its joined rows matches: its own title
// or body, any field of its author, or any single tag.
var searchColumns = []string{
	"p.title",
	"p.body",
	"u.username",
	"u.first_name",
	"u.last_name",
	"pt.tag",
}

// ListQuery is a normalized listing request.
type ListQuery struct {
	Page    int64
	PerPage int64
	Search  string
}

// NewListQuery normalizes raw request values. Non-positive or missing
// page/per_page fall back to defaults rather than being rejected;
// an empty search means match everything.
func NewListQuery(page, perPage int64, search string) ListQuery {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	return ListQuery{
		Page:    page,
		PerPage: perPage,
		Search:  strings.TrimSpace(search),
	}
}

// Offset is the number of records skipped before this page.
func (q ListQuery) Offset() int64 {
	return (q.Page - 1) * q.PerPage
}

// QueryPlan carries the SQL fragments shared by the count query and
// the data query. Both must use the same Where/Args so the total and
// the page describe the same filtered set.
type QueryPlan struct {
	Where   string // empty when the query matches everything
	Args    []any  // bind arguments referenced by Where
	OrderBy string
	Limit   int64
	Offset  int64
}

// Plan translates the request into the shared filter, ordering and
// window. It is pure: no store access, fully testable on its own.
//
// The search predicate is a case-insensitive substring match OR-ed
// across all six columns with a single bind argument. The whole
// trimmed term is matched as one substring; multi-word terms are not
// tokenized.
func (q ListQuery) Plan() QueryPlan {
	plan := QueryPlan{
		// Newest first; id breaks timestamp ties so pages are stable.
		OrderBy: "p.created_at DESC, p.id DESC",
		Limit:   q.PerPage,
		Offset:  q.Offset(),
	}

	if q.Search == "" {
		return plan
	}

	clauses := make([]string, 0, len(searchColumns))
	for _, col := range searchColumns {
		clauses = append(clauses, col+" ILIKE $1")
	}

	plan.Where = utils.JoinWithOr(clauses)
	plan.Args = []any{"%" + q.Search + "%"}

	return plan
}
