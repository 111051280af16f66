package pagination

// Meta is the pagination block returned alongside every listed page.
// From/To are 1-based positions of the first and last record in the
// requested window, or 0 when the result set is empty.
type Meta struct {
	CurrentPage int64 `json:"current_page"`
	PerPage     int64 `json:"per_page"`
	From        int64 `json:"from"`
	To          int64 `json:"to"`
	TotalPages  int64 `json:"total_pages"`
	TotalDocs   int64 `json:"total_docs"`
}

// Calculate derives pagination metadata from a total count and the
// requested page window. It is total: any input with totalDocs >= 0,
// page >= 1 and perPage >= 1 yields a valid Meta. A page past the end
// is not an error; CurrentPage always echoes the requested page and
// the record window is simply empty.
func Calculate(totalDocs, page, perPage int64) Meta {
	meta := Meta{
		CurrentPage: page,
		PerPage:     perPage,
		TotalDocs:   totalDocs,
	}

	if totalDocs == 0 {
		return meta
	}

	offset := (page - 1) * perPage

	meta.TotalPages = (totalDocs + perPage - 1) / perPage
	meta.From = offset + 1
	meta.To = min(offset+perPage, totalDocs)

	return meta
}
