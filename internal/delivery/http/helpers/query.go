package helpers

import (
	"net/http"

	"eventhub/internal/domain"
)

// ParseSortParams reads sortBy and order from the request query string.
// order defaults to asc; any value other than desc is treated as asc.
func ParseSortParams(r *http.Request) domain.SortParams {
	q := r.URL.Query()
	order := q.Get("order")
	if order != domain.OrderDesc {
		order = domain.OrderAsc
	}
	return domain.SortParams{
		Field: q.Get("sortBy"),
		Order: order,
	}
}
