package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/domain"
)

// listQuery reads the shared paging and search parameters. Malformed
// numbers fall back to the defaults; sorting is descending unless
// sortDirection=asc.
func listQuery(r *http.Request) domain.ListQuery {
	q := r.URL.Query()
	return domain.ListQuery{
		PageNumber:      atoiOr(q.Get("pageNumber"), domain.DefaultPageNumber),
		PageSize:        atoiOr(q.Get("pageSize"), domain.DefaultPageSize),
		SortBy:          q.Get("sortBy"),
		SortDesc:        !strings.EqualFold(q.Get("sortDirection"), "asc"),
		SearchNameTerm:  q.Get("searchNameTerm"),
		SearchLoginTerm: q.Get("searchLoginTerm"),
		SearchEmailTerm: q.Get("searchEmailTerm"),
	}.Normalize()
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func itoa(n int) string { return strconv.Itoa(n) }
