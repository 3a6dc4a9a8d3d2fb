package httpx

import (
	"net/http"
	"strconv"

	"github.com/ariefcatur/go-catalog-orders.git/internal/domain"
	"github.com/ariefcatur/go-catalog-orders.git/internal/service"
)

// pageParams reads limit/offset from the query string. Absent values
// default to 10 and 0; non-numeric values are a validation error,
// negative values are rejected later by the services.
func pageParams(r *http.Request) (limit, offset int, err error) {
	limit = service.DefaultPageLimit
	offset = 0

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, domain.ValidationError{Field: "limit", Reason: "must be an integer"}
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, domain.ValidationError{Field: "offset", Reason: "must be an integer"}
		}
	}
	return limit, offset, nil
}
