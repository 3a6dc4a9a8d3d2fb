package domain

// Page is the offset/limit marker block returned with every listing.
type Page struct {
	Next     *int `json:"next"`
	Limit    int  `json:"limit"`
	Previous *int `json:"previous"`
}

// NewPage derives markers from the requested window and the number of
// items actually returned. Next is a has-more heuristic: it is set only
// when the page came back full, so no separate count query is needed.
// Previous is offset-limit without clamping; when offset < limit the
// value goes negative. Callers of the original API rely on the exact
// number, so it is kept as-is. TODO: revisit clamping once no caller
// depends on negative offsets.
func NewPage(limit, offset, returned int) Page {
	p := Page{Limit: limit}

	if offset > 0 {
		prev := offset - limit
		p.Previous = &prev
	}

	// A limit=0 request returns an empty page that still counts as full,
	// so next points back at the same offset.
	if returned == limit {
		next := offset + limit
		p.Next = &next
	}

	return p
}
