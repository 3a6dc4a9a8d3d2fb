package domain_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/ariefcatur/go-catalog-orders.git/internal/domain"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name         string
		limit        int
		offset       int
		returned     int
		wantNext     *int
		wantPrevious *int
	}{
		{
			name:     "first full page has next, no previous",
			limit:    10,
			offset:   0,
			returned: 10,
			wantNext: lo.ToPtr(10),
		},
		{
			name:         "short second page has previous, no next",
			limit:        10,
			offset:       10,
			returned:     5,
			wantPrevious: lo.ToPtr(0),
		},
		{
			name:         "full middle page points both ways",
			limit:        10,
			offset:       10,
			returned:     10,
			wantNext:     lo.ToPtr(20),
			wantPrevious: lo.ToPtr(0),
		},
		{
			name:     "short first page has neither",
			limit:    10,
			offset:   0,
			returned: 3,
		},
		{
			// previous is offset-limit without clamping, so a small
			// offset yields a negative previous, matching the behavior
			// existing callers rely on
			name:         "offset below limit yields negative previous",
			limit:        10,
			offset:       5,
			returned:     10,
			wantNext:     lo.ToPtr(15),
			wantPrevious: lo.ToPtr(-5),
		},
		{
			name:     "zero limit page counts as full",
			limit:    0,
			offset:   0,
			returned: 0,
			wantNext: lo.ToPtr(0),
		},
		{
			name:         "zero limit with offset",
			limit:        0,
			offset:       7,
			returned:     0,
			wantNext:     lo.ToPtr(7),
			wantPrevious: lo.ToPtr(7),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := domain.NewPage(tt.limit, tt.offset, tt.returned)

			assert.Equal(t, tt.limit, page.Limit)
			assert.Equal(t, tt.wantNext, page.Next)
			assert.Equal(t, tt.wantPrevious, page.Previous)
		})
	}
}
