package entity_test

import (
	"testing"

	"github.com/samandr77/microservices/onboarding/internal/entity"
)

func TestRange(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name          string
		page          int
		size          int
		totalElements int
		wantFirst     int
		wantLast      int
	}{
		{
			name:          "last partial page",
			page:          3,
			size:          15,
			totalElements: 42,
			wantFirst:     31,
			wantLast:      42,
		},
		{
			name:          "first full page",
			page:          1,
			size:          15,
			totalElements: 42,
			wantFirst:     1,
			wantLast:      15,
		},
		{
			name:          "middle page",
			page:          2,
			size:          10,
			totalElements: 42,
			wantFirst:     11,
			wantLast:      20,
		},
		{
			name:          "empty",
			page:          1,
			size:          10,
			totalElements: 0,
			wantFirst:     0,
			wantLast:      0,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			first, last := entity.Range(tt.page, tt.size, tt.totalElements)
			if first != tt.wantFirst || last != tt.wantLast {
				t.Errorf("Range() = %d..%d, want %d..%d", first, last, tt.wantFirst, tt.wantLast)
			}
		})
	}
}

func TestListQuery_Validate(t *testing.T) {
	t.Parallel()

	if err := (entity.ListQuery{Page: 1, Size: 10}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	if err := (entity.ListQuery{Page: 0, Size: 10}).Validate(); err == nil {
		t.Error("Validate() = nil for page 0")
	}
}
