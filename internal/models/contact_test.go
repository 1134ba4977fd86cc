package models

import (
	"math"
	"testing"
)

func TestContactFilter_Offset(t *testing.T) {
	tests := []struct {
		name      string
		page, per int
		want      int
	}{
		{name: "first page", page: 1, per: 10, want: 0},
		{name: "third page", page: 3, per: 5, want: 10},
		{name: "unset page", page: 0, per: 10, want: 0},
		{name: "saturates", page: math.MaxInt, per: 100, want: math.MaxInt},
		{name: "largest exact", page: math.MaxInt/100 + 1, per: 100, want: math.MaxInt / 100 * 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (ContactFilter{Page: tt.page, PerPage: tt.per}).Offset(); got != tt.want {
				t.Fatalf("Offset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContactPage_Bounds(t *testing.T) {
	p := ContactPage{Contacts: make([]Contact, 3), Total: 13, CurrentPage: 3, PerPage: 5}
	from, to, ok := p.Bounds()
	if !ok || from != 11 || to != 13 {
		t.Fatalf("Bounds() = %d, %d, %v", from, to, ok)
	}
	if p.LastPage() != 3 {
		t.Fatalf("LastPage() = %d", p.LastPage())
	}

	empty := ContactPage{Total: 1, CurrentPage: math.MaxInt / 100, PerPage: 100}
	if _, _, ok := empty.Bounds(); ok {
		t.Fatalf("empty page reported bounds")
	}
}
