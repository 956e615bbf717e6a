package s2

import (
	"errors"
	"net/url"
	"testing"
)

func TestBoundedLimit(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		limits  Limits
		want    int
		wantErr bool
	}{
		{name: "zero takes default", limit: 0, limits: SearchLimits, want: 10},
		{name: "explicit value kept", limit: 25, limits: SearchLimits, want: 25},
		{name: "at the maximum", limit: 100, limits: SearchLimits, want: 100},
		{name: "over the maximum fails", limit: 101, limits: SearchLimits, wantErr: true},
		{name: "negative fails", limit: -1, limits: SearchLimits, wantErr: true},
		{name: "match default", limit: 0, limits: MatchLimits, want: 5},
		{name: "bulk default is the maximum", limit: 0, limits: BulkSearchLimits, want: 1000},
		{name: "relation over maximum fails", limit: 1001, limits: RelationLimits, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := boundedLimit(tt.limit, tt.limits)
			if tt.wantErr {
				var rangeErr *OutOfRangeError
				if !errors.As(err, &rangeErr) {
					t.Fatalf("boundedLimit(%d) error = %v, want OutOfRangeError", tt.limit, err)
				}
				if rangeErr.Name != "limit" {
					t.Errorf("parameter name = %q, want %q", rangeErr.Name, "limit")
				}
				return
			}
			if err != nil {
				t.Fatalf("boundedLimit(%d) error = %v", tt.limit, err)
			}
			if got != tt.want {
				t.Errorf("boundedLimit(%d) = %d, want %d", tt.limit, got, tt.want)
			}
		})
	}
}

func TestSetOffset(t *testing.T) {
	v := url.Values{}
	if err := setOffset(v, 0); err != nil {
		t.Fatalf("setOffset(0) error = %v", err)
	}
	if v.Has("offset") {
		t.Error("setOffset(0) set the parameter; zero should be omitted")
	}

	if err := setOffset(v, 40); err != nil {
		t.Fatalf("setOffset(40) error = %v", err)
	}
	if got := v.Get("offset"); got != "40" {
		t.Errorf("offset = %q, want %q", got, "40")
	}

	var rangeErr *OutOfRangeError
	if err := setOffset(url.Values{}, -1); !errors.As(err, &rangeErr) {
		t.Errorf("setOffset(-1) error = %v, want OutOfRangeError", err)
	}
}

func TestSetPagination(t *testing.T) {
	v := url.Values{}
	if err := setPagination(v, 0, "CURSOR"); err != nil {
		t.Fatalf("setPagination(token) error = %v", err)
	}
	if got := v.Get("token"); got != "CURSOR" {
		t.Errorf("token = %q, want %q", got, "CURSOR")
	}

	v = url.Values{}
	if err := setPagination(v, 20, ""); err != nil {
		t.Fatalf("setPagination(offset) error = %v", err)
	}
	if got := v.Get("offset"); got != "20" {
		t.Errorf("offset = %q, want %q", got, "20")
	}

	if err := setPagination(url.Values{}, 20, "CURSOR"); !errors.Is(err, ErrConflictingPagination) {
		t.Errorf("setPagination(both) error = %v, want ErrConflictingPagination", err)
	}
}

func TestSetYear(t *testing.T) {
	tests := []struct {
		year    string
		wantErr bool
	}{
		{"", false},
		{"2020", false},
		{"2020-2024", false},
		{"2020-", false},
		{"-2024", false},
		{" 2020 ", false},
		{"abcd", true},
		{"999", true},
		{"20201", true},
		{"2020-24", true},
		{"2024-2020", true},
		{"-", true},
	}

	for _, tt := range tests {
		t.Run("year "+tt.year, func(t *testing.T) {
			v := url.Values{}
			err := setYear(v, tt.year)
			if tt.wantErr {
				var rangeErr *InvalidRangeError
				if !errors.As(err, &rangeErr) {
					t.Fatalf("setYear(%q) error = %v, want InvalidRangeError", tt.year, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("setYear(%q) error = %v", tt.year, err)
			}
		})
	}
}

func TestParseYearRange(t *testing.T) {
	tests := []struct {
		in     string
		lo, hi int
	}{
		{"2020", 2020, 2020},
		{"2020-2024", 2020, 2024},
		{"2020-", 2020, 0},
		{"-2024", 0, 2024},
	}
	for _, tt := range tests {
		lo, hi, err := parseYearRange(tt.in)
		if err != nil {
			t.Errorf("parseYearRange(%q) error = %v", tt.in, err)
			continue
		}
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("parseYearRange(%q) = (%d, %d), want (%d, %d)", tt.in, lo, hi, tt.lo, tt.hi)
		}
	}
}

func TestCleanQuery(t *testing.T) {
	got, err := cleanQuery("  codon usage  ")
	if err != nil {
		t.Fatalf("cleanQuery() error = %v", err)
	}
	if want := "codon usage"; got != want {
		t.Errorf("cleanQuery() = %q, want %q", got, want)
	}

	for _, q := range []string{"", "   ", "\t\n"} {
		if _, err := cleanQuery(q); !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("cleanQuery(%q) error = %v, want ErrEmptyQuery", q, err)
		}
	}
}

func TestJoinList(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"Biology"}, "Biology"},
		{[]string{" Biology ", "", "Medicine"}, "Biology,Medicine"},
	}
	for _, tt := range tests {
		if got := joinList(tt.in); got != tt.want {
			t.Errorf("joinList(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewParams(t *testing.T) {
	if v := newParams(nil); v.Has("fields") {
		t.Error("newParams(nil) set fields; empty set should be omitted")
	}
	v := newParams(FieldSet{"title", "year"})
	if got := v.Get("fields"); got != "title,year" {
		t.Errorf("fields = %q, want %q", got, "title,year")
	}
}
