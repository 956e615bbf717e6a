package s2

import (
	"errors"
	"reflect"
	"testing"
)

func TestSelectFields(t *testing.T) {
	tests := []struct {
		name      string
		entity    Entity
		requested []string
		want      FieldSet
		wantErr   bool
		wantField string // offending field carried by the error
	}{
		{
			name:      "empty request keeps upstream defaults",
			entity:    EntityPaper,
			requested: nil,
			want:      nil,
		},
		{
			name:      "valid paper fields preserve order",
			entity:    EntityPaper,
			requested: []string{"title", "abstract", "year"},
			want:      FieldSet{"title", "abstract", "year"},
		},
		{
			name:      "duplicates collapse to first occurrence",
			entity:    EntityPaper,
			requested: []string{"title", "year", "title"},
			want:      FieldSet{"title", "year"},
		},
		{
			name:      "whitespace is trimmed",
			entity:    EntityPaper,
			requested: []string{" title ", "year"},
			want:      FieldSet{"title", "year"},
		},
		{
			name:      "dotted subfield validates on its head",
			entity:    EntityPaper,
			requested: []string{"authors.name", "citations.title"},
			want:      FieldSet{"authors.name", "citations.title"},
		},
		{
			name:      "unknown field rejected",
			entity:    EntityPaper,
			requested: []string{"title", "bogus"},
			wantErr:   true,
			wantField: "bogus",
		},
		{
			name:      "unknown dotted head rejected",
			entity:    EntityPaper,
			requested: []string{"bogus.name"},
			wantErr:   true,
			wantField: "bogus.name",
		},
		{
			name:      "author field not valid on papers",
			entity:    EntityPaper,
			requested: []string{"hIndex"},
			wantErr:   true,
			wantField: "hIndex",
		},
		{
			name:      "empty entry rejected",
			entity:    EntityPaper,
			requested: []string{"title", " "},
			wantErr:   true,
			wantField: "",
		},
		{
			name:      "valid author fields",
			entity:    EntityAuthor,
			requested: []string{"name", "hIndex", "papers.title"},
			want:      FieldSet{"name", "hIndex", "papers.title"},
		},
		{
			name:      "paper field not valid on authors",
			entity:    EntityAuthor,
			requested: []string{"abstract"},
			wantErr:   true,
			wantField: "abstract",
		},
		{
			name:      "valid snippet fields",
			entity:    EntitySnippet,
			requested: []string{"snippet", "score", "paper"},
			want:      FieldSet{"snippet", "score", "paper"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectFields(tt.entity, tt.requested)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("SelectFields() error = %v", err)
				}
				if !reflect.DeepEqual(got, tt.want) {
					t.Errorf("SelectFields() = %v, want %v", got, tt.want)
				}
				return
			}
			var fieldErr *InvalidFieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("SelectFields() error = %v, want InvalidFieldError", err)
			}
			if fieldErr.Field != tt.wantField {
				t.Errorf("offending field = %q, want %q", fieldErr.Field, tt.wantField)
			}
			if fieldErr.Entity != tt.entity {
				t.Errorf("entity = %q, want %q", fieldErr.Entity, tt.entity)
			}
		})
	}
}

func TestSelectCitationFields(t *testing.T) {
	got, err := SelectCitationFields([]string{"contexts", "isInfluential", "title"})
	if err != nil {
		t.Fatalf("SelectCitationFields() error = %v", err)
	}
	want := FieldSet{"contexts", "isInfluential", "title"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SelectCitationFields() = %v, want %v", got, want)
	}

	if _, err := SelectCitationFields([]string{"hIndex"}); err == nil {
		t.Error("SelectCitationFields() accepted an author field")
	}
}

func TestSelectAuthorPaperFields(t *testing.T) {
	got, err := SelectAuthorPaperFields([]string{"papers.title", "year"})
	if err != nil {
		t.Fatalf("SelectAuthorPaperFields() error = %v", err)
	}
	want := FieldSet{"papers.title", "year"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SelectAuthorPaperFields() = %v, want %v", got, want)
	}
}

func TestFieldSetString(t *testing.T) {
	fs := FieldSet{"title", "authors.name", "year"}
	if got, want := fs.String(), "title,authors.name,year"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := (FieldSet)(nil).String(); got != "" {
		t.Errorf("empty String() = %q, want empty", got)
	}
}

func TestSplitFieldArg(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"  ", nil},
		{"title", []string{"title"}},
		{"title,authors.name", []string{"title", "authors.name"}},
	}
	for _, tt := range tests {
		if got := SplitFieldArg(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitFieldArg(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
