package tools

import (
	"encoding/json"

	"github.com/matsen/scholargraph/internal/s2"
)

// FieldList is a list of response field names. Callers may send either a
// JSON array or a single comma-separated string; both decode to the same
// list.
type FieldList []string

// UnmarshalJSON accepts ["title","authors"] and "title,authors".
func (f *FieldList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FieldList(s2.SplitFieldArg(s))
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*f = FieldList(items)
	return nil
}
