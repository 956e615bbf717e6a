package s2

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Limits bounds the limit parameter for one endpoint family. A zero
// requested limit takes Default; exceeding Max is an error, never a
// silent clamp.
type Limits struct {
	Default int
	Max     int
}

// Per-endpoint limit bounds from the upstream documentation.
var (
	SearchLimits       = Limits{Default: 10, Max: 100}
	BulkSearchLimits   = Limits{Default: 1000, Max: 1000}
	RelationLimits     = Limits{Default: 100, Max: 1000}
	MatchLimits        = Limits{Default: 5, Max: 20}
	AutocompleteLimits = Limits{Default: 10, Max: 100}
	SnippetLimits      = Limits{Default: 10, Max: 100}
)

var yearRangePattern = regexp.MustCompile(`^(\d{4})?-(\d{4})?$`)

// newParams starts a parameter map with the rendered field set. The
// fields parameter is omitted entirely when the set is empty so the
// upstream defaults apply.
func newParams(fields FieldSet) url.Values {
	v := url.Values{}
	if len(fields) > 0 {
		v.Set("fields", fields.String())
	}
	return v
}

// boundedLimit applies the endpoint default and rejects values outside
// [1, Max].
func boundedLimit(limit int, l Limits) (int, error) {
	if limit == 0 {
		limit = l.Default
	}
	if limit < 0 || limit > l.Max {
		return 0, &OutOfRangeError{Name: "limit", Value: limit, Max: l.Max}
	}
	return limit, nil
}

func setLimit(v url.Values, limit int, l Limits) error {
	bounded, err := boundedLimit(limit, l)
	if err != nil {
		return err
	}
	v.Set("limit", strconv.Itoa(bounded))
	return nil
}

func setOffset(v url.Values, offset int) error {
	if offset < 0 {
		return &OutOfRangeError{Name: "offset", Value: offset}
	}
	if offset > 0 {
		v.Set("offset", strconv.Itoa(offset))
	}
	return nil
}

// setPagination applies either offset or cursor continuation. Supplying
// both fails before any network traffic.
func setPagination(v url.Values, offset int, token string) error {
	if token != "" {
		if offset != 0 {
			return ErrConflictingPagination
		}
		v.Set("token", token)
		return nil
	}
	return setOffset(v, offset)
}

// setYear validates a year filter against the grammar YYYY, YYYY-, -YYYY,
// or YYYY-YYYY and passes it through. Closed ranges must not be inverted.
func setYear(v url.Values, year string) error {
	year = strings.TrimSpace(year)
	if year == "" {
		return nil
	}
	lo, hi, err := parseYearRange(year)
	if err != nil {
		return err
	}
	if lo > 0 && hi > 0 && lo > hi {
		return &InvalidRangeError{Raw: year}
	}
	v.Set("year", year)
	return nil
}

// parseYearRange returns the closed bounds of a year filter; a zero bound
// is open-ended.
func parseYearRange(s string) (lo, hi int, err error) {
	if len(s) == 4 {
		if y, convErr := strconv.Atoi(s); convErr == nil {
			return y, y, nil
		}
		return 0, 0, &InvalidRangeError{Raw: s}
	}
	m := yearRangePattern.FindStringSubmatch(s)
	if m == nil || (m[1] == "" && m[2] == "") {
		return 0, 0, &InvalidRangeError{Raw: s}
	}
	if m[1] != "" {
		lo, _ = strconv.Atoi(m[1])
	}
	if m[2] != "" {
		hi, _ = strconv.Atoi(m[2])
	}
	return lo, hi, nil
}

// cleanQuery trims a required free-text query and rejects empty input.
func cleanQuery(q string) (string, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", ErrEmptyQuery
	}
	return q, nil
}

// joinList renders a comma-separated filter value, dropping blank entries.
func joinList(items []string) string {
	var kept []string
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, ",")
}
