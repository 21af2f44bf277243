package utils

import "time"

const dateLayout = "2006-01-02"

// ParseDate parses an optional YYYY-MM-DD form value. Empty input yields nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, ErrInvalidInput
	}
	return &t, nil
}

func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
