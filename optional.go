// optional.go input plumbing for partial updates
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Optional distinguishes a field that was absent from the request body
// from one that was explicitly set to null. Absent fields keep their
// stored value; null clears nullable fields.
type Optional[T any] struct {
	Set   bool // field appeared in the input
	Valid bool // field carried a non-null value
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Timestamp accepts RFC 3339 timestamps or plain YYYY-MM-DD dates and
// normalizes them to UTC.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := parseDate(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
