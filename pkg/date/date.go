// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package date provides a calendar-date type for JSON payloads.

Publication dates carry no time of day. [Date] renders as "YYYY-MM-DD" and
accepts either that form or a full RFC 3339 timestamp on input, truncating the
latter to its UTC calendar day.
*/
package date

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the wire format of a [Date].
const Layout = time.DateOnly

// Date is a calendar day at midnight UTC.
type Date struct {
	time.Time
}

// New returns the Date for the given day.
func New(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Of truncates t to its UTC calendar day.
func Of(t time.Time) Date {
	t = t.UTC()
	return New(t.Year(), t.Month(), t.Day())
}

// Parse reads "YYYY-MM-DD" or an RFC 3339 timestamp.
func Parse(value string) (Date, error) {
	if t, err := time.Parse(Layout, value); err == nil {
		return Date{t}, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return Date{}, fmt.Errorf("date: %q is neither %s nor RFC 3339", value, Layout)
	}

	return Of(t), nil
}

// String implements [fmt.Stringer].
func (d Date) String() string {
	return d.Format(Layout)
}

// MarshalJSON implements [json.Marshaler].
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements [json.Unmarshaler]. JSON null leaves the zero value.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date: expected a string: %w", err)
	}

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
