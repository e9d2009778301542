// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// The API uses them as request correlation ids, so log lines sort by the
// moment the request arrived.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7 string. If the clock or entropy source fails
// it falls back to a random UUIDv4.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

// Timestamp returns the Unix millisecond timestamp embedded in a UUIDv7
// string. ok is false for malformed input or other UUID versions.
func Timestamp(s string) (ms int64, ok bool) {
	id, err := uuid.Parse(s)
	if err != nil || id.Version() != 7 {
		return 0, false
	}

	sec, nsec := id.Time().UnixTime()
	return sec*1000 + nsec/1_000_000, true
}
