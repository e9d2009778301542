// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"postgres://u:p@localhost:5432/folio", "pgx5://u:p@localhost:5432/folio"},
		{"postgresql://localhost/folio?sslmode=disable", "pgx5://localhost/folio?sslmode=disable"},
		{"pgx5://localhost/folio", "pgx5://localhost/folio"},
		{"host=localhost dbname=folio", "host=localhost dbname=folio"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, convertToPgx5DSN(tt.input))
	}
}

func TestSourceURL(t *testing.T) {
	assert.Equal(t, "file://./data/migrations", SourceURL("./data/migrations"))
	assert.Equal(t, "file:///srv/migrations", SourceURL("file:///srv/migrations"))
}
