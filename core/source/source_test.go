package source_test

import (
	"testing"

	"entra-sync/core/source"

	"github.com/stretchr/testify/assert"
)

func TestConfig_EmailList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"Empty", "", nil},
		{"Whitespace", "   ", nil},
		{"Single", "a@example.org", []string{"a@example.org"}},
		{"Multiple", "a@example.org,b@example.org", []string{"a@example.org", "b@example.org"}},
		{"TrimsSpaces", " a@example.org , b@example.org ", []string{"a@example.org", "b@example.org"}},
		{"SkipsEmptyEntries", "a@example.org,,b@example.org,", []string{"a@example.org", "b@example.org"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := source.Config{TargetEmails: tt.value}
			assert.Equal(t, tt.want, c.EmailList())
		})
	}
}

func TestRecord_Valid(t *testing.T) {
	tests := []struct {
		name   string
		record source.Record
		want   bool
	}{
		{"Complete", source.Record{UID: "u1", Email: "a@example.org"}, true},
		{"MissingUID", source.Record{Email: "a@example.org"}, false},
		{"MissingEmail", source.Record{UID: "u1"}, false},
		{"MissingBoth", source.Record{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.Valid())
		})
	}
}
