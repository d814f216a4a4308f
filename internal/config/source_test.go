package config

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/maelstrom/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceReader_URL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "absolute URL", raw: "https://example.net", want: "https://example.net"},
		{name: "with port and path", raw: "postgres://db.example.net:5432/maelstrom", want: "postgres://db.example.net:5432/maelstrom"},
		{name: "surrounding spaces are trimmed", raw: "  https://example.net  ", want: "https://example.net"},
		{name: "empty", raw: ""},
		{name: "blank", raw: "   "},
		{name: "no scheme", raw: "example.net"},
		{name: "unparsable", raw: "http://[::1"},
		{name: "bad percent escape", raw: "https://example.net/%zz"},
	}

	r := newSourceReader(SourceEnv, logger.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.url(FieldServerAddress, tt.raw)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestSourceReader_Path(t *testing.T) {
	r := newSourceReader(SourceCLI, logger.Nop())

	assert.Nil(t, r.path(FieldSigningKeyPath, ""))
	assert.Nil(t, r.path(FieldSigningKeyPath, " \t"))

	got := r.path(FieldSigningKeyPath, "/etc/maelstrom/authkey.pem")
	require.NotNil(t, got)
	assert.Equal(t, "/etc/maelstrom/authkey.pem", *got)
}

func TestSourceReader_Seconds(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *uint64
	}{
		{name: "positive", raw: "3000", want: ptr(uint64(3000))},
		{name: "zero is a value", raw: "0", want: ptr(uint64(0))},
		{name: "largest representable", raw: "9223372036", want: ptr(uint64(9223372036))},
		{name: "overflows a duration", raw: "9223372037"},
		{name: "negative", raw: "-5"},
		{name: "duration syntax", raw: "60s"},
		{name: "not a number", raw: "sixty"},
		{name: "empty", raw: ""},
	}

	r := newSourceReader(SourceEnv, logger.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.seconds(FieldSessionLifetime, tt.raw))
		})
	}
}

// TestSourceReader_LogsDiscardedValue verifies the diagnostic emitted when a
// malformed value is dropped.
func TestSourceReader_LogsDiscardedValue(t *testing.T) {
	var buf bytes.Buffer
	r := newSourceReader(SourceEnv, logger.New(&buf, "test"))

	assert.Nil(t, r.url(FieldDatabaseAddress, "not a url"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "env", entry["source"])
	assert.Equal(t, FieldDatabaseAddress, entry["option"])
	assert.Equal(t, "not a url", entry["value"])
}

// TestSourceReader_AbsentValueIsSilent verifies that an unset value is not
// reported.
func TestSourceReader_AbsentValueIsSilent(t *testing.T) {
	var buf bytes.Buffer
	r := newSourceReader(SourceCLI, logger.New(&buf, "test"))

	assert.Nil(t, r.url(FieldServerAddress, ""))
	assert.Nil(t, r.seconds(FieldSessionLifetime, ""))
	assert.Empty(t, buf.String())
}
