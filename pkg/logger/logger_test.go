package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}

func TestPrintfHelpers(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Info("connected to %s", "sqlite")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "connected to sqlite", line["message"])
	assert.Equal(t, ServiceName, line["service"])
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	ReportError(nil, nil)
	assert.Zero(t, buf.Len())

	ReportError(eris.Wrap(errors.New("disk full"), "saving post"), map[string]string{"path": "/api/v1/posts"})

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "/api/v1/posts", line["path"])
	assert.Contains(t, line["error"], "disk full")
}

func TestInitSentry_NoDSN(t *testing.T) {
	flush, err := InitSentry(SentrySettings{})
	require.NoError(t, err)
	require.NotNil(t, flush)
	flush()
}
