package logging

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{LevelDebug, true, true, true},
		{LevelInfo, false, true, true},
		{LevelWarn, false, false, true},
		{LevelError, false, false, false},
		{"bogus", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(&buf, tt.level)

			l.Debug("debug line")
			l.Info("info line")
			l.Warn("warn line")
			l.Error("error line")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug line")), out)
			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("info line")), out)
			assert.Equal(t, tt.wantWarn, bytes.Contains(buf.Bytes(), []byte("warn line")), out)
			assert.Contains(t, out, "error line")
		})
	}
}

func TestLogger_HTTPLinesRespectToggle(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)

	l.LogHTTPRequest("POST", "/api/v1/contact", "10.0.0.1", "req-1", 200, 42, "3ms")
	l.LogHTTPError("POST", "/api/v1/contact", "10.0.0.1", 502, "Failed to send message", errors.New("boom"))
	assert.Empty(t, buf.String())

	l.SetLogRequests(true)
	l.LogHTTPRequest("POST", "/api/v1/contact", "10.0.0.1", "req-1", 200, 42, "3ms")
	l.LogHTTPError("POST", "/api/v1/contact", "10.0.0.1", 502, "Failed to send message", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "[HTTP]")
	assert.Contains(t, out, "req-1")
	assert.Contains(t, out, "[HTTP-ERROR]")
	assert.Contains(t, out, "Failed to send message: boom")
}

func TestLogConfig_Validate(t *testing.T) {
	valid := LogConfig{Level: LevelInfo, File: "api.log", MaxSize: 10}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.Level = "loud"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.MaxSize = 0
	assert.Error(t, bad.Validate())

	bad = valid
	bad.File = ""
	assert.Error(t, bad.Validate())
}

func TestNewLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "api.log")
	l, err := NewLogger(&LogConfig{Level: LevelInfo, File: path, MaxSize: 1})
	require.NoError(t, err)
	defer l.Close()

	l.Info("hello %s", "file")
	assert.FileExists(t, path)
}
