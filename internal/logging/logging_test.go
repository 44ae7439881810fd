package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantLevel logrus.Level
		wantJSON  bool
	}{
		{name: "json debug", level: "debug", format: FormatJSON, wantLevel: logrus.DebugLevel, wantJSON: true},
		{name: "text warn", level: "warn", format: FormatText, wantLevel: logrus.WarnLevel},
		{name: "bad level falls back to info", level: "loud", format: FormatText, wantLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logrus.New()
			Configure(logger, &buf, tt.level, tt.format)

			assert.Equal(t, tt.wantLevel, logger.GetLevel())

			logger.WithField("request_id", "abc").Error("boom")
			if tt.wantJSON {
				var entry map[string]any
				require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
				assert.Equal(t, "boom", entry["msg"])
				assert.Equal(t, "abc", entry["request_id"])
				return
			}
			assert.Contains(t, buf.String(), "request_id=abc")
		})
	}
}
