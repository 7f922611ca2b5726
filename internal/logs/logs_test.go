package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/aws/smithy-go/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    slog.Level
		wantErr bool
	}{
		{raw: "debug", want: slog.LevelDebug},
		{raw: " WARN ", want: slog.LevelWarn},
		{raw: "error", want: slog.LevelError},
		{raw: "loud", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseLevel(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConsoleLoggerFiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := ConsoleLogger(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", "account", "dev")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "dev")
}

func TestSDKLoggerMapsClassification(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sdk := SDKLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	sdk.Logf(logging.Warn, "retrying request %s", "ListAccounts")
	sdk.Logf(logging.Debug, "request sent")

	out := buf.String()
	assert.Contains(t, out, `level=WARN msg="retrying request ListAccounts"`)
	assert.Contains(t, out, `level=DEBUG msg="request sent"`)
	assert.Contains(t, out, "source=aws-sdk")
}
