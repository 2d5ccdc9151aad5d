package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"mimapa/config"
	deliverycontext "mimapa/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturingLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}

	return lines
}

func statement() (string, int64) {
	return "SELECT * FROM resenas", 3
}

func TestGormSlogLogger_Trace(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.SlowQuery = 50 * time.Millisecond

	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		wantMsg string
	}{
		{name: "failure", begin: time.Now(), err: errors.New("boom"), wantMsg: "SQL failed"},
		{name: "not found is quiet", begin: time.Now(), err: gorm.ErrRecordNotFound},
		{name: "slow statement", begin: time.Now().Add(-time.Second), wantMsg: "Slow SQL"},
		{name: "fast statement outside debug", begin: time.Now()},
		{name: "fast statement in debug", debug: true, begin: time.Now(), wantMsg: "SQL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, buf := newCapturingLogger()
			cfg.Env.Debug = tt.debug

			newGormSlogLogger(base, cfg).Trace(context.Background(), tt.begin, statement, tt.err)

			lines := logLines(t, buf)
			if tt.wantMsg == "" {
				assert.Empty(t, lines)

				return
			}
			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantMsg, lines[0]["msg"])
			assert.Equal(t, "SELECT * FROM resenas", lines[0]["sql"])
			assert.Equal(t, 3.0, lines[0]["rows"])
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	base, buf := newCapturingLogger()
	ctx := deliverycontext.WithLogger(context.Background(), base.With(slog.String("request_id", "req-9")))

	newGormSlogLogger(base, nil).Trace(ctx, time.Now(), statement, errors.New("boom"))

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "req-9", lines[0]["request_id"])
}

func TestGormSlogLogger_Silent(t *testing.T) {
	base, buf := newCapturingLogger()

	silent := newGormSlogLogger(base, nil).LogMode(logger.Silent)
	silent.Trace(context.Background(), time.Now(), statement, errors.New("boom"))
	silent.Error(context.Background(), "ignored %d", 1)

	assert.Empty(t, buf.String())
}
