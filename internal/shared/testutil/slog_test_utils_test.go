package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferedSlogHandler(t *testing.T) {
	t.Run("captures log records", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Info("test message", slog.String("key", "value"))
		logger.Error("error message", slog.Int("code", 500))

		require.Len(t, handler.GetRecords(), 2)
		assert.True(t, handler.ContainsMessage("test message"))
		assert.True(t, handler.ContainsAttr("key", "value"))
		assert.True(t, handler.ContainsAttr("code", int64(500)))
	})

	t.Run("filters by level", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Debug("debug")
		logger.Info("info")
		logger.Warn("warn")

		assert.Len(t, handler.GetRecordsByLevel(slog.LevelWarn), 1)
		assert.Len(t, handler.GetRecordsByLevel(slog.LevelError), 0)
		assert.Equal(t, 3, handler.Count())
	})

	t.Run("keeps attributes added with With", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.With("component", "pipeline").Info("child")
		logger.Info("parent")

		require.Equal(t, 2, handler.Count())
		records := handler.GetRecords()
		assert.Equal(t, "pipeline", records[0].Attrs["component"])
		assert.NotContains(t, records[1].Attrs, "component")
	})

	t.Run("clear", func(t *testing.T) {
		logger, handler := NewTestLogger(t)
		logger.Info("one")

		handler.Clear()

		assert.Equal(t, 0, handler.Count())
	})
}

func TestAssertHelpers(t *testing.T) {
	logger, handler := NewTestLogger(t)
	logger.Warn("Base directory does not exist, skipping", slog.String("base_dir", "/missing"))

	AssertLogContains(t, handler, slog.LevelWarn, "does not exist")
	AssertLogAttr(t, handler, "base_dir", "/missing")
	AssertNoErrors(t, handler)
}
