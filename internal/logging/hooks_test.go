package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferHandler(threshold logrus.Level) (*handlerHook, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &handlerHook{
		name:      "test",
		threshold: threshold,
		formatter: &logrus.TextFormatter{DisableColors: true, DisableTimestamp: true},
		out:       buf,
	}, buf
}

func newTestEntry(level logrus.Level, msg string, data logrus.Fields) *logrus.Entry {
	if data == nil {
		data = logrus.Fields{}
	}
	return &logrus.Entry{
		Data:    data,
		Time:    time.Now(),
		Level:   level,
		Message: msg,
	}
}

func TestHandlerHook_Levels(t *testing.T) {
	hook, _ := newBufferHandler(logrus.WarnLevel)

	levels := hook.Levels()
	assert.Contains(t, levels, logrus.WarnLevel)
	assert.Contains(t, levels, logrus.ErrorLevel)
	assert.Contains(t, levels, logrus.FatalLevel)
	assert.NotContains(t, levels, logrus.InfoLevel)
	assert.NotContains(t, levels, logrus.DebugLevel)
}

func TestHandlerHook_InjectsPlaceholder(t *testing.T) {
	hook, buf := newBufferHandler(logrus.DebugLevel)

	require.NoError(t, hook.Fire(newTestEntry(logrus.WarnLevel, "no code", nil)))

	assert.Contains(t, buf.String(), "error_code="+CodePlaceholder)
}

func TestHandlerHook_KeepsExistingCode(t *testing.T) {
	hook, buf := newBufferHandler(logrus.DebugLevel)

	entry := newTestEntry(logrus.ErrorLevel, "quota", logrus.Fields{FieldErrorCode: "E4010"})
	require.NoError(t, hook.Fire(entry))

	assert.Contains(t, buf.String(), "error_code=E4010")
	assert.NotContains(t, buf.String(), CodePlaceholder)
}

func TestQueueDispatcher_DeliversAndFlushes(t *testing.T) {
	hook, buf := newBufferHandler(logrus.DebugLevel)
	dispatcher := newQueueDispatcher(4)

	for i := 0; i < 10; i++ {
		dispatcher.enqueue(queuedRecord{
			entry:   newTestEntry(logrus.InfoLevel, "queued", nil),
			targets: []*handlerHook{hook},
		})
	}
	dispatcher.Close()

	assert.Equal(t, 10, bytes.Count(buf.Bytes(), []byte("queued")))
}

func TestQueueDispatcher_FiltersByTargetThreshold(t *testing.T) {
	warnHook, warnBuf := newBufferHandler(logrus.WarnLevel)
	debugHook, debugBuf := newBufferHandler(logrus.DebugLevel)
	dispatcher := newQueueDispatcher(4)

	dispatcher.enqueue(queuedRecord{
		entry:   newTestEntry(logrus.InfoLevel, "info record", nil),
		targets: []*handlerHook{warnHook, debugHook},
	})
	dispatcher.Close()

	assert.Empty(t, warnBuf.String())
	assert.Contains(t, debugBuf.String(), "info record")
}

func TestQueueDispatcher_DropsAfterClose(t *testing.T) {
	hook, buf := newBufferHandler(logrus.DebugLevel)
	dispatcher := newQueueDispatcher(4)
	dispatcher.Close()

	// Must not panic, must not deliver.
	dispatcher.enqueue(queuedRecord{
		entry:   newTestEntry(logrus.InfoLevel, "late", nil),
		targets: []*handlerHook{hook},
	})

	assert.Empty(t, buf.String())
}

func TestQueueDispatcher_CloseIsIdempotent(t *testing.T) {
	dispatcher := newQueueDispatcher(1)
	dispatcher.Close()
	dispatcher.Close()
}

func TestQueueHook_DuplicatesEntry(t *testing.T) {
	hook, buf := newBufferHandler(logrus.DebugLevel)
	dispatcher := newQueueDispatcher(4)
	queue := &queueHook{dispatcher: dispatcher, targets: []*handlerHook{hook}}

	logger := logrus.New()
	entry := logrus.NewEntry(logger)
	entry.Level = logrus.WarnLevel
	entry.Message = "original"

	require.NoError(t, queue.Fire(entry))

	// Mutating the caller's entry after Fire must not affect the queued copy.
	entry.Message = "mutated"
	entry.Data["tenant"] = "acme"

	dispatcher.Close()
	assert.Contains(t, buf.String(), "original")
	assert.NotContains(t, buf.String(), "mutated")
	assert.NotContains(t, buf.String(), "acme")
}

func TestQueueHook_LevelsCoverWidestTarget(t *testing.T) {
	warnHook, _ := newBufferHandler(logrus.WarnLevel)
	debugHook, _ := newBufferHandler(logrus.DebugLevel)
	queue := &queueHook{targets: []*handlerHook{warnHook, debugHook}}

	levels := queue.Levels()
	assert.Contains(t, levels, logrus.DebugLevel)
	assert.Contains(t, levels, logrus.FatalLevel)
}

func TestLevelsUpTo(t *testing.T) {
	tests := []struct {
		name      string
		threshold logrus.Level
		contains  []logrus.Level
		excludes  []logrus.Level
	}{
		{
			name:      "debug threshold includes everything but trace",
			threshold: logrus.DebugLevel,
			contains:  []logrus.Level{logrus.DebugLevel, logrus.InfoLevel, logrus.FatalLevel},
			excludes:  []logrus.Level{logrus.TraceLevel},
		},
		{
			name:      "error threshold",
			threshold: logrus.ErrorLevel,
			contains:  []logrus.Level{logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel},
			excludes:  []logrus.Level{logrus.WarnLevel, logrus.InfoLevel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			levels := levelsUpTo(tt.threshold)
			for _, l := range tt.contains {
				assert.Contains(t, levels, l)
			}
			for _, l := range tt.excludes {
				assert.NotContains(t, levels, l)
			}
		})
	}
}
