package logging

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// defaultQueueSize is the fan-out channel capacity when the configuration
// enables the queue without sizing it.
const defaultQueueSize = 256

// handlerHook is one configured destination for formatted records. It owns
// a level threshold, a formatter and a writer; the logrus pipeline fires it
// for every record at or above the threshold.
type handlerHook struct {
	name      string
	threshold logrus.Level
	formatter logrus.Formatter
	mu        sync.Mutex
	out       io.Writer
}

func (h *handlerHook) Levels() []logrus.Level {
	return levelsUpTo(h.threshold)
}

func (h *handlerHook) Fire(entry *logrus.Entry) error {
	// Records emitted directly on the base logrus logger bypass the
	// adapter, so the error_code default has to be applied here as well.
	if _, ok := entry.Data[FieldErrorCode]; !ok {
		entry.Data[FieldErrorCode] = CodePlaceholder
	}

	formatted, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.out.Write(formatted)
	return err
}

// levelsUpTo returns the logrus levels at or above the given severity.
// logrus orders levels most-severe-first, so "at or above" means <=.
func levelsUpTo(threshold logrus.Level) []logrus.Level {
	levels := make([]logrus.Level, 0, len(logrus.AllLevels))
	for _, l := range logrus.AllLevels {
		if l <= threshold {
			levels = append(levels, l)
		}
	}
	return levels
}

// queuedRecord carries one duplicated entry and the handlers it is bound
// for across the fan-out channel.
type queuedRecord struct {
	entry   *logrus.Entry
	targets []*handlerHook
}

// queueDispatcher is the buffering fan-out that can sit in front of the
// terminal handlers: records are pushed onto a channel and drained by a
// single background goroutine, so slow writers never block call sites
// beyond the channel capacity.
type queueDispatcher struct {
	ch   chan queuedRecord
	done chan struct{}

	mu     sync.RWMutex
	closed bool
}

func newQueueDispatcher(size int) *queueDispatcher {
	if size <= 0 {
		size = defaultQueueSize
	}
	d := &queueDispatcher{
		ch:   make(chan queuedRecord, size),
		done: make(chan struct{}),
	}
	go d.drain()
	return d
}

func (d *queueDispatcher) drain() {
	defer close(d.done)
	for rec := range d.ch {
		for _, target := range rec.targets {
			if rec.entry.Level <= target.threshold {
				_ = target.Fire(rec.entry)
			}
		}
	}
}

func (d *queueDispatcher) enqueue(rec queuedRecord) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	// Records arriving after Close are dropped rather than panicking on
	// the closed channel.
	if d.closed {
		return
	}
	d.ch <- rec
}

// Close flushes every queued record and stops the drain goroutine.
func (d *queueDispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.ch)
	}
	d.mu.Unlock()
	<-d.done
}

// queueHook forwards entries to the shared dispatcher instead of writing
// them synchronously. Each entry is duplicated before it crosses the
// goroutine boundary.
type queueHook struct {
	dispatcher *queueDispatcher
	targets    []*handlerHook
}

func (h *queueHook) Levels() []logrus.Level {
	most := logrus.PanicLevel
	for _, target := range h.targets {
		if target.threshold > most {
			most = target.threshold
		}
	}
	return levelsUpTo(most)
}

func (h *queueHook) Fire(entry *logrus.Entry) error {
	// Entry.Dup copies the data map but not the record fields.
	dup := entry.Dup()
	dup.Level = entry.Level
	dup.Message = entry.Message
	dup.Caller = entry.Caller

	if _, ok := dup.Data[FieldErrorCode]; !ok {
		dup.Data[FieldErrorCode] = CodePlaceholder
	}

	h.dispatcher.enqueue(queuedRecord{entry: dup, targets: h.targets})
	return nil
}
