package log

import (
	"fmt"
	"sync"
	"time"

	"github.com/gookit/color"
)

type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warn"
	case LevelError:
		return "error"
	}
	return "info"
}

// Record is one message sent by ChanLog.
type Record struct {
	Level   Level
	Message string
	Time    time.Time
}

// String formats the record for the terminal.
func (r Record) String() string {
	tag := color.Cyan
	switch r.Level {
	case LevelWarning:
		tag = color.Yellow
	case LevelError:
		tag = color.Red
	}
	return fmt.Sprintf("%s %s %s", color.Gray.Sprint(r.Time.Format("15:04:05")), tag.Sprint(r.Level), r.Message)
}

// ChanLog sends records to a channel so a UI can show them. Records are
// dropped rather than blocking when the channel is full, and after Close.
type ChanLog struct {
	mu     sync.Mutex
	ch     chan Record
	closed bool
	now    func() time.Time
}

func NewChanLog(size int) *ChanLog {
	return &ChanLog{ch: make(chan Record, size), now: time.Now}
}

// Records returns the channel records are sent on. It is closed by Close.
func (l *ChanLog) Records() <-chan Record {
	return l.ch
}

func (l *ChanLog) send(level Level, format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	select {
	case l.ch <- Record{Level: level, Message: fmt.Sprintf(format, v...), Time: l.now()}:
	default:
	}
}

func (l *ChanLog) Error(format string, v ...any)   { l.send(LevelError, format, v...) }
func (l *ChanLog) Warning(format string, v ...any) { l.send(LevelWarning, format, v...) }
func (l *ChanLog) Info(format string, v ...any)    { l.send(LevelInfo, format, v...) }

func (l *ChanLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.closed {
		l.closed = true
		close(l.ch)
	}
	return nil
}
