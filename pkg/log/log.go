package log

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gookit/color"
)

type Logger interface {
	Error(format string, v ...any)
	Warning(format string, v ...any)
	Info(format string, v ...any)
	Close() error
}

// New logs to the file at path, or to stderr/stdout with colored level
// tags when path is empty.
func New(path string) (Logger, error) {
	if path != "" {
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
		if err != nil {
			return nil, fmt.Errorf("log: open %s: %w", path, err)
		}
		return &StdLog{
			err:  log.New(file, "ERROR ", log.Ldate|log.Ltime),
			wrn:  log.New(file, "WARN ", log.Ldate|log.Ltime),
			inf:  log.New(file, "INFO ", log.Ldate|log.Ltime),
			file: file,
		}, nil
	}
	return NewWriterLog(os.Stderr, os.Stdout), nil
}

// NewWriterLog writes errors and warnings to errw and the rest to infw.
func NewWriterLog(errw, infw io.Writer) *StdLog {
	return &StdLog{
		err: log.New(errw, color.Red.Sprint("error")+" ", 0),
		wrn: log.New(errw, color.Yellow.Sprint("warn")+" ", 0),
		inf: log.New(infw, color.Cyan.Sprint("info")+" ", 0),
	}
}

type StdLog struct {
	err, wrn, inf *log.Logger
	file          *os.File
}

func (l *StdLog) Error(format string, v ...any) {
	_ = l.err.Output(2, fmt.Sprintf(format, v...))
}

func (l *StdLog) Info(format string, v ...any) {
	_ = l.inf.Output(2, fmt.Sprintf(format, v...))
}

func (l *StdLog) Warning(format string, v ...any) {
	_ = l.wrn.Output(2, fmt.Sprintf(format, v...))
}

func (l *StdLog) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

type EmptyLog struct{}

func NewEmptyLog() Logger { return EmptyLog{} }

func (l EmptyLog) Error(string, ...any)   {}
func (l EmptyLog) Warning(string, ...any) {}
func (l EmptyLog) Info(string, ...any)    {}
func (l EmptyLog) Close() error           { return nil }
