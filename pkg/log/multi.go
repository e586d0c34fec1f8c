package log

import "errors"

type multiLog []Logger

// Multi sends every message to all loggers. Nil loggers are skipped.
func Multi(loggers ...Logger) Logger {
	var m multiLog
	for _, l := range loggers {
		if l != nil {
			m = append(m, l)
		}
	}
	return m
}

func (m multiLog) Error(format string, v ...any) {
	for _, l := range m {
		l.Error(format, v...)
	}
}

func (m multiLog) Warning(format string, v ...any) {
	for _, l := range m {
		l.Warning(format, v...)
	}
}

func (m multiLog) Info(format string, v ...any) {
	for _, l := range m {
		l.Info(format, v...)
	}
}

func (m multiLog) Close() error {
	var errs []error
	for _, l := range m {
		errs = append(errs, l.Close())
	}
	return errors.Join(errs...)
}
