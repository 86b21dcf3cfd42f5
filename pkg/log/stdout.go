package log

import (
	"fmt"
	"time"
)

// InitializeStdoutLogger installs a plain stdout logger, used by local
// runs and tests in place of the GCP logger.
func InitializeStdoutLogger(minimum Severity) Log {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		logger = newStdoutLogger(minimum)
	}

	return logger
}

func newStdoutLogger(minimum Severity) *stdoutLogger {
	return &stdoutLogger{minimum: minimum}
}

type stdoutLogger struct {
	minimum Severity
}

func (sl *stdoutLogger) Close() error {
	return nil
}

func severityMarker(severity Severity) string {
	switch {
	case severity >= Error:
		return "E"
	case severity >= Warning:
		return "W"
	case severity >= Notice:
		return "N"
	case severity >= Info:
		return "I"
	case severity >= Debug:
		return "D"
	}
	return "-"
}

func timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func (sl *stdoutLogger) Log(l Labeler, message string, severity Severity) {
	if severity < sl.minimum {
		return
	}

	if l != nil && len(l.Labels()) > 0 {
		fmt.Printf("%s [%s] %s %v\n", timestamp(), severityMarker(severity), message, l.Labels())
		return
	}

	fmt.Printf("%s [%s] %s\n", timestamp(), severityMarker(severity), message)
}

func (sl *stdoutLogger) Rawf(severity Severity, format string, args ...any) {
	sl.Log(nil, fmt.Sprintf(format, args...), severity)
}

func (sl *stdoutLogger) Default(l Labeler, message any) {
	sl.Defaultf(l, "%s", message)
}

func (sl *stdoutLogger) Defaultf(l Labeler, format string, args ...any) {
	sl.Log(l, fmt.Sprintf(format, args...), Default)
}

func (sl *stdoutLogger) Debug(l Labeler, message any) {
	sl.Debugf(l, "%s", message)
}

func (sl *stdoutLogger) Debugf(l Labeler, format string, args ...any) {
	sl.Log(l, fmt.Sprintf(format, args...), Debug)
}

func (sl *stdoutLogger) Info(l Labeler, message any) {
	sl.Infof(l, "%s", message)
}

func (sl *stdoutLogger) Infof(l Labeler, format string, args ...any) {
	sl.Log(l, fmt.Sprintf(format, args...), Info)
}

func (sl *stdoutLogger) Notice(l Labeler, message any) {
	sl.Noticef(l, "%s", message)
}

func (sl *stdoutLogger) Noticef(l Labeler, format string, args ...any) {
	sl.Log(l, fmt.Sprintf(format, args...), Notice)
}

func (sl *stdoutLogger) Warning(l Labeler, message any) {
	sl.Warningf(l, "%s", message)
}

func (sl *stdoutLogger) Warningf(l Labeler, format string, args ...any) {
	sl.Log(l, fmt.Sprintf(format, args...), Warning)
}

func (sl *stdoutLogger) Error(l Labeler, message any) {
	sl.Errorf(l, "%s", message)
}

func (sl *stdoutLogger) Errorf(l Labeler, format string, args ...any) {
	sl.Log(l, fmt.Sprintf(format, args...), Error)
}
