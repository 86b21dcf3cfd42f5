package log

import (
	"context"
	"fmt"

	"chatmod/pkg/config"

	"cloud.google.com/go/logging"
	"google.golang.org/api/option"
)

// InitializeGCPLogger connects the process-wide logger to Google Cloud
// Logging. Entries are mirrored to stdout for local visibility.
func InitializeGCPLogger(ctx context.Context, cfg *config.Config, logID string) (Log, error) {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		return logger, nil
	}

	client, err := logging.NewClient(ctx, cfg.GoogleCloud.ProjectID, option.WithCredentialsFile(cfg.GoogleCloud.ServiceAccountFilename))
	if err != nil {
		return nil, err
	}

	logger = &gcpLogger{
		client: client,
		logger: client.Logger(logID),
		echo:   newStdoutLogger(Default),
	}

	return logger, nil
}

type gcpLogger struct {
	client *logging.Client
	logger *logging.Logger
	echo   *stdoutLogger
}

func (gl *gcpLogger) Close() error {
	return gl.client.Close()
}

func (gl *gcpLogger) Log(l Labeler, message string, severity Severity) {
	var labels map[string]string
	if l != nil {
		labels = l.Labels()
	}
	gl.logger.Log(logging.Entry{Payload: message, Severity: logging.Severity(severity), Labels: labels})
	gl.echo.Log(l, message, severity)
}

func (gl *gcpLogger) Rawf(severity Severity, format string, args ...any) {
	gl.Log(nil, fmt.Sprintf(format, args...), severity)
}

func (gl *gcpLogger) Default(l Labeler, message any) {
	gl.Defaultf(l, "%s", message)
}

func (gl *gcpLogger) Defaultf(l Labeler, format string, args ...any) {
	gl.Log(l, fmt.Sprintf(format, args...), Default)
}

func (gl *gcpLogger) Debug(l Labeler, message any) {
	gl.Debugf(l, "%s", message)
}

func (gl *gcpLogger) Debugf(l Labeler, format string, args ...any) {
	gl.Log(l, fmt.Sprintf(format, args...), Debug)
}

func (gl *gcpLogger) Info(l Labeler, message any) {
	gl.Infof(l, "%s", message)
}

func (gl *gcpLogger) Infof(l Labeler, format string, args ...any) {
	gl.Log(l, fmt.Sprintf(format, args...), Info)
}

func (gl *gcpLogger) Notice(l Labeler, message any) {
	gl.Noticef(l, "%s", message)
}

func (gl *gcpLogger) Noticef(l Labeler, format string, args ...any) {
	gl.Log(l, fmt.Sprintf(format, args...), Notice)
}

func (gl *gcpLogger) Warning(l Labeler, message any) {
	gl.Warningf(l, "%s", message)
}

func (gl *gcpLogger) Warningf(l Labeler, format string, args ...any) {
	gl.Log(l, fmt.Sprintf(format, args...), Warning)
}

func (gl *gcpLogger) Error(l Labeler, message any) {
	gl.Errorf(l, "%s", message)
}

func (gl *gcpLogger) Errorf(l Labeler, format string, args ...any) {
	gl.Log(l, fmt.Sprintf(format, args...), Error)
}
