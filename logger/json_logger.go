package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// JSONLogger implements the Logger interface with zap, every entry is
// written as a single JSON object per line
type JSONLogger struct {
	logger *zap.SugaredLogger
}

// NewJSONLogger creates a JSONLogger for w, level is one of debug, info,
// warn or error
func NewJSONLogger(w io.Writer, level string) (*JSONLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(w), lvl)

	return &JSONLogger{logger: zap.New(core).Sugar()}, nil
}

// WithPrefix returns a copy of the logger that adds the prefix as the logger
// name of every entry
func (l *JSONLogger) WithPrefix(prefix string) *JSONLogger {
	return &JSONLogger{logger: l.logger.Named(prefix)}
}

// Sync flushes buffered entries
func (l *JSONLogger) Sync() error {
	return l.logger.Sync()
}

var _ Logger = (*JSONLogger)(nil)

func (l *JSONLogger) Info(msg string, args ...interface{}) {
	l.logger.Infow(msg, args...)
}

func (l *JSONLogger) Debug(msg string, args ...interface{}) {
	l.logger.Debugw(msg, args...)
}

func (l *JSONLogger) Warn(msg string, args ...interface{}) {
	l.logger.Warnw(msg, args...)
}

func (l *JSONLogger) Error(msg string, args ...interface{}) {
	l.logger.Errorw(msg, args...)
}
