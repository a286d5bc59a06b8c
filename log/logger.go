package log

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/kochabx/slydepay/log/desensitize"
	"github.com/kochabx/slydepay/log/writer"
)

// Logger wraps zerolog with an optional desensitizing writer and a closer for file outputs.
type Logger struct {
	zerolog.Logger
	desensitizeHook *desensitize.Hook
	level           *zerolog.Level
	caller          bool
	closer          io.Closer
}

func init() {
	zerolog.TimeFieldFormat = time.DateTime
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}

// GetDesensitizeHook returns the hook masking secrets, nil when disabled.
func (l *Logger) GetDesensitizeHook() *desensitize.Hook {
	return l.desensitizeHook
}

// Close releases the file writer, if any.
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

func newLogger(w io.Writer, opts ...Option) *Logger {
	l := &Logger{}
	for _, opt := range opts {
		opt(l)
	}

	if l.desensitizeHook != nil {
		w = desensitize.NewWriter(w, l.desensitizeHook)
	}

	ctx := zerolog.New(w).With().Timestamp()
	if l.caller {
		ctx = ctx.Caller()
	}
	l.Logger = ctx.Logger()
	if l.level != nil {
		l.Logger = l.Logger.Level(*l.level)
	}

	return l
}

// New creates a console logger.
func New(opts ...Option) *Logger {
	return newLogger(writer.Console(nil), opts...)
}

// NewWithWriter creates a logger writing JSON lines to w.
func NewWithWriter(w io.Writer, opts ...Option) *Logger {
	return newLogger(w, opts...)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// NewFile creates a logger writing to a rotating file.
func NewFile(c FileConfig, opts ...Option) (*Logger, error) {
	w, err := openFile(c)
	if err != nil {
		return nil, fmt.Errorf("failed to create file writer: %w", err)
	}

	l := newLogger(w, opts...)
	if closer, ok := w.(io.Closer); ok {
		l.closer = closer
	}
	return l, nil
}

// NewMulti creates a logger writing to both a rotating file and the console.
func NewMulti(c FileConfig, opts ...Option) (*Logger, error) {
	fw, err := openFile(c)
	if err != nil {
		return nil, fmt.Errorf("failed to create file writer: %w", err)
	}

	l := newLogger(zerolog.MultiLevelWriter(fw, writer.Console(nil)), opts...)
	if closer, ok := fw.(io.Closer); ok {
		l.closer = closer
	}
	return l, nil
}

func openFile(c FileConfig) (io.Writer, error) {
	wc, err := c.withDefaults().toWriterConfig()
	if err != nil {
		return nil, err
	}
	return writer.File(wc)
}
