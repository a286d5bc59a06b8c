package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// RotateMode 日志轮转模式
type RotateMode int

const (
	// RotateModeTime 按时间轮转
	RotateModeTime RotateMode = iota
	// RotateModeSize 按大小轮转
	RotateModeSize
)

func (m RotateMode) String() string {
	switch m {
	case RotateModeTime:
		return "time"
	case RotateModeSize:
		return "size"
	default:
		return "unknown"
	}
}

// ParseRotateMode parses "time" or "size"; an empty string selects size rotation.
func ParseRotateMode(s string) (RotateMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "size":
		return RotateModeSize, nil
	case "time":
		return RotateModeTime, nil
	default:
		return 0, fmt.Errorf("unsupported rotate mode: %q", s)
	}
}

// RotateConfig 日志轮转配置
type RotateConfig struct {
	Mode     RotateMode
	Filepath string
	Filename string
	FileExt  string

	// time rotation, hours
	MaxAgeHours       int
	RotationTimeHours int

	// size rotation
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Console 控制台输出
func Console(out io.Writer) zerolog.ConsoleWriter {
	if out == nil {
		out = os.Stderr
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.DateTime,
		FormatLevel: func(i any) string {
			return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
		},
	}
}

// File 创建带轮转的文件输出
func File(c RotateConfig) (io.Writer, error) {
	switch c.Mode {
	case RotateModeTime:
		w, err := rotatelogs.New(
			c.path("%Y%m%d%H%M"),
			rotatelogs.WithLinkName(c.path("")),
			rotatelogs.WithMaxAge(time.Duration(c.MaxAgeHours)*time.Hour),
			rotatelogs.WithRotationTime(time.Duration(c.RotationTimeHours)*time.Hour),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create time rotate writer: %w", err)
		}
		return w, nil
	case RotateModeSize:
		return &lumberjack.Logger{
			Filename:   c.path(""),
			MaxSize:    c.MaxSizeMB,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAgeDays,
			Compress:   c.Compress,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported rotate mode: %v", c.Mode)
	}
}

// path returns <Filepath>/<Filename>[.<format>].<FileExt>
func (c RotateConfig) path(format string) string {
	name := c.Filename
	if format != "" {
		name += "." + format
	}
	return filepath.Join(c.Filepath, name+"."+c.FileExt)
}
