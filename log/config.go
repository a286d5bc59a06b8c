package log

import (
	"github.com/kochabx/slydepay/log/writer"
)

// FileConfig describes a rotating log file. RotateMode is "size" (default) or "time".
type FileConfig struct {
	Filepath         string           `mapstructure:"filepath"`
	Filename         string           `mapstructure:"filename"`
	FileExt          string           `mapstructure:"file_ext"`
	RotateMode       string           `mapstructure:"rotate_mode"`
	RotatelogsConfig RotatelogsConfig `mapstructure:"rotatelogs"`
	LumberjackConfig LumberjackConfig `mapstructure:"lumberjack"`
}

// RotatelogsConfig 按时间轮转配置（小时）
type RotatelogsConfig struct {
	MaxAge       int `mapstructure:"max_age"`
	RotationTime int `mapstructure:"rotation_time"`
}

// LumberjackConfig 按大小轮转配置
type LumberjackConfig struct {
	MaxSize    int  `mapstructure:"max_size"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAge     int  `mapstructure:"max_age"`
	Compress   bool `mapstructure:"compress"`
}

func (c FileConfig) withDefaults() FileConfig {
	if c.Filepath == "" {
		c.Filepath = "log"
	}
	if c.Filename == "" {
		c.Filename = "slydepay"
	}
	if c.FileExt == "" {
		c.FileExt = "log"
	}
	if c.RotatelogsConfig.MaxAge == 0 {
		c.RotatelogsConfig.MaxAge = 24
	}
	if c.RotatelogsConfig.RotationTime == 0 {
		c.RotatelogsConfig.RotationTime = 1
	}
	if c.LumberjackConfig.MaxSize == 0 {
		c.LumberjackConfig.MaxSize = 100
	}
	if c.LumberjackConfig.MaxBackups == 0 {
		c.LumberjackConfig.MaxBackups = 5
	}
	if c.LumberjackConfig.MaxAge == 0 {
		c.LumberjackConfig.MaxAge = 30
	}
	return c
}

func (c FileConfig) toWriterConfig() (writer.RotateConfig, error) {
	mode, err := writer.ParseRotateMode(c.RotateMode)
	if err != nil {
		return writer.RotateConfig{}, err
	}
	return writer.RotateConfig{
		Mode:              mode,
		Filepath:          c.Filepath,
		Filename:          c.Filename,
		FileExt:           c.FileExt,
		MaxAgeHours:       c.RotatelogsConfig.MaxAge,
		RotationTimeHours: c.RotatelogsConfig.RotationTime,
		MaxSizeMB:         c.LumberjackConfig.MaxSize,
		MaxBackups:        c.LumberjackConfig.MaxBackups,
		MaxAgeDays:        c.LumberjackConfig.MaxAge,
		Compress:          c.LumberjackConfig.Compress,
	}, nil
}
