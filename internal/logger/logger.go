// Package logger builds the zerolog loggers used by the registry and codec packages.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	permission = 0664
)

type LogBuild struct {
	writer    io.Writer
	path      string
	level     zerolog.Level
	component string
}

type LogData struct {
	LogFile *os.File
	Logger  zerolog.Logger
}

func New() *LogBuild {
	return &LogBuild{level: zerolog.InfoLevel}
}

// FromPath appends log lines to the file at path
func (build *LogBuild) FromPath(path string) *LogBuild {
	build.path = path
	return build
}

func (build *LogBuild) FromBuffer(w io.Writer) *LogBuild {
	build.writer = w
	return build
}

func (build *LogBuild) Level(level zerolog.Level) *LogBuild {
	build.level = level
	return build
}

// Component tags every line with a "component" field
func (build *LogBuild) Component(name string) *LogBuild {
	build.component = name
	return build
}

func (build *LogBuild) Make() (logData *LogData, err error) {
	logData = new(LogData)
	writer := build.writer
	if writer == nil {
		writer = os.Stderr
	}
	if build.path != "" {
		logData.LogFile, err = os.OpenFile(build.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		writer = zerolog.SyncWriter(logData.LogFile)
	}

	ctx := zerolog.New(writer).Level(build.level).With().Timestamp()
	if build.component != "" {
		ctx = ctx.Str("component", build.component)
	}
	logData.Logger = ctx.Logger()
	return
}

// Close releases the log file, if any
func (logData *LogData) Close() error {
	if logData.LogFile == nil {
		return nil
	}
	return logData.LogFile.Close()
}

// FromEnv builds the logger for component from the environment.
//
// Environment variables:
//   - BLOCKKIT_LOG_LEVEL: zerolog level name (debug, info, warn, ...); unset disables logging
//   - BLOCKKIT_LOG_FILE: file to append to instead of stderr
func FromEnv(component string) zerolog.Logger {
	raw := os.Getenv("BLOCKKIT_LOG_LEVEL")
	if raw == "" {
		return zerolog.Nop()
	}
	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.Nop()
	}

	build := New().Level(level).Component(component)
	if path := os.Getenv("BLOCKKIT_LOG_FILE"); path != "" {
		build = build.FromPath(path)
	}
	logData, err := build.Make()
	if err != nil {
		return zerolog.Nop()
	}
	return logData.Logger
}
