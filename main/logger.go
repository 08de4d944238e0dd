package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/phil-mansfield/gobez/io"
)

const timeFormat = "2006-01-02 15:04:05"

var levels = map[string]zapcore.Level{
	"debug": zap.DebugLevel,
	"info": zap.InfoLevel,
	"warn": zap.WarnLevel,
	"error": zap.ErrorLevel,
}

// newLogger writes console-encoded logs to stderr, or to a rotated LogFile
// if one is set.
func newLogger(con *io.OutputConfig) (*zap.Logger, error) {
	level, ok := levels[con.LogLevel]
	if !ok { return nil, fmt.Errorf("Unrecognized log level '%s'.", con.LogLevel) }

	var write zapcore.WriteSyncer
	if con.ValidLogFile() {
		write = zapcore.AddSync(&lumberjack.Logger{
			Filename: con.LogFile,
			MaxSize: con.LogMaxSize,
		})
	} else {
		write = zapcore.Lock(os.Stderr)
	}

	core := zapcore.NewCore(encoder(con.LogLevel), write, level)
	return zap.New(core, zap.AddCaller()), nil
}

func encoder(level string) zapcore.Encoder {
	econf := zap.NewProductionEncoderConfig()
	econf.TimeKey = "time"
	econf.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(timeFormat))
	}
	if level == "debug" {
		econf.EncodeLevel = zapcore.LowercaseColorLevelEncoder
	} else {
		econf.EncodeLevel = zapcore.LowercaseLevelEncoder
	}
	return zapcore.NewConsoleEncoder(econf)
}
