package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Plugin 即 zap 的 core，决定日志写到哪里、用什么格式
type Plugin = zapcore.Core

func NewLogger(plugin zapcore.Core, options ...zap.Option) *zap.Logger {
	return zap.New(plugin, append(DefaultOption(), options...)...)
}

func NewPlugin(writer zapcore.WriteSyncer, enabler zapcore.LevelEnabler) Plugin {
	return zapcore.NewCore(DefaultEncoder(), writer, enabler)
}

// NewStdoutPlugin 终端输出用 console 格式，方便阅读 ✔/✖ 报告
func NewStdoutPlugin(enabler zapcore.LevelEnabler) Plugin {
	return zapcore.NewCore(ConsoleEncoder(), zapcore.Lock(zapcore.AddSync(os.Stdout)), enabler)
}

// NewFilePlugin 写 json 到文件，由 lumberjack 负责切割
// 返回的 io.Closer 需要在退出前关闭
func NewFilePlugin(filePath string, enabler zapcore.LevelEnabler) (Plugin, io.Closer) {
	var writer = DefaultLumberjackLogger()
	writer.Filename = filePath
	return NewPlugin(zapcore.AddSync(writer), enabler), writer
}

// NewTeePlugin 同时写终端与文件，fileLevel 可以比终端更详细
func NewTeePlugin(filePath string, stdoutLevel, fileLevel zapcore.LevelEnabler) (Plugin, io.Closer) {
	file, closer := NewFilePlugin(filePath, fileLevel)
	return zapcore.NewTee(NewStdoutPlugin(stdoutLevel), file), closer
}
