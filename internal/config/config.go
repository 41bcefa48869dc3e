package config

import "log/slog"

// LogLevel is a textual slog level as written in the config file.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// IsValid reports whether l is one of the recognised level names.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	}
	return false
}

// Level converts l to a slog.Level, defaulting to Info for unknown values.
func (l LogLevel) Level() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config is the root of the wavscribe YAML configuration.
type Config struct {
	Model    Model    `yaml:"model"`
	Decode   Decode   `yaml:"decode"`
	LogLevel LogLevel `yaml:"log_level"`
}

// Model configures the speech-recognition runtime.
type Model struct {
	// Path to the whisper ggml model file. Required.
	Path string `yaml:"path"`
	// Language hint (e.g. "en"); empty or "auto" enables detection.
	Language string `yaml:"language"`
	// Translate requests translation of the transcript into English.
	Translate bool `yaml:"translate"`
}

// Decode configures the WAV decoder.
type Decode struct {
	// Strict enables canonical-layout validation beyond the default
	// RIFF/WAVE tag check.
	Strict bool `yaml:"strict"`
}
