package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	defaultAuthor   = "Alice"
	defaultFormat   = formatJSON
	defaultLogLevel = "info"

	formatJSON = "json"
	formatText = "text"
)

var (
	// ErrUnknownFormat is returned for an unsupported -format value.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrUnknownLogLevel is returned for an unsupported -log-level value.
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// Config holds all report configuration parameters.
type Config struct {
	Author   string
	Format   string
	LogLevel slog.Level
}

// parseFlags parses command line arguments and returns the configuration.
func parseFlags(args []string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet("library-report", flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		author   = fs.String("author", defaultAuthor, "Author to look up with find-by-author")
		format   = fs.String("format", defaultFormat, "Output format: json or text")
		logLevel = fs.String("log-level", defaultLogLevel, "Log level: debug, info, warn or error")
	)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *format != formatJSON && *format != formatText {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, *format)
	}

	level, err := parseLogLevel(*logLevel)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Author:   *author,
		Format:   *format,
		LogLevel: level,
	}, nil
}

func parseLogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, value)
	}
}
