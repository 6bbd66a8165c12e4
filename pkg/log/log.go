package log

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	// LogVerbosityInfo is the verbosity level for info logging.
	LogVerbosityInfo = 0
	// LogVerbosityDebug is the verbosity level for debug logging.
	LogVerbosityDebug = 2
	// LogVerbosityTrace is the verbosity level for trace logging.
	LogVerbosityTrace = 9

	// FormatText outputs logs as plain text.
	FormatText = "text"
	// FormatJSON outputs logs as JSON.
	FormatJSON = "json"

	// OutputStderr sends log output to stderr.
	OutputStderr = "stderr"
	// OutputStdout sends log output to stdout.
	OutputStdout = "stdout"
)

type logCtxKeyType string

const logCtxKey logCtxKeyType = "vnfd.logger"

// Config holds the logging configuration.
type Config struct {
	// Verbosity sets the level of logging. 0 is info and anything above it
	// enables increasingly verbose logging.
	Verbosity int
	// Format is the log output format, text or json.
	Format string
	// Output is where log entries are written, stderr, stdout or a file path.
	Output string
}

// Configure applies the supplied configuration to the standard logger.
func Configure(logConfig *Config) error {
	if logConfig.Output == "" {
		return ErrLogOutputRequired
	}

	switch logConfig.Verbosity {
	case LogVerbosityInfo:
		logrus.SetLevel(logrus.InfoLevel)
	case LogVerbosityDebug:
		logrus.SetLevel(logrus.DebugLevel)
	default:
		logrus.SetLevel(logrus.TraceLevel)
	}

	switch strings.ToLower(logConfig.Format) {
	case FormatText:
		logrus.SetFormatter(&logrus.TextFormatter{})
	case FormatJSON:
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return invalidLogFormatError{format: logConfig.Format}
	}

	switch logConfig.Output {
	case OutputStderr:
		logrus.SetOutput(os.Stderr)
	case OutputStdout:
		logrus.SetOutput(os.Stdout)
	default:
		file, err := os.OpenFile(logConfig.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file %s: %w", logConfig.Output, err)
		}

		logrus.SetOutput(file)
	}

	return nil
}

// AddFlagsToCommand adds the logging flags to the supplied command.
func AddFlagsToCommand(cmd *cobra.Command, config *Config) {
	cmd.PersistentFlags().IntVarP(&config.Verbosity,
		"verbosity",
		"v",
		LogVerbosityInfo,
		"The verbosity level of the logging. A level of 2 and above is debug logging.")

	cmd.PersistentFlags().StringVar(&config.Format,
		"log-format",
		FormatText,
		"The format of the logging output. Can be 'text' or 'json'.")

	cmd.PersistentFlags().StringVar(&config.Output,
		"log-output",
		OutputStderr,
		"The output for logging. Supply a file path or one of 'stderr'/'stdout'.")
}

// GetLogger pulls a logger from the supplied context, falling back to the
// standard logger.
func GetLogger(ctx context.Context) *logrus.Entry {
	logger := ctx.Value(logCtxKey)
	if logger == nil {
		return logrus.WithField("component", "vnfd")
	}

	entry, ok := logger.(*logrus.Entry)
	if !ok {
		return logrus.WithField("component", "vnfd")
	}

	return entry
}

// WithLogger attaches the supplied logger to the context.
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, logCtxKey, logger)
}
