package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Manu343726/nc10as/pkg/utils"
	"github.com/fatih/color"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Installs the default logger: text on stderr plus JSON on the log.file, if any
func setupLogging() error {
	levelName := strings.ToLower(viper.GetString("log.level"))
	level, ok := logLevels[levelName]

	if !ok {
		return fmt.Errorf("unknown log level '%v' (expected one of %v)", levelName, utils.FormatSlice(utils.SortedKeys(logLevels), ", "))
	}

	options := &slog.HandlerOptions{Level: level}
	handlers := []slog.Handler{slog.NewTextHandler(os.Stderr, options)}

	if logFile := viper.GetString("log.file"); logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)

		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}

		handlers = append(handlers, slog.NewJSONHandler(file, options))
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
	slog.Debug("logging initialized", "level", level, "handlers", len(handlers))
	return nil
}

func setupColor() {
	switch strings.ToLower(viper.GetString("color")) {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	}
}
