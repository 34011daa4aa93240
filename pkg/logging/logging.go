package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Logger is the global logger instance
var Logger = zap.NewNop()

// level is shared by every logger built by Setup so verbosity can change
// after the config file has been read.
var level = zap.NewAtomicLevelAt(zap.InfoLevel)

// Setup builds the global logger. On a terminal it logs human-readable,
// colored lines; otherwise JSON with the app fields attached.
func Setup(verbose bool, appName, appVersion string) error {
	var err error
	var cfg zap.Config

	SetVerbose(verbose)

	if term.IsTerminal(int(os.Stderr.Fd())) {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.TimeKey = ""
		cfg.DisableStacktrace = true
	} else {
		cfg = zap.NewProductionConfig()
		// Add default fields
		cfg.InitialFields = map[string]interface{}{
			"appName":    appName,
			"appVersion": appVersion,
		}
	}
	cfg.Level = level
	cfg.DisableCaller = !verbose

	Logger, err = cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	zap.ReplaceGlobals(Logger)
	return nil
}

// SetVerbose switches between debug and info level.
func SetVerbose(verbose bool) {
	if verbose {
		level.SetLevel(zap.DebugLevel)
	} else {
		level.SetLevel(zap.InfoLevel)
	}
}
