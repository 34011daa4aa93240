// File: pkg/combine/execute.go
package combine

import (
	"fmt"
	"time"

	"gcont/pkg/config"
	"gcont/pkg/git"

	"go.uber.org/zap"
)

// Execute collects the files selected by settings and writes the document.
// Files that could not be embedded are reported in Result.Skipped and do not
// fail the run.
func Execute(settings *config.Settings, changes git.ChangeLister, logger *zap.Logger) (*Result, error) {
	if settings == nil {
		return nil, fmt.Errorf("settings are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	startTime := time.Now()
	logger.Debug("Starting gather process",
		zap.Strings("roots", settings.Roots),
		zap.String("project", string(settings.Project)))

	collector := NewCollector(settings.Include, settings.Exclude, changes, logger)
	collector.MaxFileSizeKB = settings.MaxFileSizeKB

	files, err := collector.Collect(settings.Roots, settings.ChangedOnly)
	if err != nil {
		logger.Error("Failed to collect files", zap.Error(err))
		return nil, fmt.Errorf("failed to collect files: %w", err)
	}
	if len(files) == 0 {
		logger.Warn("No files matched after filtering")
	}

	skipped, err := WriteDocumentFile(settings.Output, files, DocumentOptions{Tree: settings.Tree}, logger)
	if err != nil {
		logger.Error("Failed to write combined file", zap.String("outputFile", settings.Output), zap.Error(err))
		return nil, fmt.Errorf("failed to write combined file: %w", err)
	}

	logger.Debug("Gather process completed",
		zap.String("outputFile", settings.Output),
		zap.Int("totalFiles", len(files)),
		zap.Int("skippedFiles", len(skipped)),
		zap.Duration("elapsed", time.Since(startTime)))

	return &Result{Files: files, Skipped: skipped, Output: settings.Output}, nil
}
