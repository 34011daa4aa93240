// File: pkg/combine/helpers.go
package combine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// DocumentOptions controls optional parts of the document.
type DocumentOptions struct {
	Tree bool // Start with a tree of the matched files.
}

// WriteDocument writes one section per file, in order, to w. Files that
// cannot be read or decoded keep their heading with an empty block; their
// paths are returned. Only write errors are returned as errors.
func WriteDocument(w io.Writer, files []MatchedFile, opts DocumentOptions, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var skipped []string

	if opts.Tree && len(files) > 0 {
		if _, err := io.WriteString(w, "## Project tree\n\n```\n"+BuildTree(files)+"```\n\n"); err != nil {
			return skipped, fmt.Errorf("failed to write tree: %w", err)
		}
	}

	for _, f := range files {
		content, err := readText(f.Path)
		if err != nil {
			if errors.Is(err, errUndecodable) {
				logger.Warn("Skipping file due to encoding error", zap.String("file", f.Path))
			} else {
				logger.Warn("Skipping unreadable file", zap.String("file", f.Path), zap.Error(err))
			}
			skipped = append(skipped, f.Path)
			content = ""
		}

		if _, err := io.WriteString(w, formatSection(f, content)); err != nil {
			logger.Error("Failed to write section", zap.String("file", f.Path), zap.Error(err))
			return skipped, fmt.Errorf("failed to write content: %w", err)
		}
	}
	return skipped, nil
}

// WriteDocumentFile creates or truncates outputPath and writes the document into it.
func WriteDocumentFile(outputPath string, files []MatchedFile, opts DocumentOptions, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("Writing combined content to output file", zap.String("outputFile", outputPath))

	if err := ensureDirectory(filepath.Dir(outputPath), logger); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	writer := bufio.NewWriter(outFile)
	skipped, err := WriteDocument(writer, files, opts, logger)
	if err != nil {
		outFile.Close()
		return skipped, err
	}

	if err := writer.Flush(); err != nil {
		outFile.Close()
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return skipped, fmt.Errorf("failed to flush output: %w", err)
	}
	if err := outFile.Close(); err != nil {
		logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(err))
		return skipped, fmt.Errorf("failed to close output file: %w", err)
	}
	return skipped, nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	return nil
}
