// File: pkg/combine/traversal.go
package combine

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"gcont/pkg/git"
	"gcont/pkg/pattern"

	"go.uber.org/zap"
)

// Collector selects files from one or more roots.
type Collector struct {
	Include       *pattern.Set
	Exclude       *pattern.Set
	MaxFileSizeKB int              // 0 disables the size limit.
	Changes       git.ChangeLister // Used only when collecting changed files.
	logger        *zap.Logger
}

// NewCollector builds a Collector from include and exclude globs.
func NewCollector(include, exclude []string, changes git.ChangeLister, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{
		Include: pattern.NewSet(logger, include...),
		Exclude: pattern.NewSet(logger, exclude...),
		Changes: changes,
		logger:  logger,
	}
}

// Collect returns the matched files of every root, in root order. With
// changedOnly set, candidates come from the change lister instead of a walk.
func (c *Collector) Collect(roots []string, changedOnly bool) ([]MatchedFile, error) {
	var files []MatchedFile
	c.logger.Debug("Starting file collection", zap.Int("rootCount", len(roots)), zap.Bool("changedOnly", changedOnly))

	for _, root := range roots {
		var (
			matched []MatchedFile
			err     error
		)
		if changedOnly {
			matched = c.collectChanged(root)
		} else {
			matched, err = c.walk(root)
			if err != nil {
				return files, err
			}
		}
		files = append(files, matched...)
	}

	c.logger.Debug("Completed file collection", zap.Int("matchedFiles", len(files)))
	return files, nil
}

// walk traverses root in lexical order. Excluded directories are pruned
// before any of their entries are visited.
func (c *Collector) walk(root string) ([]MatchedFile, error) {
	var files []MatchedFile

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			c.logger.Warn("Error accessing path during traversal", zap.String("path", p), zap.Error(err))
			if d != nil && d.IsDir() && p != root {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, relErr := filepath.Rel(root, p)
		if relErr != nil {
			c.logger.Warn("Unable to determine relative path", zap.String("path", p), zap.Error(relErr))
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if relPath == "." {
				c.logger.Debug("Traversing directory", zap.String("directory", p))
				return nil
			}
			if excluded, pat := c.excludedDir(relPath); excluded {
				c.logger.Debug("Skipping excluded directory", zap.String("directory", p), zap.String("pattern", pat.Line))
				return filepath.SkipDir
			}
			c.logger.Debug("Traversing directory", zap.String("directory", p))
			return nil
		}

		if !c.accept(relPath) {
			return nil
		}

		if c.MaxFileSizeKB > 0 {
			info, err := d.Info()
			if err != nil {
				c.logger.Warn("Failed to get file info during traversal", zap.String("filePath", p), zap.Error(err))
				return nil
			}
			if info.Size() > int64(c.MaxFileSizeKB)*1024 {
				c.logger.Debug("Skipping file due to size limit", zap.String("filePath", p), zap.Int64("sizeBytes", info.Size()))
				return nil
			}
		}

		files = append(files, newMatchedFile(root, relPath))
		return nil
	})
	if err != nil {
		c.logger.Error("Error during file traversal", zap.String("root", root), zap.Error(err))
		return files, err
	}

	return files, nil
}

// collectChanged filters the files git reports as changed under root. A
// failing git call is logged and treated as "nothing changed".
func (c *Collector) collectChanged(root string) []MatchedFile {
	if c.Changes == nil {
		c.logger.Warn("No change lister configured, gathering nothing", zap.String("root", root))
		return nil
	}

	changed, err := c.Changes.ChangedFiles(root)
	if err != nil {
		c.logger.Warn("Failed to list changed files", zap.String("root", root), zap.Error(err))
		return nil
	}
	c.logger.Debug("Listed changed files", zap.String("root", root), zap.Int("count", len(changed)))

	var files []MatchedFile
	for _, relPath := range changed {
		relPath = path.Clean(filepath.ToSlash(relPath))
		if c.insideExcludedDir(relPath) {
			continue
		}
		if c.accept(relPath) {
			files = append(files, newMatchedFile(root, relPath))
		}
	}
	return files
}

// excludedDir tests a directory both as a bare name ("venv") and in its
// trailing-slash form ("venv/"), each against the full path and final segment.
func (c *Collector) excludedDir(relPath string) (bool, *pattern.Pattern) {
	if excluded, pat := c.Exclude.MatchesWithPattern(relPath); excluded {
		return true, pat
	}
	return c.Exclude.MatchesWithPattern(relPath + "/")
}

// insideExcludedDir reports whether any ancestor directory of relPath is
// excluded, so changed-files mode prunes the same directories a walk would.
func (c *Collector) insideExcludedDir(relPath string) bool {
	parts := strings.Split(relPath, "/")
	for i := 1; i < len(parts); i++ {
		dir := strings.Join(parts[:i], "/")
		if excluded, pat := c.excludedDir(dir); excluded {
			c.logger.Debug("Excluding file in excluded directory",
				zap.String("file", relPath),
				zap.String("directory", dir),
				zap.String("pattern", pat.Line))
			return true
		}
	}
	return false
}

// accept applies the exclude set first, then the include set.
func (c *Collector) accept(relPath string) bool {
	if excluded, pat := c.Exclude.MatchesWithPattern(relPath); excluded {
		c.logger.Debug("Excluding file", zap.String("file", relPath), zap.String("pattern", pat.Line))
		return false
	}
	if included, pat := c.Include.MatchesWithPattern(relPath); included {
		c.logger.Debug("Including file", zap.String("file", relPath), zap.String("pattern", pat.Line))
		return true
	}
	c.logger.Debug("File matches no include pattern", zap.String("file", relPath))
	return false
}

func newMatchedFile(root, relPath string) MatchedFile {
	return MatchedFile{
		Path:     filepath.Join(root, filepath.FromSlash(relPath)),
		Root:     root,
		RelPath:  relPath,
		Language: LanguageFor(relPath),
	}
}
