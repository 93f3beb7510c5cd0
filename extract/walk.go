package extract

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"cdox/types"
)

// defaultIgnoreDirs returns the default list of directories to ignore.
func defaultIgnoreDirs() map[string]struct{} {
	return map[string]struct{}{
		".git":         {},
		".hg":          {},
		".svn":         {},
		".jj":          {},
		"node_modules": {},
		"vendor":       {},
		"dist":         {},
		"build":        {},
		"target":       {},
		".venv":        {},
		"__pycache__":  {},
		".cache":       {},
		"coverage":     {},
	}
}

// walkConfig holds file-discovery configuration.
type walkConfig struct {
	root       string
	extensions []string
	ignoreDirs map[string]struct{}
	maxBytes   int64
}

// walker discovers files for processing. Besides the ignore-dir set it
// honors a .gitignore at the walk root, if present.
type walker struct {
	cfg       walkConfig
	gitignore *ignore.GitIgnore
}

// newWalker creates a new walker with the given configuration.
func newWalker(cfg walkConfig) *walker {
	if cfg.ignoreDirs == nil {
		cfg.ignoreDirs = defaultIgnoreDirs()
	}
	w := &walker{cfg: cfg}
	if cfg.root != "" {
		if gi, err := ignore.CompileIgnoreFile(filepath.Join(cfg.root, ".gitignore")); err == nil {
			w.gitignore = gi
		}
	}
	return w
}

// collect finds all matching files and returns them as FileJobs.
func (w *walker) collect() ([]types.FileJob, error) {
	absRoot, err := filepath.Abs(w.cfg.root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	var jobs []types.FileJob
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path == absRoot {
				return nil
			}
			if w.shouldIgnoreDir(d.Name()) {
				return filepath.SkipDir
			}
			if w.gitignore != nil && w.gitignore.MatchesPath(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if !w.isSupportedFile(d.Name()) {
			return nil
		}
		if w.gitignore != nil && w.gitignore.MatchesPath(rel) {
			return nil
		}

		if w.cfg.maxBytes > 0 {
			info, err := d.Info()
			if err != nil {
				// Skip files we can't stat
				return nil
			}
			if info.Size() > w.cfg.maxBytes {
				return nil
			}
		}

		jobs = append(jobs, types.FileJob{
			AbsPath:     path,
			DisplayPath: rel,
		})
		return nil
	})

	if err != nil {
		return nil, err
	}

	return jobs, nil
}

// collectSingle returns a single file as a FileJob.
func (w *walker) collectSingle(filePath string) (types.FileJob, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return types.FileJob{}, fmt.Errorf("resolve path: %w", err)
	}

	return types.FileJob{
		AbsPath:     absPath,
		DisplayPath: filepath.Base(absPath),
	}, nil
}

func (w *walker) shouldIgnoreDir(name string) bool {
	_, ok := w.cfg.ignoreDirs[name]
	return ok
}

func (w *walker) isSupportedFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, e := range w.cfg.extensions {
		if ext == e {
			return true
		}
	}
	return false
}
