// Package inject rewrites HTML files in place to put icon images in front
// of navigation and capability link labels. Documents are treated as plain
// text and matched with the regular expressions of a RuleSet.
package inject

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/thesavant42/iconkit/internal/models"
)

// DefaultExcludes are base-name fragments of demo pages that are never rewritten
var DefaultExcludes = []string{"demo.html", "water-animations-demo.html"}

// Reporter receives per-file progress
type Reporter interface {
	Processing(path string)
	Result(r models.FileResult)
}

// Injector walks Root and applies Rules to every eligible HTML file
type Injector struct {
	Root       string
	IconURLDir string // icon directory relative to Root, URL form, trailing slash
	Rules      *RuleSet
	Excludes   []string
	Marker     string

	logger   *log.Logger
	reporter Reporter
}

// NewInjector creates an injector with the default excludes and marker
func NewInjector(root, iconURLDir string, rules *RuleSet, logger *log.Logger, reporter Reporter) *Injector {
	return &Injector{
		Root:       root,
		IconURLDir: iconURLDir,
		Rules:      rules,
		Excludes:   DefaultExcludes,
		Marker:     MarkerFor(iconURLDir),
		logger:     logger,
		reporter:   reporter,
	}
}

// MarkerFor returns the already-injected marker for an icon URL directory:
// its last path segment with a trailing slash.
func MarkerFor(iconURLDir string) string {
	dir := strings.TrimSuffix(iconURLDir, "/")
	if dir == "" || dir == "." {
		return DefaultMarker
	}
	return path.Base(dir) + "/"
}

// Discover returns every regular file under root ending in .html, in lexical
// order. Only an unreadable root is an error; unreadable entries below it
// are logged and left out.
func Discover(root string, logger *log.Logger) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			logger.Warn("skipping unreadable path", "path", p, "err", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".html") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return files, nil
}

// IsExcluded reports whether the file's base name matches one of the exclude fragments
func IsExcluded(p string, excludes []string) bool {
	base := filepath.Base(p)
	for _, ex := range excludes {
		if strings.Contains(base, ex) {
			return true
		}
	}
	return false
}

// RelativePrefix returns one "../" per directory level between root and p
func RelativePrefix(root, p string) (string, error) {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return "", fmt.Errorf("failed to relate %s to %s: %w", p, root, err)
	}
	depth := strings.Count(filepath.ToSlash(rel), "/")
	return strings.Repeat("../", depth), nil
}

// Run processes every discovered file. Per-file failures are reported and
// do not stop the run; only a failed directory walk is returned as an error.
func (in *Injector) Run() (models.Summary, error) {
	files, err := Discover(in.Root, in.logger)
	if err != nil {
		return models.Summary{}, err
	}
	return in.RunFiles(files), nil
}

// RunFiles processes an already discovered file list in order
func (in *Injector) RunFiles(files []string) models.Summary {
	summary := models.Summary{Discovered: len(files)}
	in.logger.Info("discovered html files", "root", in.Root, "count", len(files))

	for _, f := range files {
		var res models.FileResult
		if IsExcluded(f, in.Excludes) {
			res = models.FileResult{Path: f, Status: models.StatusSkipped}
			in.logger.Debug("excluded", "path", f)
		} else {
			if in.reporter != nil {
				in.reporter.Processing(f)
			}
			res = in.ProcessFile(f)
		}

		summary.Add(res)
		if in.reporter != nil {
			in.reporter.Result(res)
		}
	}
	return summary
}

// ProcessFile rewrites a single file and writes it back only if it changed
func (in *Injector) ProcessFile(p string) models.FileResult {
	res := models.FileResult{Path: p}

	prefix, err := RelativePrefix(in.Root, p)
	if err != nil {
		return in.fail(res, err)
	}

	info, err := os.Stat(p)
	if err != nil {
		return in.fail(res, fmt.Errorf("failed to stat: %w", err))
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return in.fail(res, fmt.Errorf("failed to read: %w", err))
	}

	content := string(data)
	updated, applied := in.Rules.Apply(content, prefix+in.IconURLDir, in.Marker)
	if updated == content {
		res.Status = models.StatusUnchanged
		return res
	}

	if err := os.WriteFile(p, []byte(updated), info.Mode().Perm()); err != nil {
		return in.fail(res, fmt.Errorf("failed to write: %w", err))
	}

	in.logger.Debug("rewrote file", "path", p, "rules", strings.Join(applied, ","))
	res.Status = models.StatusUpdated
	res.Applied = applied
	return res
}

func (in *Injector) fail(res models.FileResult, err error) models.FileResult {
	in.logger.Error("failed to process file", "path", res.Path, "err", err)
	res.Status = models.StatusErrored
	res.Err = err
	return res
}
