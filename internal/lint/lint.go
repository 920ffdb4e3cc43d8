package lint

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type Issue struct {
	Path     string
	Severity Severity
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%-7s [%s] %s", i.Severity, i.Path, i.Message)
}

// Report collects the outcome of a lint run.
type Report struct {
	Checked int
	Counts  map[string]int // files per kind, e.g. "html"
	Issues  []Issue
}

func (r *Report) Errors() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n
}

func (r *Report) Warnings() int {
	return len(r.Issues) - r.Errors()
}

// finding is one problem a rule reports before it is tied to a path.
type finding struct {
	severity Severity
	message  string
}

func errorf(format string, args ...any) finding {
	return finding{SeverityError, fmt.Sprintf(format, args...)}
}

func warnf(format string, args ...any) finding {
	return finding{SeverityWarning, fmt.Sprintf(format, args...)}
}

// checkFunc inspects one file; name is slash-separated from the project root.
type checkFunc func(name string, content []byte) []finding

type target struct {
	kind    string
	dir     string
	pattern string
	check   checkFunc
}

var targets = []target{
	{"html", "src", "**/*.html", checkHTML},
	{"js", "src", "**/*.js", checkJS},
	{"js", "scripts", "**/*.js", checkJS},
	{"yaml", ".github", "**/*.{yml,yaml}", checkYAML},
	{"json", "data", "**/*.json", checkJSON},
	{"css", "src", "**/*.css", checkCSS},
}

// skipDirs are never descended into below a target directory.
var skipDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"coverage":     true,
}

type Linter struct {
	root string
}

func New(root string) *Linter {
	return &Linter{root: root}
}

// Run lints every target under the project root.
func (l *Linter) Run() (*Report, error) {
	report := &Report{Counts: map[string]int{}}

	for _, t := range targets {
		files, err := l.find(t.dir, t.pattern)
		if err != nil {
			return nil, err
		}
		report.Counts[t.kind] += len(files)

		for _, file := range files {
			content, err := os.ReadFile(filepath.Join(l.root, t.dir, filepath.FromSlash(file)))
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", file, err)
			}
			report.Checked++

			rel := path.Join(filepath.ToSlash(t.dir), file)
			for _, f := range t.check(rel, content) {
				report.Issues = append(report.Issues, Issue{Path: rel, Severity: f.severity, Message: f.message})
			}
		}
	}

	slog.Debug("lint finished", "checked", report.Checked, "errors", report.Errors(), "warnings", report.Warnings())
	return report, nil
}

// find globs dir for pattern, dropping anything below hidden or generated directories.
func (l *Linter) find(dir, pattern string) ([]string, error) {
	base := filepath.Join(l.root, dir)
	info, err := os.Stat(base)
	if os.IsNotExist(err) || (err == nil && !info.IsDir()) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.Glob(os.DirFS(base), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to glob %s in %s: %w", pattern, dir, err)
	}

	files := matches[:0]
	for _, m := range matches {
		if !skipped(m) {
			files = append(files, m)
		}
	}
	return files, nil
}

func skipped(name string) bool {
	parts := strings.Split(name, "/")
	for _, dir := range parts[:len(parts)-1] {
		if strings.HasPrefix(dir, ".") || skipDirs[dir] {
			return true
		}
	}
	return false
}
