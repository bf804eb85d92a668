package application

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tsfix/tsfix/internal/domain"
	"github.com/tsfix/tsfix/internal/domain/patch"
	"github.com/tsfix/tsfix/internal/log"
)

// FixService runs a fix table against a source tree:
// read file → apply descriptors in order → write if anything matched.
type FixService struct {
	files  domain.Workspace
	git    domain.GitInfo
	differ domain.Differ
	out    io.Writer
}

// NewFixService wires the service. git and differ may be nil; progress
// lines are written to out, or dropped when out is nil.
func NewFixService(files domain.Workspace, git domain.GitInfo, differ domain.Differ, out io.Writer) *FixService {
	if out == nil {
		out = io.Discard
	}
	return &FixService{files: files, git: git, differ: differ, out: out}
}

// ApplyFixes processes every entry of table under baseDir, one file at a
// time. Missing files are reported and skipped; any other I/O error stops
// the run.
func (s *FixService) ApplyFixes(baseDir string, table domain.FixTable, opts domain.FixOptions) (*domain.FixReport, error) {
	warnUnknownPaths(table, opts.Only)
	table = table.Filter(opts.Only)
	report := &domain.FixReport{BaseDir: baseDir, DryRun: opts.DryRun}

	s.inspectRepo(baseDir, table, report)

	for _, entry := range table.Files {
		res, err := s.applyEntry(baseDir, entry, opts)
		if err != nil {
			return nil, err
		}
		report.Add(res)
	}

	if opts.DryRun {
		fmt.Fprintf(s.out, "\nDry run: %d files would change.\n", report.Modified)
	} else {
		fmt.Fprintln(s.out, "\nAll fixes applied!")
	}
	return report, nil
}

func (s *FixService) applyEntry(baseDir string, entry domain.FixEntry, opts domain.FixOptions) (domain.FileResult, error) {
	logger := log.Component("patcher").With("file", entry.Path)
	abs := filepath.Join(baseDir, entry.Path)
	res := domain.FileResult{Path: entry.Path, AbsPath: abs}

	data, err := s.files.ReadFile(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(s.out, "File not found: %s\n", abs)
			res.Status = domain.StatusNotFound
			return res, nil
		}
		return res, fmt.Errorf("reading %s: %w", entry.Path, err)
	}

	original := string(data)
	content := original
	res.HashBefore = s.files.Hash(data)

	for _, d := range entry.Fixes {
		next, matched, err := patch.Apply(content, d)
		if err != nil {
			return res, fmt.Errorf("%s: %s: %w", entry.Path, d.Label(), err)
		}
		if !matched {
			logger.Debug("no match", "fix", d.Label())
			continue
		}
		logger.Debug("fix applied", "fix", d.Label())
		content = next
		res.Applied++
		res.Fixes = append(res.Fixes, d.Label())
	}

	if res.Applied == 0 {
		res.Status = domain.StatusUnchanged
		res.HashAfter = res.HashBefore
		logger.Info("unchanged")
		return res, nil
	}

	res.HashAfter = s.files.Hash([]byte(content))

	if opts.DryRun {
		res.Status = domain.StatusWouldModify
		if s.differ != nil {
			d, err := s.differ.Diff(entry.Path, original, content)
			if err != nil {
				return res, fmt.Errorf("diffing %s: %w", entry.Path, err)
			}
			res.Diff = d
		}
		fmt.Fprintf(s.out, "Would apply %d fixes to %s\n", res.Applied, abs)
		return res, nil
	}

	if err := s.files.WriteFile(abs, []byte(content)); err != nil {
		return res, fmt.Errorf("writing %s: %w", entry.Path, err)
	}
	res.Status = domain.StatusModified
	fmt.Fprintf(s.out, "Applied %d fixes to %s\n", res.Applied, abs)
	logger.Info("written", "applied", res.Applied)
	return res, nil
}

// warnUnknownPaths logs each requested path that no table entry carries.
func warnUnknownPaths(table domain.FixTable, only []string) {
	known := make(map[string]bool, len(table.Files))
	for _, e := range table.Files {
		known[e.Path] = true
	}
	for _, p := range only {
		if !known[p] {
			log.Warn("unknown --only path", "path", p)
		}
	}
}

// inspectRepo records the commit and any targets that already carry
// uncommitted changes. Git problems never fail the run.
func (s *FixService) inspectRepo(baseDir string, table domain.FixTable, report *domain.FixReport) {
	if s.git == nil || !s.git.IsGitRepo(baseDir) {
		return
	}

	if hash, err := s.git.CommitHash(baseDir); err == nil {
		report.CommitHash = hash
	}

	byAbs := make(map[string]string, len(table.Files))
	paths := make([]string, 0, len(table.Files))
	for _, e := range table.Files {
		abs := filepath.Join(baseDir, e.Path)
		byAbs[abs] = e.Path
		paths = append(paths, abs)
	}

	dirty, err := s.git.DirtyFiles(baseDir, paths)
	if err != nil {
		log.Warn("git status unavailable", "err", err)
		return
	}
	for _, p := range dirty {
		report.DirtyTargets = append(report.DirtyTargets, byAbs[p])
	}
}
