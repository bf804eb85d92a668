package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// FixKind identifies which rewrite a FixDescriptor performs.
type FixKind string

const (
	KindRemoveUnusedImport FixKind = "remove_unused_import"
	KindBracketNotation    FixKind = "bracket_notation"
	KindOptionalChaining   FixKind = "optional_chaining"
	KindRegexReplace       FixKind = "regex_replace"
)

// ValidKinds enumerates all recognized fix kinds.
var ValidKinds = []FixKind{
	KindRemoveUnusedImport,
	KindBracketNotation,
	KindOptionalChaining,
	KindRegexReplace,
}

func validKindList() string {
	names := make([]string, len(ValidKinds))
	for i, k := range ValidKinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// FixDescriptor is a single textual patch. Which fields are meaningful
// depends on Kind.
type FixDescriptor struct {
	Kind FixKind `yaml:"kind" json:"kind"`

	// remove_unused_import
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// bracket_notation
	Object string `yaml:"object,omitempty" json:"object,omitempty"`

	// optional_chaining
	Expression string `yaml:"expression,omitempty" json:"expression,omitempty"`

	// bracket_notation, optional_chaining
	Property string `yaml:"property,omitempty" json:"property,omitempty"`

	// regex_replace
	Pattern     string `yaml:"pattern,omitempty"     json:"pattern,omitempty"`
	Replacement string `yaml:"replacement,omitempty" json:"replacement,omitempty"`
}

func RemoveUnusedImport(name string) FixDescriptor {
	return FixDescriptor{Kind: KindRemoveUnusedImport, Name: name}
}

func BracketNotation(object, property string) FixDescriptor {
	return FixDescriptor{Kind: KindBracketNotation, Object: object, Property: property}
}

func OptionalChaining(expression, property string) FixDescriptor {
	return FixDescriptor{Kind: KindOptionalChaining, Expression: expression, Property: property}
}

func RegexReplace(pattern, replacement string) FixDescriptor {
	return FixDescriptor{Kind: KindRegexReplace, Pattern: pattern, Replacement: replacement}
}

// Label returns a short human-readable description, e.g. "badges.active -> badges['active']".
func (d FixDescriptor) Label() string {
	switch d.Kind {
	case KindRemoveUnusedImport:
		return fmt.Sprintf("remove import %s", d.Name)
	case KindBracketNotation:
		return fmt.Sprintf("%s.%s -> %s['%s']", d.Object, d.Property, d.Object, d.Property)
	case KindOptionalChaining:
		return fmt.Sprintf("%s.%s -> %s?.%s", d.Expression, d.Property, d.Expression, d.Property)
	case KindRegexReplace:
		return fmt.Sprintf("s/%s/%s/", d.Pattern, d.Replacement)
	default:
		return string(d.Kind)
	}
}

// Validate checks that the descriptor's kind is known and its required
// fields are set.
func (d FixDescriptor) Validate() error {
	switch d.Kind {
	case KindRemoveUnusedImport:
		if d.Name == "" {
			return fmt.Errorf("%s requires name", d.Kind)
		}
	case KindBracketNotation:
		if d.Object == "" || d.Property == "" {
			return fmt.Errorf("%s requires object and property", d.Kind)
		}
	case KindOptionalChaining:
		if d.Expression == "" || d.Property == "" {
			return fmt.Errorf("%s requires expression and property", d.Kind)
		}
	case KindRegexReplace:
		if d.Pattern == "" {
			return fmt.Errorf("%s requires pattern", d.Kind)
		}
		if _, err := regexp.Compile(d.Pattern); err != nil {
			return fmt.Errorf("%s pattern: %w", d.Kind, err)
		}
	case "":
		return fmt.Errorf("missing kind")
	default:
		return fmt.Errorf("unknown kind %q (valid: %s)", d.Kind, validKindList())
	}
	return nil
}

// FixEntry binds an ordered list of fixes to one file, relative to the
// source directory.
type FixEntry struct {
	Path  string          `yaml:"path"  json:"path"`
	Fixes []FixDescriptor `yaml:"fixes" json:"fixes"`
}

// FixTable is the ordered set of entries a run applies.
type FixTable struct {
	Files []FixEntry `yaml:"files" json:"files"`
}

// Validate checks every entry and descriptor and returns the first problem found.
func (t FixTable) Validate() error {
	for i, e := range t.Files {
		if e.Path == "" {
			return fmt.Errorf("files[%d]: missing path", i)
		}
		for j, d := range e.Fixes {
			if err := d.Validate(); err != nil {
				return fmt.Errorf("files[%d] (%s) fixes[%d]: %w", i, e.Path, j, err)
			}
		}
	}
	return nil
}

// Filter returns the entries whose path is in only, preserving order.
// An empty only keeps the whole table.
func (t FixTable) Filter(only []string) FixTable {
	if len(only) == 0 {
		return t
	}
	keep := make(map[string]bool, len(only))
	for _, p := range only {
		keep[p] = true
	}
	var out FixTable
	for _, e := range t.Files {
		if keep[e.Path] {
			out.Files = append(out.Files, e)
		}
	}
	return out
}

// FixOptions controls a single run.
type FixOptions struct {
	DryRun bool     `json:"dry_run"`
	Only   []string `json:"only,omitempty"`
}

// FileStatus is the outcome of processing one entry.
type FileStatus string

const (
	StatusModified    FileStatus = "modified"
	StatusWouldModify FileStatus = "would_modify"
	StatusUnchanged   FileStatus = "unchanged"
	StatusNotFound    FileStatus = "not_found"
)

// FileResult records what happened to one entry's file.
type FileResult struct {
	Path       string     `json:"path"`
	AbsPath    string     `json:"abs_path"`
	Status     FileStatus `json:"status"`
	Applied    int        `json:"applied"`
	Fixes      []string   `json:"fixes,omitempty"`
	HashBefore string     `json:"hash_before,omitempty"`
	HashAfter  string     `json:"hash_after,omitempty"`
	Diff       string     `json:"diff,omitempty"`
}

// FixReport summarizes a run.
type FixReport struct {
	BaseDir      string       `json:"base_dir"`
	DryRun       bool         `json:"dry_run"`
	CommitHash   string       `json:"commit_hash,omitempty"`
	DirtyTargets []string     `json:"dirty_targets,omitempty"`
	Files        []FileResult `json:"files"`
	Modified     int          `json:"modified"`
	Unchanged    int          `json:"unchanged"`
	NotFound     int          `json:"not_found"`
}

// Add appends a result and updates the counters.
func (r *FixReport) Add(res FileResult) {
	r.Files = append(r.Files, res)
	switch res.Status {
	case StatusModified, StatusWouldModify:
		r.Modified++
	case StatusNotFound:
		r.NotFound++
	default:
		r.Unchanged++
	}
}
