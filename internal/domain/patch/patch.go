// Package patch applies fix descriptors to in-memory source text.
// Matching is purely textual; no grammar is parsed.
package patch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tsfix/tsfix/internal/domain"
)

// rule is one candidate substitution. When literal is true the
// replacement is inserted verbatim instead of being template-expanded.
// When follow is set, a match only counts if follow matches the text
// right after it; that text stays available to later matches.
type rule struct {
	re          *regexp.Regexp
	replacement string
	literal     bool
	follow      *regexp.Regexp
}

func (r rule) apply(content string) (string, bool) {
	if r.follow != nil {
		return r.applyFollowed(content)
	}
	if !r.re.MatchString(content) {
		return content, false
	}
	if r.literal {
		return r.re.ReplaceAllLiteralString(content, r.replacement), true
	}
	return r.re.ReplaceAllString(content, r.replacement), true
}

// applyFollowed scans left to right. A rejected match resumes the search
// one byte past its start, so a shorter hit inside it is still found.
func (r rule) applyFollowed(content string) (string, bool) {
	var b strings.Builder
	last, pos, matched := 0, 0, false
	for pos < len(content) {
		loc := r.re.FindStringIndex(content[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if end == start || !r.follow.MatchString(content[end:]) {
			pos = start + 1
			continue
		}
		b.WriteString(content[last:start])
		b.WriteString(r.replacement)
		last, pos, matched = end, end, true
	}
	if !matched {
		return content, false
	}
	b.WriteString(content[last:])
	return b.String(), true
}

// Apply runs d against content. It reports whether the descriptor matched
// at least once; on no match content is returned unchanged.
func Apply(content string, d domain.FixDescriptor) (string, bool, error) {
	rules, err := rulesFor(d)
	if err != nil {
		return content, false, err
	}
	// Candidates are exclusive: the first one that matches wins.
	for _, r := range rules {
		if out, ok := r.apply(content); ok {
			return out, true, nil
		}
	}
	return content, false, nil
}

func rulesFor(d domain.FixDescriptor) ([]rule, error) {
	switch d.Kind {
	case domain.KindRemoveUnusedImport:
		return importRules(d.Name), nil
	case domain.KindBracketNotation:
		return []rule{propertyRule(d.Object, d.Property, fmt.Sprintf("%s['%s']", d.Object, d.Property))}, nil
	case domain.KindOptionalChaining:
		return []rule{propertyRule(d.Expression, d.Property, d.Expression+"?."+d.Property)}, nil
	case domain.KindRegexReplace:
		re, err := regexp.Compile(d.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling pattern %q: %w", d.Pattern, err)
		}
		return []rule{{re: re, replacement: d.Replacement}}, nil
	default:
		return nil, fmt.Errorf("unknown fix kind %q", d.Kind)
	}
}

// propertyRule matches the dotted access target.prop literally.
func propertyRule(target, prop, replacement string) rule {
	return rule{
		re:          regexp.MustCompile(regexp.QuoteMeta(target) + `\.` + regexp.QuoteMeta(prop)),
		replacement: replacement,
		literal:     true,
	}
}
