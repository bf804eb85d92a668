package patch

import "regexp"

// listFollower is what must come right after a removed ", Name": another
// member or the closing brace. It is checked, never consumed, so adjacent
// removable members each get their own match.
var listFollower = regexp.MustCompile(`^\s*[,}]`)

// importRules lists the comma-boundary forms an unused import name can
// take inside an import list, most specific first.
//
// A name that is the only member of its list has no comma on either side
// and is deliberately not matched.
func importRules(name string) []rule {
	q := regexp.QuoteMeta(name)
	return []rule{
		// ", Name" followed by another member or the closing brace.
		{re: regexp.MustCompile(`,\s*` + q), replacement: "", literal: true, follow: listFollower},
		// "Name, " at the head of a list.
		{re: regexp.MustCompile(q + `\s*,\s*`), replacement: "", literal: true},
	}
}
