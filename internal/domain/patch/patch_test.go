package patch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsfix/tsfix/internal/domain"
	"github.com/tsfix/tsfix/internal/domain/patch"
)

func apply(t *testing.T, content string, d domain.FixDescriptor) (string, bool) {
	t.Helper()
	out, ok, err := patch.Apply(content, d)
	require.NoError(t, err)
	return out, ok
}

func TestRemoveUnusedImport_Leading(t *testing.T) {
	out, ok := apply(t, "import { User, Foo } from 'x'", domain.RemoveUnusedImport("User"))
	assert.True(t, ok)
	assert.Equal(t, "import { Foo } from 'x'", out)
}

func TestRemoveUnusedImport_TrailingBeforeBrace(t *testing.T) {
	out, ok := apply(t, "import { Foo, User } from 'x'", domain.RemoveUnusedImport("User"))
	assert.True(t, ok)
	assert.Equal(t, "import { Foo } from 'x'", out)
}

func TestRemoveUnusedImport_Interior(t *testing.T) {
	out, ok := apply(t, "import { Foo, User, Bar } from 'x'", domain.RemoveUnusedImport("User"))
	assert.True(t, ok)
	assert.Equal(t, "import { Foo, Bar } from 'x'", out)
}

func TestRemoveUnusedImport_AdjacentRepeats(t *testing.T) {
	out, ok := apply(t, "import { Foo, User, User } from 'x'", domain.RemoveUnusedImport("User"))
	assert.True(t, ok)
	assert.Equal(t, "import { Foo } from 'x'", out)

	again, ok := apply(t, out, domain.RemoveUnusedImport("User"))
	assert.False(t, ok)
	assert.Equal(t, out, again)
}

func TestRemoveUnusedImport_FollowerRequired(t *testing.T) {
	out, ok := apply(t, "f(a, id, id)", domain.RemoveUnusedImport("id"))
	assert.True(t, ok)
	assert.Equal(t, "f(a, id)", out)
}

func TestRemoveUnusedImport_Multiline(t *testing.T) {
	in := "import {\n  Foo,\n  Edit,\n  Bar\n} from 'lucide-react'"
	out, ok := apply(t, in, domain.RemoveUnusedImport("Edit"))
	assert.True(t, ok)
	assert.Equal(t, "import {\n  Foo,\n  Bar\n} from 'lucide-react'", out)
}

// Only the first candidate that matches is applied: once ", User }" matches
// the leading form must not also fire on "User, " elsewhere.
func TestRemoveUnusedImport_CandidatesAreExclusive(t *testing.T) {
	in := "import { Foo, User } from 'x'\nconst m = { User, Bar }"
	out, ok := apply(t, in, domain.RemoveUnusedImport("User"))
	assert.True(t, ok)
	assert.Equal(t, "import { Foo } from 'x'\nconst m = { User, Bar }", out)
}

func TestRemoveUnusedImport_SoleImportUntouched(t *testing.T) {
	in := "import { User } from 'x'"
	out, ok := apply(t, in, domain.RemoveUnusedImport("User"))
	assert.False(t, ok)
	assert.Equal(t, in, out)
}

func TestRemoveUnusedImport_NameIsLiteral(t *testing.T) {
	in := "import { A, B } from 'x'"
	out, ok := apply(t, in, domain.RemoveUnusedImport(".*"))
	assert.False(t, ok)
	assert.Equal(t, in, out)
}

func TestBracketNotation(t *testing.T) {
	in := "const a = badges.active;\nconst b = badges.active || badges.pending;"
	out, ok := apply(t, in, domain.BracketNotation("badges", "active"))
	assert.True(t, ok)
	assert.Contains(t, out, "badges['active']")
	assert.NotContains(t, out, "badges.active")
	assert.Contains(t, out, "badges.pending")
}

func TestBracketNotation_DotIsLiteral(t *testing.T) {
	in := "paramsXid"
	_, ok := apply(t, in, domain.BracketNotation("params", "id"))
	assert.False(t, ok)
}

func TestOptionalChaining(t *testing.T) {
	in := "<span className={badge.color}>{badge.text}</span>"
	out, ok := apply(t, in, domain.OptionalChaining("badge", "color"))
	assert.True(t, ok)
	assert.Equal(t, "<span className={badge?.color}>{badge.text}</span>", out)
}

func TestOptionalChaining_Idempotent(t *testing.T) {
	d := domain.OptionalChaining("badge", "color")
	once, ok := apply(t, "x = badge.color", d)
	require.True(t, ok)

	twice, ok := apply(t, once, d)
	assert.False(t, ok)
	assert.Equal(t, once, twice)
}

func TestRegexReplace_Expands(t *testing.T) {
	in := "const [loading, setLoading] = useState(false)"
	out, ok := apply(t, in, domain.RegexReplace(`\[(\w+), (\w+)\]`, "[_${1}, _${2}]"))
	assert.True(t, ok)
	assert.Equal(t, "const [_loading, _setLoading] = useState(false)", out)
}

func TestRegexReplace_BadPattern(t *testing.T) {
	_, _, err := patch.Apply("x", domain.RegexReplace(`(`, ""))
	assert.Error(t, err)
}

func TestApply_UnknownKind(t *testing.T) {
	_, _, err := patch.Apply("x", domain.FixDescriptor{Kind: "rename"})
	assert.Error(t, err)
}
