package domain

// DefaultTable returns the built-in fix table used when no .tsfix.yaml is
// present. Paths are relative to the project's src/ directory.
func DefaultTable() FixTable {
	return FixTable{Files: []FixEntry{
		{
			Path: "app/dashboard/admin/users/[id]/page.tsx",
			Fixes: []FixDescriptor{
				RemoveUnusedImport("User"),
				RemoveUnusedImport("GraduationCap"),
				RemoveUnusedImport("FileText"),
				RemoveUnusedImport("DollarSign"),
				RemoveUnusedImport("Edit"),
				BracketNotation("badges", "active"),
				OptionalChaining("badge", "color"),
				OptionalChaining("badge", "text"),
			},
		},
		{
			Path: "app/dashboard/applications/[id]/documents/page.tsx",
			Fixes: []FixDescriptor{
				RemoveUnusedImport("router"),
				BracketNotation("params", "id"),
				BracketNotation("badge", "pending"),
				OptionalChaining("badge", "color"),
				OptionalChaining("badge", "text"),
			},
		},
		{
			Path: "app/dashboard/applications/[id]/edit/page.tsx",
			Fixes: []FixDescriptor{
				RemoveUnusedImport("AlertCircle"),
				BracketNotation("params", "id"),
			},
		},
		{
			Path: "app/dashboard/applications/new/page.tsx",
			Fixes: []FixDescriptor{
				RemoveUnusedImport("AlertCircle"),
			},
		},
		{
			Path: "app/dashboard/layout.tsx",
			Fixes: []FixDescriptor{
				RemoveUnusedImport("router"),
			},
		},
	}}
}
