package domain

// TableLoader resolves the fix table for a project.
type TableLoader interface {
	Load(projectPath, explicitPath string) (FixTable, error)
}

// Workspace reads and writes the files a fix table targets.
type Workspace interface {
	// ReadFile returns the file's content. Missing files yield an error
	// satisfying errors.Is(err, os.ErrNotExist).
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces the file's content, keeping its permissions.
	WriteFile(path string, data []byte) error
	// Hash returns a stable content fingerprint.
	Hash(data []byte) string
}

// GitInfo provides repository details for the project being patched.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
	DirtyFiles(projectPath string, paths []string) ([]string, error)
}

// Differ renders the difference between two versions of a file.
type Differ interface {
	Diff(name, before, after string) (string, error)
}
