package main_test

import (
	"encoding/json"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsfix/tsfix/internal/domain"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "tsfix-e2e")
	if err != nil {
		panic(err)
	}

	binaryPath = filepath.Join(dir, "tsfix")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// project copies the frontend fixture into a temp project root.
func project(t *testing.T) string {
	t.Helper()
	src, err := filepath.Abs("../../testdata/frontend/src")
	require.NoError(t, err)

	root := t.TempDir()
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(src, path)
		target := filepath.Join(root, "src", rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0644)
	})
	require.NoError(t, err)
	return root
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

func TestE2E_Apply(t *testing.T) {
	root := project(t)

	out, code := run(t, "apply", root)
	assert.Equal(t, 0, code, out)
	assert.Contains(t, out, "Applied 8 fixes to ")
	assert.Contains(t, out, "File not found: ")
	assert.Contains(t, out, "All fixes applied!")
}

func TestE2E_ApplyTwiceIsIdempotent(t *testing.T) {
	root := project(t)

	_, code := run(t, "apply", root, "--quiet")
	require.Equal(t, 0, code)

	out, code := run(t, "apply", root, "--json")
	assert.Equal(t, 0, code)

	var report domain.FixReport
	require.NoError(t, json.Unmarshal([]byte(out), &report), out)
	assert.Equal(t, 0, report.Modified)
	assert.Equal(t, 4, report.Unchanged)
	assert.Equal(t, 1, report.NotFound)
}

func TestE2E_InvalidConfigExitsNonZero(t *testing.T) {
	root := project(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".tsfix.yaml"), []byte("{{{"), 0644))

	out, code := run(t, "apply", root)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "parsing .tsfix.yaml")
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "tsfix")
}
