package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsfix/tsfix/internal/adapters/outbound/tui"
	"github.com/tsfix/tsfix/internal/domain"
)

func sampleReport() *domain.FixReport {
	r := &domain.FixReport{
		BaseDir:      "/proj/src",
		CommitHash:   "0123456789abcdef0123456789abcdef01234567",
		DirtyTargets: []string{"app/dashboard/layout.tsx"},
	}
	r.Add(domain.FileResult{
		Path:    "app/dashboard/admin/users/[id]/page.tsx",
		Status:  domain.StatusModified,
		Applied: 2,
		Fixes:   []string{"remove import User", "badge.color -> badge?.color"},
		Diff:    "--- a/x\n+++ b/x\n-badge.color\n+badge?.color\n",
	})
	r.Add(domain.FileResult{Path: "app/dashboard/layout.tsx", Status: domain.StatusUnchanged})
	r.Add(domain.FileResult{Path: "app/missing.tsx", Status: domain.StatusNotFound})
	return r
}

func TestRenderReport_ContainsCounts(t *testing.T) {
	output := tui.RenderReport(sampleReport(), false)
	assert.Contains(t, output, "1 changed")
	assert.Contains(t, output, "1 unchanged")
	assert.Contains(t, output, "1 not found")
}

func TestRenderReport_ContainsFiles(t *testing.T) {
	output := tui.RenderReport(sampleReport(), false)
	assert.Contains(t, output, "app/dashboard/admin/users/[id]/page.tsx")
	assert.Contains(t, output, "(2 fixes)")
	assert.Contains(t, output, "remove import User")
	assert.Contains(t, output, "not_found")
}

func TestRenderReport_CommitAndDirtyTargets(t *testing.T) {
	output := tui.RenderReport(sampleReport(), false)
	assert.Contains(t, output, "0123456789ab")
	assert.NotContains(t, output, "0123456789abcdef0123")
	assert.Contains(t, output, "Uncommitted changes")
}

func TestRenderReport_DiffOnlyWhenRequested(t *testing.T) {
	assert.NotContains(t, tui.RenderReport(sampleReport(), false), "+badge?.color")
	assert.Contains(t, tui.RenderReport(sampleReport(), true), "+badge?.color")
}

func TestRenderReport_DryRun(t *testing.T) {
	output := tui.RenderReport(&domain.FixReport{DryRun: true}, false)
	assert.Contains(t, output, "Dry run")
	assert.Contains(t, output, "No files in fix table.")
}

func TestRenderTable(t *testing.T) {
	output := tui.RenderTable(domain.DefaultTable())
	assert.Contains(t, output, "5 files, 17 fixes")
	assert.Contains(t, output, "app/dashboard/layout.tsx")
	assert.Contains(t, output, "badges.active -> badges['active']")
	assert.Contains(t, output, "remove_unused_import")
}
