package output_test

import (
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/homelink/pkg/types"
	"github.com/arthur-debert/homelink/pkg/ui/output"
)

func init() {
	// Deterministic, colorless output for assertions.
	pterm.DisableColor()
}

func result(group, source, target string, status types.Status) types.Result {
	return types.Result{
		Operation: types.Operation{
			Entry:      types.Entry{Group: group},
			SourcePath: source,
			TargetPath: target,
		},
		Status: status,
	}
}

func TestRenderResult_ContainsGroupLabelAndTarget(t *testing.T) {
	line := output.RenderResult(result("shell", "/repo/config/shell", "/home/u/.zshrc", types.StatusCreated))

	assert.Contains(t, line, "[shell]")
	assert.Contains(t, line, "Created")
	assert.Contains(t, line, "/home/u/.zshrc")
}

func TestRenderResult_SourceMissingShowsSource(t *testing.T) {
	line := output.RenderResult(result("ghost", "/repo/config/ghost", "/home/u/.ghost", types.StatusSkippedSourceMissing))

	assert.Contains(t, line, "Skipped (source not found)")
	assert.Contains(t, line, "/repo/config/ghost")
}

func TestRenderResults_OneLinePerResult(t *testing.T) {
	var buf strings.Builder
	output.RenderResults(&buf, []types.Result{
		result("a", "/r/a", "/h/.a", types.StatusCreated),
		result("b", "/r/b", "/h/.b", types.StatusRemoved),
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
}

func TestStatusStyle_CoversEveryStatus(t *testing.T) {
	statuses := []types.Status{
		types.StatusAlreadyLinked,
		types.StatusCreated,
		types.StatusCreatedDryRun,
		types.StatusOverridden,
		types.StatusOverriddenDryRun,
		types.StatusSkippedSourceMissing,
		types.StatusSkippedForeignFile,
		types.StatusRemoved,
		types.StatusRemovedDryRun,
	}
	for _, status := range statuses {
		assert.NotNil(t, output.StatusStyle(status), "status %s", status)
	}
}
