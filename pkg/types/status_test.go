package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/homelink/pkg/types"
)

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "Exists", types.StatusAlreadyLinked.Label())
	assert.Equal(t, "Created", types.StatusCreated.Label())
	assert.Equal(t, "Created (dry-run)", types.StatusCreatedDryRun.Label())
	assert.Equal(t, "Skipped (not a symlink)", types.StatusSkippedForeignFile.Label())
	assert.Equal(t, "Removed (dry-run)", types.StatusRemovedDryRun.Label())
}

func TestStatus_Normalize(t *testing.T) {
	assert.Equal(t, types.StatusCreated, types.StatusCreatedDryRun.Normalize())
	assert.Equal(t, types.StatusOverridden, types.StatusOverriddenDryRun.Normalize())
	assert.Equal(t, types.StatusRemoved, types.StatusRemovedDryRun.Normalize())
	assert.Equal(t, types.StatusAlreadyLinked, types.StatusAlreadyLinked.Normalize())
}

func TestStatus_Success(t *testing.T) {
	assert.True(t, types.StatusCreated.Success())
	assert.True(t, types.StatusCreatedDryRun.Success())
	assert.True(t, types.StatusAlreadyLinked.Success())
	assert.True(t, types.StatusOverridden.Success())
	assert.False(t, types.StatusSkippedSourceMissing.Success())
	assert.False(t, types.StatusSkippedForeignFile.Success())
	assert.False(t, types.StatusRemoved.Success())
}
