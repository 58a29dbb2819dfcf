package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/homelink/pkg/types"
)

func TestLabelRequirement_Matches(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		active []string
		want   bool
	}{
		{
			name:   "single label present",
			labels: []string{"work"},
			active: []string{"work", "laptop"},
			want:   true,
		},
		{
			name:   "single label absent",
			labels: []string{"work"},
			active: []string{"home"},
			want:   false,
		},
		{
			name:   "or requirement satisfied by second alternative",
			labels: []string{"a", "b"},
			active: []string{"b"},
			want:   true,
		},
		{
			name:   "or requirement unsatisfied",
			labels: []string{"a", "b"},
			active: []string{"c"},
			want:   false,
		},
		{
			name:   "empty active set",
			labels: []string{"work"},
			active: nil,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := types.LabelRequirement{Labels: tt.labels}
			assert.Equal(t, tt.want, req.Matches(tt.active))
		})
	}
}

func TestEntry_MatchesLabels(t *testing.T) {
	// Requirements [["a","b"], "c"]: (a OR b) AND c.
	entry := types.Entry{
		Group: "example",
		Requirements: []types.LabelRequirement{
			{Labels: []string{"a", "b"}},
			{Labels: []string{"c"}},
		},
	}

	assert.True(t, entry.MatchesLabels([]string{"b", "c"}))
	assert.False(t, entry.MatchesLabels([]string{"b"}), "c missing")
	assert.False(t, entry.MatchesLabels([]string{"c"}), "neither a nor b present")
	assert.True(t, entry.MatchesLabels([]string{"a", "c", "extra"}))
}

func TestEntry_MatchesLabels_NoRequirements(t *testing.T) {
	entry := types.Entry{Group: "shell"}

	assert.True(t, entry.MatchesLabels(nil))
	assert.True(t, entry.MatchesLabels([]string{"anything"}))
}
