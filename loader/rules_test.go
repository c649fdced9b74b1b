package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchRuleDefaults(t *testing.T) {
	kind, ok := matchRule("x.d", nil)
	assert.True(t, ok)
	assert.Equal(t, SplitD, kind)

	kind, ok = matchRule("x.di", nil)
	assert.True(t, ok)
	assert.Equal(t, SplitD, kind)

	kind, ok = matchRule("README", nil)
	assert.True(t, ok)
	assert.Equal(t, SplitFiles, kind)
}

func TestMatchRuleUserRulesWinOverDefaults(t *testing.T) {
	user := []Rule{{Glob: "*.d", Splitter: SplitWords}}
	kind, ok := matchRule("x.d", user)
	assert.True(t, ok)
	assert.Equal(t, SplitWords, kind)
}

func TestMatchRuleFallsBackToDefaultsWhenUserRulesDontMatch(t *testing.T) {
	user := []Rule{{Glob: "*.txt", Splitter: SplitWords}}
	kind, ok := matchRule("x.d", user)
	assert.True(t, ok)
	assert.Equal(t, SplitD, kind)
}
