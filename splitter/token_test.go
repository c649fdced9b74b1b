package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindTextNoDuplicates(t *testing.T) {
	seen := make(map[string]Kind)
	for k, text := range kindText {
		if other, ok := seen[text]; ok {
			t.Fatalf("text %q shared by Kind %v and %v", text, other, k)
		}
		seen[text] = k
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, SepPostfix, classify(KindSemicolon))
	assert.Equal(t, SepPair, classify(KindLBrace))
	assert.Equal(t, SepPair, classify(KindLParen))
	assert.Equal(t, SepPrefix, classify(KindImport))
	assert.Equal(t, SepPrefix, classify(KindIf))
	assert.Equal(t, SepPrefix, classify(KindElse))
	assert.Equal(t, SepBinary, classify(KindAdd))
	assert.Equal(t, SepNone, classify(KindOther))
}

func TestPrecedenceOfFirstOccurrenceWins(t *testing.T) {
	// '+' appears in the additive row (14) and the prefix/unary row (16);
	// the canonical row is the first (loosest) one.
	row, ok := precedenceOf(KindAdd)
	assert.True(t, ok)
	assert.Equal(t, 14, row)

	row, ok = precedenceOf(KindAnd)
	assert.True(t, ok)
	assert.Equal(t, 11, row)

	row, ok = precedenceOf(KindIncr)
	assert.True(t, ok)
	assert.Equal(t, 16, row)
}

func TestInKeywordIsPrefixNotBinary(t *testing.T) {
	assert.Equal(t, SepPrefix, classify(KindIn))
	row, ok := precedenceOf(KindIn)
	assert.True(t, ok)
	assert.Equal(t, 0, row)

	assert.Equal(t, SepBinary, classify(KindNotIn))
	row, ok = precedenceOf(KindNotIn)
	assert.True(t, ok)
	assert.Equal(t, 12, row)
}
