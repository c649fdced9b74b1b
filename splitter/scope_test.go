package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScopeReassembleRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a;b;",
		"if(x){y;}",
		"a+b*c",
		"try{a;}catch(E e){b;}finally{c;}",
		"/+ a /+ b +/ c +/",
		`void foo(int x) { return x + 1; }`,
	}
	for _, src := range inputs {
		root := ParseScope(NewLexer([]byte(src)))
		assert.Equal(t, src, root.Reassemble(), "source: %q", src)
	}
}

func TestParseScopeEmptyInput(t *testing.T) {
	root := ParseScope(NewLexer([]byte("")))
	assert.Empty(t, root.Children)
}

func TestParseScopeScenario1TwoStatements(t *testing.T) {
	root := ParseScope(NewLexer([]byte("a;b;")))
	require.Len(t, root.Children, 2)
	// each ';' entity carries the operand it terminates as its only child
	require.Len(t, root.Children[0].Children, 1)
	assert.Equal(t, "a", root.Children[0].Children[0].Head)
	assert.Equal(t, ";", root.Children[0].Tail)
	require.Len(t, root.Children[1].Children, 1)
	assert.Equal(t, "b", root.Children[1].Children[0].Head)
	assert.Equal(t, ";", root.Children[1].Tail)
}

func TestParseScopeUnmatchedBraceCloserLeavesTailEmpty(t *testing.T) {
	root := &Entity{}
	lx := NewLexer([]byte("a; no closer here"))
	parseScopeInto(lx, root, KindRBrace, true)
	assert.Empty(t, root.Tail)
}

func TestPostProcessIdempotent(t *testing.T) {
	src := "if(x){y;}else{z;}"
	root := ParseScope(NewLexer([]byte(src)))
	PostProcess(root)
	first := root.Reassemble()

	PostProcess(root)
	assert.Equal(t, first, root.Reassemble())
	assert.Equal(t, src, first)
}
