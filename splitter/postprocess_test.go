package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// walk collects every entity in the tree rooted at e for which pred returns
// true, depth first.
func walk(e *Entity, pred func(*Entity) bool, out *[]*Entity) {
	if e == nil {
		return
	}
	if pred(e) {
		*out = append(*out, e)
	}
	for _, c := range e.Children {
		walk(c, pred, out)
	}
	for _, d := range e.Dependencies {
		// dependency targets aren't owned children and are not walked here:
		// group() always keeps the tail entity in the tree too, so every
		// target is already reached as a child.
		_ = d
	}
}

func findAll(root *Entity, pred func(*Entity) bool) []*Entity {
	var out []*Entity
	walk(root, pred, &out)
	return out
}

func TestScenario2IfBraceIsPair(t *testing.T) {
	root := ParseScope(NewLexer([]byte("if(x){y;}")))
	PostProcess(root)

	require.Len(t, root.Children, 1)
	top := root.Children[0]
	assert.True(t, top.IsPair)
	require.Len(t, top.Children, 2)

	braceGroup := top.Children[1]
	assert.Equal(t, "{", braceGroup.Head)
	assert.Equal(t, "}", braceGroup.Tail)
	require.Len(t, braceGroup.Children, 1)
	assert.Equal(t, ";", braceGroup.Children[0].Tail)

	assert.Equal(t, "if(x){y;}", root.Reassemble())
}

func TestScenario3DependencyEdgeOnMultiply(t *testing.T) {
	root := ParseScope(NewLexer([]byte("a+b*c")))
	PostProcess(root)

	muls := findAll(root, func(e *Entity) bool { return e.HasToken && e.Token == KindMul })
	require.Len(t, muls, 1)
	require.Len(t, muls[0].Dependencies, 1)

	// the dependency target reassembles to "c": the right-hand operand of
	// the higher-priority '*'.
	assert.Equal(t, "c", muls[0].Dependencies[0].Reassemble())
	assert.Equal(t, "a+b*c", root.Reassemble())
}

func TestScenario5TryCatchFinallyCollapsesToOneEntity(t *testing.T) {
	src := "try{a;}catch(E e){b;}finally{c;}"
	root := ParseScope(NewLexer([]byte(src)))
	PostProcess(root)

	require.Len(t, root.Children, 1)
	assert.Equal(t, src, root.Reassemble())
}

func TestSimplifyDropsAndInlines(t *testing.T) {
	dropped := &Entity{}                       // synthetic, 0 children -> dropped
	keep := &Entity{HasToken: true, Head: "x"}  // not synthetic -> kept
	inlined := &Entity{Children: []*Entity{keep}} // synthetic, 1 child -> inlined to keep

	out := simplify([]*Entity{dropped, inlined})
	require.Len(t, out, 1)
	assert.Same(t, keep, out[0])
}

func TestVerifyAcyclicDetectsCycle(t *testing.T) {
	a := &Entity{HasToken: true, Token: KindAdd}
	b := &Entity{HasToken: true, Token: KindSub}
	a.Dependencies = []*Entity{b}
	b.Dependencies = []*Entity{a}
	root := &Entity{Children: []*Entity{a, b}}

	err := VerifyAcyclic(root)
	assert.ErrorIs(t, err, CycleError)
}

func TestVerifyAcyclicAcceptsDAG(t *testing.T) {
	root := ParseScope(NewLexer([]byte("a+b*c")))
	PostProcess(root)
	assert.NoError(t, VerifyAcyclic(root))
}
