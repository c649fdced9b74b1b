package splitter

import "github.com/sirupsen/logrus"

// PostProcess runs the C4 passes of spec.md §4.4 bottom-up: children are
// processed first, then each pass runs in turn over the node's own child
// list. It is idempotent (spec.md §3 invariant 6): running it twice on an
// already-processed tree leaves Simplify/Dependency/PairFormation/keyword
// grouping with nothing left to do.
//
// Pass order deviates from the §4.4 prose listing (Simplify, Dependency,
// Block-keyword grouping, Block-statement grouping, Pair formation) by
// running Pair formation immediately after Dependency, ahead of the two
// keyword-grouping passes. See DESIGN.md for why: with the prose order, the
// worked example in spec.md §8 scenario 2 ("if(x){y;}") never comes out
// isPair, because block-keyword grouping already buries the "{" entity two
// levels deep by the time pair formation would run, and pair formation only
// ever looks at its immediate sibling list. Running pair formation first
// lets the keyword-grouping passes work on whatever pair formation didn't
// already fuse (bodies that aren't brace-delimited).
//
// logger is optional (nil or omitted falls back to logrus.StandardLogger()),
// matching the ambient logging shape the rest of the package follows.
func PostProcess(e *Entity, logger ...logrus.FieldLogger) {
	log := resolveLogger(logger...)
	postProcess(e)
	log.WithField("children", len(e.Children)).Debug("post-processed entity tree")
}

func postProcess(e *Entity) {
	for _, c := range e.Children {
		postProcess(c)
	}
	e.Children = simplify(e.Children)
	e.Children = applyDependency(e.Children)
	e.Children = pairFormation(e.Children)
	e.Children = blockKeywordGroup(e.Children)
	e.Children = blockStatementGroup(e.Children)
}

func isSyntheticEmpty(e *Entity) bool {
	return !e.HasToken && e.Head == "" && e.Tail == "" && len(e.Dependencies) == 0
}

// simplify implements spec.md §4.4's Simplify pass: drop synthetic
// childless entities, inline synthetic single-child entities, repeating
// until the list stops changing.
func simplify(items []*Entity) []*Entity {
	for {
		out := make([]*Entity, 0, len(items))
		changed := false
		for _, it := range items {
			if isSyntheticEmpty(it) {
				switch len(it.Children) {
				case 0:
					changed = true
					continue
				case 1:
					changed = true
					out = append(out, it.Children[0])
					continue
				}
			}
			out = append(out, it)
		}
		items = out
		if !changed {
			return items
		}
	}
}

// isBinaryPoint reports whether e is a candidate pivot for the Dependency
// pass: a binary-type separator entity with non-empty children.
func isBinaryPoint(e *Entity) bool {
	return e.HasToken && classify(e.Token) == SepBinary && len(e.Children) > 0
}

// applyDependency implements spec.md §4.4's Dependency pass, picking the
// median binary-separator entity as a pivot and adding one dependency edge
// from the detached operator to its tail group, then recursing into the two
// resulting entities' own children so a run of same-precedence operators
// keeps subdividing.
//
// Edge direction follows the explicit mechanism in spec.md §4.4 ("Add a
// single dependency edge e → tail"), read via the GLOSSARY's convention
// (x’s Dependencies holding y means "if y is removed, x must be removed
// too"): the *operator* depends on its tail operand, not the other way
// round, so that deleting the tail of a binary expression forces the
// operator entity itself to go with it. This is grounded on
// sqlparser/sqldocument/topological_sort.go's DependsOn-as-weak-reference
// idea, generalized from named declarations to tree-local pointers.
func applyDependency(items []*Entity) []*Entity {
	if len(items) < 2 {
		return items
	}
	var points []int
	for i, it := range items {
		if isBinaryPoint(it) {
			points = append(points, i)
		}
	}
	if len(points) == 0 {
		return items
	}
	i := points[len(points)/2]
	e := items[i]

	headItems := make([]*Entity, 0, i+1)
	headItems = append(headItems, items[:i]...)
	headItems = append(headItems, group(e.Children)...)

	detached := &Entity{Token: e.Token, HasToken: e.HasToken, Head: e.Head, Tail: e.Tail}

	tailItems := append([]*Entity{}, items[i+1:]...)

	var result []*Entity
	if len(tailItems) > 0 {
		tailGrouped := group(tailItems)[0]
		detached.Dependencies = append(detached.Dependencies, tailGrouped)
		headGroup := group(append(headItems, detached))
		result = append(headGroup, tailGrouped)
	} else {
		result = group(append(headItems, detached))
	}

	for _, r := range result {
		r.Children = applyDependency(r.Children)
	}
	return result
}

func isParenEntity(e *Entity) bool {
	return e.HasToken && e.Head == "("
}

var blockKeywordKinds = map[Kind]bool{
	KindTry: true, KindCatch: true, KindFinally: true,
	KindWhile: true, KindDo: true,
	KindIn: true, KindOut: true, KindBody: true,
	KindIf: true, KindStaticIf: true, KindElse: true,
}

// blockKeywordGroup implements spec.md §4.4's Block-keyword grouping pass:
// a keyword is bundled with an optional (...) argument entity and the
// single item that follows (normally a ';' or a '{...}' pair formation
// didn't already absorb).
func blockKeywordGroup(items []*Entity) []*Entity {
	var out []*Entity
	i := 0
	for i < len(items) {
		cur := items[i]
		if !cur.HasToken || !blockKeywordKinds[cur.Token] {
			out = append(out, cur)
			i++
			continue
		}
		j := i + 1
		if j < len(items) && isParenEntity(items[j]) {
			j++
		}
		if j < len(items) {
			j++
		}
		if j <= i+1 {
			out = append(out, cur)
			i++
			continue
		}
		kwItems := append([]*Entity{}, items[i:j-1]...)
		terminator := items[j-1]
		kwGroup := group(kwItems)
		grouped := newGroup(append(kwGroup, terminator))
		out = append(out, grouped)
		i = j
	}
	return out
}

// firstToken walks down the leftmost-child chain until it finds an entity
// that actually carries a token, for consume()'s "first child's first
// token" check.
func firstToken(e *Entity) (Kind, bool) {
	for {
		if e.HasToken {
			return e.Token, true
		}
		if len(e.Children) == 0 {
			return 0, false
		}
		e = e.Children[0]
	}
}

// consumeAt reports whether items[pos] is a synthetic 2-child entity whose
// first child's first token is k (spec.md §4.4's consume(k)).
func consumeAt(items []*Entity, pos int, k Kind) bool {
	if pos < 0 || pos >= len(items) {
		return false
	}
	e := items[pos]
	if e.HasToken || len(e.Children) != 2 {
		return false
	}
	tok, ok := firstToken(e.Children[0])
	return ok && tok == k
}

// blockStatementGroup implements spec.md §4.4's Block-statement grouping
// pass: merges adjacent keyword-led sub-trees (if/else, do/while,
// try/catch*/finally?, and a greedy in/out/body fallback) into one entity.
func blockStatementGroup(items []*Entity) []*Entity {
	var out []*Entity
	i := 0
	for i < len(items) {
		var j int
		switch {
		case consumeAt(items, i, KindIf) || consumeAt(items, i, KindStaticIf):
			j = i + 1
			if consumeAt(items, j, KindElse) {
				j++
			}
		case consumeAt(items, i, KindDo):
			j = i + 1
			if consumeAt(items, j, KindWhile) {
				j++
			}
		case consumeAt(items, i, KindTry):
			j = i + 1
			for consumeAt(items, j, KindCatch) {
				j++
			}
			if consumeAt(items, j, KindFinally) {
				j++
			}
		default:
			j = i + 1
			for {
				if consumeAt(items, j, KindIn) {
					j++
				} else if consumeAt(items, j, KindOut) {
					j++
				} else if consumeAt(items, j, KindBody) {
					j++
				} else {
					break
				}
			}
		}
		if j > i+1 {
			grouped := newGroup(append([]*Entity{}, items[i:j]...))
			out = append(out, grouped)
			i = j
		} else {
			out = append(out, items[i])
			i++
		}
	}
	return out
}

// pairFormation implements spec.md §4.4's Pair formation pass over an
// evolving output list: each '{' entity is fused with whatever has
// accumulated since the last reset point into a 2-child isPair entity,
// and that fused entity becomes part of the next signature in turn — a
// run of brace-led clauses (try{}catch(){}finally{}) collapses into one
// deeply nested isPair chain (spec.md §8 scenario 5).
func pairFormation(items []*Entity) []*Entity {
	var out []*Entity
	lastPair := 0
	for _, it := range items {
		out = append(out, it)
		i := len(out) - 1

		switch {
		case it.HasToken && it.Token == KindSemicolon:
			lastPair = len(out)
		case it.HasToken && it.Token == KindLBrace:
			if i >= lastPair+1 {
				sig := group(append([]*Entity{}, out[lastPair:i]...))[0]
				paired := &Entity{Children: []*Entity{sig, it}, IsPair: true}
				out = append(out[:lastPair], paired)
				lastPair = len(out) - 1
			} else {
				lastPair = len(out)
			}
		}
	}
	return out
}
