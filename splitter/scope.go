package splitter

import "github.com/sirupsen/logrus"

// scopeParser holds the priority-layer queues parseScope flushes as it
// walks the token stream (spec.md §4.3, C3). It is grounded on the
// teacher's Batch.Parse main loop (sqlparser/batch.go) — a single flat loop
// switching on token type — generalized from a per-keyword handler map to
// a precedence-indexed array of level queues, since splits here are keyed
// by operator priority rather than by which reserved word was seen.
type scopeParser struct {
	lx     *Lexer
	queues [][]*Entity // index 0..levelText; levelZero is a virtual caller-side level
}

func newScopeParser(lx *Lexer) *scopeParser {
	return &scopeParser{lx: lx, queues: make([][]*Entity, levelText+1)}
}

// terminateLevel recursively flushes every queue finer-grained than L,
// grouping each as it goes (spec.md §4.3): "terminateLevel(L) returns
// queue[L+1] ++ group(terminateLevel(L+1)) and clears queue[L+1]."
func (p *scopeParser) terminateLevel(l int) []*Entity {
	next := l + 1
	if next >= len(p.queues) {
		return nil
	}
	deeper := group(p.terminateLevel(next))
	result := append(p.queues[next], deeper...)
	p.queues[next] = nil
	return result
}

func (p *scopeParser) enqueue(level int, e *Entity) {
	p.queues[level] = append(p.queues[level], e)
}

// step implements spec.md §4.3's "per-token action".
func (p *scopeParser) step(t Kind, span string) {
	e := &Entity{Token: t, HasToken: true}
	level := levelText
	if row, ok := precedenceOf(t); ok {
		level = row
		e.Children = p.terminateLevel(row)
	}

	var after *Entity
	switch classify(t) {
	case SepPrefix, SepPair:
		if len(e.Children) > 0 {
			container := &Entity{Children: e.Children}
			after = &Entity{Token: t, HasToken: true, Head: span}
			if pairKinds[t] {
				parseScopeInto(p.lx, after, matchingCloser[t], true)
			}
			e = container
		} else {
			e.Head = span
			if pairKinds[t] {
				parseScopeInto(p.lx, e, matchingCloser[t], true)
			}
		}
	case SepPostfix, SepBinary:
		e.Tail = span
	default:
		e.Head = span
	}

	p.enqueue(level, e)
	if after != nil {
		p.enqueue(level, after)
	}
}

// ParseScope is the C3 entry point: parse lx's remaining input as a single
// top-level scope (no closing token expected; runs to EOF). logger is
// optional (nil or omitted falls back to logrus.StandardLogger()).
func ParseScope(lx *Lexer, logger ...logrus.FieldLogger) *Entity {
	log := resolveLogger(logger...)
	root := &Entity{}
	parseScopeInto(lx, root, 0, false)
	log.WithField("children", len(root.Children)).Debug("parsed scope")
	return root
}

// parseScopeInto builds entity's Children (and, if hasScopeEnd, its Tail)
// from lx starting at the current cursor position. Reaching EOF before
// scopeEnd is not an error (spec.md §7): Tail is simply left empty.
func parseScopeInto(lx *Lexer, entity *Entity, scopeEnd Kind, hasScopeEnd bool) {
	p := newScopeParser(lx)
	for {
		k, span := lx.ReadToken()
		if k == KindEnd {
			// Trailing whitespace/comments before EOF become a plain text
			// entity so that the scope still reassembles to its source.
			if span != "" {
				p.enqueue(levelText, newText(span))
			}
			entity.Children = p.terminateLevel(levelZero)
			return
		}
		if hasScopeEnd && k == scopeEnd {
			entity.Tail = span
			entity.Children = p.terminateLevel(levelZero)
			return
		}
		p.step(k, span)
	}
}
