package splitter

// ParseToWords is the language-aware C5 pipeline (spec.md §4.5): it drives
// the same skipTokenOrWS primitive C1 uses, but every "other" token becomes
// its own entity and every run of non-"other" tokens (whitespace, comments,
// operators, keywords) rides along on the tail of whichever "other" entity
// precedes it. This is the mode the reducer uses for identifier-level
// minimization, where it wants one removable unit per word rather than per
// statement.
func ParseToWords(lx *Lexer) *Entity {
	root := &Entity{}
	for {
		k, span := lx.skipTokenOrWS()
		if k == KindEnd {
			break
		}
		if k == KindOther {
			root.Children = append(root.Children, &Entity{Head: span})
			continue
		}
		if len(root.Children) == 0 {
			root.Children = append(root.Children, &Entity{})
		}
		last := root.Children[len(root.Children)-1]
		last.Tail += span
	}
	return root
}

// ParseToWordsPlain is the plain C5 variant (spec.md §4.5): it slices raw
// text into (word, trailing-non-word) pairs without going through the
// lexer at all, for non-D files routed through the Words splitter rule.
func ParseToWordsPlain(s []byte) *Entity {
	root := &Entity{}
	i := 0
	for i < len(s) {
		start := i
		for i < len(s) && isWordByte(s[i]) {
			i++
		}
		head := string(s[start:i])

		tailStart := i
		for i < len(s) && !isWordByte(s[i]) {
			i++
		}
		tail := string(s[tailStart:i])

		if head == "" && tail == "" {
			break
		}
		root.Children = append(root.Children, &Entity{Head: head, Tail: tail})
	}
	return root
}
