package splitter

import "sort"

// Lexer is a single cursor over an immutable byte buffer, grounded on the
// teacher's Scanner (sqlparser/scanner.go): no grammar, just a cursor that
// advances past exactly one token per call. Unlike the teacher, which
// throws an exception to unwind at end of input (a pattern spec.md §9
// explicitly asks us not to carry over), EOF here is a returned Kind —
// KindEnd — that every caller can check like any other token.
//
// The lexer operates on raw bytes throughout (spec.md §9 "Non-UTF8-decoding
// string ops"): no rune decoding, no unicode package, byte-indexed slicing
// only.
type Lexer struct {
	s []byte
	i int
}

// NewLexer returns a fresh Lexer positioned at the start of s. Each parse
// uses its own instance; there is no shared or global cursor state (spec.md
// §9 "Global/static state").
func NewLexer(s []byte) *Lexer {
	return &Lexer{s: s}
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// operatorEntry is one row of the compile-time operator/keyword table
// (spec.md §9 "Token table as compile-time data").
type operatorEntry struct {
	text string
	kind Kind
}

var operatorTable = buildOperatorTable()

// buildOperatorTable sorts entries by descending text length so the
// longest-match scan in skipOperator can try candidates in priority order
// (spec.md §4.1 "longest-match ... on a tie, longer wins" — with distinct
// lengths there are no true ties, so a length-descending scan already
// implements the rule).
func buildOperatorTable() []operatorEntry {
	var entries []operatorEntry
	for k, t := range kindText {
		entries = append(entries, operatorEntry{t, k})
	}
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].text) != len(entries[j].text) {
			return len(entries[i].text) > len(entries[j].text)
		}
		return entries[i].text < entries[j].text
	})
	return entries
}

func isKeywordLike(text string) bool {
	return isWordByte(text[len(text)-1])
}

// skipOperator tries the longest-match operator/keyword table at position i,
// honouring the word-boundary constraint on keyword-like entries. Returns
// ok=false if nothing in the table matches at i.
func (l *Lexer) skipOperator() (Kind, int, bool) {
	for _, e := range operatorTable {
		n := len(e.text)
		if l.i+n > len(l.s) {
			continue
		}
		if string(l.s[l.i:l.i+n]) != e.text {
			continue
		}
		if isKeywordLike(e.text) {
			if l.i+n < len(l.s) && isWordByte(l.s[l.i+n]) {
				continue // not at a word boundary, not a real match
			}
		}
		return e.kind, n, true
	}
	return 0, 0, false
}

// skipTokenOrWS advances i past exactly one token and returns its kind and
// the verbatim span consumed (spec.md §4.1). It never fails: at EOF it
// returns KindEnd with an empty span, repeatably.
func (l *Lexer) skipTokenOrWS() (Kind, string) {
	start := l.i
	if l.i >= len(l.s) {
		return KindEnd, ""
	}

	b := l.s[l.i]

	switch {
	case b == '\'':
		l.i++
		l.scanCharLiteral()
		return KindOther, string(l.s[start:l.i])

	case b == '\\' && start == 0:
		l.i++
		if l.i < len(l.s) {
			l.i++
		}
		return KindOther, string(l.s[start:l.i])

	case b == '"':
		l.i++
		l.scanDoubleQuoted()
		return KindOther, string(l.s[start:l.i])

	case b == 'r' && l.i+1 < len(l.s) && l.s[l.i+1] == '"':
		l.i += 2
		l.scanUntilByte('"', false)
		return KindOther, string(l.s[start:l.i])

	case b == '`':
		l.i++
		l.scanUntilByte('`', false)
		return KindOther, string(l.s[start:l.i])

	case b == '/' && l.i+1 < len(l.s) && l.s[l.i+1] == '/':
		l.i += 2
		for l.i < len(l.s) && l.s[l.i] != '\n' {
			l.i++
		}
		return KindComment, string(l.s[start:l.i])

	case b == '/' && l.i+1 < len(l.s) && l.s[l.i+1] == '*':
		l.i += 2
		if !l.scanBlockComment() {
			return KindOther, string(l.s[start:l.i])
		}
		return KindComment, string(l.s[start:l.i])

	case b == '/' && l.i+1 < len(l.s) && l.s[l.i+1] == '+':
		l.i += 2
		if !l.scanNestedComment() {
			return KindOther, string(l.s[start:l.i])
		}
		return KindComment, string(l.s[start:l.i])

	case b == '@' && l.matchAttribute():
		return KindOther, string(l.s[start:l.i])

	case b == '#':
		l.i++
		l.scanPreprocessorLine()
		return KindOther, string(l.s[start:l.i])
	}

	if k, n, ok := l.skipOperator(); ok {
		l.i += n
		return k, string(l.s[start:l.i])
	}

	if isSpaceByte(b) {
		for l.i < len(l.s) && isSpaceByte(l.s[l.i]) {
			l.i++
		}
		return KindWhitespace, string(l.s[start:l.i])
	}

	if isWordByte(b) {
		for l.i < len(l.s) && isWordByte(l.s[l.i]) {
			l.i++
		}
		return KindOther, string(l.s[start:l.i])
	}

	l.i++
	return KindOther, string(l.s[start:l.i])
}

var attributeNames = []string{"@disable", "@property", "@safe", "@trusted", "@system"}

func (l *Lexer) matchAttribute() bool {
	for _, a := range attributeNames {
		n := len(a)
		if l.i+n <= len(l.s) && string(l.s[l.i:l.i+n]) == a {
			if l.i+n < len(l.s) && isWordByte(l.s[l.i+n]) {
				continue
			}
			l.i += n
			return true
		}
	}
	return false
}

// scanCharLiteral assumes the opening ' has been consumed.
func (l *Lexer) scanCharLiteral() {
	if l.i < len(l.s) && l.s[l.i] == '\\' {
		l.i++
	}
	for l.i < len(l.s) {
		if l.s[l.i] == '\'' {
			l.i++
			return
		}
		l.i++
	}
}

// scanDoubleQuoted assumes the opening " has been consumed; \ escapes the
// following byte.
func (l *Lexer) scanDoubleQuoted() {
	for l.i < len(l.s) {
		b := l.s[l.i]
		if b == '\\' {
			l.i++
			if l.i < len(l.s) {
				l.i++
			}
			continue
		}
		if b == '"' {
			l.i++
			return
		}
		l.i++
	}
}

// scanUntilByte consumes until (and including, unless eof) the next
// occurrence of delim; no escapes are honoured (raw/wysiwyg strings).
func (l *Lexer) scanUntilByte(delim byte, _ bool) {
	for l.i < len(l.s) {
		if l.s[l.i] == delim {
			l.i++
			return
		}
		l.i++
	}
}

// scanBlockComment assumes /* has been consumed; non-nesting. It reports
// whether the closing */ was found before EOF.
func (l *Lexer) scanBlockComment() bool {
	for l.i < len(l.s) {
		if l.s[l.i] == '*' && l.i+1 < len(l.s) && l.s[l.i+1] == '/' {
			l.i += 2
			return true
		}
		l.i++
	}
	return false
}

// scanNestedComment assumes /+ has been consumed; maintains a depth counter
// since /+ +/ comments nest (spec.md §4.1). It reports whether the comment
// was closed before EOF.
func (l *Lexer) scanNestedComment() bool {
	depth := 1
	for l.i < len(l.s) && depth > 0 {
		if l.s[l.i] == '/' && l.i+1 < len(l.s) && l.s[l.i+1] == '+' {
			depth++
			l.i += 2
			continue
		}
		if l.s[l.i] == '+' && l.i+1 < len(l.s) && l.s[l.i+1] == '/' {
			depth--
			l.i += 2
			continue
		}
		l.i++
	}
	return depth == 0
}

// scanPreprocessorLine assumes # has been consumed; consumes to the next
// newline, honouring \ line continuations.
func (l *Lexer) scanPreprocessorLine() {
	for l.i < len(l.s) {
		if l.s[l.i] == '\\' && l.i+1 < len(l.s) && l.s[l.i+1] == '\n' {
			l.i += 2
			continue
		}
		if l.s[l.i] == '\n' {
			return
		}
		l.i++
	}
}

// ReadToken implements spec.md §4.1's readToken: repeatedly calls
// skipTokenOrWS, discarding whitespace and comments, then extends the
// returned span through a trailing run of whitespace that stops no later
// than the first newline.
func (l *Lexer) ReadToken() (Kind, string) {
	var k Kind
	start := l.i
	for {
		k, _ = l.skipTokenOrWS()
		if k == KindWhitespace || k == KindComment {
			continue
		}
		break
	}
	end := l.i
	sawNewline := false
	for l.i < len(l.s) && isSpaceByte(l.s[l.i]) && !sawNewline {
		if l.s[l.i] == '\n' {
			sawNewline = true
		}
		l.i++
		end = l.i
	}
	return k, string(l.s[start:end])
}

// AtEnd reports whether the cursor has reached EOF.
func (l *Lexer) AtEnd() bool {
	return l.i >= len(l.s)
}

// Pos returns the current cursor offset, for callers that need to slice the
// underlying buffer directly (the scope parser's scopeEnd matching).
func (l *Lexer) Pos() int {
	return l.i
}

// StripComments returns a copy of code with every comment token elided,
// all other spans preserved verbatim (spec.md §4.1).
func StripComments(code []byte) []byte {
	lx := NewLexer(code)
	var out []byte
	for !lx.AtEnd() {
		k, text := lx.skipTokenOrWS()
		if k == KindComment {
			continue
		}
		out = append(out, text...)
	}
	return out
}
