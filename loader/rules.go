package loader

import "path"

// SplitterKind selects which of C3/C5/Files handles a matched file
// (spec.md §6: "Splitter choices are D, Words, Files").
type SplitterKind string

const (
	SplitD     SplitterKind = "D"
	SplitWords SplitterKind = "Words"
	SplitFiles SplitterKind = "Files"
)

// Rule is one (glob, splitter) pair, matched against a file's base name
// only (spec.md §6).
type Rule struct {
	Glob     string       `yaml:"glob"`
	Splitter SplitterKind `yaml:"splitter"`
}

// defaultRules are consulted after any user rules (spec.md §4.7): "*.d or
// *.di -> D, anything else -> Files". The fallback "*" rule is what makes
// "no rule matches a file" (spec.md §7) unreachable.
var defaultRules = []Rule{
	{Glob: "*.d", Splitter: SplitD},
	{Glob: "*.di", Splitter: SplitD},
	{Glob: "*", Splitter: SplitFiles},
}

// matchRule finds the splitter for baseName: user rules first, then
// defaultRules. Glob syntax is spec.md §6's "*, ?, [abc]" — exactly what
// path.Match already implements, so there is no third-party glob
// dependency to reach for here (see DESIGN.md).
func matchRule(baseName string, userRules []Rule) (SplitterKind, bool) {
	for _, r := range userRules {
		if ok, _ := path.Match(r.Glob, baseName); ok {
			return r.Splitter, true
		}
	}
	for _, r := range defaultRules {
		if ok, _ := path.Match(r.Glob, baseName); ok {
			return r.Splitter, true
		}
	}
	return "", false
}
