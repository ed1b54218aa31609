// Package literal walks a regex AST to pull out required literal
// alternatives: substrings such that any successful match of the pattern
// must equal one of them exactly. It feeds the prefilter package, which
// uses these as an Aho-Corasick-backed fast-reject check ahead of full
// simulation.
package literal

import (
	"github.com/coregx/classregex/ast"
	"github.com/coregx/classregex/charclass"
)

// Extract returns the required literal alternatives for e. It recognizes
// exactly the shape spec.md calls out: e's root is an alternation, and
// every branch is built purely from single-character literals joined by
// concatenation, with no repetition and no multi-character classes. Any
// other shape returns nil — not an error, just "no prefilter derivable".
func Extract(e ast.Expr) []string {
	alt, ok := e.(ast.Alt)
	if !ok {
		return nil
	}

	branches := ast.FlattenAlt(alt)
	out := make([]string, 0, len(branches))
	for _, b := range branches {
		s, ok := literalString(b)
		if !ok {
			return nil
		}
		out = append(out, s)
	}
	return out
}

func literalString(e ast.Expr) (string, bool) {
	switch v := e.(type) {
	case ast.Lit:
		r, ok := singleRune(v.Class)
		if !ok {
			return "", false
		}
		return string(r), true
	case ast.Concat:
		x, ok := literalString(v.X)
		if !ok {
			return "", false
		}
		y, ok := literalString(v.Y)
		if !ok {
			return "", false
		}
		return x + y, true
	case ast.Empty:
		return "", true
	default:
		return "", false
	}
}

func singleRune(c charclass.Class) (rune, bool) {
	ranges := c.Ranges()
	if len(ranges) != 1 || ranges[0].Lo != ranges[0].Hi {
		return 0, false
	}
	return ranges[0].Lo, true
}
