package parser

import (
	"testing"

	"github.com/coregx/classregex/ast"
)

func TestParseLiteralConcat(t *testing.T) {
	expr, err := Parse("ab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	concat, ok := expr.(ast.Concat)
	if !ok {
		t.Fatalf("expected ast.Concat, got %T", expr)
	}
	x, ok := concat.X.(ast.Lit)
	if !ok || !x.Class.Contains('a') {
		t.Errorf("left operand should be literal a, got %#v", concat.X)
	}
	y, ok := concat.Y.(ast.Lit)
	if !ok || !y.Class.Contains('b') {
		t.Errorf("right operand should be literal b, got %#v", concat.Y)
	}
}

func TestParseAlternationLowerPrecedenceThanConcat(t *testing.T) {
	expr, err := Parse("a|bc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	alt, ok := expr.(ast.Alt)
	if !ok {
		t.Fatalf("expected top-level ast.Alt, got %T", expr)
	}
	if _, ok := alt.Y.(ast.Concat); !ok {
		t.Errorf("right side of alternation should be a concat of b,c, got %T", alt.Y)
	}
}

func TestParseRepetitionOperators(t *testing.T) {
	for _, tc := range []struct {
		pattern string
		check   func(ast.Expr) bool
	}{
		{"a*", func(e ast.Expr) bool { _, ok := e.(ast.Star); return ok }},
		{"a+", func(e ast.Expr) bool { _, ok := e.(ast.Plus); return ok }},
		{"a?", func(e ast.Expr) bool { _, ok := e.(ast.Opt); return ok }},
	} {
		expr, err := Parse(tc.pattern)
		if err != nil {
			t.Fatalf("pattern %q: unexpected error: %v", tc.pattern, err)
		}
		if !tc.check(expr) {
			t.Errorf("pattern %q produced unexpected node %T", tc.pattern, expr)
		}
	}
}

func TestParseEmptyGroup(t *testing.T) {
	expr, err := Parse("()")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := expr.(ast.Empty); !ok {
		t.Errorf("empty group should parse to ast.Empty, got %T", expr)
	}
}

func TestParseGroupedAlternationThenStar(t *testing.T) {
	expr, err := Parse("(a|b)*abb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	concat, ok := expr.(ast.Concat)
	if !ok {
		t.Fatalf("expected top-level ast.Concat, got %T", expr)
	}
	// Concatenation is left-associative, so the leftmost operand sits at
	// the bottom of the chain of Concat.X links.
	leftmost := concat.X
	for {
		inner, ok := leftmost.(ast.Concat)
		if !ok {
			break
		}
		leftmost = inner.X
	}
	if _, ok := leftmost.(ast.Star); !ok {
		t.Errorf("leftmost operand should be the (a|b)* star, got %T", leftmost)
	}
}

func TestParseBracketClassRangeAndNegation(t *testing.T) {
	expr, err := Parse("[^B-Fa-z]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lit, ok := expr.(ast.Lit)
	if !ok {
		t.Fatalf("expected ast.Lit, got %T", expr)
	}
	if lit.Class.Contains('C') || lit.Class.Contains('q') {
		t.Error("negated class should exclude B-F and a-z")
	}
	if !lit.Class.Contains('A') || !lit.Class.Contains('G') {
		t.Error("negated class should contain letters outside B-F and a-z")
	}
}

func TestParseBracketTrailingLiteralBracket(t *testing.T) {
	expr, err := Parse("[a]]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	concat, ok := expr.(ast.Concat)
	if !ok {
		t.Fatalf("expected ast.Concat, got %T", expr)
	}
	y, ok := concat.Y.(ast.Lit)
	if !ok || !y.Class.Contains(']') {
		t.Errorf("trailing ] outside a bracket should be a literal, got %#v", concat.Y)
	}
}

func TestParseShorthandEscapes(t *testing.T) {
	expr, err := Parse(`\d+\w?`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	concat, ok := expr.(ast.Concat)
	if !ok {
		t.Fatalf("expected ast.Concat, got %T", expr)
	}
	if _, ok := concat.X.(ast.Plus); !ok {
		t.Errorf("left side should be \\d+, got %T", concat.X)
	}
	if _, ok := concat.Y.(ast.Opt); !ok {
		t.Errorf("right side should be \\w?, got %T", concat.Y)
	}
}

func TestParseMalformedPatterns(t *testing.T) {
	for _, pattern := range []string{"(", ")", "*", "a|", "**", "(ab"} {
		if _, err := Parse(pattern); err == nil {
			t.Errorf("pattern %q should fail to parse", pattern)
		}
	}
}

func TestParseEmptyPattern(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Error("empty pattern should fail to parse")
	}
}

func TestParseEmptyBracket(t *testing.T) {
	if _, err := Parse("[]"); err == nil {
		t.Error("empty bracket should fail to parse")
	}
}

func TestParseEscapedMetacharacters(t *testing.T) {
	expr, err := Parse(`\(\*\\`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// \( \* \\ concatenated: just confirm it parses to three literal atoms
	// nested as left-associative concats, not an operator error.
	outer, ok := expr.(ast.Concat)
	if !ok {
		t.Fatalf("expected ast.Concat, got %T", expr)
	}
	if _, ok := outer.Y.(ast.Lit); !ok {
		t.Errorf("rightmost atom should be a literal, got %T", outer.Y)
	}
}
