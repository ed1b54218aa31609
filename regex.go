// Package classregex compiles and runs a small character-class regular
// expression engine: pattern text is parsed into an AST, compiled into a
// Thompson NFA, optionally determinized into a DFA, and then simulated
// against an input string.
package classregex

import (
	"github.com/coregx/classregex/ast"
	"github.com/coregx/classregex/dfa"
	"github.com/coregx/classregex/literal"
	"github.com/coregx/classregex/nfa"
	"github.com/coregx/classregex/parser"
	"github.com/coregx/classregex/prefilter"
)

// engine is satisfied by both *nfa.NFA and *dfa.DFA, letting Regex drive
// either simulation strategy through the same interface.
type engine interface {
	IsMatch(s []rune) bool
	FindAt(s []rune, start int) (int, int, bool)
	FindShortestAt(s []rune, start int) (int, int, bool)
}

// Regex is a compiled pattern, ready for repeated read-only matching. The
// zero value is not usable; construct one with NewNFA or NewDFA.
type Regex struct {
	pattern string
	eng     engine
	filter  *prefilter.Filter
}

// Match describes where a pattern matched within an input string. Start
// and End are rune offsets into the matched string, with End exclusive.
type Match struct {
	Start, End int
	Span       []rune
}

// NewNFA parses pattern and compiles it into a Thompson NFA, matched by
// direct subset simulation at search time.
func NewNFA(pattern string) (*Regex, error) {
	expr, filter, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: pattern, eng: nfa.Compile(expr), filter: filter}, nil
}

// NewDFA parses pattern, compiles it into an NFA, and determinizes that
// NFA into a DFA via subset construction before any matching happens.
func NewDFA(pattern string) (*Regex, error) {
	expr, filter, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: pattern, eng: dfa.From(nfa.Compile(expr)), filter: filter}, nil
}

// compile parses pattern and, when its AST reduces to an alternation of at
// least two literal alternatives of length two or more, builds a
// prefilter to short-circuit matching on inputs that can't possibly match.
func compile(pattern string) (ast.Expr, *prefilter.Filter, error) {
	expr, err := parser.Parse(pattern)
	if err != nil {
		return nil, nil, err
	}

	lits := literal.Extract(expr)
	qualifying := 0
	for _, l := range lits {
		if len(l) >= 2 {
			qualifying++
		}
	}
	if qualifying < 2 {
		return expr, nil, nil
	}

	f, err := prefilter.New(lits)
	if err != nil {
		return expr, nil, nil
	}
	return expr, f, nil
}

// String returns the original pattern text the Regex was compiled from.
func (r *Regex) String() string { return r.pattern }

// IsMatch reports whether s, taken as a whole, matches the pattern.
func (r *Regex) IsMatch(s string) bool {
	if r.filter != nil && !r.filter.MaybeMatch(s) {
		return false
	}
	return r.eng.IsMatch([]rune(s))
}

// Find returns the leftmost, longest match in s, if any.
func (r *Regex) Find(s string) (Match, bool) {
	return r.FindAt(s, 0)
}

// FindAt returns the leftmost, longest match starting at or after the
// rune offset start.
func (r *Regex) FindAt(s string, start int) (Match, bool) {
	if r.filter != nil && !r.filter.MaybeMatch(s) {
		return Match{}, false
	}
	runes := []rune(s)
	from, to, ok := r.eng.FindAt(runes, start)
	if !ok {
		return Match{}, false
	}
	return Match{Start: from, End: to, Span: runes[from:to]}, true
}

// FindShortest returns the leftmost match in s, preferring the shortest
// extent found at that position, if any.
func (r *Regex) FindShortest(s string) (Match, bool) {
	return r.FindShortestAt(s, 0)
}

// FindShortestAt returns the leftmost match starting at or after the rune
// offset start, preferring the shortest extent found at that position.
func (r *Regex) FindShortestAt(s string, start int) (Match, bool) {
	if r.filter != nil && !r.filter.MaybeMatch(s) {
		return Match{}, false
	}
	runes := []rune(s)
	from, to, ok := r.eng.FindShortestAt(runes, start)
	if !ok {
		return Match{}, false
	}
	return Match{Start: from, End: to, Span: runes[from:to]}, true
}
