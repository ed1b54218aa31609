package nfa

import (
	"fmt"

	"github.com/coregx/classregex/ast"
)

// Compile walks an ast.Expr and builds the Thompson NFA it denotes.
// Parsing has already rejected anything malformed, so Compile never
// returns an error; an unrecognized node type is a programming error.
func Compile(e ast.Expr) *NFA {
	switch v := e.(type) {
	case ast.Empty:
		return EpsilonNFA()
	case ast.Lit:
		return Char(v.Class)
	case ast.Concat:
		return Concat(Compile(v.X), Compile(v.Y))
	case ast.Alt:
		branches := ast.FlattenAlt(v)
		compiled := make([]*NFA, len(branches))
		for i, b := range branches {
			compiled[i] = Compile(b)
		}
		return Combine(compiled)
	case ast.Star:
		return Star(Compile(v.X))
	case ast.Plus:
		return Plus(Compile(v.X))
	case ast.Opt:
		return Optional(Compile(v.X))
	default:
		panic(fmt.Sprintf("nfa: unknown ast node %T", e))
	}
}
