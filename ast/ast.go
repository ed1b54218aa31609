// Package ast defines the parse tree the parser package builds and the nfa
// package compiles. Separating parse from compile (rather than building the
// NFA directly during shift/reduce) lets literal extraction walk the same
// tree the compiler does, without re-parsing the pattern.
package ast

import "github.com/coregx/classregex/charclass"

// Expr is a node in a regex parse tree. The concrete types are Empty, Lit,
// Concat, Alt, Star, Plus, and Opt.
type Expr interface {
	exprNode()
}

// Empty matches the empty string. It is what an empty group "()" parses to.
type Empty struct{}

// Lit matches exactly one code point drawn from Class.
type Lit struct {
	Class charclass.Class
}

// Concat matches X followed by Y.
type Concat struct {
	X, Y Expr
}

// Alt matches X or Y, preferring the longest overall match during
// simulation rather than preferring X over Y structurally.
type Alt struct {
	X, Y Expr
}

// Star matches zero or more repetitions of X (Kleene star).
type Star struct {
	X Expr
}

// Plus matches one or more repetitions of X. It is compiled as X followed
// by Star(X) rather than given its own NFA construction.
type Plus struct {
	X Expr
}

// Opt matches zero or one occurrence of X. It is compiled as Alt(X, Empty).
type Opt struct {
	X Expr
}

// FlattenAlt collects a left- or right-leaning chain of nested Alt nodes
// into its ordered list of leaf branches, so a caller can treat X|Y|Z as a
// single n-ary alternation instead of nested binary ones.
func FlattenAlt(e Alt) []Expr {
	var branches []Expr
	var walk func(Expr)
	walk = func(x Expr) {
		if a, ok := x.(Alt); ok {
			walk(a.X)
			walk(a.Y)
			return
		}
		branches = append(branches, x)
	}
	walk(e)
	return branches
}

func (Empty) exprNode()  {}
func (Lit) exprNode()    {}
func (Concat) exprNode() {}
func (Alt) exprNode()    {}
func (Star) exprNode()   {}
func (Plus) exprNode()   {}
func (Opt) exprNode()    {}
