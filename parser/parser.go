// Package parser turns regex pattern text into an ast.Expr using a
// shunting-yard algorithm over two explicit stacks (operators and
// operands), grounded on the original source's parser.rs engine and
// generalized here to build an AST instead of an engine directly.
package parser

import (
	"github.com/coregx/classregex/ast"
	"github.com/coregx/classregex/charclass"
)

// opKind is an entry on the operator stack. opParen is a sentinel marking a
// '(' that has not yet been matched by its ')'.
type opKind int

const (
	opAlt opKind = iota
	opConcat
	opParen
)

func precedence(k opKind) int {
	if k == opAlt {
		return 0
	}
	return 1 // opConcat; opParen is never compared
}

type state struct {
	pat        []rune
	pos        int
	operands   []ast.Expr
	operators  []opKind
	groupMarks []int // len(operands) recorded at each '('
	insertCat  bool
}

// Parse compiles pattern text into an ast.Expr. Errors are always
// *ParseError values carrying the offending rune position.
func Parse(pattern string) (ast.Expr, error) {
	s := &state{pat: []rune(pattern)}

	for s.pos < len(s.pat) {
		c := s.pat[s.pos]
		switch c {
		case '|':
			if err := s.pushOp(opAlt); err != nil {
				return nil, err
			}
			s.pos++
			s.insertCat = false

		case '*', '+', '?':
			if err := s.pushRepeat(c); err != nil {
				return nil, err
			}
			s.pos++
			s.insertCat = true

		case '(':
			if s.insertCat {
				if err := s.pushOp(opConcat); err != nil {
					return nil, err
				}
			}
			s.operators = append(s.operators, opParen)
			s.groupMarks = append(s.groupMarks, len(s.operands))
			s.pos++
			s.insertCat = false

		case ')':
			if err := s.closeGroup(); err != nil {
				return nil, err
			}
			s.pos++
			s.insertCat = true

		case '[':
			cls, next, err := parseBracketClass(s.pat, s.pos)
			if err != nil {
				return nil, err
			}
			if err := s.shiftAtom(ast.Lit{Class: cls}); err != nil {
				return nil, err
			}
			s.pos = next
			s.insertCat = true

		case '.':
			if err := s.shiftAtom(ast.Lit{Class: charclass.AllButNewline()}); err != nil {
				return nil, err
			}
			s.pos++
			s.insertCat = true

		case '\\':
			if s.pos+1 >= len(s.pat) {
				return nil, &ParseError{Pos: s.pos, Kind: ErrUnexpectedEOF}
			}
			esc := s.pat[s.pos+1]
			var lit ast.Lit
			if cls, ok := escapeClass(esc); ok {
				lit = ast.Lit{Class: cls}
			} else {
				lit = ast.Lit{Class: charclass.FromChar(escapeLiteral(esc))}
			}
			if err := s.shiftAtom(lit); err != nil {
				return nil, err
			}
			s.pos += 2
			s.insertCat = true

		default:
			if err := s.shiftAtom(ast.Lit{Class: charclass.FromChar(c)}); err != nil {
				return nil, err
			}
			s.pos++
			s.insertCat = true
		}
	}

	for len(s.operators) > 0 {
		top := s.operators[len(s.operators)-1]
		if top == opParen {
			return nil, &ParseError{Pos: len(s.pat), Kind: ErrUnbalancedParentheses}
		}
		if err := s.reduceOneOp(top); err != nil {
			return nil, err
		}
		s.operators = s.operators[:len(s.operators)-1]
	}

	switch len(s.operands) {
	case 0:
		return nil, &ParseError{Pos: 0, Kind: ErrEmptyExpression}
	case 1:
		return s.operands[0], nil
	default:
		return nil, &ParseError{Pos: len(s.pat), Kind: ErrUnbalancedOperators}
	}
}

// shiftAtom inserts an implicit concatenation before lit when the previous
// token already produced an operand, then pushes lit onto the operand stack.
func (s *state) shiftAtom(lit ast.Lit) error {
	if s.insertCat {
		if err := s.pushOp(opConcat); err != nil {
			return err
		}
	}
	s.operands = append(s.operands, lit)
	return nil
}

// pushOp performs the precedence reduce (reduce any operator on top of the
// stack that binds at least as tightly as op, stopping at an unmatched '(')
// before pushing op.
func (s *state) pushOp(op opKind) error {
	for len(s.operators) > 0 {
		top := s.operators[len(s.operators)-1]
		if top == opParen || precedence(top) < precedence(op) {
			break
		}
		if err := s.reduceOneOp(top); err != nil {
			return err
		}
		s.operators = s.operators[:len(s.operators)-1]
	}
	s.operators = append(s.operators, op)
	return nil
}

// pushRepeat applies a postfix */+/? directly to the top operand; as a
// unary postfix operator it never needs the operator stack. It is an error
// when no operand directly precedes it (at the start, or right after '('
// or '|').
func (s *state) pushRepeat(c rune) error {
	if len(s.operands) == 0 || !s.insertCat {
		return &ParseError{Pos: s.pos, Kind: ErrUnexpectedToken, Expected: []rune{'*', '+', '?'}}
	}
	x := s.operands[len(s.operands)-1]
	var wrapped ast.Expr
	switch c {
	case '*':
		wrapped = ast.Star{X: x}
	case '+':
		wrapped = ast.Plus{X: x}
	case '?':
		wrapped = ast.Opt{X: x}
	}
	s.operands[len(s.operands)-1] = wrapped
	return nil
}

// closeGroup reduces the operator stack down to the matching '(', then
// checks whether the group was empty (no operand pushed between '(' and
// ')'), synthesizing an ast.Empty in that case.
func (s *state) closeGroup() error {
	for {
		if len(s.operators) == 0 {
			return &ParseError{Pos: s.pos, Kind: ErrUnbalancedParentheses}
		}
		top := s.operators[len(s.operators)-1]
		s.operators = s.operators[:len(s.operators)-1]
		if top == opParen {
			break
		}
		if err := s.reduceOneOp(top); err != nil {
			return err
		}
	}

	if len(s.groupMarks) == 0 {
		return &ParseError{Pos: s.pos, Kind: ErrUnbalancedParentheses}
	}
	mark := s.groupMarks[len(s.groupMarks)-1]
	s.groupMarks = s.groupMarks[:len(s.groupMarks)-1]
	if mark == len(s.operands) {
		s.operands = append(s.operands, ast.Empty{})
	}
	return nil
}

// reduceOneOp reduces the given binary operator against the operand stack.
// The caller owns popping it from s.operators.
func (s *state) reduceOneOp(op opKind) error {
	if len(s.operands) < 2 {
		return &ParseError{Pos: s.pos, Kind: ErrUnbalancedOperators}
	}
	y := s.operands[len(s.operands)-1]
	x := s.operands[len(s.operands)-2]
	s.operands = s.operands[:len(s.operands)-2]

	var combined ast.Expr
	if op == opAlt {
		combined = ast.Alt{X: x, Y: y}
	} else {
		combined = ast.Concat{X: x, Y: y}
	}
	s.operands = append(s.operands, combined)
	return nil
}

// escapeClass maps a shorthand-class escape letter to its built-in class.
func escapeClass(esc rune) (charclass.Class, bool) {
	switch esc {
	case 'd':
		return charclass.DecimalNumber(), true
	case 'D':
		return charclass.DecimalNumber().Complement(), true
	case 'w':
		return charclass.Word(), true
	case 'W':
		return charclass.Word().Complement(), true
	case 's':
		return charclass.Whitespace(), true
	case 'S':
		return charclass.Whitespace().Complement(), true
	default:
		return charclass.Class{}, false
	}
}

// escapeLiteral maps a non-class escape to the rune it stands for. \n is
// the newline control character, not the letter n; every other escape is
// itself (so \( \* \\ all work).
func escapeLiteral(esc rune) rune {
	if esc == 'n' {
		return '\n'
	}
	return esc
}
