package parser

import "github.com/coregx/classregex/charclass"

// parseBracketClass parses a bracketed class starting at pat[start] == '['
// and returns the resulting class plus the index just past the closing
// ']'. It implements the three-slot (first, dash?, last) range buffer:
// a literal fills slot 0, then either starts a range (slot 1 := '-') or,
// once a dash is pending, completes one (slot 2, flushing [slot0,slot2]).
// A literal arriving when slot 0 is already filled and no dash is pending
// flushes slot 0 as a lone code point and retries against the now-empty
// buffer.
func parseBracketClass(pat []rune, start int) (charclass.Class, int, error) {
	i := start + 1
	negate := false
	if i < len(pat) && pat[i] == '^' {
		negate = true
		i++
	}

	if i >= len(pat) {
		return charclass.Class{}, i, &ParseError{Pos: start, Kind: ErrUnexpectedEOF}
	}
	if pat[i] == ']' {
		return charclass.Class{}, i, &ParseError{Pos: start, Kind: ErrEmptyCharacterClass}
	}

	var cls charclass.Class
	haveFirst, haveDash := false, false
	var first rune

	flush := func() {
		if haveFirst {
			cls.AddRange(charclass.NewRange(first, first))
		}
		if haveDash {
			cls.AddRange(charclass.NewRange('-', '-'))
		}
		haveFirst, haveDash = false, false
	}

	for {
		if i >= len(pat) {
			return charclass.Class{}, i, &ParseError{Pos: start, Kind: ErrUnexpectedEOF}
		}
		c := pat[i]

		if c == ']' {
			flush()
			i++
			break
		}

		var lit rune
		isShorthand := false
		var shorthand charclass.Class

		if c == '\\' {
			if i+1 >= len(pat) {
				return charclass.Class{}, i, &ParseError{Pos: start, Kind: ErrUnexpectedEOF}
			}
			esc := pat[i+1]
			if sc, ok := escapeClass(esc); ok {
				isShorthand = true
				shorthand = sc
			} else {
				lit = escapeLiteral(esc)
			}
			i += 2
		} else {
			lit = c
			i++
		}

		if isShorthand {
			flush()
			cls.AddClass(shorthand)
			continue
		}

		switch {
		case !haveFirst:
			first = lit
			haveFirst = true
		case !haveDash && lit == '-':
			haveDash = true
		case haveDash:
			cls.AddRange(charclass.NewRange(first, lit))
			haveFirst, haveDash = false, false
		default:
			// slot 0 filled, no dash pending, and lit isn't starting one:
			// flush the lone first char and retry lit as the new slot 0.
			cls.AddRange(charclass.NewRange(first, first))
			first = lit
			haveFirst = true
		}
	}

	if negate {
		cls = cls.Complement()
	}
	return cls, i, nil
}
