package main

import (
	"fmt"
	"io"
	"strings"
)

// Lexer walks one input line with a byte cursor. Recognize consumes the
// operation token, ParseArgument the numeric literal that follows arity-2
// operations. Commands are ASCII, so the cursor indexes bytes.
type Lexer struct {
	input  string
	cursor int
	diag   io.Writer
	diags  int
}

func NewLexer(diag io.Writer) Lexer {
	return Lexer{diag: diag}
}

func (l *Lexer) Reset(input string) {
	l.input = input
	l.cursor = 0
	l.diags = 0
}

// Recognize resolves the operation token at the cursor. A leading digit
// is not consumed: it belongs to the argument of an implicit assignment.
// On failure the cursor is restored to the token start, a diagnostic
// names the offending line, and Err is returned.
func (l *Lexer) Recognize() Operation {
	start := l.cursor
	if l.cursor < len(l.input) {
		c := l.input[l.cursor]
		if isDigit(c) {
			return Set
		}
		if op, ok := symbolOps[c]; ok {
			l.cursor++
			return op
		}
		if op, ok := l.matchMnemonic(); ok {
			return op
		}
	}
	l.cursor = start
	l.report("Unknown operation " + l.input)
	return Err
}

// matchMnemonic tries the fixed dictionary, longest names first. The
// mnemonic set is prefix-free, so a failed partial match ("ASX", "SQ")
// never falls back to a shorter alternative.
func (l *Lexer) matchMnemonic() (Operation, bool) {
	rest := l.input[l.cursor:]
	for _, name := range mnemonics {
		if strings.HasPrefix(rest, name) {
			l.cursor += len(name)
			return mnemonicOps[name], true
		}
	}
	return Err, false
}

func (l *Lexer) SkipSpaces() {
	for l.matchCharFunc(isSpace) {
		continue
	}
}

// ParseArgument accumulates an unsigned decimal literal into a float64:
// at most maxDecimalDigits digits, one optional dot. A second dot or any
// other byte stops parsing without being consumed; a leftover suffix is
// reported but the accumulated value stands.
func (l *Lexer) ParseArgument() float64 {
	var result float64
	count := 0
	integer := true
	fraction := 1.0
	good := true
	for good && l.cursor < len(l.input) && count < maxDecimalDigits {
		switch c := l.input[l.cursor]; {
		case isDigit(c):
			if integer {
				result = result*10 + float64(c-'0')
			} else {
				fraction /= 10
				result += float64(c-'0') * fraction
			}
			l.cursor++
			count++
		case c == '.' && integer:
			integer = false
			l.cursor++
		default:
			good = false
		}
	}
	if l.cursor < len(l.input) {
		l.report(fmt.Sprintf("Argument isn't fully parsed, suffix left: '%s'", l.input[l.cursor:]))
	}
	return result
}

func (l *Lexer) matchCharFunc(cb func(c byte) bool) bool {
	if l.cursor >= len(l.input) {
		return false
	}
	if cb(l.input[l.cursor]) {
		l.cursor++
		return true
	}
	return false
}

func (l *Lexer) report(message string) {
	l.diags++
	fmt.Fprintln(l.diag, message)
}
