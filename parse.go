package main

import "io"

// Parser turns one input line into a Command. Recognition and literal
// parsing never fail hard: malformed input degrades to Command{Op: Err}
// with a diagnostic already written, and evaluation treats Err as a no-op.
type Parser struct {
	lexer Lexer
}

func NewParser(diag io.Writer) Parser {
	return Parser{lexer: NewLexer(diag)}
}

// Parse recognizes the operation and, for arity-2 operations, skips
// whitespace and parses the literal argument. Trailing text after an
// arity-0/1 mnemonic is ignored. The second result reports whether the
// line parsed without any diagnostic.
func (p *Parser) Parse(line string) (Command, bool) {
	p.lexer.Reset(line)

	command := Command{Op: p.lexer.Recognize()}
	if command.Op.Arity() == 2 {
		p.lexer.SkipSpaces()
		command.Arg = p.lexer.ParseArgument()
	}

	return command, p.lexer.diags == 0
}
