package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

func main() {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if err := repl(os.Stdin, os.Stdout, os.Stderr, interactive); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// repl reads one command per line and prints the accumulator after each.
// Diagnostics go to diag; the prompt is shown only on an interactive
// terminal so piped transcripts contain values only. A final line without
// a terminator is still processed.
func repl(in io.Reader, out, diag io.Writer, interactive bool) error {
	engine := NewEngine(diag)
	state := State{}
	inputReader := bufio.NewReader(in)
	for {
		if interactive {
			fmt.Fprint(out, "> ")
		}
		input, err := inputReader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		line := strings.TrimRight(input, "\r\n")
		if line != "" || err == nil {
			state = engine.ProcessLine(state, line)
			fmt.Fprintln(out, formatValue(state.Current))
		}
		if err != nil {
			return nil
		}
	}
}
