package main

import (
	"bytes"
	"strings"
	"testing"
)

func runTranscript(t *testing.T, input string) (string, string) {
	t.Helper()
	var out, diag bytes.Buffer
	if err := repl(strings.NewReader(input), &out, &diag, false); err != nil {
		t.Fatalf("repl: %v", err)
	}
	return out.String(), diag.String()
}

func TestTranscriptArithmetic(t *testing.T) {
	out, diag := runTranscript(t, "5\n+3\n*2\n")
	want := "5.00000000000000000000\n" +
		"8.00000000000000000000\n" +
		"16.00000000000000000000\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	if diag != "" {
		t.Errorf("unexpected diagnostics %q", diag)
	}
}

func TestTranscriptSqrtOfNegative(t *testing.T) {
	out, diag := runTranscript(t, "4\n_\nSQRT\n")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d output lines, want 3: %q", len(lines), out)
	}
	if lines[2] != "-4.00000000000000000000" {
		t.Errorf("after SQRT of -4 output = %q, want unchanged -4", lines[2])
	}
	if !strings.Contains(diag, "Bad argument for SQRT") {
		t.Errorf("diagnostics = %q, want SQRT complaint", diag)
	}
}

func TestTranscriptRadianSine(t *testing.T) {
	// The literal carries 11 digits; the tenth-digit budget truncates it
	// (with a suffix diagnostic) close enough to pi/2 that the sine still
	// rounds to exactly 1.
	out, diag := runTranscript(t, "RAD\n1.5707963268\nSIN\n")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d output lines, want 3: %q", len(lines), out)
	}
	if lines[2] != "1.00000000000000000000" {
		t.Errorf("sin near pi/2 = %q, want 1.00000000000000000000", lines[2])
	}
	if !strings.Contains(diag, "suffix left: '8'") {
		t.Errorf("diagnostics = %q, want truncation suffix report", diag)
	}
}

func TestTranscriptDivisionByZero(t *testing.T) {
	out, diag := runTranscript(t, "10\n/0\n")
	want := "10.00000000000000000000\n10.00000000000000000000\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	if !strings.Contains(diag, "Bad right argument for division: 0") {
		t.Errorf("diagnostics = %q, want division complaint", diag)
	}
}

func TestTranscriptUnknownToken(t *testing.T) {
	out, diag := runTranscript(t, "XYZ\n")
	if out != "0.00000000000000000000\n" {
		t.Errorf("output = %q, want unchanged accumulator", out)
	}
	if diag != "Unknown operation XYZ\n" {
		t.Errorf("diagnostics = %q, want exactly one message", diag)
	}
}

func TestTranscriptAngleModes(t *testing.T) {
	out, _ := runTranscript(t, "DEG\n90\nSIN\n")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[2] != "1.00000000000000000000" {
		t.Errorf("sin 90 degrees = %q, want 1", lines[2])
	}
}

func TestTranscriptUnterminatedFinalLine(t *testing.T) {
	out, _ := runTranscript(t, "5\n+2")
	want := "5.00000000000000000000\n7.00000000000000000000\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestTranscriptCRLF(t *testing.T) {
	out, diag := runTranscript(t, "5\r\n+3\r\n")
	want := "5.00000000000000000000\n8.00000000000000000000\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	if diag != "" {
		t.Errorf("unexpected diagnostics %q", diag)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "0.00000000000000000000"},
		{5, "5.00000000000000000000"},
		{-4, "-4.00000000000000000000"},
		{2.5, "2.50000000000000000000"},
	}
	for _, test := range tests {
		if got := formatValue(test.value); got != test.want {
			t.Errorf("formatValue(%v) = %q, want %q", test.value, got, test.want)
		}
	}
}
