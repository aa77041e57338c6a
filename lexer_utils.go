package main

import "golang.org/x/exp/slices"

const maxDecimalDigits = 10

var symbolOps = map[byte]Operation{
	'+': Add,
	'-': Sub,
	'*': Mul,
	'/': Div,
	'%': Rem,
	'_': Neg,
	'^': Pow,
}

// mnemonics lists the dictionary in lookup order, longest names first.
var mnemonics = []string{
	"ACOS",
	"ACTN",
	"ASIN",
	"ATAN",
	"SQRT",
	"COS",
	"CTN",
	"DEG",
	"RAD",
	"SIN",
	"TAN",
}

var mnemonicOps = map[string]Operation{
	"ACOS": Acos,
	"ACTN": Actn,
	"ASIN": Asin,
	"ATAN": Atan,
	"SQRT": Sqrt,
	"COS":  Cos,
	"CTN":  Ctn,
	"DEG":  Deg,
	"RAD":  Rad,
	"SIN":  Sin,
	"TAN":  Tan,
}

var spaceChars = []byte{' ', '\t', '\n', '\v', '\f', '\r'}

func isSpace(c byte) bool {
	return slices.Contains(spaceChars, c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
