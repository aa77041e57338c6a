package main

/*
---------
Operation
---------
*/

type Operation uint

const (
	Err Operation = iota
	Set
	Add
	Sub
	Mul
	Div
	Rem
	Neg
	Pow
	Sqrt
	Sin
	Cos
	Tan
	Ctn
	Asin
	Acos
	Atan
	Actn
	Rad
	Deg
)

// Arity is the number of operands an operation consumes: 0 for mode
// switches and Err, 1 for operations on the accumulator alone, 2 for
// operations taking the accumulator and a parsed literal.
func (op Operation) Arity() int {
	switch op {
	case Err, Rad, Deg:
		return 0
	case Neg, Sqrt, Sin, Cos, Tan, Ctn, Asin, Acos, Atan, Actn:
		return 1
	case Set, Add, Sub, Mul, Div, Rem, Pow:
		return 2
	}
	return 0
}

func (op Operation) String() string {
	switch op {
	case Set:
		return "SET"
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Rem:
		return "%"
	case Neg:
		return "_"
	case Pow:
		return "^"
	case Sqrt:
		return "SQRT"
	case Sin:
		return "SIN"
	case Cos:
		return "COS"
	case Tan:
		return "TAN"
	case Ctn:
		return "CTN"
	case Asin:
		return "ASIN"
	case Acos:
		return "ACOS"
	case Atan:
		return "ATAN"
	case Actn:
		return "ACTN"
	case Rad:
		return "RAD"
	case Deg:
		return "DEG"
	}
	return "ERR"
}

/*
-------
Command
-------
*/

// Command is one parsed input line. Arg is meaningful only when
// Op.Arity() == 2.
type Command struct {
	Op  Operation
	Arg float64
}

/*
-----
State
-----
*/

// State is the calculator state threaded through successive lines:
// the running accumulator and the active angle unit. Passed by value,
// a new State is returned for every processed line.
type State struct {
	Current float64
	Radians bool
}
