package main

import (
	"fmt"
	"io"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
)

const parseCacheSize = 128

// Engine applies one input line to a State. Parse results are memoized
// per line in a small LRU; only lines that parsed without a diagnostic
// are cached, so repeated malformed input still reports every occurrence.
type Engine struct {
	parser Parser
	diag   io.Writer
	cache  *lru.Cache[string, Command]
}

func NewEngine(diag io.Writer) *Engine {
	cache, _ := lru.New[string, Command](parseCacheSize)
	return &Engine{
		parser: NewParser(diag),
		diag:   diag,
		cache:  cache,
	}
}

// ProcessLine parses the line and evaluates the resulting command,
// returning the next state. Malformed input evaluates as a no-op; the
// accumulator survives every failure path.
func (e *Engine) ProcessLine(state State, line string) State {
	command, cached := e.cache.Get(line)
	if !cached {
		var clean bool
		command, clean = e.parser.Parse(line)
		if clean {
			e.cache.Add(line, command)
		}
	}

	switch command.Op.Arity() {
	case 0:
		return e.nullary(state, command.Op)
	case 1:
		return e.unary(state, command.Op)
	case 2:
		return e.binary(state, command.Op, command.Arg)
	}
	return state
}

func (e *Engine) nullary(state State, op Operation) State {
	switch op {
	case Rad:
		state.Radians = true
	case Deg:
		state.Radians = false
	}
	return state
}

// unary operates on the accumulator alone. Failure fallbacks differ per
// operation (pass-through, +Inf, or the finite tangent sentinel) and are
// kept exactly as the per-operation cases spell out.
func (e *Engine) unary(state State, op Operation) State {
	current := state.Current
	switch op {
	case Neg:
		state.Current = -current
	case Sqrt:
		if current > 0 {
			state.Current = math.Sqrt(current)
		} else {
			e.badArgument(op, current)
		}
	case Sin:
		state.Current = math.Sin(toRadians(current, state.Radians))
	case Cos:
		state.Current = math.Cos(toRadians(current, state.Radians))
	case Tan:
		x := toRadians(current, state.Radians)
		if math.Abs(math.Cos(x)) > epsilon {
			state.Current = math.Tan(x)
		} else {
			state.Current = tanPole
		}
	case Ctn:
		x := toRadians(current, state.Radians)
		if math.Abs(math.Sin(x)) > epsilon {
			state.Current = ctn(x)
		} else {
			state.Current = math.Inf(1)
		}
	case Asin:
		if math.Abs(current) <= 1 {
			state.Current = toDegrees(math.Asin(current), state.Radians)
		} else {
			e.badArgument(op, current)
			state.Current = math.Inf(1)
		}
	case Acos:
		if math.Abs(current) <= 1 {
			state.Current = toDegrees(math.Acos(current), state.Radians)
		} else {
			e.badArgument(op, current)
		}
	case Atan:
		if math.Abs(current) < math.Pi/2 {
			state.Current = toDegrees(math.Atan(current), state.Radians)
		} else {
			e.badArgument(op, current)
		}
	case Actn:
		if abs := math.Abs(current); 0 < abs && abs < math.Pi {
			state.Current = toDegrees(actn(current), state.Radians)
		} else {
			e.badArgument(op, current)
		}
	}
	return state
}

// binary combines the accumulator (left) with the parsed argument (right).
func (e *Engine) binary(state State, op Operation, arg float64) State {
	left, right := state.Current, arg
	switch op {
	case Set:
		state.Current = right
	case Add:
		state.Current = left + right
	case Sub:
		state.Current = left - right
	case Mul:
		state.Current = left * right
	case Div:
		if right != 0 {
			state.Current = left / right
		} else {
			fmt.Fprintf(e.diag, "Bad right argument for division: %v\n", right)
		}
	case Rem:
		if right != 0 {
			state.Current = math.Remainder(left, right)
		} else {
			fmt.Fprintf(e.diag, "Bad right argument for remainder: %v\n", right)
		}
	case Pow:
		state.Current = math.Pow(left, right)
	}
	return state
}

func (e *Engine) badArgument(op Operation, value float64) {
	fmt.Fprintf(e.diag, "Bad argument for %s: %v\n", op, value)
}
