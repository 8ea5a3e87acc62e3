// Package calculator dispatches a selector symbol to one of the four basic
// arithmetic operations.
package calculator

import (
	"errors"
	"fmt"

	"github.com/sunfmin/mcp-go-patterns/pkg/logger"
	"github.com/sunfmin/mcp-go-patterns/pkg/metrics"
)

var (
	// ErrUnsupportedOperation is returned for a selector outside + - * /.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrInvalidArgument is returned when dividing by zero.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Operator is one of the supported arithmetic operations.
type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
)

var symbols = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
}

// Operators lists every supported operator in declaration order.
func Operators() []Operator {
	return []Operator{Add, Sub, Mul, Div}
}

// String returns the selector symbol of the operator.
func (o Operator) String() string {
	if o < Add || o > Div {
		return fmt.Sprintf("Operator(%d)", int(o))
	}
	return symbols[o]
}

// ParseOperator maps a selector symbol to its Operator.
func ParseOperator(selector string) (Operator, error) {
	switch selector {
	case "+":
		return Add, nil
	case "-":
		return Sub, nil
	case "*":
		return Mul, nil
	case "/":
		return Div, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedOperation, selector)
	}
}

// Evaluate applies op to x and y. A zero divisor fails before dividing, so
// the result is never Inf or NaN because of it.
func Evaluate(op Operator, x, y float64) (float64, error) {
	switch op {
	case Add:
		return x + y, nil
	case Sub:
		return x - y, nil
	case Mul:
		return x * y, nil
	case Div:
		if y == 0 {
			return 0, fmt.Errorf("%w: division by zero", ErrInvalidArgument)
		}
		return x / y, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedOperation, op)
	}
}

// Calculate parses selector and evaluates it against x and y.
func Calculate(x, y float64, selector string) (float64, error) {
	op, err := ParseOperator(selector)
	if err != nil {
		// Arbitrary selectors are not used as label values.
		metrics.ObserveCalculation("other", metrics.OutcomeUnsupported)
		logger.Debug("Rejected calculation", "selector", selector, "error", err)
		return 0, err
	}

	result, err := Evaluate(op, x, y)
	if err != nil {
		metrics.ObserveCalculation(op.String(), metrics.OutcomeInvalidArgument)
		logger.Debug("Calculation failed", "x", x, "y", y, "operator", op, "error", err)
		return 0, err
	}

	metrics.ObserveCalculation(op.String(), metrics.OutcomeOK)
	return result, nil
}
