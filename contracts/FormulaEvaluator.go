package contracts

import (
	"errors"
	"fmt"
)

type FormulaEvaluator interface {
	Evaluate(formula string, cells CellReader) (string, error)
}

type ReferenceParser interface {
	ParseCellRef(text string) (CellCoordinates, error)
	ParseRange(startRef string, endRef string) ([]CellCoordinates, error)
}

// Reducer folds the numeric values of a range into one number
type Reducer func(values []float64) (float64, error)

// Displayed markers for failed formulas
const (
	InvalidFormulaMarker = "INVALID"
	ErrorFormulaMarker   = "ERROR"
)

var ParseError = errors.New("malformed cell reference")

var RangeTooLargeError = fmt.Errorf("%w: %s", ParseError, "range too large")

var UnsupportedFormulaError = errors.New("unsupported formula")

var EvaluationError = errors.New("evaluation error")

var DivisionByZeroError = fmt.Errorf("%w: %s", EvaluationError, "division by zero")
