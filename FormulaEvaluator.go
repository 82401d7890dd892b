package main

import (
	"errors"
	"fmt"
	"gridEditor/contracts"
	"math"
	"regexp"
	"strconv"
	"strings"
)

type FormulaEvaluator struct {
	parser       contracts.ReferenceParser
	functions    *FunctionRegistry
	rangeRegex   *regexp.Regexp
	numericRegex *regexp.Regexp
}

func NewFormulaEvaluator(parser contracts.ReferenceParser, functions *FunctionRegistry) *FormulaEvaluator {
	return &FormulaEvaluator{
		parser:     parser,
		functions:  functions,
		rangeRegex: regexp.MustCompile(`([A-Z][0-9]+)` + RangeSeparator + `([A-Z][0-9]+)`),
		// leading number of a cell value, the rest of the text is ignored
		numericRegex: regexp.MustCompile(`^\s*[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`),
	}
}

// Evaluate computes a range function formula against cells.
// Non-formula text is returned unchanged.
func (e *FormulaEvaluator) Evaluate(formula string, cells contracts.CellReader) (result string, err error) {
	if !e.IsFormula(formula) {
		return formula, nil
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			result = ""
			err = fmt.Errorf("%s: %w: %v", formula, contracts.EvaluationError, recovered)
		}
	}()

	match := e.rangeRegex.FindStringSubmatch(formula)
	if match == nil {
		return "", fmt.Errorf("%s: range not found: %w", formula, contracts.UnsupportedFormulaError)
	}

	values, err := e.readRangeValues(match[1], match[2], cells)
	if err != nil {
		return "", fmt.Errorf("%s: %w", formula, err)
	}

	name, reducer, ok := e.functions.Lookup(formula)
	if !ok {
		return "", fmt.Errorf("%s: unknown function, expected one of %v: %w", formula, e.functions.Names(), contracts.UnsupportedFormulaError)
	}

	value, err := reducer(values)
	if err != nil {
		return "", fmt.Errorf("%s: %s: %w", formula, name, err)
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", fmt.Errorf("%s: %w: result is not finite", formula, contracts.EvaluationError)
	}

	return formatNumber(value), nil
}

func (e *FormulaEvaluator) IsFormula(text string) bool {
	return strings.HasPrefix(text, contracts.FormulaPrefix)
}

func (e *FormulaEvaluator) readRangeValues(startRef string, endRef string, cells contracts.CellReader) ([]float64, error) {
	start, err := e.parser.ParseCellRef(startRef)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contracts.EvaluationError, err)
	}

	end, err := e.parser.ParseCellRef(endRef)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contracts.EvaluationError, err)
	}

	if !isReversedRange(start, end) && (!cells.Contains(start.Row, start.Col) || !cells.Contains(end.Row, end.Col)) {
		return nil, fmt.Errorf("%w: %s:%s: %w", contracts.EvaluationError, startRef, endRef, contracts.CellOutOfBoundsError)
	}

	coordinates, err := e.parser.ParseRange(startRef, endRef)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contracts.EvaluationError, err)
	}

	values := make([]float64, len(coordinates))
	for index, cell := range coordinates {
		values[index] = e.parseNumber(cells.GetCell(cell.Row, cell.Col).Value)
	}

	return values, nil
}

// parseNumber reads the leading number of text, 0 when there is none
func (e *FormulaEvaluator) parseNumber(text string) float64 {
	prefix := strings.TrimSpace(e.numericRegex.FindString(text))
	if prefix == "" {
		return 0
	}

	value, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsNaN(value) {
		return 0
	}
	return value
}

// FormatResult turns an evaluation outcome into the displayed cell value
func FormatResult(value string, err error) string {
	if err == nil {
		return value
	}

	if errors.Is(err, contracts.UnsupportedFormulaError) {
		return contracts.InvalidFormulaMarker
	}

	return contracts.ErrorFormulaMarker
}

func formatNumber(value float64) string {
	if value == 0 {
		// no negative zero
		return "0"
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
