package main

import (
	"errors"
	"fmt"
	"gridEditor/contracts"
	"regexp"
	"sort"
	"strings"

	"github.com/expr-lang/expr"
)

var InvalidFunctionNameError = errors.New("function name should be uppercase latin letters")

var functionNameRegex = regexp.MustCompile(`^[A-Z]+$`)

// rangeValuesVariable holds the range values inside the compiled call
const rangeValuesVariable = "values"

// FunctionRegistry maps function names to range reducers
type FunctionRegistry struct {
	reducers map[string]contracts.Reducer
	// longest first, so `=SUMSQ` never resolves to SUM
	names []string
}

func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{
		reducers: map[string]contracts.Reducer{},
		names:    make([]string, 0, 4),
	}
}

func NewDefaultFunctionRegistry() *FunctionRegistry {
	registry := NewFunctionRegistry()
	registry.mustRegister(sumFunction, calculateSum)
	registry.mustRegister(averageFunction, calculateAverage)
	return registry
}

func (r *FunctionRegistry) mustRegister(name string, reducer contracts.Reducer) {
	if err := r.Register(name, reducer); err != nil {
		panic(err)
	}
}

func (r *FunctionRegistry) Register(name string, reducer contracts.Reducer) error {
	if !functionNameRegex.MatchString(name) {
		return fmt.Errorf("`%s`: %w", name, InvalidFunctionNameError)
	}
	if reducer == nil {
		return fmt.Errorf("`%s`: reducer is nil", name)
	}

	if _, exists := r.reducers[name]; !exists {
		r.names = append(r.names, name)
		sort.Slice(r.names, func(i, j int) bool {
			if len(r.names[i]) != len(r.names[j]) {
				return len(r.names[i]) > len(r.names[j])
			}
			return r.names[i] < r.names[j]
		})
	}
	r.reducers[name] = reducer

	return nil
}

// Lookup finds the function whose `=NAME` prefix starts the formula
func (r *FunctionRegistry) Lookup(formula string) (name string, reducer contracts.Reducer, ok bool) {
	for _, name = range r.names {
		if strings.HasPrefix(formula, contracts.FormulaPrefix+name) {
			return name, r.call(name, r.reducers[name]), true
		}
	}

	return "", nil, false
}

// call runs reducer as an expr function applied to the range values
func (r *FunctionRegistry) call(name string, reducer contracts.Reducer) contracts.Reducer {
	return func(values []float64) (float64, error) {
		var reducerErr error
		function := expr.Function(name, func(params ...any) (any, error) {
			var out float64
			out, reducerErr = reducer(params[0].([]float64))
			return out, reducerErr
		})

		env := map[string]any{rangeValuesVariable: values}
		program, err := expr.Compile(name+"("+rangeValuesVariable+")", expr.Env(env), expr.DisableAllBuiltins(), function)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", contracts.EvaluationError, err)
		}

		out, err := expr.Run(program, env)
		if reducerErr != nil {
			return 0, reducerErr
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %w", contracts.EvaluationError, err)
		}

		result, ok := out.(float64)
		if !ok {
			return 0, fmt.Errorf("%w: %s returned %T", contracts.EvaluationError, name, out)
		}
		return result, nil
	}
}

func (r *FunctionRegistry) Names() []string {
	return append([]string(nil), r.names...)
}
