package main

import (
	"fmt"
	"gridEditor/contracts"
)

var calculateSum contracts.Reducer = func(values []float64) (float64, error) {
	sum := float64(0)
	for _, value := range values {
		sum += value
	}
	return sum, nil
}

var calculateAverage contracts.Reducer = func(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("average of empty range: %w", contracts.DivisionByZeroError)
	}

	sum, err := calculateSum(values)
	if err != nil {
		return 0, err
	}
	return sum / float64(len(values)), nil
}

const sumFunction = "SUM"
const averageFunction = "AVERAGE"
