package main

import (
	"errors"
	"fmt"
	"gridEditor/contracts"

	json "github.com/bytedance/sonic"
)

var SerializerError = errors.New("invalid serialized data")

type GridJsonSerializer struct {
}

func NewGridJsonSerializer() *GridJsonSerializer {
	return &GridJsonSerializer{}
}

func (s *GridJsonSerializer) Marshal(snapshot contracts.GridSnapshot) ([]byte, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", SerializerError, err)
	}
	return data, nil
}

func (s *GridJsonSerializer) Unmarshal(data []byte) (contracts.GridSnapshot, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", SerializerError)
	}

	var snapshot contracts.GridSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %w", SerializerError, err)
	}
	if snapshot == nil {
		return nil, fmt.Errorf("%w: no rows (data: %v)", SerializerError, string(data))
	}

	return snapshot, nil
}
