package main

import (
	"gridEditor/contracts"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridJsonSerializer_Marshal(t *testing.T) {
	serializer := NewGridJsonSerializer()

	serialized, err := serializer.Marshal(contracts.GridSnapshot{{{Value: "1"}, {Value: "6", Formula: "=SUM(A1:A3)"}}})

	assert.NoError(t, err)
	assert.JSONEq(t, `[[{"value":"1","formula":""},{"value":"6","formula":"=SUM(A1:A3)"}]]`, string(serialized))
}

func TestGridJsonSerializer_Unmarshal(t *testing.T) {
	serializer := NewGridJsonSerializer()

	t.Run("valid_data", func(t *testing.T) {
		grid := NewGrid(DefaultRows, DefaultCols)
		grid.SetCellLiteral(0, 0, "key1_should be any text")
		grid.SetCellFormula(19, 9, "=AVERAGE(A1:A3)", "2")
		grid.SetCellLiteral(5, 5, `quotes " and \ backslashes`)

		serialized, err := serializer.Marshal(grid.Snapshot())
		assert.NoError(t, err)

		snapshot, err := serializer.Unmarshal(serialized)
		assert.NoError(t, err)

		restored, err := NewGridFromSnapshot(snapshot)
		assert.NoError(t, err)
		assert.True(t, restored.Equal(grid))
	})

	t.Run("empty_data", func(t *testing.T) {
		snapshot, err := serializer.Unmarshal([]byte{})

		assert.ErrorIs(t, err, SerializerError)
		assert.Nil(t, snapshot)
	})

	t.Run("invalid_data", func(t *testing.T) {
		for _, data := range []string{" qr", "{}", `[["a"]]`, "null"} {
			snapshot, err := serializer.Unmarshal([]byte(data))

			assert.ErrorIs(t, err, SerializerError, data)
			assert.Nil(t, snapshot, data)
		}
	})
}
