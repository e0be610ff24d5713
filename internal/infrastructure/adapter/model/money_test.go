package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_Value(t *testing.T) {
	v, err := Money(1250).Value()
	require.NoError(t, err)
	assert.Equal(t, "12.50", v)

	v, err = Money(0).Value()
	require.NoError(t, err)
	assert.Equal(t, "0.00", v)
}

func TestMoney_Scan(t *testing.T) {
	testCases := []struct {
		name     string
		src      any
		expected Money
	}{
		{"PostgresText", "12.50", 1250},
		{"PostgresBytes", []byte("99999999.99"), 9999999999},
		{"SQLiteInteger", int64(12), 1200},
		{"SQLiteReal", 12.5, 1250},
		{"SQLiteRealRounding", 0.29, 29},
		{"Null", nil, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var m Money
			require.NoError(t, m.Scan(tc.src))
			assert.Equal(t, tc.expected, m)
		})
	}
}

func TestMoney_ScanRejectsGarbage(t *testing.T) {
	var m Money
	assert.Error(t, m.Scan("abc"))
	assert.Error(t, m.Scan(true))
}
