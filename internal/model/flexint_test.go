package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int64
	}{
		{"number", `150`, 150},
		{"numeric string", `"150"`, 150},
		{"float", `12.7`, 12},
		{"float string", `"12.7"`, 12},
		{"negative", `"-3"`, -3},
		{"non-numeric", `"abc"`, 0},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f FlexInt
			require.NoError(t, json.Unmarshal([]byte(tc.in), &f))
			assert.Equal(t, tc.want, f.Int64())
		})
	}
}

func TestFlexIntInStruct(t *testing.T) {
	var payload struct {
		Price *FlexInt `json:"price"`
		Stock *FlexInt `json:"stock"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price":"250","stock":7}`), &payload))
	require.NotNil(t, payload.Price)
	require.NotNil(t, payload.Stock)
	assert.Equal(t, int64(250), payload.Price.Int64())
	assert.Equal(t, 7, payload.Stock.Int())

	// absent fields stay nil so handlers can tell absent from zero
	payload.Price, payload.Stock = nil, nil
	require.NoError(t, json.Unmarshal([]byte(`{"price":0}`), &payload))
	require.NotNil(t, payload.Price)
	assert.Nil(t, payload.Stock)
}
