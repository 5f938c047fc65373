package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var c Contract
	require.NoError(t, json.Unmarshal([]byte(`{"name":"C1","date_registration":"2024-01-01","date_completion":null}`), &c))

	require.NotNil(t, c.DateRegistration)
	assert.Equal(t, NewDate(2024, time.January, 1), *c.DateRegistration)
	assert.Nil(t, c.DateCompletion)

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":0,"name":"C1","address":"","date_registration":"2024-01-01","date_completion":null}`, string(out))
}

func TestDateAcceptsTimestamps(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-05T18:30:00Z"`), &d))
	assert.Equal(t, "2024-03-05", d.String())

	assert.Error(t, json.Unmarshal([]byte(`"05.03.2024"`), &d))
}

func TestDateScan(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "time", value: time.Date(2024, 2, 29, 13, 0, 0, 0, time.UTC), want: "2024-02-29"},
		{name: "string", value: "2024-02-29", want: "2024-02-29"},
		{name: "bytes", value: []byte("2024-02-29 00:00:00"), want: "2024-02-29"},
		{name: "nil", value: nil, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tc.value))
			assert.Equal(t, tc.want, d.String())
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2024, time.January, 1).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestRecordCard(t *testing.T) {
	good := uint64(7)
	card := CardOf(&Order{ID: 3, ContractID: 1, GoodID: &good, Amount: 12})

	assert.Equal(t, "Order", card.Kind)
	assert.Equal(t, uint64(3), card.ID)
	assert.Equal(t, Field{Label: "Goods ID", Value: "7"}, card.Fields[2])
}
