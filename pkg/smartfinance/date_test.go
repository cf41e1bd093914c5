package smartfinance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "date only format YYYY-MM-DD", input: `"2026-08-29"`, want: "2026-08-29"},
		{name: "RFC3339 format", input: `"2026-08-29T15:04:05Z"`, want: "2026-08-29"},
		{name: "datetime without timezone", input: `"2026-08-29T15:04:05"`, want: "2026-08-29"},
		{name: "null value", input: `null`, want: ""},
		{name: "empty string", input: `""`, want: ""},
		{name: "invalid format", input: `"not-a-date"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewDate(2026, 8, 29))
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-29"`, string(data))

	data, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDate_RoundTripInTransaction(t *testing.T) {
	in := Transaction{ID: "t1", Amount: -12.34, Date: NewDate(2026, 8, 29), Type: TransactionDebit}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Transaction
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "2026-08-29", out.Date.String())
	assert.Equal(t, in.Amount, out.Amount)
}
