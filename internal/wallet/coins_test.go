package wallet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectCoins(t *testing.T) {
	p2wpkh := append([]byte{0x00, 0x14}, bytes.Repeat([]byte{0x01}, 20)...)
	outs := [][]byte{p2wpkh}

	coins := []coin{{value: 10_000}, {value: 50_000}, {value: 20_000}}

	tests := []struct {
		name       string
		target     int64
		wantInputs int
		wantFee    int64
		wantChange int64
		wantErr    error
	}{
		{
			name:       "largest coin covers target with change",
			target:     30_000,
			wantInputs: 1,
			wantFee:    141,
			wantChange: 50_000 - 30_000 - 141,
		},
		{
			name:       "dust change goes to fee",
			target:     49_800,
			wantInputs: 1,
			wantFee:    200,
		},
		{
			name:       "needs two coins",
			target:     60_000,
			wantInputs: 2,
			wantFee:    209,
			wantChange: 70_000 - 60_000 - 209,
		},
		{
			name:    "not enough",
			target:  80_000,
			wantErr: ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := selectCoins(coins, tt.target, 1, outs, p2wpkh)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, sel.coins, tt.wantInputs)
			assert.Equal(t, tt.wantFee, sel.fee)
			assert.Equal(t, tt.wantChange, sel.change)
		})
	}
}
