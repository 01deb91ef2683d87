package units

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"1", 100000000},
		{"0.5", 50000000},
		{"0.00138889", 138889},
		{"0.25", 25000000},
		{"0.000000005", 1},
		{"0.000000004", 0},
		{" 2.1 ", 210000000},
		{"abc", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToMinorUnits(tt.in))
		})
	}
}

func TestFromMinorUnits(t *testing.T) {
	assert.Equal(t, "0.00000000", FromMinorUnits(0))
	assert.Equal(t, "1.00000000", FromMinorUnits(100000000))
	assert.Equal(t, "0.00138889", FromMinorUnits(138889))
	assert.Equal(t, "100000000.00000000", FromMinorUnits(10_000_000_000_000_000))
}

func TestRoundTrip(t *testing.T) {
	edges := []int64{0, 1, 7, 99999999, 100000000, 100000001, 10_000_000_000_000_000}
	for _, n := range edges {
		assert.Equal(t, n, ToMinorUnits(FromMinorUnits(n)), "n=%d", n)
	}

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		n := r.Int63n(10_000_000_000_000_001)
		require.Equal(t, n, ToMinorUnits(FromMinorUnits(n)), "n=%d", n)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{name: "integer", in: "3", want: 300000000},
		{name: "eight decimals", in: "0.01000000", want: 1000000},
		{name: "nine decimals", in: "0.000000001", wantErr: true},
		{name: "negative", in: "-1", wantErr: true},
		{name: "zero", in: "0.00000000", wantErr: true},
		{name: "exponent", in: "1e5", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "trailing dot", in: "1.", wantErr: true},
		{name: "largest amount", in: "92233720368.54775807", want: math.MaxInt64},
		{name: "one sat past int64", in: "92233720368.54775808", wantErr: true},
		{name: "wraps to one sat", in: "184467440737.09551617", wantErr: true},
		{name: "huge integer", in: "100000000000000", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedAmount)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
