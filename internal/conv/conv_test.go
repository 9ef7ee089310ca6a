//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid positive", func(t *testing.T) {
		got, err := IntToUint32(123)
		assert.NoError(t, err)
		assert.Equal(t, uint32(123), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		assert.Error(t, err)
	})

	t.Run("valid max uint32", func(t *testing.T) {
		got, err := IntToUint32(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := IntToUint32(math.MaxUint32 + 1)
		assert.Error(t, err)
	})
}

func TestUint32ToInt(t *testing.T) {
	got, err := Uint32ToInt(42)
	assert.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestMulInt(t *testing.T) {
	tests := []struct {
		name    string
		a, b    int
		want    int
		wantErr bool
	}{
		{"zero", 0, 64, 0, false},
		{"small", 13, 8, 104, false},
		{"max int times one", math.MaxInt, 1, math.MaxInt, false},
		{"overflow", math.MaxInt/2 + 1, 2, 0, true},
		{"negative", -1, 8, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MulInt(tt.a, tt.b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddInt(t *testing.T) {
	got, err := AddInt(100, 4)
	assert.NoError(t, err)
	assert.Equal(t, 104, got)

	got, err = AddInt(math.MaxInt-1, 1)
	assert.NoError(t, err)
	assert.Equal(t, math.MaxInt, got)

	_, err = AddInt(math.MaxInt, 1)
	assert.Error(t, err)

	_, err = AddInt(-1, 1)
	assert.Error(t, err)
}

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		name    string
		n, d    int
		want    int
		wantErr bool
	}{
		{"zero", 0, 8, 0, false},
		{"exact", 64, 8, 8, false},
		{"round up", 100, 8, 13, false},
		{"one", 1, 64, 1, false},
		{"max int", math.MaxInt, 2, math.MaxInt/2 + 1, false},
		{"zero divisor", 10, 0, 0, true},
		{"negative dividend", -1, 8, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CeilDiv(tt.n, tt.d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
