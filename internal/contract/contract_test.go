package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeAccess(t *testing.T) {
	arr := NewSequence(10000)

	assert.Equal(t, int32(1), SafeAccess(arr, 0))
	assert.Equal(t, int32(10000), SafeAccess(arr, 9999))
	assert.Equal(t, int32(OutOfRange), SafeAccess(arr, -1))
	assert.Equal(t, int32(OutOfRange), SafeAccess(arr, 10000))
	assert.Equal(t, int32(OutOfRange), SafeAccess(nil, 0))
}

func TestSumArray(t *testing.T) {
	assert.Equal(t, int64(50005000), SumArray(NewSequence(10000)))
	assert.Zero(t, SumArray(nil))
}

func TestBoundsCheck(t *testing.T) {
	assert.Equal(t, int64(50005000000), BoundsCheck(10000, 1000))
	assert.Equal(t, int64(55*3), BoundsCheck(10, 3))
	assert.Zero(t, BoundsCheck(10, 0))
}

func TestSafeDivide(t *testing.T) {
	q, ok := SafeDivide(10, 3)
	assert.True(t, ok)
	assert.Equal(t, int64(3), q)

	_, ok = SafeDivide(10, 0)
	assert.False(t, ok)
}

func TestChainDivide(t *testing.T) {
	tests := []struct {
		name     string
		values   []int64
		expected int64
		ok       bool
	}{
		{"empty", nil, 0, false},
		{"single", []int64{7}, 7, true},
		{"chain", []int64{1000000, 10, 5, 2}, 10000, true},
		{"zero divisor", []int64{100, 2, 0, 5}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ChainDivide(tt.values)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestProcessOptional(t *testing.T) {
	assert.Equal(t, int64(8), ProcessOptional(4, true))
	assert.Zero(t, ProcessOptional(4, false))
}

func TestNullCheck(t *testing.T) {
	assert.Equal(t, int64(6567534), NullCheck(30))
	assert.Equal(t, int64(21892434046), NullCheck(100000))
}

func BenchmarkSumArray(b *testing.B) {
	arr := NewSequence(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SumArray(arr)
	}
}

func BenchmarkNullCheck(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NullCheck(1000)
	}
}
