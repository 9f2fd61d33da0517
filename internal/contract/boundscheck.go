package contract

// OutOfRange is returned by SafeAccess for an index outside the array.
const OutOfRange = -1

// NewSequence returns an array holding 1..size.
func NewSequence(size int) []int32 {
	arr := make([]int32, size)
	for i := range arr {
		arr[i] = int32(i + 1)
	}
	return arr
}

// SafeAccess reads arr[index] after an explicit range check, returning
// OutOfRange instead of faulting. It stays out of line so the check is paid
// on every call.
//
//go:noinline
func SafeAccess(arr []int32, index int) int32 {
	if index < 0 || index >= len(arr) {
		return OutOfRange
	}
	return arr[index]
}

// SumArray adds every element of arr through SafeAccess.
func SumArray(arr []int32) int64 {
	var sum int64
	for i := 0; i < len(arr); i++ {
		sum += int64(SafeAccess(arr, i))
	}
	return sum
}

// BoundsCheck sums an array of 1..size the given number of times.
func BoundsCheck(size, iterations int) int64 {
	arr := NewSequence(size)

	var total int64
	for iter := 0; iter < iterations; iter++ {
		total += SumArray(arr)
	}
	return total
}
