package contract

// SafeDivide returns a / b, or false when b is zero.
func SafeDivide(a, b int64) (int64, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

// ChainDivide divides values[0] by each following value in turn. It reports
// false for an empty input or as soon as a divisor is zero.
func ChainDivide(values []int64) (int64, bool) {
	if len(values) == 0 {
		return 0, false
	}

	result := values[0]
	for _, v := range values[1:] {
		q, ok := SafeDivide(result, v)
		if !ok {
			return 0, false
		}
		result = q
	}
	return result, true
}

// ProcessOptional doubles a present value and maps an absent one to zero.
func ProcessOptional(v int64, ok bool) int64 {
	if !ok {
		return 0
	}
	return v * 2
}

// NullCheck runs the optional-value workload for the given number of
// iterations and returns the accumulated sum.
func NullCheck(iterations int) int64 {
	var sum int64
	values := make([]int64, 4)
	for i := 0; i < iterations; i++ {
		n := int64(i)
		values[0] = 1000000
		values[1] = n%10 + 1
		values[2] = n%5 + 1
		values[3] = n%3 + 1
		sum += ProcessOptional(ChainDivide(values))
	}
	return sum
}
