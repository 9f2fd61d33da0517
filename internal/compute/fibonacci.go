package compute

// Fibonacci returns fib(n) using the doubly recursive definition. The
// recursion is the workload; do not memoize.
func Fibonacci(n int) int64 {
	if n <= 1 {
		return int64(n)
	}
	return Fibonacci(n-1) + Fibonacci(n-2)
}
