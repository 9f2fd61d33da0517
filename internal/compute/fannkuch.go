package compute

// Fannkuch enumerates every permutation of 0..n-1 and counts, for each, the
// prefix reversals needed to bring 0 to the front. It returns the alternating
// sum of flip counts and the maximum flip count.
func Fannkuch(n int) (checksum, maxFlips int) {
	if n < 1 {
		return 0, 0
	}

	perm := make([]int, n)
	perm1 := make([]int, n)
	count := make([]int, n)
	for i := range perm1 {
		perm1[i] = i
	}

	r := n
	permCount := 0

	for {
		for ; r != 1; r-- {
			count[r-1] = r
		}

		copy(perm, perm1)

		flips := 0
		for k := perm[0]; k != 0; k = perm[0] {
			for i, j := 0, k; i < j; i, j = i+1, j-1 {
				perm[i], perm[j] = perm[j], perm[i]
			}
			flips++
		}

		if flips > maxFlips {
			maxFlips = flips
		}
		if permCount%2 == 0 {
			checksum += flips
		} else {
			checksum -= flips
		}

		// Rotate to the next permutation.
		for {
			if r == n {
				return checksum, maxFlips
			}

			perm0 := perm1[0]
			copy(perm1[:r], perm1[1:r+1])
			perm1[r] = perm0

			count[r]--
			if count[r] > 0 {
				break
			}
			r++
		}

		permCount++
	}
}
