// sort.go - Constant-time int32 sort used by the HPS fixed-weight sampler.

package ntru

// int32Minmax swaps *a and *b if necessary so that *a <= *b afterwards,
// using only arithmetic (no branch) on the comparison result.
func int32Minmax(a, b *int32) {
	ab := *b ^ *a
	c := int32(int64(*b) - int64(*a))
	c ^= ab & (c ^ *b)
	c >>= 31
	c &= ab
	*a ^= c
	*b ^= c
}

// cryptoSortInt32 sorts x ascending in constant time (a Batcher
// odd-even merge network), so that the final position of any element
// never reveals which comparisons placed it there. Every comparison
// in the network executes regardless of the data, which is what
// sampleFixedType relies on to hide which input positions carried
// which tag.
func cryptoSortInt32(x []int32) {
	n := int64(len(x))
	if n < 2 {
		return
	}

	var top int64 = 1
	for top < n-top {
		top += top
	}

	for p := top; p >= 1; p >>= 1 {
		var i int64
		for i = 0; i+2*p <= n; i += 2 * p {
			for j := i; j < i+p; j++ {
				int32Minmax(&x[j], &x[j+p])
			}
		}
		for j := i; j < n-p; j++ {
			int32Minmax(&x[j], &x[j+p])
		}

		i, j := int64(0), int64(0)
		for q := top; q > p; q >>= 1 {
			if j != i {
				for {
					if j == n-q {
						goto nextQ
					}
					a := x[j+p]
					for r := q; r > p; r >>= 1 {
						int32Minmax(&a, &x[j+r])
					}
					x[j+p] = a
					j++
					if j == i+p {
						i += 2 * p
						break
					}
				}
			}
			for i+p <= n-q {
				for j = i; j < i+p; j++ {
					a := x[j+p]
					for r := q; r > p; r >>= 1 {
						int32Minmax(&a, &x[j+r])
					}
					x[j+p] = a
				}
				i += 2 * p
			}
			// now i+p > n-q
			for j = i; j < n-q; j++ {
				a := x[j+p]
				for r := q; r > p; r >>= 1 {
					int32Minmax(&a, &x[j+r])
				}
				x[j+p] = a
			}
		nextQ:
			continue
		}
	}
}
