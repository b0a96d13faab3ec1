package vocal

import (
	"math"
	"math/cmplx"
)

// fft computes an in-place radix-2 decimation-in-time transform.
// len(x) must be a power of two.
func fft(x []complex128) {
	n := len(x)
	if n <= 1 {
		return
	}

	// Bit-reversal permutation
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j |= bit
		if i < j {
			x[i], x[j] = x[j], x[i]
		}
	}

	for length := 2; length <= n; length <<= 1 {
		step := cmplx.Rect(1, -2*math.Pi/float64(length))
		for i := 0; i < n; i += length {
			w := complex(1, 0)
			half := length / 2
			for k := 0; k < half; k++ {
				u := x[i+k]
				v := x[i+k+half] * w
				x[i+k] = u + v
				x[i+k+half] = u - v
				w *= step
			}
		}
	}
}

// strongestBin returns the index of the largest magnitude bin in the
// first half of the spectrum, ignoring the DC component.
func strongestBin(samples []float64) int {
	n := largestPowerOfTwo(len(samples))
	if n < 2 {
		return 0
	}
	x := make([]complex128, n)
	for i := 0; i < n; i++ {
		x[i] = complex(samples[i], 0)
	}
	fft(x)

	best, bestMag := 0, 0.0
	for k := 1; k < n/2; k++ {
		if mag := cmplx.Abs(x[k]); mag > bestMag {
			best, bestMag = k, mag
		}
	}
	return best
}

func largestPowerOfTwo(n int) int {
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}
