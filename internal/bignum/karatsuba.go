package bignum

import (
	"math/bits"

	"golang.org/x/sync/errgroup"
)

// mulKaratsuba computes a*b over magnitudes by the recursive three-product
// split, bottoming out in the schoolbook loop below the configured
// threshold. Operands are viewed as padded to a common even digit count n
// and split at half = n/2:
//
//	a = a1*B^half + a0,  b = b1*B^half + b0
//	z0 = a0*b0,  z2 = a1*b1,  z1 = (a0+a1)*(b0+b1) - z0 - z2
//	a*b = z2*B^n + z1*B^half + z0
//
// Above the parallel threshold the three subproducts run concurrently.
func mulKaratsuba(a, b []uint64, t Thresholds) []uint64 {
	n := max(len(a), len(b))
	if n < t.Karatsuba {
		return mulSchoolbook(a, b)
	}
	if n%2 != 0 {
		n++
	}
	half := n / 2

	a0, a1 := splitMag(a, half)
	b0, b1 := splitMag(b, half)
	sumA := addMag(a0, a1)
	sumB := addMag(b0, b1)

	var z0, z2, zm []uint64
	if n >= t.Parallel {
		var g errgroup.Group
		g.Go(func() error { z0 = mulKaratsuba(a0, b0, t); return nil })
		g.Go(func() error { z2 = mulKaratsuba(a1, b1, t); return nil })
		g.Go(func() error { zm = mulKaratsuba(sumA, sumB, t); return nil })
		_ = g.Wait()
	} else {
		z0 = mulKaratsuba(a0, b0, t)
		z2 = mulKaratsuba(a1, b1, t)
		zm = mulKaratsuba(sumA, sumB, t)
	}

	// zm >= z0+z2, so the magnitude subtractions cannot borrow through.
	z1 := subMag(subMag(zm, z0), z2)

	out := make([]uint64, 2*n+1)
	addAt(out, z0, 0)
	addAt(out, z1, half)
	addAt(out, z2, n)
	return trimMag(out)
}

// splitMag views d as (hi*B^half + lo) and returns the two halves as
// independent magnitudes. A short d yields a zero high half.
func splitMag(d []uint64, half int) (lo, hi []uint64) {
	if len(d) <= half {
		return trimMag(cloneMag(d)), []uint64{0}
	}
	return trimMag(cloneMag(d[:half])), trimMag(cloneMag(d[half:]))
}

// addAt adds src into dst starting at word offset, rippling the carry to
// the end of dst. dst must be long enough to absorb it.
func addAt(dst, src []uint64, offset int) {
	var carry uint64
	for i := 0; i < len(src); i++ {
		dst[offset+i], carry = bits.Add64(dst[offset+i], src[i], carry)
	}
	for i := offset + len(src); carry != 0; i++ {
		dst[i], carry = bits.Add64(dst[i], 0, carry)
	}
}
