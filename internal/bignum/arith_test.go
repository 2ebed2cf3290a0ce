package bignum

import (
	"math/big"
	"math/rand"
	"testing"
)

// toBig converts an Int to the math/big oracle representation.
func toBig(a Int) *big.Int {
	v := new(big.Int).SetBytes(a.Bytes())
	if a.IsNegative() {
		v.Neg(v)
	}
	return v
}

// fromBig converts a math/big value to an Int.
func fromBig(v *big.Int) Int {
	a := FromBytes(v.Bytes())
	if v.Sign() < 0 {
		a = a.Neg()
	}
	return a
}

// mustHex parses a hex literal or fails the test.
func mustHex(t *testing.T, s string) Int {
	t.Helper()
	v, err := FromHex(s)
	if err != nil {
		t.Fatalf("FromHex(%q): %v", s, err)
	}
	return v
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		want    string
	}{
		{"small", "ff", "1", "100"},
		{"word boundary carry", "ffffffffffffffff", "1", "10000000000000000"},
		{"carry chain", "ffffffffffffffffffffffffffffffff", "1", "100000000000000000000000000000000"},
		{"mixed signs, positive dominates", "10", "-1", "f"},
		{"mixed signs, negative dominates", "1", "-10", "-f"},
		{"cancellation to zero", "abc", "-abc", "0"},
		{"both negative", "-1", "-2", "-3"},
		{"zero identity", "deadbeef", "0", "deadbeef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := mustHex(t, tt.a), mustHex(t, tt.b)
			got := a.Add(b)
			checkInvariants(t, got)
			if got.Hex() != tt.want {
				t.Errorf("%s + %s = %s, want %s", tt.a, tt.b, got.Hex(), tt.want)
			}
		})
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"simple", "100", "1", "ff"},
		{"borrow across words", "10000000000000000", "1", "ffffffffffffffff"},
		{"result flips negative", "1", "2", "-1"},
		{"subtracting a negative adds", "5", "-3", "8"},
		{"self cancellation", "123456789abcdef", "123456789abcdef", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := mustHex(t, tt.a), mustHex(t, tt.b)
			got := a.Sub(b)
			checkInvariants(t, got)
			if got.Hex() != tt.want {
				t.Errorf("%s - %s = %s, want %s", tt.a, tt.b, got.Hex(), tt.want)
			}
		})
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"reference product", "123456789", "abcdef", "c379aaaa375de7"},
		{"by zero", "ffffffffffffffff", "0", "0"},
		{"by one", "ffffffffffffffff", "1", "ffffffffffffffff"},
		{"single word overflow", "ffffffffffffffff", "ffffffffffffffff", "fffffffffffffffe0000000000000001"},
		{"sign xor negative", "-2", "3", "-6"},
		{"sign xor positive", "-2", "-3", "6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := mustHex(t, tt.a), mustHex(t, tt.b)
			got := a.Mul(b)
			checkInvariants(t, got)
			if got.Hex() != tt.want {
				t.Errorf("%s * %s = %s, want %s", tt.a, tt.b, got.Hex(), tt.want)
			}
		})
	}
}

// TestMulSchoolbookCarryPropagation pins the row-carry case that walks
// past the end of the inner loop: every partial product saturates and
// the carry must ripple through the high words.
func TestMulSchoolbookCarryPropagation(t *testing.T) {
	allOnes := fromWords([]uint64{^uint64(0), ^uint64(0), ^uint64(0)}, false)
	got := allOnes.Mul(allOnes)
	want := new(big.Int).Mul(toBig(allOnes), toBig(allOnes))
	if toBig(got).Cmp(want) != 0 {
		t.Errorf("saturated square = %s, want %s", got, want.Text(16))
	}
}

// TestKaratsubaMatchesSchoolbook cross-checks the recursive multiplier
// against the schoolbook loop and the math/big oracle on random operands
// straddling the threshold.
func TestKaratsubaMatchesSchoolbook(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	th := DefaultThresholds()

	for _, digitLen := range []int{1, 7, 8, 9, 16, 33, 64} {
		for trial := 0; trial < 8; trial++ {
			a := randWords(rng, digitLen)
			b := randWords(rng, digitLen)

			ka := mulKaratsuba(a, b, th)
			sb := mulSchoolbook(a, b)
			if cmpMag(ka, sb) != 0 {
				t.Fatalf("len=%d: karatsuba %v != schoolbook %v", digitLen, ka, sb)
			}

			av, bv := fromWords(a, false), fromWords(b, false)
			want := new(big.Int).Mul(toBig(av), toBig(bv))
			if toBig(av.Mul(bv)).Cmp(want) != 0 {
				t.Fatalf("len=%d: Mul disagrees with math/big", digitLen)
			}
		}
	}
}

// TestKaratsubaUnevenOperands covers the padding path where one operand
// is much shorter than the other.
func TestKaratsubaUnevenOperands(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	a := fromWords(randWords(rng, 30), false)
	b := fromWords(randWords(rng, 3), false)
	want := new(big.Int).Mul(toBig(a), toBig(b))
	if got := a.Mul(b); toBig(got).Cmp(want) != 0 {
		t.Errorf("uneven product = %s, want %s", got, want.Text(16))
	}
}

// TestParallelKaratsuba forces the concurrent subproduct path with a low
// parallel threshold.
func TestParallelKaratsuba(t *testing.T) {
	SetThresholds(Thresholds{Parallel: 8})
	defer SetThresholds(DefaultThresholds())

	rng := rand.New(rand.NewSource(13))
	a := fromWords(randWords(rng, 40), false)
	b := fromWords(randWords(rng, 40), false)
	want := new(big.Int).Mul(toBig(a), toBig(b))
	if got := a.Mul(b); toBig(got).Cmp(want) != 0 {
		t.Errorf("parallel product = %s, want %s", got, want.Text(16))
	}
}

func randWords(rng *rand.Rand, n int) []uint64 {
	w := make([]uint64, n)
	for i := range w {
		w[i] = rng.Uint64()
	}
	if w[n-1] == 0 {
		w[n-1] = 1
	}
	return w
}

// TestOperandsAreNotAliased pins the purity contract: results never share
// storage with their inputs.
func TestOperandsAreNotAliased(t *testing.T) {
	a := mustHex(t, "ffffffffffffffff0000000000000001")
	before := a.Hex()

	_ = a.Add(One())
	_ = a.Sub(One())
	_ = a.Mul(Two())
	_ = a.Shl(3)
	_ = a.Neg()

	if a.Hex() != before {
		t.Errorf("operand mutated: %s -> %s", before, a.Hex())
	}
}
