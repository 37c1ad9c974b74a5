package engine

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// ErrInvalidInput marks a sequence that cannot be checksummed at all: empty,
// or containing a byte outside the accepted alphabet. Callers match it with
// errors.Is to tell malformed input apart from a failed check.
var ErrInvalidInput = errors.New("invalid input")

// Validate reports whether seq carries a correct Luhn check digit in its
// final position. Accepts ASCII digits '0'..'9' only.
func Validate(seq []byte) (bool, error) {
	sum, err := weightedSum(seq, 0, false)
	if err != nil {
		return false, err
	}
	return sum%10 == 0, nil
}

// Checksum computes the Luhn check digit for payload and returns it as an
// ASCII digit, ready to append. Accepts ASCII digits '0'..'9' only.
func Checksum(payload []byte) (byte, error) {
	sum, err := weightedSum(payload, 1, false)
	if err != nil {
		return 0, err
	}
	return checkDigit(sum), nil
}

// ValidateAlphanumeric is Validate over the base-36 alphabet '0'..'9' and
// 'A'..'Z', as used by ISIN codes. A letter contributes both decimal digits
// of its value 10..35.
func ValidateAlphanumeric(seq []byte) (bool, error) {
	sum, err := weightedSum(seq, 0, true)
	if err != nil {
		return false, err
	}
	return sum%10 == 0, nil
}

// ChecksumAlphanumeric computes the check digit for a base-36 payload. The
// check digit itself is always decimal.
func ChecksumAlphanumeric(payload []byte) (byte, error) {
	sum, err := weightedSum(payload, 1, true)
	if err != nil {
		return 0, err
	}
	return checkDigit(sum), nil
}

// Valid reports whether s carries a correct check digit over the base-36
// alphabet. Unlike the strict pair it never returns an error: malformed
// input is simply not valid.
func Valid(s string) bool {
	ok, err := ValidateAlphanumeric([]byte(s))
	return err == nil && ok
}

// Generate returns a random decimal sequence of the given total length whose
// final digit is a correct check digit. Leading zeros are allowed. length
// must be at least 2.
func Generate(length int) (string, error) {
	if length < 2 {
		return "", fmt.Errorf("sequence length must be at least 2, got %d", length)
	}
	buf := make([]byte, length)
	raw := make([]byte, length-1)
	filled := 0
	for filled < length-1 {
		if _, err := rand.Read(raw); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		filled += digitsFrom(raw, buf[filled:length-1])
	}
	d, err := Checksum(buf[:length-1])
	if err != nil {
		return "", err
	}
	buf[length-1] = d
	return string(buf), nil
}

// digitsFrom fills dst with ASCII digits derived from the random bytes in raw
// and returns how many it wrote. Source bytes of 250 and above are discarded:
// 256 is not a multiple of 10, so folding them in would favor the digits 0
// through 5.
func digitsFrom(raw, dst []byte) int {
	n := 0
	for _, b := range raw {
		if n == len(dst) {
			break
		}
		if b >= 250 {
			continue
		}
		dst[n] = '0' + b%10
		n++
	}
	return n
}

// weightedSum folds seq right to left, doubling every second digit counted
// from the parity anchor shift: 0 when the rightmost byte is the check digit,
// 1 when the check digit is still to come. Doubled digits above 9 fold back
// by subtracting 9. A letter expands to the two decimal digits of its base-36
// value, ones digit first since the walk runs right to left.
func weightedSum(seq []byte, shift int, alphanumeric bool) (int, error) {
	if len(seq) == 0 {
		return 0, fmt.Errorf("%w: empty sequence", ErrInvalidInput)
	}
	sum := 0
	pos := shift
	for i := len(seq) - 1; i >= 0; i-- {
		c := seq[i]
		switch {
		case c >= '0' && c <= '9':
			sum += weighted(int(c-'0'), pos)
			pos++
		case alphanumeric && c >= 'A' && c <= 'Z':
			v := int(c-'A') + 10
			sum += weighted(v%10, pos)
			pos++
			sum += weighted(v/10, pos)
			pos++
		default:
			return 0, fmt.Errorf("%w: byte %q at index %d", ErrInvalidInput, c, i)
		}
	}
	return sum, nil
}

func weighted(d, pos int) int {
	if pos%2 == 1 {
		d *= 2
		if d > 9 {
			d -= 9
		}
	}
	return d
}

func checkDigit(sum int) byte {
	return '0' + byte((10-sum%10)%10)
}
