package luhn

import "github.com/varalys/luhn/internal/engine"

// ErrInvalidInput reports input the checksum is undefined for: an empty
// sequence or a byte outside the accepted alphabet. Callers can match it
// with errors.Is.
var ErrInvalidInput = engine.ErrInvalidInput

// Validate reports whether seq, a non-empty string of ASCII digits,
// satisfies the Luhn formula.
func Validate(seq []byte) (bool, error) { return engine.Validate(seq) }

// Checksum returns the decimal check digit that completes payload.
func Checksum(payload []byte) (byte, error) { return engine.Checksum(payload) }

// ValidateAlphanumeric is Validate over the base-36 alphabet '0'-'9' and
// 'A'-'Z', as used by ISIN codes.
func ValidateAlphanumeric(seq []byte) (bool, error) { return engine.ValidateAlphanumeric(seq) }

// ChecksumAlphanumeric is Checksum over the base-36 alphabet. The check
// digit is always decimal.
func ChecksumAlphanumeric(payload []byte) (byte, error) {
	return engine.ChecksumAlphanumeric(payload)
}

// Valid is a lenient convenience: it returns false for malformed input
// rather than an error. It accepts the base-36 alphabet, so plain digit
// strings work too.
func Valid(s string) bool { return engine.Valid(s) }

// Generate returns a random digit sequence of the given total length whose
// final digit is a correct check digit. length must be at least 2.
func Generate(length int) (string, error) { return engine.Generate(length) }
