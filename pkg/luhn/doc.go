// Package luhn provides a small, stable facade over the internal checksum
// engine for external integrations. It deliberately re-exports a narrow API
// surface so other programs can depend on a stable import path without
// reaching into internal implementation packages.
//
// Example:
//
//	if luhn.Valid("4111111111111111") {
//		// sequence checks out
//	}
//	d, err := luhn.Checksum([]byte("7992739871"))
//	if err != nil { /* handle */ }
//	fmt.Printf("check digit: %c\n", d)
package luhn
