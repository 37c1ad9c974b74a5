// Package engine implements the Luhn mod-10 checksum over sequences of
// ASCII digits, plus the base-36 extension used by ISIN codes. This package
// is internal; external consumers should use the stable facade in pkg/luhn.
package engine
