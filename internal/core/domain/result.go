package domain

import "strings"

// VerificationResult is a set of flags describing what a verification call
// achieved.
type VerificationResult uint8

const (
	ResultNone         VerificationResult = 0
	ResultStandardized VerificationResult = 1 << (iota - 1)
	ResultGeocoded
	ResultNoMatch
	ResultConnectionError
)

// Has reports whether every bit of flag is set.
func (r VerificationResult) Has(flag VerificationResult) bool {
	return flag != ResultNone && r&flag == flag
}

// Verified reports whether the location was standardized.
func (r VerificationResult) Verified() bool {
	return r.Has(ResultStandardized)
}

func (r VerificationResult) String() string {
	if r == ResultNone {
		return "NONE"
	}

	var parts []string
	if r.Has(ResultStandardized) {
		parts = append(parts, "STANDARDIZED")
	}
	if r.Has(ResultGeocoded) {
		parts = append(parts, "GEOCODED")
	}
	if r.Has(ResultNoMatch) {
		parts = append(parts, "NO_MATCH")
	}
	if r.Has(ResultConnectionError) {
		parts = append(parts, "CONNECTION_ERROR")
	}
	return strings.Join(parts, "|")
}
