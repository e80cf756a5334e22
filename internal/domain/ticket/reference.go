package ticket

import (
	"fmt"
	"regexp"
	"strconv"
)

// ReferencePrefix prefixes the public-facing rendering of a ticket id.
const ReferencePrefix = "UGC"

var digitRun = regexp.MustCompile(`\d+`)

// ErrNoReferenceDigits is returned when a tracking reference contains no
// digits at all. Callers treat it as a format error, distinct from a
// reference that parses but matches no ticket.
var ErrNoReferenceDigits = fmt.Errorf("reference contains no digits")

// FormatReference renders a ticket id as its public reference,
// e.g. 7 -> "UGC-00000007".
func FormatReference(id uint) string {
	return fmt.Sprintf("%s-%08d", ReferencePrefix, id)
}

// ParseReference extracts a ticket id from a free-text reference.
// Acceptance is lenient: the first run of digits wins, so "UGC-123",
// "123" and "ref:123abc" all resolve to 123.
func ParseReference(ref string) (uint, error) {
	match := digitRun.FindString(ref)
	if match == "" {
		return 0, ErrNoReferenceDigits
	}
	id, err := strconv.ParseUint(match, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("reference number out of range: %s", match)
	}
	return uint(id), nil
}
