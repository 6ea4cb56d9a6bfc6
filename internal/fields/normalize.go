package fields

import (
	"regexp"
	"strings"
	"time"
)

var (
	reSpace     = regexp.MustCompile(`\s+`)
	reRUTJunk   = regexp.MustCompile(`[.\s]`)
	rePlateJunk = regexp.MustCompile(`[^A-Z0-9]`)

	// canonical forms
	reRUTCanon = regexp.MustCompile(`^\d{7,8}-[\dK]$`)
	// old PPU AA·1234 and new BBBB·12
	rePlateCanon = regexp.MustCompile(`^[A-Z]{2}\d{4}$|^[A-Z]{4}\d{2}$`)
)

// CollapseSpace trims and collapses runs of whitespace.
func CollapseSpace(s string) string {
	return strings.TrimSpace(reSpace.ReplaceAllString(s, " "))
}

// NormalizeRUT canonicalizes a Chilean national id: dots and spaces
// stripped, verifier uppercased, dash inserted before the verifier when
// missing. Returns "" when the result is not a plausible RUT.
func NormalizeRUT(raw string) string {
	s := strings.ToUpper(reRUTJunk.ReplaceAllString(raw, ""))
	if s == "" {
		return ""
	}
	if !strings.Contains(s, "-") && len(s) >= 2 {
		s = s[:len(s)-1] + "-" + s[len(s)-1:]
	}
	if !reRUTCanon.MatchString(s) {
		return ""
	}
	return s
}

// NormalizePlate canonicalizes a vehicle plate (PPU): uppercase, separators
// stripped. Returns "" when the result matches no Chilean plate format.
func NormalizePlate(raw string) string {
	s := rePlateJunk.ReplaceAllString(strings.ToUpper(raw), "")
	if !rePlateCanon.MatchString(s) {
		return ""
	}
	return s
}

// plausibleYear treats out-of-range years as absent, not erroneous.
func plausibleYear(y int) bool {
	return y >= 1900 && y <= time.Now().Year()+1
}
