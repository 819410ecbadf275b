package location

import (
	"math"
	"regexp"
	"strconv"
)

// space is ECMAScript's \s: ASCII whitespace including \v, every Zs space
// (NBSP, U+2000-U+200A, ...), the line/paragraph separators and the BOM.
// RE2's \s alone is ASCII only.
const space = `[\s\x{0B}\p{Zs}\x{2028}\x{2029}\x{FEFF}]*`

// Report format sent by the tracker: CPR,<lat>,<lng>
var reportPattern = regexp.MustCompile(
	`(?i)^CPR` + space + `,` + space + `([+-]?\d+(?:\.\d+)?)` + space + `,` + space + `([+-]?\d+(?:\.\d+)?)$`,
)

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Parse extracts coordinates from an already trimmed message body. The whole
// body must match; anything else, including values that overflow float64,
// yields ok == false.
func Parse(body string) (Coordinates, bool) {
	m := reportPattern.FindStringSubmatch(body)
	if m == nil {
		return Coordinates{}, false
	}
	lat, ok := parseFinite(m[1])
	if !ok {
		return Coordinates{}, false
	}
	lng, ok := parseFinite(m[2])
	if !ok {
		return Coordinates{}, false
	}
	return Coordinates{Latitude: lat, Longitude: lng}, true
}

func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
