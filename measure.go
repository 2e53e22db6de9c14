package latex

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// cmInPixel is number of pixels in one centimeter at 96 DPI
const cmInPixel = 96 / 2.54

var measure = regexp.MustCompile("^(-?[0-9]*(?:\\.[0-9]+)?)(%|\\\\?[a-z ]*)$")

// pixels is the size of a unit in pixels, em and ex assume 10pt font
var pixels = map[string]float32{
	"px": 1,
	"cm": cmInPixel,
	"mm": cmInPixel / 10,
	"in": cmInPixel * 2.54,
	"pt": 96 / 72.27,
	"bp": 96 / 72.0,
	"pc": 12 * 96 / 72.27,
	"dd": 1238 / 1157.0 * 96 / 72.27,
	"ex": cmInPixel * 0.15132,
	"em": cmInPixel * 0.35146,
}

// Measure parses measurement value, a number and units, for example: 5.1cm, 6em, 0.25\textwidth
func Measure(raw string) (float32, string, error) {
	match := measure.FindStringSubmatch(strings.TrimSpace(raw))
	if len(match) == 0 {
		return 0, "", fmt.Errorf("unable to parse measurement %q", raw)
	}

	number, err := strconv.ParseFloat(match[1], 32)
	if err != nil {
		return 0, "", err
	}

	return float32(number), strings.TrimSpace(match[2]), nil
}

// MeasurePixels converts a length like "5cm" to pixels at 96 DPI.
func MeasurePixels(raw string) (float32, error) {
	n, u, err := Measure(raw)
	if err != nil {
		return 0, err
	}

	return ToPixels(n, u)
}

// ToPixels converts value in absolute units to pixels, relative units such as
// % or \textwidth can not be converted.
func ToPixels(value float32, unit string) (float32, error) {
	size, ok := pixels[unit]
	if !ok {
		return 0, fmt.Errorf("measurement unit %#v is not supported", unit)
	}

	return value * size, nil
}
