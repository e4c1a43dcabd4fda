package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/width"
)

// maxYen bounds amounts so they fit in an int on every platform.
var maxYen = decimal.NewFromInt(math.MaxInt32)

var yenReplacer = strings.NewReplacer(
	"円", "",
	"¥", "",
	"\\", "",
	",", "",
	" ", "",
)

// absentMarkers are values export formats use for an empty amount column.
var absentMarkers = map[string]bool{"": true, "-": true}

// ParseYen parses an integer yen amount such as "129円", "¥1,234", "-195"
// or full width "１２９円". Fractional amounts are rejected.
func ParseYen(value string) (int, error) {
	normalized := normalizeAmount(value)
	if absentMarkers[normalized] {
		return 0, fmt.Errorf("amount is empty")
	}
	dec, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0, fmt.Errorf("invalid amount string '%s': %w", value, err)
	}
	if !dec.Equal(dec.Truncate(0)) {
		return 0, fmt.Errorf("amount '%s' is not a whole yen value", value)
	}
	if dec.Abs().GreaterThan(maxYen) {
		return 0, fmt.Errorf("amount '%s' is out of range", value)
	}
	return int(dec.IntPart()), nil
}

// ParseOptionalYen is ParseYen for columns that may legitimately be empty.
// An absent value yields nil.
func ParseOptionalYen(value string) (*int, error) {
	if absentMarkers[normalizeAmount(value)] {
		return nil, nil
	}
	amount, err := ParseYen(value)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

// Abs returns the magnitude of a yen amount.
func Abs(amount int) int {
	if amount < 0 {
		return -amount
	}
	return amount
}

func normalizeAmount(value string) string {
	narrow := width.Narrow.String(strings.TrimSpace(value))
	return yenReplacer.Replace(narrow)
}
