package session

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
)

// subunitDigits is the number of decimal places of one coin.
const subunitDigits = 8

// ParseAmount converts a decimal coin amount such as "1.5" into subunits.
// Zero, signs, exponents, more than eight decimal places and amounts above
// the coin supply are rejected with ErrInvalidAmount.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	whole, frac, hasDot := strings.Cut(s, ".")
	if whole == "" || (hasDot && frac == "") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if len(frac) > subunitDigits {
		return 0, fmt.Errorf("%w: more than %d decimal places", ErrInvalidAmount, subunitDigits)
	}

	var value int64
	digits := whole + frac + strings.Repeat("0", subunitDigits-len(frac))
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		value = value*10 + int64(c-'0')
		if value > btcutil.MaxSatoshi {
			return 0, fmt.Errorf("%w: above coin supply", ErrInvalidAmount)
		}
	}

	if value == 0 {
		return 0, fmt.Errorf("%w: must be positive", ErrInvalidAmount)
	}
	return value, nil
}

// FormatAmount renders subunits as a decimal coin amount.
func FormatAmount(subunits int64) string {
	return btcutil.Amount(subunits).Format(btcutil.AmountBTC)
}
