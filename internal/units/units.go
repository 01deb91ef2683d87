// Package units converts between display amounts (coins) and the integer
// minor units ("sats") persisted by the ledger.
package units

import (
	"errors"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// SatsPerCoin is the number of minor units in one coin.
const SatsPerCoin = 100_000_000

// Decimals is the number of fractional digits a coin amount can carry.
const Decimals = 8

// ErrMalformedAmount is returned by ParseAmount for input that is not a
// non-negative decimal with at most eight fractional digits.
var ErrMalformedAmount = errors.New("malformed amount")

var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,8})?$`)

var (
	satsPerCoin = decimal.NewFromInt(SatsPerCoin)
	maxSats     = decimal.NewFromInt(math.MaxInt64)
)

// ToMinorUnits converts a decimal coin amount to sats, rounding half away from
// zero. It never fails: unparsable input yields 0, so callers validate the
// format first (see ParseAmount).
func ToMinorUnits(coins string) int64 {
	d, err := decimal.NewFromString(strings.TrimSpace(coins))
	if err != nil {
		return 0
	}
	return d.Mul(satsPerCoin).Round(0).IntPart()
}

// FromMinorUnits formats sats as a coin amount with exactly eight fractional
// digits.
func FromMinorUnits(sats int64) string {
	return decimal.New(sats, -Decimals).StringFixed(Decimals)
}

// ParseAmount validates a coin amount and converts it to sats. Zero,
// negative and values beyond the int64 range of sats are rejected.
func ParseAmount(coins string) (int64, error) {
	coins = strings.TrimSpace(coins)
	if !amountPattern.MatchString(coins) {
		return 0, ErrMalformedAmount
	}
	d, err := decimal.NewFromString(coins)
	if err != nil {
		return 0, ErrMalformedAmount
	}
	sats := d.Mul(satsPerCoin).Round(0)
	if !sats.IsPositive() || sats.GreaterThan(maxSats) {
		return 0, ErrMalformedAmount
	}
	return sats.IntPart(), nil
}
