package paytable

import (
	"fmt"
	"strings"
)

// Tier is a scoring tier (1-5 Tai). Higher tiers pay more.
type Tier int

const (
	OneTai Tier = iota + 1
	TwoTai
	ThreeTai
	FourTai
	FiveTai
)

// NumTiers is the number of scoring tiers in a table.
const NumTiers = 5

// Payout holds the two amounts for a tier, in cents.
type Payout struct {
	// Base is the amount a non-shooter loser pays on a discard win
	Base int64

	// Zimo is the amount each loser pays on a self-drawn win
	Zimo int64
}

// Table is a winning system: a fixed payout schedule per tier.
// Tables are immutable once constructed; replacing a room's table
// never rescales past balances.
type Table struct {
	// Name identifies the table ("tenTwenty", "custom", ...)
	Name string

	// Payouts holds the schedule, index 0 = 1 Tai
	Payouts [NumTiers]Payout
}

// Payout returns the payout pair for a tier.
func (t *Table) Payout(tier Tier) Payout {
	return t.Payouts[tier-1]
}

// Amount returns the base or zimo amount for a tier, in cents.
func (t *Table) Amount(tier Tier, zimo bool) int64 {
	p := t.Payout(tier)
	if zimo {
		return p.Zimo
	}
	return p.Base
}

// maxFractionDigits is the precision accepted for custom table amounts.
const maxFractionDigits = 2

// customTokenCount is the number of amounts a custom table needs:
// base and zimo for each of the five tiers, in tier order.
const customTokenCount = NumTiers * 2

// ParseCustom builds a custom table from ten whitespace-separated decimal
// amounts: 1Tai-base 1Tai-zimo 2Tai-base 2Tai-zimo ... 5Tai-base 5Tai-zimo.
// Each amount must be a non-negative decimal with at most two fractional
// digits. Malformed input returns an error and no table.
func ParseCustom(input string) (*Table, error) {
	tokens := strings.Fields(input)
	if len(tokens) != customTokenCount {
		return nil, fmt.Errorf("expected %d amounts, got %d", customTokenCount, len(tokens))
	}

	table := &Table{Name: "custom"}
	for i, token := range tokens {
		cents, err := ParseAmount(token)
		if err != nil {
			return nil, fmt.Errorf("amount %d (%q): %w", i+1, token, err)
		}

		payout := &table.Payouts[i/2]
		if i%2 == 0 {
			payout.Base = cents
		} else {
			payout.Zimo = cents
		}
	}

	return table, nil
}

// ParseAmount parses a non-negative decimal with at most two fractional
// digits into cents.
func ParseAmount(token string) (int64, error) {
	whole, frac, hasFrac := strings.Cut(token, ".")
	if whole == "" && (!hasFrac || frac == "") {
		return 0, fmt.Errorf("not a number")
	}
	if hasFrac && len(frac) > maxFractionDigits {
		return 0, fmt.Errorf("more than %d decimal places", maxFractionDigits)
	}

	cents := int64(0)
	for _, r := range whole {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("not a number")
		}
		cents = cents*10 + int64(r-'0')
		if cents > 1<<40 {
			return 0, fmt.Errorf("amount too large")
		}
	}

	cents *= 100
	scale := int64(10)
	for _, r := range frac {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("not a number")
		}
		cents += int64(r-'0') * scale
		scale /= 10
	}

	return cents, nil
}

// FormatAmount renders cents as a decimal string with trailing
// zeros trimmed ("0.4", "1.25", "16").
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100
	switch {
	case frac == 0:
		return fmt.Sprintf("%s%d", sign, whole)
	case frac%10 == 0:
		return fmt.Sprintf("%s%d.%d", sign, whole, frac/10)
	default:
		return fmt.Sprintf("%s%d.%02d", sign, whole, frac)
	}
}
