package domain

import (
	"regexp"
	"slices"

	"github.com/shopspring/decimal"
)

// Seat identifiers are row letter + column number, e.g. "A1". The hall layout
// is fixed: rows A-J, nine columns per row.
var seatRgx = regexp.MustCompile(`^([A-J])([1-9])$`)

type SeatCategory string

const (
	SeatCategoryVIP      SeatCategory = "VIP"
	SeatCategoryPremium  SeatCategory = "PREMIUM"
	SeatCategoryStandard SeatCategory = "STANDARD"
)

// Fallback ticket prices per category, used when a show carries no explicit
// price of its own.
var categoryPrices = map[SeatCategory]decimal.Decimal{
	SeatCategoryVIP:      decimal.NewFromInt(300),
	SeatCategoryPremium:  decimal.NewFromInt(250),
	SeatCategoryStandard: decimal.NewFromInt(180),
}

func ValidSeatID(seat string) bool {
	return seatRgx.MatchString(seat)
}

// SeatCategoryOf is a pure function of the row letter: A,B are VIP, C,D,E are
// PREMIUM, everything else STANDARD.
func SeatCategoryOf(seat string) SeatCategory {
	if seat == "" {
		return SeatCategoryStandard
	}

	switch seat[0] {
	case 'A', 'B':
		return SeatCategoryVIP
	case 'C', 'D', 'E':
		return SeatCategoryPremium
	default:
		return SeatCategoryStandard
	}
}

func SeatCategoryPrice(category SeatCategory) decimal.Decimal {
	price, ok := categoryPrices[category]
	if !ok {
		return categoryPrices[SeatCategoryStandard]
	}

	return price
}

// TotalAmount computes the amount for a seat list: seat count times the show
// price, or the sum of per-category fallback prices when the show has none.
func TotalAmount(seats []string, showPrice decimal.Decimal) decimal.Decimal {
	if showPrice.IsPositive() {
		return showPrice.Mul(decimal.NewFromInt(int64(len(seats))))
	}

	total := decimal.Zero
	for _, seat := range seats {
		total = total.Add(SeatCategoryPrice(SeatCategoryOf(seat)))
	}

	return total
}

// NormalizeSeats returns a sorted copy with duplicates collapsed, the
// canonical form stored in a show's occupied set.
func NormalizeSeats(seats []string) []string {
	normalized := slices.Clone(seats)
	slices.Sort(normalized)

	return slices.Compact(normalized)
}

// IntersectSeats returns the seats present in both lists, in the order they
// appear in the first.
func IntersectSeats(seats, others []string) []string {
	conflicts := make([]string, 0)
	for _, seat := range seats {
		if slices.Contains(others, seat) {
			conflicts = append(conflicts, seat)
		}
	}

	return conflicts
}

// UnionSeats merges two seat lists into canonical form.
func UnionSeats(seats, others []string) []string {
	return NormalizeSeats(append(slices.Clone(seats), others...))
}

// DifferenceSeats removes every seat in others from seats. Removal is by seat
// identifier, never by position, so it is order-independent.
func DifferenceSeats(seats, others []string) []string {
	remaining := make([]string, 0, len(seats))
	for _, seat := range seats {
		if !slices.Contains(others, seat) {
			remaining = append(remaining, seat)
		}
	}

	return remaining
}
