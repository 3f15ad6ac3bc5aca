// Package boost turns a resampled multiplier series into a per-day lookup
// table and implements the balance-weighted reward boost applied to
// liquidity providers.
//
// Amounts are decimal.Decimal so token balances keep their full precision.
package boost

import (
	"errors"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/cwbudde/algo-lockboost/resample"
)

// MaxExtra caps the additional reward boost a holder can earn.
var MaxExtra = decimal.RequireFromString("1.5")

// Errors returned by NewTable.
var (
	ErrEmptySeries = errors.New("boost: empty series")
	ErrNotDaily    = errors.New("boost: series is not one point per consecutive day")
)

// Table maps whole lock days to multipliers.
type Table struct {
	first  int
	values []decimal.Decimal
}

// NewTable builds a table from a daily series. Multipliers are rounded to
// decimals places exactly as the exported files print them.
func NewTable(s resample.Series, decimals int) (*Table, error) {
	if s.Len() == 0 {
		return nil, ErrEmptySeries
	}

	first := s.X[0]
	if first != math.Trunc(first) {
		return nil, ErrNotDaily
	}

	t := &Table{
		first:  int(first),
		values: make([]decimal.Decimal, s.Len()),
	}

	for i := range s.Len() {
		x, y := s.At(i)
		if x != first+float64(i) {
			return nil, ErrNotDaily
		}

		d, err := decimal.NewFromString(strconv.FormatFloat(y, 'f', decimals, 64))
		if err != nil {
			return nil, err
		}

		t.values[i] = d
	}

	return t, nil
}

// Range returns the first and last day covered.
func (t *Table) Range() (first, last int) {
	return t.first, t.first + len(t.values) - 1
}

// At returns the multiplier for a lock of days. Locks shorter or longer than
// the table range get the first or last multiplier.
func (t *Table) At(days int) decimal.Decimal {
	i := min(max(days-t.first, 0), len(t.values)-1)
	return t.values[i]
}

// Weight returns the vote weight of amount locked for days.
func (t *Table) Weight(amount decimal.Decimal, days int) decimal.Decimal {
	return amount.Mul(t.At(days))
}

// Factor returns the reward boost of a holder owning balance out of supply
// vote weight whose position earns share of the pool rewards:
//
//	1 + min(MaxExtra, MaxExtra * balance / supply / share)
//
// A holder with no share or an empty supply gets no boost.
func Factor(balance, supply, share decimal.Decimal) decimal.Decimal {
	one := decimal.NewFromInt(1)
	if share.Sign() <= 0 || supply.Sign() <= 0 {
		return one
	}

	extra := MaxExtra.Mul(balance).Div(supply).Div(share)

	return one.Add(decimal.Min(MaxExtra, extra))
}

// Apply scales a reward amount by a boost factor.
func Apply(amount, factor decimal.Decimal) decimal.Decimal {
	return amount.Mul(factor)
}
