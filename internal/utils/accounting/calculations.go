package accounting

import (
	"errors"
	"fmt"

	"github.com/nvallejos/contable/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidRate indicates a non-positive exchange rate applied to a nonzero amount.
var ErrInvalidRate = errors.New("exchange rate must be positive")

// Round2 applies the single rounding rule used everywhere balances are
// compared: two decimal places, round-half-to-even. Mixing rounding modes is
// the classic source of off-by-a-cent imbalances, so every amount that
// participates in a comparison goes through here.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

// ToReportingCurrency converts a secondary-currency amount to the reporting
// currency by dividing it by the rate (e.g. 150000 at rate 1500 -> 100.00).
func ToReportingCurrency(nativeAmount, rate decimal.Decimal) (decimal.Decimal, error) {
	if nativeAmount.IsZero() {
		return decimal.Zero, nil
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: got %s", ErrInvalidRate, rate.String())
	}
	return Round2(nativeAmount.Div(rate)), nil
}

// SignedBalance applies the balance-sign convention for an account nature:
//
//	DEBIT-natured  -> sum(debit) - sum(credit)
//	CREDIT-natured -> sum(credit) - sum(debit)
//
// This is the only place the convention lives; services and repositories must
// call it rather than re-deriving signs.
func SignedBalance(nature domain.AccountNature, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	switch nature {
	case domain.NatureDebit:
		return debit.Sub(credit), nil
	case domain.NatureCredit:
		return credit.Sub(debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account nature '%s'", nature)
	}
}

// SignedAmount returns the signed effect of a single movement on an account
// of the given nature.
func SignedAmount(m domain.Movement, nature domain.AccountNature) (decimal.Decimal, error) {
	return SignedBalance(nature, m.Debit, m.Credit)
}
