package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/carteira/internal/common"
)

// Amount is an exact monetary value in cents. Balances are moved through the
// application as scaled integers so repeated additions never accumulate
// floating-point drift; the database column is NUMERIC(12,2).
type Amount int64

// ParseAmount converts a decimal string ("10", "10.5", "10.50") into an
// Amount. More than two fractional digits, negative values and garbage all
// yield common.ErrorValidation.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, common.ErrorValidation
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" || len(frac) > 2 {
		return 0, common.ErrorValidation
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, common.ErrorValidation
	}
	// The balance column is NUMERIC(12,2), so ten integer digits is the cap.
	if units >= 1e10 {
		return 0, common.ErrorValidation
	}

	cents := int64(0)
	if frac != "" {
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, common.ErrorValidation
		}
		if len(frac) == 1 {
			cents *= 10
		}
	}

	return Amount(units*100 + cents), nil
}

// String renders the amount with two decimal places, e.g. "15.75".
func (a Amount) String() string {
	return fmt.Sprintf("%d.%02d", int64(a)/100, int64(a)%100)
}

// TransitAccount is the per-user fare balance, created lazily on first top-up.
type TransitAccount struct {
	ID                int64
	UserID            int64
	Balance           Amount
	LastTransactionAt *time.Time
}
