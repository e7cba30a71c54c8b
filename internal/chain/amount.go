package chain

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

var weiPerEther = decimal.New(1, 18)

// ParseEther converts a whole-currency decimal string ("0.001") to wei.
func ParseEther(amount string) (*big.Int, error) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	if !parsed.IsPositive() {
		return nil, fmt.Errorf("amount %q is not positive", amount)
	}
	wei := parsed.Mul(weiPerEther)
	if !wei.IsInteger() {
		return nil, fmt.Errorf("amount %q has sub-wei precision", amount)
	}
	return wei.BigInt(), nil
}
