package types

import (
	"math"
	"math/big"

	sdkerrors "cosmossdk.io/errors"
	"github.com/shopspring/decimal"
)

// OperationalFee is the bridge fee in percent.
const OperationalFee = 0.1

var (
	// OperationalFee percent as a fraction
	feeRate   = decimal.New(1, -3)
	maxUint64 = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)
)

// ApplyFee splits a UI amount into (amount after fee, fee).
func ApplyFee(amount float64) (float64, float64) {
	fee := OperationalFee * amount / 100
	return amount - fee, fee
}

// ApplyFeeLamports splits a base unit amount into (amount after fee, fee). Both
// parts are truncated toward zero, so they sum to amount or amount-1.
func ApplyFeeLamports(amount uint64, decimals uint8) (uint64, uint64) {
	ui := decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -int32(decimals))
	fee := ui.Mul(feeRate)
	after := ui.Sub(fee)
	return toBaseUnits(after, decimals), toBaseUnits(fee, decimals)
}

func toBaseUnits(ui decimal.Decimal, decimals uint8) uint64 {
	return ui.Shift(int32(decimals)).Truncate(0).BigInt().Uint64()
}

// UIAmountToAmount converts a UI amount into base units.
func UIAmountToAmount(ui float64, decimals uint8) (uint64, error) {
	if math.IsNaN(ui) || math.IsInf(ui, 0) || ui < 0 {
		return 0, sdkerrors.Wrapf(ErrInvalidAmount, "ui amount %v", ui)
	}
	amount := decimal.NewFromFloat(ui).Shift(int32(decimals)).Truncate(0)
	if amount.GreaterThan(maxUint64) {
		return 0, sdkerrors.Wrapf(ErrInvalidAmount, "ui amount %v with %d decimals overflows", ui, decimals)
	}
	return amount.BigInt().Uint64(), nil
}

// AmountToUIAmount converts base units into a UI amount.
func AmountToUIAmount(amount uint64, decimals uint8) float64 {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -int32(decimals)).InexactFloat64()
}
