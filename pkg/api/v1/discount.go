package apiv1

import "github.com/mmynk/billsplit/pkg/money"

// Buyer is a participant of a flat bill with their computed share.
type Buyer struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Paid     bool    `json:"paid"`
	Discount float64 `json:"discount"`
	Share    float64 `json:"share"`
}

// DiscountView is the full flat bill as shown to the user.
type DiscountView struct {
	TotalBefore   float64  `json:"totalBefore"`
	TotalAfter    float64  `json:"totalAfter"`
	TotalDiscount float64  `json:"totalDiscount"`
	People        []Buyer  `json:"people"`
	Totals        *Totals  `json:"totals,omitempty"`
	Payments      Payments `json:"payments"`
}

type GetDiscountRequest struct{}

type SetTotalsRequest struct {
	TotalBefore money.Amount `json:"totalBefore"`
	TotalAfter  money.Amount `json:"totalAfter"`
}

// AdjustAmountRequest adds Delta to the named buyer, creating them if
// needed. An empty name or zero delta is ignored.
type AdjustAmountRequest struct {
	Name  string       `json:"name"`
	Delta money.Amount `json:"delta"`
}

// SetAmountRequest overwrites the amount of the buyer at Index.
type SetAmountRequest struct {
	Index  int          `json:"index"`
	Amount money.Amount `json:"amount"`
}

type RemoveBuyerRequest struct {
	Name string `json:"name"`
}

type ToggleBuyerPaidRequest struct {
	Name string `json:"name"`
}

type ResetDiscountRequest struct{}

// DiscountResponse is returned by every DiscountService call.
type DiscountResponse struct {
	Discount DiscountView `json:"discount"`
}
