package session

import (
	"context"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/storage"
)

type (
	// Itemized owns the itemized bill.
	Itemized = Session[*models.Bill]
	// Flat owns the flat, ratio-based bill.
	Flat = Session[*models.FlatBill]
)

// NewItemized loads the itemized bill stored under key.
func NewItemized(ctx context.Context, kv storage.KV, key string) *Itemized {
	return New(ctx, storage.NewDocument(kv, key, models.NewBill), ItemizedInput)
}

// NewFlat loads the flat bill stored under key.
func NewFlat(ctx context.Context, kv storage.KV, key string) *Flat {
	return New(ctx, storage.NewDocument(kv, key, models.NewFlatBill), FlatInput)
}

// ItemizedInput allocates an itemized bill with the two-tier strategy.
func ItemizedInput(b *models.Bill) (calculator.Allocator, []calculator.Person) {
	people := make([]calculator.Person, len(b.People))
	for i, p := range b.People {
		people[i] = calculator.Person{ID: p.ID, Food: p.Food()}
	}
	return calculator.TwoTier{
		Delivery: b.BillConfig.Delivery.Float64(),
		Service:  b.BillConfig.Service.Float64(),
		Discount: b.BillConfig.Discount.Float64(),
	}, people
}

// FlatInput allocates a flat bill with the ratio strategy. People are
// identified by name.
func FlatInput(f *models.FlatBill) (calculator.Allocator, []calculator.Person) {
	people := make([]calculator.Person, len(f.People))
	for i, p := range f.People {
		people[i] = calculator.Person{ID: p.Name, Food: p.Amount.Float64()}
	}
	return calculator.Ratio{
		TotalBefore: f.TotalBefore.Float64(),
		TotalAfter:  f.TotalAfter.Float64(),
	}, people
}
