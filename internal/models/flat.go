package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/mmynk/billsplit/pkg/money"
)

// FlatPerson is a participant in a flat bill, identified by name.
type FlatPerson struct {
	Name   string       `json:"name"`
	Amount money.Amount `json:"amount"`
	Paid   Flag         `json:"paid"`
}

// FlatBill is the ratio-based "current bill": each person's purchase is
// scaled by TotalAfter / TotalBefore.
type FlatBill struct {
	TotalBefore money.Amount `json:"totalBefore"`
	TotalAfter  money.Amount `json:"totalAfter"`
	People      []FlatPerson `json:"people"`
}

// NewFlatBill returns an empty flat bill.
func NewFlatBill() *FlatBill {
	f := &FlatBill{}
	f.Normalize()
	return f
}

// Normalize replaces a nil people list with an empty one.
func (f *FlatBill) Normalize() {
	if f.People == nil {
		f.People = []FlatPerson{}
	}
}

// Clone returns a deep copy of the flat bill.
func (f *FlatBill) Clone() *FlatBill {
	c := *f
	c.People = append([]FlatPerson{}, f.People...)
	return &c
}

// PaidAt reports whether the i-th entry has paid. Entries sharing a name
// are counted separately.
func (f *FlatBill) PaidAt(i int) bool {
	return i >= 0 && i < len(f.People) && bool(f.People[i].Paid)
}

// Adjust adds delta to the named person's amount, creating the person when
// needed. The result never drops below zero. An empty name or a zero delta
// is ignored; Adjust reports whether anything changed.
func (f *FlatBill) Adjust(name string, delta money.Amount) bool {
	name = strings.TrimSpace(name)
	if name == "" || delta == 0 {
		return false
	}
	found := false
	for i := range f.People {
		if f.People[i].Name == name {
			f.People[i].Amount = money.Amount(math.Max(float64(f.People[i].Amount+delta), 0))
			found = true
		}
	}
	if !found {
		f.People = append(f.People, FlatPerson{
			Name:   name,
			Amount: money.Amount(math.Max(float64(delta), 0)),
		})
	}
	return true
}

// SetAmount overwrites the amount of the entry at index.
func (f *FlatBill) SetAmount(index int, amount money.Amount) error {
	if index < 0 || index >= len(f.People) {
		return fmt.Errorf("%w: index %d", ErrPersonNotFound, index)
	}
	f.People[index].Amount = amount
	return nil
}

// Remove deletes every entry with the given name.
func (f *FlatBill) Remove(name string) error {
	kept := f.People[:0]
	for _, p := range f.People {
		if p.Name != name {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(f.People) {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, name)
	}
	f.People = kept
	return nil
}

// TogglePaid flips the paid flag of every entry with the given name.
func (f *FlatBill) TogglePaid(name string) error {
	found := false
	for i := range f.People {
		if f.People[i].Name == name {
			f.People[i].Paid = !f.People[i].Paid
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, name)
	}
	return nil
}
