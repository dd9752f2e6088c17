// Package calculator implements the allocation engine that turns a bill's
// totals into per-person shares.
//
// Two interchangeable strategies are provided:
//
//   - TwoTier: the discount is applied to food first and proportionally to
//     each person's food subtotal; any surplus reduces the shared fees, which
//     are then split equally.
//   - Ratio: every purchase amount is scaled by totalAfter / totalBefore.
//
// All values are float64 and never rounded inside the engine. Use Round2 when
// displaying a value or building a payment payload.
package calculator

import "math"

// Mode identifies an allocation strategy.
type Mode string

const (
	ModeItemized Mode = "itemized"
	ModeRatio    Mode = "ratio"
)

// Person is the engine's view of a participant: an identifier and the
// pre-discount purchase total (personFood).
type Person struct {
	ID   string
	Food float64
}

// Share represents the calculated split for one person.
type Share struct {
	ID            string
	Food          float64
	DiscountShare float64
	FeeShare      float64
	Net           float64
}

// Totals are the bill-level results of an allocation.
type Totals struct {
	TotalFood             float64
	EffectiveFoodDiscount float64
	EffectiveFeeDiscount  float64
	TotalFees             float64
	FeePerPerson          float64
	GrandTotal            float64
}

// Allocation is the output of an Allocator. Totals is nil when there were no
// participants to allocate to.
type Allocation struct {
	Mode   Mode
	Shares []Share
	Totals *Totals
}

// Empty reports whether the allocation has no participants.
func (a Allocation) Empty() bool {
	return len(a.Shares) == 0
}

// Share returns the share for the given person ID.
func (a Allocation) Share(id string) (Share, bool) {
	for _, s := range a.Shares {
		if s.ID == id {
			return s, true
		}
	}
	return Share{}, false
}

// Allocator distributes a bill across participants. Implementations must be
// pure: the same input always yields the same output.
type Allocator interface {
	Mode() Mode
	Allocate(people []Person) Allocation
}

var (
	_ Allocator = TwoTier{}
	_ Allocator = Ratio{}
)

// TwoTier allocates a food-first discount proportionally and splits the fees
// (after any surplus discount) equally.
type TwoTier struct {
	Delivery float64
	Service  float64
	Discount float64
}

// Mode returns ModeItemized.
func (TwoTier) Mode() Mode { return ModeItemized }

// Allocate computes every person's share.
//
// Algorithm:
//   - totalFood = Σ personFood
//   - discount <= totalFood: the whole discount goes to food
//   - otherwise food becomes free and the surplus is taken off the fees
//   - feePerPerson = max(0, (delivery + service - feeDiscount) / n)
//   - net = max(0, personFood - personFood/totalFood*foodDiscount + feePerPerson)
func (t TwoTier) Allocate(people []Person) Allocation {
	alloc := Allocation{Mode: ModeItemized}
	if len(people) == 0 {
		return alloc
	}

	totalFood := sumFood(people)

	foodDiscount, feeDiscount := t.Discount, 0.0
	if t.Discount > totalFood {
		foodDiscount = totalFood
		feeDiscount = t.Discount - totalFood
	}

	totalFees := t.Delivery + t.Service
	feePerPerson := math.Max(0, (totalFees-feeDiscount)/float64(len(people)))

	totals := &Totals{
		TotalFood:             totalFood,
		EffectiveFoodDiscount: foodDiscount,
		EffectiveFeeDiscount:  feeDiscount,
		TotalFees:             totalFees,
		FeePerPerson:          feePerPerson,
	}

	alloc.Shares = make([]Share, len(people))
	for i, p := range people {
		var discountShare float64
		if totalFood > 0 {
			discountShare = (p.Food / totalFood) * foodDiscount
		}
		net := math.Max(0, p.Food-discountShare+feePerPerson)
		alloc.Shares[i] = Share{
			ID:            p.ID,
			Food:          p.Food,
			DiscountShare: discountShare,
			FeeShare:      feePerPerson,
			Net:           net,
		}
		totals.GrandTotal += net
	}

	alloc.Totals = totals
	return alloc
}

// Ratio scales each purchase by TotalAfter / TotalBefore. It has no fee
// bucket; TotalBefore is the amount entered by the user, not the sum of the
// purchases.
type Ratio struct {
	TotalBefore float64
	TotalAfter  float64
}

// Mode returns ModeRatio.
func (Ratio) Mode() Mode { return ModeRatio }

// TotalDiscount is the difference between the two entered totals.
func (r Ratio) TotalDiscount() float64 {
	return r.TotalBefore - r.TotalAfter
}

// Allocate computes share(amount) = amount / totalBefore * totalAfter for
// every person. A zero TotalBefore yields zero shares.
func (r Ratio) Allocate(people []Person) Allocation {
	alloc := Allocation{Mode: ModeRatio}
	if len(people) == 0 {
		return alloc
	}

	totals := &Totals{TotalFood: sumFood(people)}

	alloc.Shares = make([]Share, len(people))
	for i, p := range people {
		var share float64
		if r.TotalBefore != 0 {
			share = (p.Food / r.TotalBefore) * r.TotalAfter
		}
		net := math.Max(0, share)
		alloc.Shares[i] = Share{
			ID:            p.ID,
			Food:          p.Food,
			DiscountShare: p.Food - net,
			Net:           net,
		}
		totals.EffectiveFoodDiscount += p.Food - net
		totals.GrandTotal += net
	}

	alloc.Totals = totals
	return alloc
}

// Round2 rounds to two decimal places. Display and payment payloads only.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sumFood(people []Person) float64 {
	var total float64
	for _, p := range people {
		total += p.Food
	}
	return total
}
