package calculator

import (
	"math"
	"reflect"
	"testing"
)

const tolerance = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestTwoTierAllocate(t *testing.T) {
	tests := []struct {
		name         string
		strategy     TwoTier
		people       []Person
		validateFunc func(t *testing.T, a Allocation)
	}{
		{
			name:     "discount within food total",
			strategy: TwoTier{Delivery: 40, Service: 10, Discount: 100},
			people:   []Person{{ID: "A", Food: 300}, {ID: "B", Food: 200}},
			validateFunc: func(t *testing.T, a Allocation) {
				// totalFood = 500, feePerPerson = 50 / 2 = 25
				// A: 300 - 60 + 25 = 265, B: 200 - 40 + 25 = 185
				if !approx(a.Totals.TotalFood, 500) {
					t.Errorf("TotalFood = %v, want 500", a.Totals.TotalFood)
				}
				if !approx(a.Totals.EffectiveFoodDiscount, 100) || a.Totals.EffectiveFeeDiscount != 0 {
					t.Errorf("discounts = %v/%v, want 100/0", a.Totals.EffectiveFoodDiscount, a.Totals.EffectiveFeeDiscount)
				}
				if !approx(a.Totals.FeePerPerson, 25) {
					t.Errorf("FeePerPerson = %v, want 25", a.Totals.FeePerPerson)
				}
				want := map[string][2]float64{"A": {60, 265}, "B": {40, 185}}
				for _, s := range a.Shares {
					if !approx(s.DiscountShare, want[s.ID][0]) {
						t.Errorf("%s discount share = %v, want %v", s.ID, s.DiscountShare, want[s.ID][0])
					}
					if !approx(s.Net, want[s.ID][1]) {
						t.Errorf("%s net = %v, want %v", s.ID, s.Net, want[s.ID][1])
					}
				}
				if !approx(a.Totals.GrandTotal, 450) {
					t.Errorf("GrandTotal = %v, want 450", a.Totals.GrandTotal)
				}
			},
		},
		{
			name:     "discount exceeds food total",
			strategy: TwoTier{Discount: 600},
			people:   []Person{{ID: "A", Food: 300}, {ID: "B", Food: 200}},
			validateFunc: func(t *testing.T, a Allocation) {
				if !approx(a.Totals.EffectiveFoodDiscount, 500) {
					t.Errorf("EffectiveFoodDiscount = %v, want 500", a.Totals.EffectiveFoodDiscount)
				}
				if !approx(a.Totals.EffectiveFeeDiscount, 100) {
					t.Errorf("EffectiveFeeDiscount = %v, want 100", a.Totals.EffectiveFeeDiscount)
				}
				if a.Totals.FeePerPerson != 0 {
					t.Errorf("FeePerPerson = %v, want 0", a.Totals.FeePerPerson)
				}
				for _, s := range a.Shares {
					if !approx(s.Food-s.DiscountShare, 0) {
						t.Errorf("%s food after discount = %v, want 0", s.ID, s.Food-s.DiscountShare)
					}
					if s.Net != 0 {
						t.Errorf("%s net = %v, want 0", s.ID, s.Net)
					}
				}
				if a.Totals.GrandTotal != 0 {
					t.Errorf("GrandTotal = %v, want 0", a.Totals.GrandTotal)
				}
			},
		},
		{
			name:     "surplus discount only partly covers fees",
			strategy: TwoTier{Delivery: 40, Service: 20, Discount: 520},
			people:   []Person{{ID: "A", Food: 300}, {ID: "B", Food: 200}},
			validateFunc: func(t *testing.T, a Allocation) {
				// fee discount = 20, fees left = 40, 20 each
				if !approx(a.Totals.FeePerPerson, 20) {
					t.Errorf("FeePerPerson = %v, want 20", a.Totals.FeePerPerson)
				}
				for _, s := range a.Shares {
					if !approx(s.Net, 20) {
						t.Errorf("%s net = %v, want 20", s.ID, s.Net)
					}
				}
			},
		},
		{
			name:     "zero food with discount does not divide by zero",
			strategy: TwoTier{Delivery: 30, Discount: 50},
			people:   []Person{{ID: "A"}, {ID: "B"}, {ID: "C"}},
			validateFunc: func(t *testing.T, a Allocation) {
				// Food is 0 so the whole discount spills onto fees: max(0, (30-50)/3) = 0
				for _, s := range a.Shares {
					if s.DiscountShare != 0 {
						t.Errorf("%s discount share = %v, want 0", s.ID, s.DiscountShare)
					}
					if math.IsNaN(s.Net) || s.Net != 0 {
						t.Errorf("%s net = %v, want 0", s.ID, s.Net)
					}
				}
			},
		},
		{
			name:     "zero discount",
			strategy: TwoTier{Delivery: 15, Service: 15},
			people:   []Person{{ID: "A", Food: 120}, {ID: "B", Food: 80}, {ID: "C", Food: 0}},
			validateFunc: func(t *testing.T, a Allocation) {
				if a.Totals.EffectiveFeeDiscount != 0 {
					t.Errorf("EffectiveFeeDiscount = %v, want 0", a.Totals.EffectiveFeeDiscount)
				}
				for _, s := range a.Shares {
					if s.DiscountShare != 0 {
						t.Errorf("%s discount share = %v, want 0", s.ID, s.DiscountShare)
					}
					if !approx(s.Net, s.Food+10) {
						t.Errorf("%s net = %v, want %v", s.ID, s.Net, s.Food+10)
					}
				}
			},
		},
		{
			name:     "negative inputs are clamped at zero net",
			strategy: TwoTier{Delivery: -90, Discount: 10},
			people:   []Person{{ID: "A", Food: 20}, {ID: "B", Food: -5}},
			validateFunc: func(t *testing.T, a Allocation) {
				for _, s := range a.Shares {
					if s.Net < 0 {
						t.Errorf("%s net = %v, must not be negative", s.ID, s.Net)
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.strategy.Allocate(tt.people)
			if a.Mode != ModeItemized {
				t.Errorf("Mode = %v, want %v", a.Mode, ModeItemized)
			}
			if a.Totals == nil {
				t.Fatal("expected totals to be computed")
			}
			if len(a.Shares) != len(tt.people) {
				t.Fatalf("got %d shares, want %d", len(a.Shares), len(tt.people))
			}
			tt.validateFunc(t, a)
		})
	}
}

func TestTwoTierProperties(t *testing.T) {
	people := []Person{{ID: "A", Food: 123.45}, {ID: "B", Food: 67.8}, {ID: "C", Food: 0.99}, {ID: "D", Food: 310}}
	strategies := []TwoTier{
		{},
		{Delivery: 25, Service: 9.5, Discount: 40},
		{Delivery: 25, Service: 9.5, Discount: 502.24},
		{Delivery: 25, Service: 9.5, Discount: 10000},
		{Delivery: 0, Service: 3, Discount: 123.45},
	}

	for _, s := range strategies {
		a := s.Allocate(people)

		var sum float64
		for _, share := range a.Shares {
			sum += share.Net
			if share.Net < 0 {
				t.Errorf("%+v: %s net = %v, must not be negative", s, share.ID, share.Net)
			}
			if share.DiscountShare > share.Food+tolerance {
				t.Errorf("%+v: %s discount share %v exceeds food %v", s, share.ID, share.DiscountShare, share.Food)
			}
			if share.FeeShare != a.Totals.FeePerPerson {
				t.Errorf("%+v: %s fee share %v differs from fee per person %v", s, share.ID, share.FeeShare, a.Totals.FeePerPerson)
			}
		}
		if math.Abs(sum-a.Totals.GrandTotal) > 1e-6 {
			t.Errorf("%+v: sum of nets %v != grand total %v", s, sum, a.Totals.GrandTotal)
		}

		again := s.Allocate(people)
		if !reflect.DeepEqual(a, again) {
			t.Errorf("%+v: allocation is not idempotent", s)
		}
	}
}

func TestAllocateNoParticipants(t *testing.T) {
	for _, alloc := range []Allocator{TwoTier{Delivery: 10, Discount: 5}, Ratio{TotalBefore: 100, TotalAfter: 80}} {
		a := alloc.Allocate(nil)
		if !a.Empty() {
			t.Errorf("%s: expected empty allocation, got %d shares", alloc.Mode(), len(a.Shares))
		}
		if a.Totals != nil {
			t.Errorf("%s: expected no totals, got %+v", alloc.Mode(), a.Totals)
		}
	}
}

func TestRatioAllocate(t *testing.T) {
	tests := []struct {
		name     string
		strategy Ratio
		people   []Person
		wantNets []float64
	}{
		{
			name:     "scales purchases by after/before",
			strategy: Ratio{TotalBefore: 500, TotalAfter: 400},
			people:   []Person{{ID: "Alice", Food: 300}, {ID: "Bob", Food: 200}},
			wantNets: []float64{240, 160},
		},
		{
			name:     "zero total before yields zero shares",
			strategy: Ratio{TotalBefore: 0, TotalAfter: 400},
			people:   []Person{{ID: "Alice", Food: 300}},
			wantNets: []float64{0},
		},
		{
			name:     "totals entered independently of purchases",
			strategy: Ratio{TotalBefore: 1000, TotalAfter: 900},
			people:   []Person{{ID: "Alice", Food: 100}},
			wantNets: []float64{90},
		},
		{
			name:     "negative after total clamps to zero",
			strategy: Ratio{TotalBefore: 100, TotalAfter: -50},
			people:   []Person{{ID: "Alice", Food: 100}},
			wantNets: []float64{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.strategy.Allocate(tt.people)
			if a.Mode != ModeRatio {
				t.Errorf("Mode = %v, want %v", a.Mode, ModeRatio)
			}
			var sum float64
			for i, s := range a.Shares {
				if !approx(s.Net, tt.wantNets[i]) {
					t.Errorf("%s net = %v, want %v", s.ID, s.Net, tt.wantNets[i])
				}
				if s.FeeShare != 0 {
					t.Errorf("%s fee share = %v, want 0", s.ID, s.FeeShare)
				}
				if !approx(s.DiscountShare, s.Food-s.Net) {
					t.Errorf("%s discount share = %v, want %v", s.ID, s.DiscountShare, s.Food-s.Net)
				}
				sum += s.Net
			}
			if !approx(sum, a.Totals.GrandTotal) {
				t.Errorf("GrandTotal = %v, want %v", a.Totals.GrandTotal, sum)
			}
		})
	}
}

func TestRatioTotalDiscount(t *testing.T) {
	r := Ratio{TotalBefore: 850, TotalAfter: 700}
	if got := r.TotalDiscount(); got != 150 {
		t.Errorf("TotalDiscount() = %v, want 150", got)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{265.004, 265},
		{0.125, 0.13},
		{33.333333, 33.33},
		{-1.005, -1},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); !approx(got, tt.want) {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
