package calculator

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	alloc := TwoTier{Delivery: 40, Service: 10, Discount: 100}.Allocate([]Person{
		{ID: "A", Food: 300},
		{ID: "B", Food: 200},
	})
	paid := []bool{true, false}

	summary := Summarize(alloc.Shares, func(i int) bool { return paid[i] })

	if summary.Paid != 1 || summary.Unpaid != 1 {
		t.Errorf("paid/unpaid = %d/%d, want 1/1", summary.Paid, summary.Unpaid)
	}
	if math.Abs(summary.Collected-265) > 0.01 {
		t.Errorf("Collected = %v, want 265", summary.Collected)
	}
	if math.Abs(summary.Outstanding-185) > 0.01 {
		t.Errorf("Outstanding = %v, want 185", summary.Outstanding)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil, func(int) bool { return true })
	if summary != (PaymentSummary{}) {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}
