package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFlatBillAdjust(t *testing.T) {
	f := NewFlatBill()

	if f.Adjust("", 10) || f.Adjust("Alice", 0) {
		t.Error("expected empty name or zero delta to be ignored")
	}
	if len(f.People) != 0 {
		t.Fatalf("got %d people, want 0", len(f.People))
	}

	f.Adjust("Alice", 100)
	f.Adjust("Bob", -20)
	f.Adjust("Alice", -30)

	if f.People[0].Amount != 70 {
		t.Errorf("Alice amount = %v, want 70", f.People[0].Amount)
	}
	if f.People[1].Amount != 0 {
		t.Errorf("Bob amount = %v, want 0 (clamped)", f.People[1].Amount)
	}

	f.Adjust("Alice", -500)
	if f.People[0].Amount != 0 {
		t.Errorf("Alice amount = %v, want 0 (clamped)", f.People[0].Amount)
	}
}

func TestFlatBillEdits(t *testing.T) {
	f := NewFlatBill()
	f.Adjust("Alice", 100)
	f.Adjust("Bob", 50)

	if err := f.SetAmount(1, 75); err != nil {
		t.Fatalf("SetAmount failed: %v", err)
	}
	if f.People[1].Amount != 75 {
		t.Errorf("Bob amount = %v, want 75", f.People[1].Amount)
	}
	if err := f.SetAmount(5, 1); !errors.Is(err, ErrPersonNotFound) {
		t.Errorf("expected ErrPersonNotFound, got %v", err)
	}

	if err := f.TogglePaid("Bob"); err != nil || !f.PaidAt(1) {
		t.Errorf("TogglePaid: err=%v paid=%v", err, f.PaidAt(1))
	}
	if f.PaidAt(0) || f.PaidAt(5) || f.PaidAt(-1) {
		t.Error("expected Alice and out of range entries to be unpaid")
	}

	if err := f.Remove("Alice"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if len(f.People) != 1 || f.People[0].Name != "Bob" {
		t.Errorf("unexpected people after remove: %+v", f.People)
	}
	if err := f.Remove("Alice"); !errors.Is(err, ErrPersonNotFound) {
		t.Errorf("expected ErrPersonNotFound, got %v", err)
	}
}

func TestFlatBillDecodeMissingPaid(t *testing.T) {
	var f FlatBill
	raw := `{"totalBefore":500,"totalAfter":"400","people":[{"name":"Alice","amount":300}]}`
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if f.TotalAfter != 400 {
		t.Errorf("TotalAfter = %v, want 400", f.TotalAfter)
	}
	if f.People[0].Paid {
		t.Error("expected missing paid flag to default to false")
	}
}
