package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	apiv1 "github.com/mmynk/billsplit/pkg/api/v1"
)

func TestDiscountWorkflow(t *testing.T) {
	clients, _ := setupTestServer(t)
	ctx := context.Background()
	client := clients.discount

	_, err := client.SetTotals(ctx, connect.NewRequest(&apiv1.SetTotalsRequest{TotalBefore: 500, TotalAfter: 400}))
	if err != nil {
		t.Fatalf("SetTotals failed: %v", err)
	}

	for _, adj := range []apiv1.AdjustAmountRequest{
		{Name: "Alice", Delta: 200},
		{Name: "Bob", Delta: 200},
		{Name: "Alice", Delta: 100},
	} {
		if _, err := client.AdjustAmount(ctx, connect.NewRequest(&adj)); err != nil {
			t.Fatalf("AdjustAmount failed: %v", err)
		}
	}

	resp, err := client.GetDiscount(ctx, connect.NewRequest(&apiv1.GetDiscountRequest{}))
	if err != nil {
		t.Fatalf("GetDiscount failed: %v", err)
	}

	view := resp.Msg.Discount
	assertClose(t, "totalDiscount", view.TotalDiscount, 100)
	if len(view.People) != 2 {
		t.Fatalf("expected 2 buyers, got %d", len(view.People))
	}

	tests := []struct {
		name     string
		amount   float64
		share    float64
		discount float64
	}{
		{"Alice", 300, 240, 60},
		{"Bob", 200, 160, 40},
	}
	for i, tt := range tests {
		got := view.People[i]
		if got.Name != tt.name {
			t.Errorf("buyer %d = %q, want %q", i, got.Name, tt.name)
		}
		assertClose(t, tt.name+" amount", got.Amount, tt.amount)
		assertClose(t, tt.name+" share", got.Share, tt.share)
		assertClose(t, tt.name+" discount", got.Discount, tt.discount)
	}
	assertClose(t, "grandTotal", view.Totals.GrandTotal, 400)
}

func TestDiscountEdits(t *testing.T) {
	clients, store := setupTestServer(t)
	ctx := context.Background()
	client := clients.discount

	if _, err := client.AdjustAmount(ctx, connect.NewRequest(&apiv1.AdjustAmountRequest{Name: "Alice", Delta: 100})); err != nil {
		t.Fatalf("AdjustAmount failed: %v", err)
	}
	if _, err := client.AdjustAmount(ctx, connect.NewRequest(&apiv1.AdjustAmountRequest{Name: "Bob", Delta: 50})); err != nil {
		t.Fatalf("AdjustAmount failed: %v", err)
	}

	resp, err := client.SetAmount(ctx, connect.NewRequest(&apiv1.SetAmountRequest{Index: 1, Amount: 75}))
	if err != nil {
		t.Fatalf("SetAmount failed: %v", err)
	}
	assertClose(t, "Bob amount", resp.Msg.Discount.People[1].Amount, 75)

	resp, err = client.TogglePaid(ctx, connect.NewRequest(&apiv1.ToggleBuyerPaidRequest{Name: "Alice"}))
	if err != nil {
		t.Fatalf("TogglePaid failed: %v", err)
	}
	if !resp.Msg.Discount.People[0].Paid {
		t.Error("expected Alice to be paid")
	}
	if resp.Msg.Discount.Payments.Paid != 1 {
		t.Errorf("paid = %d, want 1", resp.Msg.Discount.Payments.Paid)
	}

	resp, err = client.RemoveBuyer(ctx, connect.NewRequest(&apiv1.RemoveBuyerRequest{Name: "Bob"}))
	if err != nil {
		t.Fatalf("RemoveBuyer failed: %v", err)
	}
	if len(resp.Msg.Discount.People) != 1 {
		t.Errorf("expected 1 buyer, got %d", len(resp.Msg.Discount.People))
	}

	_, err = client.SetAmount(ctx, connect.NewRequest(&apiv1.SetAmountRequest{Index: 5, Amount: 1}))
	assertCode(t, err, connect.CodeNotFound)
	_, err = client.RemoveBuyer(ctx, connect.NewRequest(&apiv1.RemoveBuyerRequest{Name: "Nobody"}))
	assertCode(t, err, connect.CodeNotFound)

	// The flat bill is stored independently of the itemized one.
	reloaded := startServer(t, store)
	got, err := reloaded.discount.GetDiscount(ctx, connect.NewRequest(&apiv1.GetDiscountRequest{}))
	if err != nil {
		t.Fatalf("GetDiscount failed: %v", err)
	}
	if len(got.Msg.Discount.People) != 1 || !got.Msg.Discount.People[0].Paid {
		t.Errorf("unexpected reloaded buyers: %+v", got.Msg.Discount.People)
	}
	bill, err := reloaded.bills.GetBill(ctx, connect.NewRequest(&apiv1.GetBillRequest{}))
	if err != nil {
		t.Fatalf("GetBill failed: %v", err)
	}
	if len(bill.Msg.Bill.People) != 0 {
		t.Error("itemized bill should be unaffected")
	}

	reset, err := reloaded.discount.Reset(ctx, connect.NewRequest(&apiv1.ResetDiscountRequest{}))
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if len(reset.Msg.Discount.People) != 0 || reset.Msg.Discount.Totals != nil {
		t.Errorf("expected empty discount bill, got %+v", reset.Msg.Discount)
	}
}
