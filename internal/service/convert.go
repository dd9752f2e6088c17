package service

import (
	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/session"
	apiv1 "github.com/mmynk/billsplit/pkg/api/v1"
)

func toBillView(snap session.Snapshot[*models.Bill]) apiv1.BillView {
	b := snap.State
	view := apiv1.BillView{
		Platform: string(b.Platform),
		Delivery: b.BillConfig.Delivery.Float64(),
		Service:  b.BillConfig.Service.Float64(),
		Discount: b.BillConfig.Discount.Float64(),
		People:   make([]apiv1.Person, len(b.People)),
		QRCode:   b.QRCode,
		Totals:   toTotals(snap.Allocation.Totals),
		Payments: toPayments(snap.Payments),
	}
	for i, p := range b.People {
		share, _ := snap.Allocation.Share(p.ID)
		items := make([]apiv1.Item, len(p.Items))
		for j, item := range p.Items {
			items[j] = apiv1.Item{ID: item.ID, Name: item.Name, Price: item.Price.Float64()}
		}
		view.People[i] = apiv1.Person{
			ID:            p.ID,
			Name:          p.Name,
			Items:         items,
			Paid:          bool(p.Paid),
			Food:          share.Food,
			DiscountShare: share.DiscountShare,
			FeeShare:      share.FeeShare,
			Net:           share.Net,
		}
	}
	return view
}

func toDiscountView(snap session.Snapshot[*models.FlatBill]) apiv1.DiscountView {
	f := snap.State
	ratio := calculator.Ratio{TotalBefore: f.TotalBefore.Float64(), TotalAfter: f.TotalAfter.Float64()}
	view := apiv1.DiscountView{
		TotalBefore:   ratio.TotalBefore,
		TotalAfter:    ratio.TotalAfter,
		TotalDiscount: ratio.TotalDiscount(),
		People:        make([]apiv1.Buyer, len(f.People)),
		Totals:        toTotals(snap.Allocation.Totals),
		Payments:      toPayments(snap.Payments),
	}
	for i, p := range f.People {
		share := snap.Allocation.Shares[i]
		view.People[i] = apiv1.Buyer{
			Name:     p.Name,
			Amount:   p.Amount.Float64(),
			Paid:     bool(p.Paid),
			Discount: share.DiscountShare,
			Share:    share.Net,
		}
	}
	return view
}

func toTotals(t *calculator.Totals) *apiv1.Totals {
	if t == nil {
		return nil
	}
	return &apiv1.Totals{
		TotalFood:             t.TotalFood,
		EffectiveFoodDiscount: t.EffectiveFoodDiscount,
		EffectiveFeeDiscount:  t.EffectiveFeeDiscount,
		TotalFees:             t.TotalFees,
		FeePerPerson:          t.FeePerPerson,
		GrandTotal:            t.GrandTotal,
	}
}

func toPayments(p calculator.PaymentSummary) apiv1.Payments {
	return apiv1.Payments{
		Paid:        p.Paid,
		Unpaid:      p.Unpaid,
		Collected:   p.Collected,
		Outstanding: p.Outstanding,
	}
}
