// Package receipt renders the current bill as a shareable PNG image.
package receipt

import (
	"image"
	"log/slog"
	"time"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/paymentqr"
	"github.com/mmynk/billsplit/internal/session"
)

// Line is one participant's row on the receipt.
type Line struct {
	Name     string
	Food     float64
	Discount float64
	Fee      float64
	Net      float64
	Paid     bool
}

// Receipt is everything drawn on the image. Rendering does no arithmetic
// beyond formatting.
type Receipt struct {
	Title    string
	Platform models.Platform
	IssuedAt time.Time
	Lines    []Line
	Totals   *calculator.Totals
	Payments calculator.PaymentSummary

	// ShowFees adds the fee column and fee totals (itemized bills only).
	ShowFees bool

	// QR is an optional payment QR drawn under the totals.
	QR image.Image
}

// FromItemized builds a receipt for an itemized bill.
func FromItemized(snap session.Snapshot[*models.Bill], now time.Time) Receipt {
	r := Receipt{
		Title:    "Bill Split",
		Platform: snap.State.Platform,
		IssuedAt: now,
		Totals:   snap.Allocation.Totals,
		Payments: snap.Payments,
		ShowFees: true,
	}
	for _, p := range snap.State.People {
		share, _ := snap.Allocation.Share(p.ID)
		r.Lines = append(r.Lines, Line{
			Name:     p.Name,
			Food:     share.Food,
			Discount: share.DiscountShare,
			Fee:      share.FeeShare,
			Net:      share.Net,
			Paid:     bool(p.Paid),
		})
	}
	if snap.State.QRCode != "" {
		qr, err := paymentqr.DecodeDataURI(snap.State.QRCode)
		if err != nil {
			slog.Warn("Stored QR code could not be decoded, omitting from receipt", "error", err)
		} else {
			r.QR = qr
		}
	}
	return r
}

// FromFlat builds a receipt for a flat bill.
func FromFlat(snap session.Snapshot[*models.FlatBill], now time.Time) Receipt {
	r := Receipt{
		Title:    "Discount Split",
		Platform: models.PlatformOther,
		IssuedAt: now,
		Totals:   snap.Allocation.Totals,
		Payments: snap.Payments,
	}
	for i, p := range snap.State.People {
		share := snap.Allocation.Shares[i]
		r.Lines = append(r.Lines, Line{
			Name:     p.Name,
			Food:     share.Food,
			Discount: share.DiscountShare,
			Net:      share.Net,
			Paid:     bool(p.Paid),
		})
	}
	return r
}

// FileName names the exported image after the given date.
func FileName(t time.Time) string {
	return "bill-" + t.Format("2006-01-02") + ".png"
}
