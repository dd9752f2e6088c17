package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/session"
	apiv1 "github.com/mmynk/billsplit/pkg/api/v1"
	"github.com/mmynk/billsplit/pkg/api/v1/apiv1connect"
)

var _ apiv1connect.DiscountServiceHandler = (*DiscountService)(nil)

// DiscountService implements the Connect DiscountService over the flat,
// ratio-based session.
type DiscountService struct {
	flat *session.Flat
}

// NewDiscountService creates a DiscountService.
func NewDiscountService(flat *session.Flat) *DiscountService {
	return &DiscountService{flat: flat}
}

func discountResponse(snap session.Snapshot[*models.FlatBill]) *connect.Response[apiv1.DiscountResponse] {
	return connect.NewResponse(&apiv1.DiscountResponse{Discount: toDiscountView(snap)})
}

func (s *DiscountService) update(ctx context.Context, op string, fn func(f *models.FlatBill) error) (*connect.Response[apiv1.DiscountResponse], error) {
	snap, err := s.flat.Update(ctx, fn)
	if err != nil {
		return nil, toConnectError(op, err)
	}
	return discountResponse(snap), nil
}

// GetDiscount returns the current flat bill and its shares.
func (s *DiscountService) GetDiscount(ctx context.Context, req *connect.Request[apiv1.GetDiscountRequest]) (*connect.Response[apiv1.DiscountResponse], error) {
	return discountResponse(s.flat.Snapshot()), nil
}

// SetTotals sets the before and after totals.
func (s *DiscountService) SetTotals(ctx context.Context, req *connect.Request[apiv1.SetTotalsRequest]) (*connect.Response[apiv1.DiscountResponse], error) {
	return s.update(ctx, "SetTotals", func(f *models.FlatBill) error {
		f.TotalBefore = req.Msg.TotalBefore
		f.TotalAfter = req.Msg.TotalAfter
		return nil
	})
}

// AdjustAmount adds to a buyer's amount, creating the buyer if needed.
func (s *DiscountService) AdjustAmount(ctx context.Context, req *connect.Request[apiv1.AdjustAmountRequest]) (*connect.Response[apiv1.DiscountResponse], error) {
	return s.update(ctx, "AdjustAmount", func(f *models.FlatBill) error {
		if !f.Adjust(req.Msg.Name, req.Msg.Delta) {
			slog.Debug("AdjustAmount ignored", "name", req.Msg.Name, "delta", req.Msg.Delta)
		}
		return nil
	})
}

// SetAmount overwrites the amount of the buyer at the given index.
func (s *DiscountService) SetAmount(ctx context.Context, req *connect.Request[apiv1.SetAmountRequest]) (*connect.Response[apiv1.DiscountResponse], error) {
	return s.update(ctx, "SetAmount", func(f *models.FlatBill) error {
		return f.SetAmount(req.Msg.Index, req.Msg.Amount)
	})
}

// RemoveBuyer removes every buyer with the given name.
func (s *DiscountService) RemoveBuyer(ctx context.Context, req *connect.Request[apiv1.RemoveBuyerRequest]) (*connect.Response[apiv1.DiscountResponse], error) {
	return s.update(ctx, "RemoveBuyer", func(f *models.FlatBill) error {
		return f.Remove(req.Msg.Name)
	})
}

// TogglePaid flips the paid flag of every buyer with the given name.
func (s *DiscountService) TogglePaid(ctx context.Context, req *connect.Request[apiv1.ToggleBuyerPaidRequest]) (*connect.Response[apiv1.DiscountResponse], error) {
	return s.update(ctx, "TogglePaid", func(f *models.FlatBill) error {
		return f.TogglePaid(req.Msg.Name)
	})
}

// Reset clears the flat bill, including storage.
func (s *DiscountService) Reset(ctx context.Context, req *connect.Request[apiv1.ResetDiscountRequest]) (*connect.Response[apiv1.DiscountResponse], error) {
	slog.Info("Discount bill reset")
	return discountResponse(s.flat.Reset(ctx)), nil
}
