package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/paymentqr"
	"github.com/mmynk/billsplit/internal/session"
	apiv1 "github.com/mmynk/billsplit/pkg/api/v1"
	"github.com/mmynk/billsplit/pkg/api/v1/apiv1connect"
)

var _ apiv1connect.BillServiceHandler = (*BillService)(nil)

// BillService implements the Connect BillService over the itemized session.
type BillService struct {
	bills          *session.Itemized
	maxUploadBytes int64
}

// NewBillService creates a BillService. Uploaded QR images larger than
// maxUploadBytes are rejected.
func NewBillService(bills *session.Itemized, maxUploadBytes int64) *BillService {
	return &BillService{bills: bills, maxUploadBytes: maxUploadBytes}
}

func billResponse(snap session.Snapshot[*models.Bill]) *connect.Response[apiv1.BillResponse] {
	return connect.NewResponse(&apiv1.BillResponse{Bill: toBillView(snap)})
}

// update applies fn and wraps the resulting snapshot.
func (s *BillService) update(ctx context.Context, op string, fn func(b *models.Bill) error) (*connect.Response[apiv1.BillResponse], error) {
	snap, err := s.bills.Update(ctx, fn)
	if err != nil {
		return nil, toConnectError(op, err)
	}
	return billResponse(snap), nil
}

// GetBill returns the current bill and its allocation.
func (s *BillService) GetBill(ctx context.Context, req *connect.Request[apiv1.GetBillRequest]) (*connect.Response[apiv1.BillResponse], error) {
	return billResponse(s.bills.Snapshot()), nil
}

// UpdateSettings changes the platform and any provided fee or discount.
func (s *BillService) UpdateSettings(ctx context.Context, req *connect.Request[apiv1.UpdateSettingsRequest]) (*connect.Response[apiv1.BillResponse], error) {
	msg := req.Msg
	return s.update(ctx, "UpdateSettings", func(b *models.Bill) error {
		if msg.Platform != "" {
			platform, err := models.ParsePlatform(msg.Platform)
			if err != nil {
				return err
			}
			b.Platform = platform
		}
		if msg.Delivery != nil {
			b.BillConfig.Delivery = *msg.Delivery
		}
		if msg.Service != nil {
			b.BillConfig.Service = *msg.Service
		}
		if msg.Discount != nil {
			b.BillConfig.Discount = *msg.Discount
		}
		slog.Debug("Bill settings updated", "platform", b.Platform, "config", b.BillConfig)
		return nil
	})
}

// AddPerson adds a participant with no items.
func (s *BillService) AddPerson(ctx context.Context, req *connect.Request[apiv1.AddPersonRequest]) (*connect.Response[apiv1.AddPersonResponse], error) {
	var person models.Person
	snap, err := s.bills.Update(ctx, func(b *models.Bill) error {
		person = b.AddPerson(req.Msg.Name)
		return nil
	})
	if err != nil {
		return nil, toConnectError("AddPerson", err)
	}
	slog.Debug("Person added", "person_id", person.ID, "name", person.Name)
	return connect.NewResponse(&apiv1.AddPersonResponse{Bill: toBillView(snap), PersonID: person.ID}), nil
}

// RenamePerson changes a participant's display name.
func (s *BillService) RenamePerson(ctx context.Context, req *connect.Request[apiv1.RenamePersonRequest]) (*connect.Response[apiv1.BillResponse], error) {
	return s.update(ctx, "RenamePerson", func(b *models.Bill) error {
		return b.RenamePerson(req.Msg.PersonID, req.Msg.Name)
	})
}

// RemovePerson removes a participant and their items.
func (s *BillService) RemovePerson(ctx context.Context, req *connect.Request[apiv1.RemovePersonRequest]) (*connect.Response[apiv1.BillResponse], error) {
	return s.update(ctx, "RemovePerson", func(b *models.Bill) error {
		return b.RemovePerson(req.Msg.PersonID)
	})
}

// AddItem adds a purchase to a participant.
func (s *BillService) AddItem(ctx context.Context, req *connect.Request[apiv1.AddItemRequest]) (*connect.Response[apiv1.AddItemResponse], error) {
	var item models.Item
	snap, err := s.bills.Update(ctx, func(b *models.Bill) error {
		var err error
		item, err = b.AddItem(req.Msg.PersonID, req.Msg.Name, req.Msg.Price)
		return err
	})
	if err != nil {
		return nil, toConnectError("AddItem", err)
	}
	return connect.NewResponse(&apiv1.AddItemResponse{Bill: toBillView(snap), ItemID: item.ID}), nil
}

// UpdateItem edits a purchase.
func (s *BillService) UpdateItem(ctx context.Context, req *connect.Request[apiv1.UpdateItemRequest]) (*connect.Response[apiv1.BillResponse], error) {
	return s.update(ctx, "UpdateItem", func(b *models.Bill) error {
		return b.UpdateItem(req.Msg.PersonID, req.Msg.ItemID, req.Msg.Name, req.Msg.Price)
	})
}

// RemoveItem deletes a purchase.
func (s *BillService) RemoveItem(ctx context.Context, req *connect.Request[apiv1.RemoveItemRequest]) (*connect.Response[apiv1.BillResponse], error) {
	return s.update(ctx, "RemoveItem", func(b *models.Bill) error {
		return b.RemoveItem(req.Msg.PersonID, req.Msg.ItemID)
	})
}

// TogglePaid flips a participant's paid flag.
func (s *BillService) TogglePaid(ctx context.Context, req *connect.Request[apiv1.TogglePaidRequest]) (*connect.Response[apiv1.BillResponse], error) {
	return s.update(ctx, "TogglePaid", func(b *models.Bill) error {
		return b.TogglePaid(req.Msg.PersonID)
	})
}

// UploadQRCode validates an image and stores it inline on the bill.
// Oversized or non-image uploads are rejected without touching the bill.
func (s *BillService) UploadQRCode(ctx context.Context, req *connect.Request[apiv1.UploadQRCodeRequest]) (*connect.Response[apiv1.UploadQRCodeResponse], error) {
	upload, err := paymentqr.Accept(req.Msg.Image, s.maxUploadBytes)
	if err != nil {
		return nil, toConnectError("UploadQRCode", err)
	}

	snap, err := s.bills.Update(ctx, func(b *models.Bill) error {
		b.QRCode = upload.DataURI
		return nil
	})
	if err != nil {
		return nil, toConnectError("UploadQRCode", err)
	}
	slog.Info("QR code uploaded", "mime", upload.MIME, "bytes", len(req.Msg.Image), "decoded", upload.Payload != "")

	return connect.NewResponse(&apiv1.UploadQRCodeResponse{
		Bill:    toBillView(snap),
		MIME:    upload.MIME,
		Payload: upload.Payload,
	}), nil
}

// RemoveQRCode clears the stored QR image.
func (s *BillService) RemoveQRCode(ctx context.Context, req *connect.Request[apiv1.RemoveQRCodeRequest]) (*connect.Response[apiv1.BillResponse], error) {
	return s.update(ctx, "RemoveQRCode", func(b *models.Bill) error {
		b.QRCode = ""
		return nil
	})
}

// GeneratePaymentQR creates a PromptPay QR for a participant's net amount,
// or without an amount when no participant is given.
func (s *BillService) GeneratePaymentQR(ctx context.Context, req *connect.Request[apiv1.GeneratePaymentQRRequest]) (*connect.Response[apiv1.GeneratePaymentQRResponse], error) {
	msg := req.Msg

	var (
		amount float64
		code   *paymentqr.Code
	)
	generate := func(b *models.Bill) error {
		if msg.PersonID != "" {
			if _, err := b.Person(msg.PersonID); err != nil {
				return err
			}
			allocator, people := session.ItemizedInput(b)
			share, _ := allocator.Allocate(people).Share(msg.PersonID)
			amount = calculator.Round2(share.Net)
		}
		var err error
		code, err = paymentqr.PromptPay(msg.PromptPayID, amount)
		if err != nil {
			return err
		}
		if msg.Attach {
			b.QRCode = code.DataURI()
		}
		return nil
	}

	var (
		snap session.Snapshot[*models.Bill]
		err  error
	)
	if msg.Attach {
		snap, err = s.bills.Update(ctx, generate)
	} else {
		snap = s.bills.Snapshot()
		err = generate(snap.State)
	}
	if err != nil {
		return nil, toConnectError("GeneratePaymentQR", err)
	}

	return connect.NewResponse(&apiv1.GeneratePaymentQRResponse{
		Bill:    toBillView(snap),
		Amount:  amount,
		Payload: code.Payload,
		Image:   code.DataURI(),
	}), nil
}

// Reset clears the bill entirely, including storage.
func (s *BillService) Reset(ctx context.Context, req *connect.Request[apiv1.ResetRequest]) (*connect.Response[apiv1.BillResponse], error) {
	slog.Info("Bill reset")
	return billResponse(s.bills.Reset(ctx)), nil
}
