// Package apiv1connect wires the billsplit.v1 services to Connect. Messages
// are plain Go structs, so every handler and client uses the JSON Codec.
package apiv1connect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	apiv1 "github.com/mmynk/billsplit/pkg/api/v1"
)

const (
	// BillServiceName is the fully-qualified name of the BillService service.
	BillServiceName = "billsplit.v1.BillService"
	// DiscountServiceName is the fully-qualified name of the DiscountService service.
	DiscountServiceName = "billsplit.v1.DiscountService"
)

// Procedure paths. Each is the service name followed by the method name.
const (
	BillServiceGetBillProcedure           = "/billsplit.v1.BillService/GetBill"
	BillServiceUpdateSettingsProcedure    = "/billsplit.v1.BillService/UpdateSettings"
	BillServiceAddPersonProcedure         = "/billsplit.v1.BillService/AddPerson"
	BillServiceRenamePersonProcedure      = "/billsplit.v1.BillService/RenamePerson"
	BillServiceRemovePersonProcedure      = "/billsplit.v1.BillService/RemovePerson"
	BillServiceAddItemProcedure           = "/billsplit.v1.BillService/AddItem"
	BillServiceUpdateItemProcedure        = "/billsplit.v1.BillService/UpdateItem"
	BillServiceRemoveItemProcedure        = "/billsplit.v1.BillService/RemoveItem"
	BillServiceTogglePaidProcedure        = "/billsplit.v1.BillService/TogglePaid"
	BillServiceUploadQRCodeProcedure      = "/billsplit.v1.BillService/UploadQRCode"
	BillServiceRemoveQRCodeProcedure      = "/billsplit.v1.BillService/RemoveQRCode"
	BillServiceGeneratePaymentQRProcedure = "/billsplit.v1.BillService/GeneratePaymentQR"
	BillServiceResetProcedure             = "/billsplit.v1.BillService/Reset"
	DiscountServiceGetDiscountProcedure   = "/billsplit.v1.DiscountService/GetDiscount"
	DiscountServiceSetTotalsProcedure     = "/billsplit.v1.DiscountService/SetTotals"
	DiscountServiceAdjustAmountProcedure  = "/billsplit.v1.DiscountService/AdjustAmount"
	DiscountServiceSetAmountProcedure     = "/billsplit.v1.DiscountService/SetAmount"
	DiscountServiceRemoveBuyerProcedure   = "/billsplit.v1.DiscountService/RemoveBuyer"
	DiscountServiceTogglePaidProcedure    = "/billsplit.v1.DiscountService/TogglePaid"
	DiscountServiceResetProcedure         = "/billsplit.v1.DiscountService/Reset"
)

// BillServiceClient is a client for the billsplit.v1.BillService service.
type BillServiceClient interface {
	// GetBill returns the current itemized bill.
	GetBill(context.Context, *connect.Request[apiv1.GetBillRequest]) (*connect.Response[apiv1.BillResponse], error)
	// UpdateSettings changes the platform and fees/discount.
	UpdateSettings(context.Context, *connect.Request[apiv1.UpdateSettingsRequest]) (*connect.Response[apiv1.BillResponse], error)
	// AddPerson adds a participant.
	AddPerson(context.Context, *connect.Request[apiv1.AddPersonRequest]) (*connect.Response[apiv1.AddPersonResponse], error)
	// RenamePerson renames a participant.
	RenamePerson(context.Context, *connect.Request[apiv1.RenamePersonRequest]) (*connect.Response[apiv1.BillResponse], error)
	// RemovePerson removes a participant and their items.
	RemovePerson(context.Context, *connect.Request[apiv1.RemovePersonRequest]) (*connect.Response[apiv1.BillResponse], error)
	// AddItem adds a purchase to a participant.
	AddItem(context.Context, *connect.Request[apiv1.AddItemRequest]) (*connect.Response[apiv1.AddItemResponse], error)
	// UpdateItem edits a purchase.
	UpdateItem(context.Context, *connect.Request[apiv1.UpdateItemRequest]) (*connect.Response[apiv1.BillResponse], error)
	// RemoveItem deletes a purchase.
	RemoveItem(context.Context, *connect.Request[apiv1.RemoveItemRequest]) (*connect.Response[apiv1.BillResponse], error)
	// TogglePaid flips a participant's paid flag.
	TogglePaid(context.Context, *connect.Request[apiv1.TogglePaidRequest]) (*connect.Response[apiv1.BillResponse], error)
	// UploadQRCode stores a payment QR image on the bill.
	UploadQRCode(context.Context, *connect.Request[apiv1.UploadQRCodeRequest]) (*connect.Response[apiv1.UploadQRCodeResponse], error)
	// RemoveQRCode removes the payment QR image.
	RemoveQRCode(context.Context, *connect.Request[apiv1.RemoveQRCodeRequest]) (*connect.Response[apiv1.BillResponse], error)
	// GeneratePaymentQR creates a PromptPay QR code.
	GeneratePaymentQR(context.Context, *connect.Request[apiv1.GeneratePaymentQRRequest]) (*connect.Response[apiv1.GeneratePaymentQRResponse], error)
	// Reset clears the bill.
	Reset(context.Context, *connect.Request[apiv1.ResetRequest]) (*connect.Response[apiv1.BillResponse], error)
}

// NewBillServiceClient constructs a client for the billsplit.v1.BillService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewBillServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) BillServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &billServiceClient{
		getBill:           connect.NewClient[apiv1.GetBillRequest, apiv1.BillResponse](httpClient, baseURL+BillServiceGetBillProcedure, opts...),
		updateSettings:    connect.NewClient[apiv1.UpdateSettingsRequest, apiv1.BillResponse](httpClient, baseURL+BillServiceUpdateSettingsProcedure, opts...),
		addPerson:         connect.NewClient[apiv1.AddPersonRequest, apiv1.AddPersonResponse](httpClient, baseURL+BillServiceAddPersonProcedure, opts...),
		renamePerson:      connect.NewClient[apiv1.RenamePersonRequest, apiv1.BillResponse](httpClient, baseURL+BillServiceRenamePersonProcedure, opts...),
		removePerson:      connect.NewClient[apiv1.RemovePersonRequest, apiv1.BillResponse](httpClient, baseURL+BillServiceRemovePersonProcedure, opts...),
		addItem:           connect.NewClient[apiv1.AddItemRequest, apiv1.AddItemResponse](httpClient, baseURL+BillServiceAddItemProcedure, opts...),
		updateItem:        connect.NewClient[apiv1.UpdateItemRequest, apiv1.BillResponse](httpClient, baseURL+BillServiceUpdateItemProcedure, opts...),
		removeItem:        connect.NewClient[apiv1.RemoveItemRequest, apiv1.BillResponse](httpClient, baseURL+BillServiceRemoveItemProcedure, opts...),
		togglePaid:        connect.NewClient[apiv1.TogglePaidRequest, apiv1.BillResponse](httpClient, baseURL+BillServiceTogglePaidProcedure, opts...),
		uploadQRCode:      connect.NewClient[apiv1.UploadQRCodeRequest, apiv1.UploadQRCodeResponse](httpClient, baseURL+BillServiceUploadQRCodeProcedure, opts...),
		removeQRCode:      connect.NewClient[apiv1.RemoveQRCodeRequest, apiv1.BillResponse](httpClient, baseURL+BillServiceRemoveQRCodeProcedure, opts...),
		generatePaymentQR: connect.NewClient[apiv1.GeneratePaymentQRRequest, apiv1.GeneratePaymentQRResponse](httpClient, baseURL+BillServiceGeneratePaymentQRProcedure, opts...),
		reset:             connect.NewClient[apiv1.ResetRequest, apiv1.BillResponse](httpClient, baseURL+BillServiceResetProcedure, opts...),
	}
}

type billServiceClient struct {
	getBill           *connect.Client[apiv1.GetBillRequest, apiv1.BillResponse]
	updateSettings    *connect.Client[apiv1.UpdateSettingsRequest, apiv1.BillResponse]
	addPerson         *connect.Client[apiv1.AddPersonRequest, apiv1.AddPersonResponse]
	renamePerson      *connect.Client[apiv1.RenamePersonRequest, apiv1.BillResponse]
	removePerson      *connect.Client[apiv1.RemovePersonRequest, apiv1.BillResponse]
	addItem           *connect.Client[apiv1.AddItemRequest, apiv1.AddItemResponse]
	updateItem        *connect.Client[apiv1.UpdateItemRequest, apiv1.BillResponse]
	removeItem        *connect.Client[apiv1.RemoveItemRequest, apiv1.BillResponse]
	togglePaid        *connect.Client[apiv1.TogglePaidRequest, apiv1.BillResponse]
	uploadQRCode      *connect.Client[apiv1.UploadQRCodeRequest, apiv1.UploadQRCodeResponse]
	removeQRCode      *connect.Client[apiv1.RemoveQRCodeRequest, apiv1.BillResponse]
	generatePaymentQR *connect.Client[apiv1.GeneratePaymentQRRequest, apiv1.GeneratePaymentQRResponse]
	reset             *connect.Client[apiv1.ResetRequest, apiv1.BillResponse]
}

func (c *billServiceClient) GetBill(ctx context.Context, req *connect.Request[apiv1.GetBillRequest]) (*connect.Response[apiv1.BillResponse], error) {
	return c.getBill.CallUnary(ctx, req)
}

func (c *billServiceClient) UpdateSettings(ctx context.Context, req *connect.Request[apiv1.UpdateSettingsRequest]) (*connect.Response[apiv1.BillResponse], error) {
	return c.updateSettings.CallUnary(ctx, req)
}

func (c *billServiceClient) AddPerson(ctx context.Context, req *connect.Request[apiv1.AddPersonRequest]) (*connect.Response[apiv1.AddPersonResponse], error) {
	return c.addPerson.CallUnary(ctx, req)
}

func (c *billServiceClient) RenamePerson(ctx context.Context, req *connect.Request[apiv1.RenamePersonRequest]) (*connect.Response[apiv1.BillResponse], error) {
	return c.renamePerson.CallUnary(ctx, req)
}

func (c *billServiceClient) RemovePerson(ctx context.Context, req *connect.Request[apiv1.RemovePersonRequest]) (*connect.Response[apiv1.BillResponse], error) {
	return c.removePerson.CallUnary(ctx, req)
}

func (c *billServiceClient) AddItem(ctx context.Context, req *connect.Request[apiv1.AddItemRequest]) (*connect.Response[apiv1.AddItemResponse], error) {
	return c.addItem.CallUnary(ctx, req)
}

func (c *billServiceClient) UpdateItem(ctx context.Context, req *connect.Request[apiv1.UpdateItemRequest]) (*connect.Response[apiv1.BillResponse], error) {
	return c.updateItem.CallUnary(ctx, req)
}

func (c *billServiceClient) RemoveItem(ctx context.Context, req *connect.Request[apiv1.RemoveItemRequest]) (*connect.Response[apiv1.BillResponse], error) {
	return c.removeItem.CallUnary(ctx, req)
}

func (c *billServiceClient) TogglePaid(ctx context.Context, req *connect.Request[apiv1.TogglePaidRequest]) (*connect.Response[apiv1.BillResponse], error) {
	return c.togglePaid.CallUnary(ctx, req)
}

func (c *billServiceClient) UploadQRCode(ctx context.Context, req *connect.Request[apiv1.UploadQRCodeRequest]) (*connect.Response[apiv1.UploadQRCodeResponse], error) {
	return c.uploadQRCode.CallUnary(ctx, req)
}

func (c *billServiceClient) RemoveQRCode(ctx context.Context, req *connect.Request[apiv1.RemoveQRCodeRequest]) (*connect.Response[apiv1.BillResponse], error) {
	return c.removeQRCode.CallUnary(ctx, req)
}

func (c *billServiceClient) GeneratePaymentQR(ctx context.Context, req *connect.Request[apiv1.GeneratePaymentQRRequest]) (*connect.Response[apiv1.GeneratePaymentQRResponse], error) {
	return c.generatePaymentQR.CallUnary(ctx, req)
}

func (c *billServiceClient) Reset(ctx context.Context, req *connect.Request[apiv1.ResetRequest]) (*connect.Response[apiv1.BillResponse], error) {
	return c.reset.CallUnary(ctx, req)
}

// BillServiceHandler is implemented by the billsplit.v1.BillService server.
type BillServiceHandler interface {
	GetBill(context.Context, *connect.Request[apiv1.GetBillRequest]) (*connect.Response[apiv1.BillResponse], error)
	UpdateSettings(context.Context, *connect.Request[apiv1.UpdateSettingsRequest]) (*connect.Response[apiv1.BillResponse], error)
	AddPerson(context.Context, *connect.Request[apiv1.AddPersonRequest]) (*connect.Response[apiv1.AddPersonResponse], error)
	RenamePerson(context.Context, *connect.Request[apiv1.RenamePersonRequest]) (*connect.Response[apiv1.BillResponse], error)
	RemovePerson(context.Context, *connect.Request[apiv1.RemovePersonRequest]) (*connect.Response[apiv1.BillResponse], error)
	AddItem(context.Context, *connect.Request[apiv1.AddItemRequest]) (*connect.Response[apiv1.AddItemResponse], error)
	UpdateItem(context.Context, *connect.Request[apiv1.UpdateItemRequest]) (*connect.Response[apiv1.BillResponse], error)
	RemoveItem(context.Context, *connect.Request[apiv1.RemoveItemRequest]) (*connect.Response[apiv1.BillResponse], error)
	TogglePaid(context.Context, *connect.Request[apiv1.TogglePaidRequest]) (*connect.Response[apiv1.BillResponse], error)
	UploadQRCode(context.Context, *connect.Request[apiv1.UploadQRCodeRequest]) (*connect.Response[apiv1.UploadQRCodeResponse], error)
	RemoveQRCode(context.Context, *connect.Request[apiv1.RemoveQRCodeRequest]) (*connect.Response[apiv1.BillResponse], error)
	GeneratePaymentQR(context.Context, *connect.Request[apiv1.GeneratePaymentQRRequest]) (*connect.Response[apiv1.GeneratePaymentQRResponse], error)
	Reset(context.Context, *connect.Request[apiv1.ResetRequest]) (*connect.Response[apiv1.BillResponse], error)
}

// NewBillServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewBillServiceHandler(svc BillServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(BillServiceGetBillProcedure, connect.NewUnaryHandler(BillServiceGetBillProcedure, svc.GetBill, opts...))
	mux.Handle(BillServiceUpdateSettingsProcedure, connect.NewUnaryHandler(BillServiceUpdateSettingsProcedure, svc.UpdateSettings, opts...))
	mux.Handle(BillServiceAddPersonProcedure, connect.NewUnaryHandler(BillServiceAddPersonProcedure, svc.AddPerson, opts...))
	mux.Handle(BillServiceRenamePersonProcedure, connect.NewUnaryHandler(BillServiceRenamePersonProcedure, svc.RenamePerson, opts...))
	mux.Handle(BillServiceRemovePersonProcedure, connect.NewUnaryHandler(BillServiceRemovePersonProcedure, svc.RemovePerson, opts...))
	mux.Handle(BillServiceAddItemProcedure, connect.NewUnaryHandler(BillServiceAddItemProcedure, svc.AddItem, opts...))
	mux.Handle(BillServiceUpdateItemProcedure, connect.NewUnaryHandler(BillServiceUpdateItemProcedure, svc.UpdateItem, opts...))
	mux.Handle(BillServiceRemoveItemProcedure, connect.NewUnaryHandler(BillServiceRemoveItemProcedure, svc.RemoveItem, opts...))
	mux.Handle(BillServiceTogglePaidProcedure, connect.NewUnaryHandler(BillServiceTogglePaidProcedure, svc.TogglePaid, opts...))
	mux.Handle(BillServiceUploadQRCodeProcedure, connect.NewUnaryHandler(BillServiceUploadQRCodeProcedure, svc.UploadQRCode, opts...))
	mux.Handle(BillServiceRemoveQRCodeProcedure, connect.NewUnaryHandler(BillServiceRemoveQRCodeProcedure, svc.RemoveQRCode, opts...))
	mux.Handle(BillServiceGeneratePaymentQRProcedure, connect.NewUnaryHandler(BillServiceGeneratePaymentQRProcedure, svc.GeneratePaymentQR, opts...))
	mux.Handle(BillServiceResetProcedure, connect.NewUnaryHandler(BillServiceResetProcedure, svc.Reset, opts...))
	return "/" + BillServiceName + "/", mux
}

// DiscountServiceClient is a client for the billsplit.v1.DiscountService service.
type DiscountServiceClient interface {
	// GetDiscount returns the current flat bill.
	GetDiscount(context.Context, *connect.Request[apiv1.GetDiscountRequest]) (*connect.Response[apiv1.DiscountResponse], error)
	// SetTotals sets the before/after totals.
	SetTotals(context.Context, *connect.Request[apiv1.SetTotalsRequest]) (*connect.Response[apiv1.DiscountResponse], error)
	// AdjustAmount adds to or creates a buyer's amount.
	AdjustAmount(context.Context, *connect.Request[apiv1.AdjustAmountRequest]) (*connect.Response[apiv1.DiscountResponse], error)
	// SetAmount overwrites a buyer's amount.
	SetAmount(context.Context, *connect.Request[apiv1.SetAmountRequest]) (*connect.Response[apiv1.DiscountResponse], error)
	// RemoveBuyer removes every buyer with a name.
	RemoveBuyer(context.Context, *connect.Request[apiv1.RemoveBuyerRequest]) (*connect.Response[apiv1.DiscountResponse], error)
	// TogglePaid flips a buyer's paid flag.
	TogglePaid(context.Context, *connect.Request[apiv1.ToggleBuyerPaidRequest]) (*connect.Response[apiv1.DiscountResponse], error)
	// Reset clears the flat bill.
	Reset(context.Context, *connect.Request[apiv1.ResetDiscountRequest]) (*connect.Response[apiv1.DiscountResponse], error)
}

// NewDiscountServiceClient constructs a client for the billsplit.v1.DiscountService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewDiscountServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) DiscountServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &discountServiceClient{
		getDiscount:  connect.NewClient[apiv1.GetDiscountRequest, apiv1.DiscountResponse](httpClient, baseURL+DiscountServiceGetDiscountProcedure, opts...),
		setTotals:    connect.NewClient[apiv1.SetTotalsRequest, apiv1.DiscountResponse](httpClient, baseURL+DiscountServiceSetTotalsProcedure, opts...),
		adjustAmount: connect.NewClient[apiv1.AdjustAmountRequest, apiv1.DiscountResponse](httpClient, baseURL+DiscountServiceAdjustAmountProcedure, opts...),
		setAmount:    connect.NewClient[apiv1.SetAmountRequest, apiv1.DiscountResponse](httpClient, baseURL+DiscountServiceSetAmountProcedure, opts...),
		removeBuyer:  connect.NewClient[apiv1.RemoveBuyerRequest, apiv1.DiscountResponse](httpClient, baseURL+DiscountServiceRemoveBuyerProcedure, opts...),
		togglePaid:   connect.NewClient[apiv1.ToggleBuyerPaidRequest, apiv1.DiscountResponse](httpClient, baseURL+DiscountServiceTogglePaidProcedure, opts...),
		reset:        connect.NewClient[apiv1.ResetDiscountRequest, apiv1.DiscountResponse](httpClient, baseURL+DiscountServiceResetProcedure, opts...),
	}
}

type discountServiceClient struct {
	getDiscount  *connect.Client[apiv1.GetDiscountRequest, apiv1.DiscountResponse]
	setTotals    *connect.Client[apiv1.SetTotalsRequest, apiv1.DiscountResponse]
	adjustAmount *connect.Client[apiv1.AdjustAmountRequest, apiv1.DiscountResponse]
	setAmount    *connect.Client[apiv1.SetAmountRequest, apiv1.DiscountResponse]
	removeBuyer  *connect.Client[apiv1.RemoveBuyerRequest, apiv1.DiscountResponse]
	togglePaid   *connect.Client[apiv1.ToggleBuyerPaidRequest, apiv1.DiscountResponse]
	reset        *connect.Client[apiv1.ResetDiscountRequest, apiv1.DiscountResponse]
}

func (c *discountServiceClient) GetDiscount(ctx context.Context, req *connect.Request[apiv1.GetDiscountRequest]) (*connect.Response[apiv1.DiscountResponse], error) {
	return c.getDiscount.CallUnary(ctx, req)
}

func (c *discountServiceClient) SetTotals(ctx context.Context, req *connect.Request[apiv1.SetTotalsRequest]) (*connect.Response[apiv1.DiscountResponse], error) {
	return c.setTotals.CallUnary(ctx, req)
}

func (c *discountServiceClient) AdjustAmount(ctx context.Context, req *connect.Request[apiv1.AdjustAmountRequest]) (*connect.Response[apiv1.DiscountResponse], error) {
	return c.adjustAmount.CallUnary(ctx, req)
}

func (c *discountServiceClient) SetAmount(ctx context.Context, req *connect.Request[apiv1.SetAmountRequest]) (*connect.Response[apiv1.DiscountResponse], error) {
	return c.setAmount.CallUnary(ctx, req)
}

func (c *discountServiceClient) RemoveBuyer(ctx context.Context, req *connect.Request[apiv1.RemoveBuyerRequest]) (*connect.Response[apiv1.DiscountResponse], error) {
	return c.removeBuyer.CallUnary(ctx, req)
}

func (c *discountServiceClient) TogglePaid(ctx context.Context, req *connect.Request[apiv1.ToggleBuyerPaidRequest]) (*connect.Response[apiv1.DiscountResponse], error) {
	return c.togglePaid.CallUnary(ctx, req)
}

func (c *discountServiceClient) Reset(ctx context.Context, req *connect.Request[apiv1.ResetDiscountRequest]) (*connect.Response[apiv1.DiscountResponse], error) {
	return c.reset.CallUnary(ctx, req)
}

// DiscountServiceHandler is implemented by the billsplit.v1.DiscountService server.
type DiscountServiceHandler interface {
	GetDiscount(context.Context, *connect.Request[apiv1.GetDiscountRequest]) (*connect.Response[apiv1.DiscountResponse], error)
	SetTotals(context.Context, *connect.Request[apiv1.SetTotalsRequest]) (*connect.Response[apiv1.DiscountResponse], error)
	AdjustAmount(context.Context, *connect.Request[apiv1.AdjustAmountRequest]) (*connect.Response[apiv1.DiscountResponse], error)
	SetAmount(context.Context, *connect.Request[apiv1.SetAmountRequest]) (*connect.Response[apiv1.DiscountResponse], error)
	RemoveBuyer(context.Context, *connect.Request[apiv1.RemoveBuyerRequest]) (*connect.Response[apiv1.DiscountResponse], error)
	TogglePaid(context.Context, *connect.Request[apiv1.ToggleBuyerPaidRequest]) (*connect.Response[apiv1.DiscountResponse], error)
	Reset(context.Context, *connect.Request[apiv1.ResetDiscountRequest]) (*connect.Response[apiv1.DiscountResponse], error)
}

// NewDiscountServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewDiscountServiceHandler(svc DiscountServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(DiscountServiceGetDiscountProcedure, connect.NewUnaryHandler(DiscountServiceGetDiscountProcedure, svc.GetDiscount, opts...))
	mux.Handle(DiscountServiceSetTotalsProcedure, connect.NewUnaryHandler(DiscountServiceSetTotalsProcedure, svc.SetTotals, opts...))
	mux.Handle(DiscountServiceAdjustAmountProcedure, connect.NewUnaryHandler(DiscountServiceAdjustAmountProcedure, svc.AdjustAmount, opts...))
	mux.Handle(DiscountServiceSetAmountProcedure, connect.NewUnaryHandler(DiscountServiceSetAmountProcedure, svc.SetAmount, opts...))
	mux.Handle(DiscountServiceRemoveBuyerProcedure, connect.NewUnaryHandler(DiscountServiceRemoveBuyerProcedure, svc.RemoveBuyer, opts...))
	mux.Handle(DiscountServiceTogglePaidProcedure, connect.NewUnaryHandler(DiscountServiceTogglePaidProcedure, svc.TogglePaid, opts...))
	mux.Handle(DiscountServiceResetProcedure, connect.NewUnaryHandler(DiscountServiceResetProcedure, svc.Reset, opts...))
	return "/" + DiscountServiceName + "/", mux
}
