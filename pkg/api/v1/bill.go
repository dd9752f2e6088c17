// Package apiv1 defines the request and response messages of the
// billsplit.v1 services. Messages are plain structs encoded as JSON.
package apiv1

import "github.com/mmynk/billsplit/pkg/money"

// Item is one purchase line.
type Item struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Person is a participant together with their computed share.
type Person struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Items         []Item  `json:"items"`
	Paid          bool    `json:"paid"`
	Food          float64 `json:"food"`
	DiscountShare float64 `json:"discountShare"`
	FeeShare      float64 `json:"feeShare"`
	Net           float64 `json:"net"`
}

// Totals are the bill-level allocation results.
type Totals struct {
	TotalFood             float64 `json:"totalFood"`
	EffectiveFoodDiscount float64 `json:"effectiveFoodDiscount"`
	EffectiveFeeDiscount  float64 `json:"effectiveFeeDiscount"`
	TotalFees             float64 `json:"totalFees"`
	FeePerPerson          float64 `json:"feePerPerson"`
	GrandTotal            float64 `json:"grandTotal"`
}

// Payments summarises who has paid.
type Payments struct {
	Paid        int     `json:"paid"`
	Unpaid      int     `json:"unpaid"`
	Collected   float64 `json:"collected"`
	Outstanding float64 `json:"outstanding"`
}

// BillView is the full itemized bill as shown to the user. Totals is
// omitted while the bill has no participants.
type BillView struct {
	Platform string   `json:"platform"`
	Delivery float64  `json:"delivery"`
	Service  float64  `json:"service"`
	Discount float64  `json:"discount"`
	People   []Person `json:"people"`
	QRCode   string   `json:"qrCode,omitempty"`
	Totals   *Totals  `json:"totals,omitempty"`
	Payments Payments `json:"payments"`
}

type GetBillRequest struct{}

// UpdateSettingsRequest changes the platform and bill configuration. Empty
// or nil fields keep their current value.
type UpdateSettingsRequest struct {
	Platform string        `json:"platform,omitempty"`
	Delivery *money.Amount `json:"delivery,omitempty"`
	Service  *money.Amount `json:"service,omitempty"`
	Discount *money.Amount `json:"discount,omitempty"`
}

type AddPersonRequest struct {
	Name string `json:"name"`
}

type AddPersonResponse struct {
	Bill     BillView `json:"bill"`
	PersonID string   `json:"personId"`
}

type RenamePersonRequest struct {
	PersonID string `json:"personId"`
	Name     string `json:"name"`
}

type RemovePersonRequest struct {
	PersonID string `json:"personId"`
}

type AddItemRequest struct {
	PersonID string       `json:"personId"`
	Name     string       `json:"name"`
	Price    money.Amount `json:"price"`
}

type AddItemResponse struct {
	Bill   BillView `json:"bill"`
	ItemID string   `json:"itemId"`
}

type UpdateItemRequest struct {
	PersonID string       `json:"personId"`
	ItemID   string       `json:"itemId"`
	Name     string       `json:"name"`
	Price    money.Amount `json:"price"`
}

type RemoveItemRequest struct {
	PersonID string `json:"personId"`
	ItemID   string `json:"itemId"`
}

type TogglePaidRequest struct {
	PersonID string `json:"personId"`
}

// UploadQRCodeRequest carries the raw image bytes (base64 in JSON).
type UploadQRCodeRequest struct {
	Image []byte `json:"image"`
}

type UploadQRCodeResponse struct {
	Bill    BillView `json:"bill"`
	MIME    string   `json:"mime"`
	Payload string   `json:"payload,omitempty"`
}

type RemoveQRCodeRequest struct{}

// GeneratePaymentQRRequest asks for a PromptPay QR. With a PersonID the QR
// carries that person's net amount; without one it has no fixed amount.
// Attach stores the generated image as the bill's QR code.
type GeneratePaymentQRRequest struct {
	PromptPayID string `json:"promptPayId"`
	PersonID    string `json:"personId,omitempty"`
	Attach      bool   `json:"attach,omitempty"`
}

type GeneratePaymentQRResponse struct {
	Bill    BillView `json:"bill"`
	Amount  float64  `json:"amount"`
	Payload string   `json:"payload"`
	Image   string   `json:"image"`
}

type ResetRequest struct{}

// BillResponse is returned by every BillService call that has nothing else
// to report.
type BillResponse struct {
	Bill BillView `json:"bill"`
}
