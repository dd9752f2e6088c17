package paymentqr

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	pp "github.com/Frontware/promptpay"
	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"

	"github.com/mmynk/billsplit/internal/calculator"
)

// ErrPromptPayID is returned when a PromptPay ID is missing or malformed.
var ErrPromptPayID = errors.New("invalid promptpay ID")

// Code is a generated QR code.
type Code struct {
	Payload string
	PNG     []byte
}

// DataURI returns the PNG encoded as a data URI.
func (c *Code) DataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(c.PNG)
}

// PromptPay creates a QR code for a PromptPay payment. The amount is
// rounded to two decimals; zero produces a QR without a fixed amount.
func PromptPay(promptPayID string, amount float64) (*Code, error) {
	promptPayID = strings.TrimSpace(promptPayID)
	if promptPayID == "" {
		return nil, fmt.Errorf("%w: ID is required", ErrPromptPayID)
	}

	payment := pp.PromptPay{PromptPayID: promptPayID, Amount: calculator.Round2(amount)}
	payload, err := payment.Gen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPromptPayID, err)
	}

	png, err := Encode(payload)
	if err != nil {
		return nil, err
	}
	return &Code{Payload: payload, PNG: png}, nil
}

// Encode renders text as a PNG QR code.
func Encode(text string) ([]byte, error) {
	qrc, err := qrcode.New(text)
	if err != nil {
		return nil, fmt.Errorf("error creating QR code: %w", err)
	}

	var buf bytes.Buffer
	w := standard.NewWithWriter(nopCloser{&buf}, standard.WithBuiltinImageEncoder(standard.PNG_FORMAT))
	if err := qrc.Save(w); err != nil {
		return nil, fmt.Errorf("error saving QR code: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reads the text of the QR code in img.
func Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	result, err := zxqr.NewQRCodeReader().Decode(bmp, hints)
	if err != nil {
		return "", fmt.Errorf("failed to decode QR code: %w", err)
	}
	return result.GetText(), nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
