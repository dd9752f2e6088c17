// Package paymentqr handles payment QR images: validating uploads, reading
// the payload out of an uploaded QR and generating PromptPay QR codes.
package paymentqr

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp" // register decoder
)

const (
	// DefaultMaxUploadBytes is the upload ceiling (5 MB).
	DefaultMaxUploadBytes int64 = 5 << 20

	// MaxImagePixels caps the decoded size of an image (4096x4096).
	MaxImagePixels = 4096 * 4096
)

var (
	ErrEmpty      = errors.New("no file uploaded")
	ErrTooLarge   = errors.New("file is too large")
	ErrNotImage   = errors.New("file is not an image")
	ErrNotDataURI = errors.New("not an image data URI")
)

// Upload is an accepted QR image, ready to be stored on the bill.
type Upload struct {
	// DataURI is the image encoded inline as data:<mime>;base64,<data>.
	DataURI string
	MIME    string
	// Payload is the decoded QR text, empty when the image held no
	// readable QR code.
	Payload string
}

// Accept validates an uploaded image and encodes it as a data URI. Files
// larger than maxBytes are rejected before anything else is looked at.
func Accept(data []byte, maxBytes int64) (*Upload, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: %s, limit is %s", ErrTooLarge,
			humanize.IBytes(uint64(len(data))), humanize.IBytes(uint64(maxBytes)))
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, fmt.Errorf("%w: detected %s", ErrNotImage, mtype.String())
	}

	upload := &Upload{
		DataURI: "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data),
		MIME:    mtype.String(),
	}

	if err := checkDimensions(data); err != nil {
		if errors.Is(err, ErrTooLarge) {
			return nil, err
		}
		slog.Debug("Uploaded image could not be decoded", "mime", upload.MIME, "error", err)
		return upload, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		slog.Debug("Uploaded image could not be decoded", "mime", upload.MIME, "error", err)
		return upload, nil
	}
	if payload, err := Decode(img); err == nil {
		upload.Payload = payload
	} else {
		slog.Debug("No QR code found in upload", "error", err)
	}
	return upload, nil
}

// DecodeDataURI decodes an image stored as a base64 data URI.
func DecodeDataURI(uri string) (image.Image, error) {
	header, encoded, ok := strings.Cut(uri, ",")
	if !ok || !strings.HasPrefix(header, "data:image/") || !strings.HasSuffix(header, ";base64") {
		return nil, ErrNotDataURI
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode data URI: %w", err)
	}
	if err := checkDimensions(raw); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// checkDimensions reads only the image header and rejects images whose
// pixel count exceeds MaxImagePixels.
func checkDimensions(data []byte) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to read image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return fmt.Errorf("%w: image is %dx%d pixels, limit is %s pixels", ErrTooLarge,
			cfg.Width, cfg.Height, humanize.Comma(MaxImagePixels))
	}
	return nil
}
