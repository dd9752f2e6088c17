package paymentqr

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"hash/crc32"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccept(t *testing.T) {
	qrPNG, err := Encode("https://example.com/pay")
	require.NoError(t, err)

	t.Run("accepts an image and reads its QR payload", func(t *testing.T) {
		upload, err := Accept(qrPNG, DefaultMaxUploadBytes)
		require.NoError(t, err)
		assert.Equal(t, "image/png", upload.MIME)
		assert.True(t, strings.HasPrefix(upload.DataURI, "data:image/png;base64,"))
		assert.Equal(t, "https://example.com/pay", upload.Payload)
	})

	t.Run("rejects files over the ceiling", func(t *testing.T) {
		_, err := Accept(qrPNG, int64(len(qrPNG)-1))
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("rejects 5MB plus one byte", func(t *testing.T) {
		_, err := Accept(make([]byte, DefaultMaxUploadBytes+1), DefaultMaxUploadBytes)
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("rejects non-images", func(t *testing.T) {
		_, err := Accept([]byte("just some text, not a picture"), DefaultMaxUploadBytes)
		assert.ErrorIs(t, err, ErrNotImage)
	})

	t.Run("rejects empty uploads", func(t *testing.T) {
		_, err := Accept(nil, DefaultMaxUploadBytes)
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("rejects small files declaring huge dimensions", func(t *testing.T) {
		huge := pngHeader(12000, 12000)
		require.Less(t, len(huge), 100)

		_, err := Accept(huge, DefaultMaxUploadBytes)
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("accepts an image at the pixel limit without a QR", func(t *testing.T) {
		upload, err := Accept(pngHeader(4096, 4096), DefaultMaxUploadBytes)
		require.NoError(t, err)
		assert.Equal(t, "image/png", upload.MIME)
		assert.Empty(t, upload.Payload)
	})
}

// pngHeader returns a PNG holding only the signature, an 8-bit grayscale
// IHDR chunk and IEND, so its header declares w x h pixels.
func pngHeader(w, h uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")

	chunk := func(typ string, data []byte) {
		_ = binary.Write(&buf, binary.BigEndian, uint32(len(data)))
		body := append([]byte(typ), data...)
		buf.Write(body)
		_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(body))
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], w)
	binary.BigEndian.PutUint32(ihdr[4:8], h)
	ihdr[8] = 8 // bit depth; color type, compression, filter and interlace stay 0
	chunk("IHDR", ihdr)
	chunk("IEND", nil)
	return buf.Bytes()
}

func TestDecodeDataURI(t *testing.T) {
	qrPNG, err := Encode("hello")
	require.NoError(t, err)
	upload, err := Accept(qrPNG, DefaultMaxUploadBytes)
	require.NoError(t, err)

	img, err := DecodeDataURI(upload.DataURI)
	require.NoError(t, err)
	assert.NotZero(t, img.Bounds().Dx())

	_, err = DecodeDataURI("https://example.com/qr.png")
	assert.ErrorIs(t, err, ErrNotDataURI)
}

func TestDecodeDataURIRejectsHugeImages(t *testing.T) {
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngHeader(12000, 12000))

	_, err := DecodeDataURI(uri)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestPromptPay(t *testing.T) {
	code, err := PromptPay("0812345678", 265.004)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(code.Payload, "000201"), "payload %q is not EMVCo", code.Payload)

	img, err := png.Decode(bytes.NewReader(code.PNG))
	require.NoError(t, err)

	payload, err := Decode(img)
	require.NoError(t, err)
	assert.Equal(t, code.Payload, payload)
	assert.True(t, strings.HasPrefix(code.DataURI(), "data:image/png;base64,"))
}

func TestPromptPayRequiresID(t *testing.T) {
	_, err := PromptPay("  ", 10)
	assert.ErrorIs(t, err, ErrPromptPayID)
}
