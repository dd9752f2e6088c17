package receipt

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/mmynk/billsplit/internal/session"
)

// Builder produces the receipt to export at the given time.
type Builder func(now time.Time) Receipt

// ItemizedBuilder builds receipts from the current itemized bill.
func ItemizedBuilder(s *session.Itemized) Builder {
	return func(now time.Time) Receipt { return FromItemized(s.Snapshot(), now) }
}

// FlatBuilder builds receipts from the current flat bill.
func FlatBuilder(s *session.Flat) Builder {
	return func(now time.Time) Receipt { return FromFlat(s.Snapshot(), now) }
}

// Handler serves the receipt as a PNG download. The image is rendered in
// full before anything is written, so a failed export returns a plain 500.
func Handler(build Builder, clock func() time.Time) http.HandlerFunc {
	if clock == nil {
		clock = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		now := clock()

		var buf bytes.Buffer
		if err := Render(&buf, build(now)); err != nil {
			slog.Error("Failed to export receipt", "path", r.URL.Path, "error", err)
			http.Error(w, "failed to export image", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition", `attachment; filename="`+FileName(now)+`"`)
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.Header().Set("Cache-Control", "no-store")
		if _, err := buf.WriteTo(w); err != nil {
			slog.Warn("Failed to send receipt", "error", err)
			return
		}
		slog.Debug("Receipt exported", "path", r.URL.Path, "size", humanize.IBytes(uint64(buf.Len())))
	}
}
