package receipt

import (
	"fmt"
	"io"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/mmynk/billsplit/internal/models"
)

const (
	width      = 720
	margin     = 32.0
	headerH    = 120.0
	rowH       = 34.0
	totalsRowH = 30.0
	qrSize     = 220.0
	currency   = "THB"
)

var themes = map[models.Platform]string{
	models.PlatformGrab:       "#00b14f",
	models.PlatformLineMan:    "#06c755",
	models.PlatformShopeeFood: "#ee4d2d",
	models.PlatformFoodpanda:  "#d70f64",
	models.PlatformRobinhood:  "#6f2da8",
	models.PlatformOther:      "#7c3aed",
}

type faces struct {
	title, body, bold font.Face
}

var loadFaces = sync.OnceValues(func() (*faces, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return &faces{
		title: truetype.NewFace(bold, &truetype.Options{Size: 30}),
		body:  truetype.NewFace(regular, &truetype.Options{Size: 17}),
		bold:  truetype.NewFace(bold, &truetype.Options{Size: 17}),
	}, nil
})

// FormatAmount formats a value for display, rounded to two decimals.
func FormatAmount(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// Render draws r as a PNG and writes it to w.
func Render(w io.Writer, r Receipt) error {
	f, err := loadFaces()
	if err != nil {
		return err
	}

	totalsRows := 3
	if r.ShowFees {
		totalsRows += 3
	}
	height := headerH + rowH*float64(len(r.Lines)+1) + totalsRowH*float64(totalsRows) + 2*margin
	if r.QR != nil {
		height += qrSize + margin
	}

	dc := gg.NewContext(width, int(height))
	dc.SetHexColor("#ffffff")
	dc.Clear()

	theme, ok := themes[r.Platform]
	if !ok {
		theme = themes[models.PlatformOther]
	}

	// Header
	dc.SetHexColor(theme)
	dc.DrawRectangle(0, 0, width, headerH)
	dc.Fill()
	dc.SetHexColor("#ffffff")
	dc.SetFontFace(f.title)
	dc.DrawStringAnchored(r.Title, margin, 52, 0, 0.5)
	dc.SetFontFace(f.body)
	dc.DrawStringAnchored(r.IssuedAt.Format("2 Jan 2006 15:04"), margin, 92, 0, 0.5)
	dc.DrawStringAnchored(currency, width-margin, 92, 1, 0.5)

	// Table
	cols := []float64{margin, 300, 420, 540, width - margin}
	headings := []string{"Name", "Food", "Discount", "Fee", "Net"}
	if !r.ShowFees {
		cols = []float64{margin, 360, 520, width - margin}
		headings = []string{"Name", "Amount", "Discount", "Pay"}
	}

	y := headerH + rowH/2 + 8
	dc.SetFontFace(f.bold)
	dc.SetHexColor("#374151")
	drawRow(dc, cols, y, headings)

	dc.SetFontFace(f.body)
	for i, line := range r.Lines {
		y += rowH
		if i%2 == 0 {
			dc.SetHexColor("#f3f4f6")
			dc.DrawRectangle(0, y-rowH/2, width, rowH)
			dc.Fill()
		}
		dc.SetHexColor("#111827")
		name := line.Name
		if line.Paid {
			name += " (paid)"
		}
		cells := []string{name, FormatAmount(line.Food), "-" + FormatAmount(line.Discount)}
		if r.ShowFees {
			cells = append(cells, "+"+FormatAmount(line.Fee))
		}
		cells = append(cells, FormatAmount(line.Net))
		drawRow(dc, cols, y, cells)
	}

	// Totals
	y += rowH/2 + margin/2
	dc.SetHexColor(theme)
	dc.SetLineWidth(2)
	dc.DrawLine(margin, y, width-margin, y)
	dc.Stroke()

	var totals [][2]string
	if r.Totals != nil {
		totals = append(totals,
			[2]string{"Total purchases", FormatAmount(r.Totals.TotalFood)},
			[2]string{"Discount", "-" + FormatAmount(r.Totals.EffectiveFoodDiscount+r.Totals.EffectiveFeeDiscount)},
		)
		if r.ShowFees {
			totals = append(totals,
				[2]string{"Delivery + service", FormatAmount(r.Totals.TotalFees)},
				[2]string{"Fee per person", FormatAmount(r.Totals.FeePerPerson)},
			)
		}
		totals = append(totals, [2]string{"Grand total", FormatAmount(r.Totals.GrandTotal)})
	}
	totals = append(totals, [2]string{
		fmt.Sprintf("Paid %d / %d", r.Payments.Paid, r.Payments.Paid+r.Payments.Unpaid),
		"outstanding " + FormatAmount(r.Payments.Outstanding),
	})

	dc.SetFontFace(f.bold)
	dc.SetHexColor("#111827")
	for _, t := range totals {
		y += totalsRowH
		dc.DrawStringAnchored(t[0], margin, y, 0, 0.5)
		dc.DrawStringAnchored(t[1], width-margin, y, 1, 0.5)
	}

	if r.QR != nil {
		y += margin
		b := r.QR.Bounds()
		scale := qrSize / float64(max(b.Dx(), b.Dy()))
		dc.Push()
		dc.Translate((width-qrSize)/2, y)
		dc.Scale(scale, scale)
		dc.DrawImage(r.QR, -b.Min.X, -b.Min.Y)
		dc.Pop()
	}

	return dc.EncodePNG(w)
}

func drawRow(dc *gg.Context, cols []float64, y float64, cells []string) {
	for i, cell := range cells {
		if i == 0 {
			dc.DrawStringAnchored(cell, cols[0], y, 0, 0.5)
			continue
		}
		dc.DrawStringAnchored(cell, cols[i], y, 1, 0.5)
	}
}
