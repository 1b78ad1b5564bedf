// Package plotter - the SVG line renderer.
package plotter

import (
	"fmt"
	"html"
	"math"
	"strings"
)

// Fixed layout constants. The plot area is the outer box minus margins.
const (
	marginTop    = 40.0
	marginRight  = 30.0
	marginBottom = 50.0
	marginLeft   = 60.0

	axisTicks = 5
)

// palette colors series left uncolored by the caller, cycled in order.
var palette = []string{
	"#e41a1c", "#377eb8", "#4daf4a", "#984ea3",
	"#ff7f00", "#a65628", "#f781bf", "#999999",
}

// Series is one polyline: paired X/Y samples, a legend label, and a
// stroke color.
type Series struct {
	X     []float64
	Y     []float64
	Label string
	Color string
}

// Plot assembles series into a single SVG document. The zero value is
// not usable; construct with New.
type Plot struct {
	Width  float64
	Height float64
	Title  string
	XLabel string
	YLabel string

	series []Series
}

// New returns an empty plot of the given outer dimensions. Non-positive
// dimensions fall back to 640x400.
func New(width, height float64) *Plot {
	if width <= 0 || height <= 0 {
		width, height = 640, 400
	}
	return &Plot{Width: width, Height: height}
}

// AddSeries appends one polyline. An empty color picks the next palette
// entry. Returns the plot for chaining.
func (p *Plot) AddSeries(x, y []float64, label, color string) *Plot {
	if color == "" {
		color = palette[len(p.series)%len(palette)]
	}
	p.series = append(p.series, Series{X: x, Y: y, Label: label, Color: color})
	return p
}

// Render produces the SVG document. Series render in insertion order, so
// output is deterministic for a fixed build-up sequence. An empty plot
// still renders its frame, axes, and title.
func (p *Plot) Render() string {
	plotW := p.Width - marginLeft - marginRight
	plotH := p.Height - marginTop - marginBottom

	xmin, xmax, ymin, ymax := p.dataRange()

	// Scale data space onto the plot area; y grows downward in SVG.
	sx := func(x float64) float64 {
		return marginLeft + (x-xmin)/(xmax-xmin)*plotW
	}
	sy := func(y float64) float64 {
		return marginTop + plotH - (y-ymin)/(ymax-ymin)*plotH
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`,
		int(p.Width), int(p.Height))
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="#f8f9fa" rx="8"/>`,
		int(p.Width), int(p.Height))

	if p.Title != "" {
		fmt.Fprintf(&sb, `<text x="%.1f" y="25" text-anchor="middle" font-family="sans-serif" font-size="16" font-weight="bold">%s</text>`,
			p.Width/2, html.EscapeString(p.Title))
	}

	// Axis lines.
	fmt.Fprintf(&sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#333" stroke-width="2"/>`,
		marginLeft, marginTop, marginLeft, marginTop+plotH)
	fmt.Fprintf(&sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#333" stroke-width="2"/>`,
		marginLeft, marginTop+plotH, marginLeft+plotW, marginTop+plotH)

	if p.XLabel != "" {
		fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="12">%s</text>`,
			marginLeft+plotW/2, p.Height-10, html.EscapeString(p.XLabel))
	}
	if p.YLabel != "" {
		fmt.Fprintf(&sb, `<text x="15" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="12" transform="rotate(-90, 15, %.1f)">%s</text>`,
			marginTop+plotH/2, marginTop+plotH/2, html.EscapeString(p.YLabel))
	}

	// Ticks with faint grid lines behind the data.
	for i := 0; i <= axisTicks; i++ {
		frac := float64(i) / axisTicks

		x := xmin + (xmax-xmin)*frac
		px := sx(x)
		fmt.Fprintf(&sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#ddd" stroke-width="0.5"/>`,
			px, marginTop, px, marginTop+plotH)
		fmt.Fprintf(&sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#333" stroke-width="1"/>`,
			px, marginTop+plotH, px, marginTop+plotH+5)
		fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="10">%.2f</text>`,
			px, marginTop+plotH+20, x)

		y := ymin + (ymax-ymin)*frac
		py := sy(y)
		fmt.Fprintf(&sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#ddd" stroke-width="0.5"/>`,
			marginLeft, py, marginLeft+plotW, py)
		fmt.Fprintf(&sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#333" stroke-width="1"/>`,
			marginLeft-5, py, marginLeft, py)
		fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" text-anchor="end" font-family="sans-serif" font-size="10">%.3f</text>`,
			marginLeft-10, py+4, y)
	}

	// Series polylines.
	for _, s := range p.series {
		n := len(s.X)
		if len(s.Y) < n {
			n = len(s.Y)
		}
		if n == 0 {
			continue
		}
		var path strings.Builder
		for i := 0; i < n; i++ {
			cmd := " L"
			if i == 0 {
				cmd = "M"
			}
			fmt.Fprintf(&path, "%s%.2f,%.2f", cmd, sx(s.X[i]), sy(s.Y[i]))
		}
		fmt.Fprintf(&sb, `<path d="%s" stroke="%s" stroke-width="2" fill="none"/>`,
			path.String(), s.Color)
	}

	// Legend in the upper right of the plot area.
	legendY := marginTop + 10
	for _, s := range p.series {
		if s.Label == "" {
			continue
		}
		x1 := p.Width - marginRight - 80
		x2 := x1 + 20
		fmt.Fprintf(&sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>`,
			x1, legendY, x2, legendY, s.Color)
		fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="10">%s</text>`,
			x2+5, legendY+4, html.EscapeString(s.Label))
		legendY += 16
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

// dataRange scans all series for bounds, pads them slightly so lines do
// not hug the frame, and guards against empty or degenerate data.
func (p *Plot) dataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, s := range p.series {
		n := len(s.X)
		if len(s.Y) < n {
			n = len(s.Y)
		}
		for i := 0; i < n; i++ {
			xmin = math.Min(xmin, s.X[i])
			xmax = math.Max(xmax, s.X[i])
			ymin = math.Min(ymin, s.Y[i])
			ymax = math.Max(ymax, s.Y[i])
		}
	}
	if math.IsInf(xmin, 1) {
		xmin, xmax = 0, 1
	}
	if math.IsInf(ymin, 1) {
		ymin, ymax = 0, 1
	}
	if xmax == xmin {
		xmax = xmin + 1
	}
	if ymax == ymin {
		ymax = ymin + 1
	}
	xpad := (xmax - xmin) * 0.05
	ypad := (ymax - ymin) * 0.1
	return xmin - xpad, xmax + xpad, ymin - ypad, ymax + ypad
}
