package output

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// Series colors match the palette of the interactive charts.
const (
	colorNominal      = "#1f77b4"
	colorReal         = "#ff7f0e"
	colorContribution = "#2ca02c"
)

type chartLine struct {
	Name   string
	Color  string
	Values []float64
}

// lineChart is a static SVG line chart with a shared x axis.
type lineChart struct {
	Title  string
	XLabel string
	YLabel string
	X      []float64
	Lines  []chartLine
}

const (
	chartWidth   = 760
	chartHeight  = 320
	marginLeft   = 70
	marginRight  = 20
	marginTop    = 40
	marginBottom = 50
	yTicks       = 5
)

// SVG renders the chart as inline markup.
func (c lineChart) SVG() template.HTML {
	if len(c.X) == 0 || len(c.Lines) == 0 {
		return ""
	}

	xMin, xMax := c.X[0], c.X[len(c.X)-1]
	if xMax == xMin {
		xMax = xMin + 1
	}
	yMin, yMax := 0.0, 0.0
	for _, l := range c.Lines {
		for _, v := range l.Values {
			yMin = math.Min(yMin, v)
			yMax = math.Max(yMax, v)
		}
	}
	if yMax == yMin {
		yMax = yMin + 1
	}

	plotW := float64(chartWidth - marginLeft - marginRight)
	plotH := float64(chartHeight - marginTop - marginBottom)
	px := func(x float64) float64 { return marginLeft + (x-xMin)/(xMax-xMin)*plotW }
	py := func(y float64) float64 { return marginTop + plotH - (y-yMin)/(yMax-yMin)*plotH }

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" class="chart" role="img">`, chartWidth, chartHeight)
	fmt.Fprintf(&b, `<text x="%d" y="20" class="chart-title">%s</text>`, marginLeft, template.HTMLEscapeString(c.Title))

	// grid and y labels
	for i := 0; i <= yTicks; i++ {
		v := yMin + (yMax-yMin)*float64(i)/yTicks
		y := py(v)
		fmt.Fprintf(&b, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" class="grid"/>`, marginLeft, y, chartWidth-marginRight, y)
		fmt.Fprintf(&b, `<text x="%d" y="%.1f" class="tick" text-anchor="end">%s</text>`, marginLeft-6, y+4, formatTick(v))
	}

	// x labels on whole years
	step := math.Max(1, math.Ceil((xMax-xMin)/10))
	for x := math.Ceil(xMin); x <= xMax; x += step {
		fmt.Fprintf(&b, `<text x="%.1f" y="%d" class="tick" text-anchor="middle">%.0f</text>`, px(x), chartHeight-marginBottom+18, x)
	}
	fmt.Fprintf(&b, `<text x="%.1f" y="%d" class="axis-label" text-anchor="middle">%s</text>`, marginLeft+plotW/2, chartHeight-8, template.HTMLEscapeString(c.XLabel))
	fmt.Fprintf(&b, `<text x="14" y="%.1f" class="axis-label" text-anchor="middle" transform="rotate(-90 14 %.1f)">%s</text>`, marginTop+plotH/2, marginTop+plotH/2, template.HTMLEscapeString(c.YLabel))

	for i, l := range c.Lines {
		points := make([]string, 0, len(l.Values))
		for j, v := range l.Values {
			if j >= len(c.X) {
				break
			}
			points = append(points, fmt.Sprintf("%.1f,%.1f", px(c.X[j]), py(v)))
		}
		fmt.Fprintf(&b, `<polyline fill="none" stroke="%s" stroke-width="2" points="%s"/>`, l.Color, strings.Join(points, " "))

		lx := chartWidth - marginRight - 160
		ly := marginTop + 16*i
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="12" height="3" fill="%s"/>`, lx, ly-4, l.Color)
		fmt.Fprintf(&b, `<text x="%d" y="%d" class="legend">%s</text>`, lx+18, ly, template.HTMLEscapeString(l.Name))
	}

	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

// formatTick keeps axis labels short.
func formatTick(v float64) string {
	switch a := math.Abs(v); {
	case a == 0:
		return "0"
	case a >= 100:
		return fmt.Sprintf("%.0f", v)
	case a >= 1:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
