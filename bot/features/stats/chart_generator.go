package stats

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"time"

	"unionlotto/domain/entities"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
)

// ChartTitle is drawn above the bars
const ChartTitle = "Top Frequent Numbers (Current Session)"

// ErrNoStats is returned when there is nothing to chart
var ErrNoStats = errors.New("no statistics to chart")

var categoryColors = map[entities.Category]string{
	entities.CategoryRed:  "#ef4444",
	entities.CategoryBlue: "#3b82f6",
}

// ChartStyle defines the geometry of the frequency chart
type ChartStyle struct {
	Width        int
	Height       int
	PaddingLeft  float64
	PaddingRight float64
	PaddingTop   float64
	PaddingBot   float64
	BarFill      float64 // Fraction of each slot covered by its bar
	GridLines    int
}

// FrequencyChartGenerator renders number frequencies as a bar chart PNG
type FrequencyChartGenerator struct {
	style ChartStyle
}

// NewFrequencyChartGenerator creates a new chart generator with default style
func NewFrequencyChartGenerator() *FrequencyChartGenerator {
	return &FrequencyChartGenerator{
		style: ChartStyle{
			Width:        640,
			Height:       360,
			PaddingLeft:  45,
			PaddingRight: 20,
			PaddingTop:   60,
			PaddingBot:   40,
			BarFill:      0.7,
			GridLines:    4,
		},
	}
}

// barRect returns the rectangle for the bar at index among n bars
func (g *FrequencyChartGenerator) barRect(index, n, count, maxCount int) (x, y, w, h float64) {
	plotW := float64(g.style.Width) - g.style.PaddingLeft - g.style.PaddingRight
	plotH := float64(g.style.Height) - g.style.PaddingTop - g.style.PaddingBot
	slot := plotW / float64(n)

	w = slot * g.style.BarFill
	x = g.style.PaddingLeft + slot*float64(index) + (slot-w)/2
	h = plotH * float64(count) / float64(maxCount)
	y = g.style.PaddingTop + plotH - h
	return x, y, w, h
}

// Generate draws one bar per stat, in the order given
func (g *FrequencyChartGenerator) Generate(stats []entities.NumberStat) ([]byte, error) {
	if len(stats) == 0 {
		return nil, ErrNoStats
	}

	start := time.Now()
	defer func() {
		log.WithField("duration_ms", time.Since(start).Milliseconds()).
			WithField("bar_count", len(stats)).
			Debug("Frequency chart generation completed")
	}()

	width, height := float64(g.style.Width), float64(g.style.Height)
	dc := gg.NewContext(g.style.Width, g.style.Height)

	// Vertical gradient background
	for row := 0; row < g.style.Height; row++ {
		t := float64(row) / height
		dc.SetRGB(0.06+t*0.03, 0.07+t*0.04, 0.1+t*0.08)
		dc.DrawRectangle(0, float64(row), width, 1)
		dc.Fill()
	}

	titleFace, err := loadFont(gobold.TTF, 16)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	labelFace, err := loadFont(gomono.TTF, 11)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	// Title
	dc.SetFontFace(titleFace)
	dc.SetRGB(1, 1, 1)
	tw, _ := dc.MeasureString(ChartTitle)
	drawSharpText(dc, ChartTitle, (width-tw)/2, 28)

	// Legend
	dc.SetFontFace(labelFace)
	legendX := width - g.style.PaddingRight - 110
	for idx, category := range []entities.Category{entities.CategoryRed, entities.CategoryBlue} {
		lx := legendX + float64(idx)*55
		dc.SetHexColor(categoryColors[category])
		dc.DrawRoundedRectangle(lx, 38, 10, 10, 2)
		dc.Fill()
		dc.SetRGB(0.85, 0.85, 0.9)
		label := "Red"
		if category == entities.CategoryBlue {
			label = "Blue"
		}
		drawSharpText(dc, label, lx+14, 47)
	}

	maxCount := 0
	for _, stat := range stats {
		if stat.Count > maxCount {
			maxCount = stat.Count
		}
	}

	// Grid lines with count labels
	plotBottom := height - g.style.PaddingBot
	plotH := plotBottom - g.style.PaddingTop
	dc.SetLineWidth(1)
	for line := 0; line <= g.style.GridLines; line++ {
		y := plotBottom - plotH*float64(line)/float64(g.style.GridLines)
		dc.SetRGBA(0.6, 0.6, 0.7, 0.25)
		dc.DrawLine(g.style.PaddingLeft, y, width-g.style.PaddingRight, y)
		dc.Stroke()

		value := float64(maxCount) * float64(line) / float64(g.style.GridLines)
		label := strconv.FormatFloat(value, 'f', -1, 64)
		if value != float64(int(value)) {
			label = fmt.Sprintf("%.1f", value)
		}
		dc.SetRGB(0.7, 0.7, 0.75)
		lw, _ := dc.MeasureString(label)
		drawSharpText(dc, label, g.style.PaddingLeft-lw-6, y+4)
	}

	// Bars
	for idx, stat := range stats {
		x, y, w, h := g.barRect(idx, len(stats), stat.Count, maxCount)

		dc.SetHexColor(categoryColors[stat.Category])
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()

		dc.SetRGB(1, 1, 1)
		count := strconv.Itoa(stat.Count)
		cw, _ := dc.MeasureString(count)
		drawSharpText(dc, count, x+(w-cw)/2, y-4)

		dc.SetRGB(0.85, 0.85, 0.9)
		label := stat.Label()
		lw, _ := dc.MeasureString(label)
		drawSharpText(dc, label, x+(w-lw)/2, plotBottom+16)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	return buf.Bytes(), nil
}

// drawSharpText draws text with a subtle shadow for perceived sharpness
func drawSharpText(dc *gg.Context, text string, x, y float64) {
	dc.Push()
	dc.SetRGBA(0, 0, 0, 0.5)
	dc.DrawString(text, x+0.5, y+0.5)
	dc.Pop()

	dc.DrawString(text, x, y)
}

// loadFont loads a font from byte data
func loadFont(fontData []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(fontData)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:       size,
		DPI:        72,
		Hinting:    font.HintingFull,
		SubPixelsX: 4,
		SubPixelsY: 4,
	})
	return face, nil
}
