package chart

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go-sales-dashboard/internal/logging"
	"go-sales-dashboard/internal/metrics"
	"go-sales-dashboard/internal/model"
	"go-sales-dashboard/pkg/utils"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	barWidth   = 40
	barSpacing = 24
	minWidth   = 400
)

// ErrNothingToDraw is returned for figures without data (or an all-zero pie)
var ErrNothingToDraw = errors.New("nothing to draw")

// Renderer draws chart specs to PNG files in one directory
type Renderer struct {
	output *utils.OutputManager
	width  int
	height int
}

// NewRenderer prepares the graph directory, creating it if needed
func NewRenderer(dir string, width, height int) (*Renderer, error) {
	om := utils.NewOutputManager(dir)
	if err := om.EnsureOutputDirExists(); err != nil {
		return nil, fmt.Errorf("failed to create graph directory %s: %w", dir, err)
	}
	return &Renderer{output: om, width: width, height: height}, nil
}

// Dir is the directory charts are written to
func (r *Renderer) Dir() string {
	return r.output.BaseOutputDir
}

// Render draws spec and writes it to <dir>/<filename>, replacing any
// previous artifact, and returns the written path.
func (r *Renderer) Render(ctx context.Context, spec model.ChartSpec, filename string) (path string, err error) {
	start := time.Now()
	name := strings.TrimSuffix(filename, ".png")
	defer func() {
		metrics.RecordChartRender(name, time.Since(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	png, err := Draw(spec, r.width, r.height)
	if err != nil {
		return "", fmt.Errorf("failed to draw %s: %w", filename, err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err = r.output.WriteFile(filename, png)
	if err != nil {
		return "", err
	}

	logging.Debug().
		Str("chart", name).
		Str("path", path).
		Int("bytes", len(png)).
		Dur("took", time.Since(start)).
		Msg("chart rendered")
	return path, nil
}

// Draw encodes a chart spec as PNG bytes
func Draw(spec model.ChartSpec, width, height int) ([]byte, error) {
	if len(spec.Data) == 0 {
		return nil, ErrNothingToDraw
	}

	var buf bytes.Buffer
	switch spec.Kind {
	case model.ChartPie:
		pc, err := pieChart(spec, width, height)
		if err != nil {
			return nil, err
		}
		if err := pc.Render(gochart.PNG, &buf); err != nil {
			return nil, err
		}
	case model.ChartBar, "":
		bc := barChart(spec, width, height)
		if err := bc.Render(gochart.PNG, &buf); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported chart kind %q", spec.Kind)
	}
	return buf.Bytes(), nil
}

func barChart(spec model.ChartSpec, width, height int) gochart.BarChart {
	fill := colorOf(spec.Color, gochart.ColorBlue)

	bars := make([]gochart.Value, len(spec.Data))
	lo, hi := 0.0, 0.0
	for i, b := range spec.Data {
		bars[i] = gochart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: gochart.Style{FillColor: fill, StrokeColor: fill, StrokeWidth: 1},
		}
		lo = math.Min(lo, b.Value)
		hi = math.Max(hi, b.Value)
	}
	// an all-zero series still needs a non-empty value range
	if hi <= lo {
		hi = lo + 1
	}

	if w := 2*barSpacing + len(bars)*(barWidth+barSpacing); w > width {
		width = w
	}
	if width < minWidth {
		width = minWidth
	}

	return gochart.BarChart{
		Title:      spec.Title,
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		YAxis: gochart.YAxis{
			Name:  spec.YLabel,
			Range: &gochart.ContinuousRange{Min: lo, Max: hi * 1.1},
		},
		Bars: bars,
	}
}

func pieChart(spec model.ChartSpec, width, height int) (gochart.PieChart, error) {
	total := spec.Data.Total()
	if total <= 0 {
		return gochart.PieChart{}, ErrNothingToDraw
	}

	values := make([]gochart.Value, 0, len(spec.Data))
	for _, b := range spec.Data {
		if b.Value <= 0 {
			continue
		}
		values = append(values, gochart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", b.Label, b.Value/total*100),
			Value: b.Value,
		})
	}

	return gochart.PieChart{
		Title:  spec.Title,
		Width:  width,
		Height: height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		Values: values,
	}, nil
}

// colorOf parses "#RRGGBB" (or "RRGGBB"), falling back to def
func colorOf(hex string, def drawing.Color) drawing.Color {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 && len(hex) != 3 {
		return def
	}
	return drawing.ColorFromHex(hex)
}
