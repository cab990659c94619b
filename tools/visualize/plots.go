package visualize

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"ampscan_go/protparam"
)

// Figure is one output image made of a grid of plots.
type Figure struct {
	Name   string // file name without extension
	Plots  [][]*plot.Plot
	Width  vg.Length
	Height vg.Length
}

// Render draws the figure as "png" or "svg".
func (f Figure) Render(format string) ([]byte, error) {
	var buf bytes.Buffer

	// single plots go through the plot's own writer
	if len(f.Plots) == 1 && len(f.Plots[0]) == 1 {
		writer, err := f.Plots[0][0].WriterTo(f.Width, f.Height, format)
		if err != nil {
			return nil, err
		}
		if _, err := writer.WriteTo(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	tiles := draw.Tiles{
		Rows:      len(f.Plots),
		Cols:      len(f.Plots[0]),
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	switch format {
	case "png":
		img := vgimg.New(f.Width, f.Height)
		f.drawTiles(tiles, draw.New(img))
		if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(&buf); err != nil {
			return nil, err
		}
	case "svg":
		c := vgsvg.New(f.Width, f.Height)
		f.drawTiles(tiles, draw.New(c))
		if _, err := c.WriteTo(&buf); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported image format %q", format)
	}
	return buf.Bytes(), nil
}

func (f Figure) drawTiles(t draw.Tiles, dc draw.Canvas) {
	canvases := plot.Align(f.Plots, t, dc)
	for j := range f.Plots {
		for i := range f.Plots[j] {
			if f.Plots[j][i] != nil {
				f.Plots[j][i].Draw(canvases[j][i])
			}
		}
	}
}

// histogramPlot bins values and overlays a normal curve fitted to them,
// scaled to the histogram counts.
func histogramPlot(values []float64, title, xLabel string, fill color.Color) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Frequency"
	p.Add(plotter.NewGrid())

	h, err := plotter.NewHist(plotter.Values(values), 30)
	if err != nil {
		return nil, err
	}
	h.FillColor = fill
	h.LineStyle.Color = color.Black
	p.Add(h)

	sigma := stat.StdDev(values, nil)
	if len(values) > 1 && sigma > 0 && !math.IsNaN(sigma) {
		normDist := distuv.Normal{Mu: stat.Mean(values, nil), Sigma: sigma}
		scale := float64(len(values)) * h.Width
		curve := plotter.NewFunction(func(x float64) float64 {
			return normDist.Prob(x) * scale
		})
		curve.Color = color.RGBA{R: 60, G: 60, B: 60, A: 255}
		curve.Width = vg.Points(1.5)
		curve.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(curve)
		p.Legend.Add("Modelled Normal", curve)
		p.Legend.Top = true
	}
	return p, nil
}

// DistributionFigure is the 2x2 grid of length, mass, pI and GRAVY histograms.
func DistributionFigure(records []protparam.PropertyRecord) (Figure, error) {
	pick := func(get func(protparam.PropertyRecord) float64) []float64 {
		v := make([]float64, len(records))
		for i, r := range records {
			v[i] = get(r)
		}
		return v
	}

	specs := []struct {
		values []float64
		title  string
		xLabel string
		fill   color.Color
	}{
		{pick(func(r protparam.PropertyRecord) float64 { return float64(r.Length) }),
			"Peptide Length Distribution", "Peptide Length (aa)", color.RGBA{R: 70, G: 130, B: 180, A: 180}},
		{pick(func(r protparam.PropertyRecord) float64 { return r.MolecularWeight }),
			"Molecular Weight Distribution", "Molecular Weight (Da)", color.RGBA{G: 128, A: 180}},
		{pick(func(r protparam.PropertyRecord) float64 { return r.IsoelectricPoint }),
			"Isoelectric Point Distribution", "Isoelectric Point (pI)", color.RGBA{R: 255, G: 165, A: 180}},
		{pick(func(r protparam.PropertyRecord) float64 { return r.Gravy }),
			"Hydrophobicity Distribution", "GRAVY (Hydrophobicity)", color.RGBA{R: 220, G: 20, B: 20, A: 180}},
	}

	grid := [][]*plot.Plot{make([]*plot.Plot, 2), make([]*plot.Plot, 2)}
	for i, s := range specs {
		p, err := histogramPlot(s.values, s.title, s.xLabel, s.fill)
		if err != nil {
			return Figure{}, fmt.Errorf("%s: %w", s.title, err)
		}
		grid[i/2][i%2] = p
	}
	return Figure{Name: "amp_properties_distribution", Plots: grid, Width: 12 * vg.Inch, Height: 10 * vg.Inch}, nil
}

// StructureFigure plots the mean helix, turn and sheet fractions.
func StructureFigure(records []protparam.PropertyRecord) (Figure, error) {
	means := make([]float64, 3)
	for _, r := range records {
		means[0] += r.HelixFraction
		means[1] += r.TurnFraction
		means[2] += r.SheetFraction
	}
	for i := range means {
		if len(records) > 0 {
			means[i] /= float64(len(records))
		}
	}

	p := plot.New()
	p.Title.Text = "Average Secondary Structure Composition"
	p.Y.Label.Text = "Average Fraction"
	p.Y.Min = 0
	p.Y.Max = 1

	colors := []color.RGBA{
		{R: 0xFF, G: 0x6B, B: 0x6B, A: 255},
		{R: 0x4E, G: 0xCD, B: 0xC4, A: 255},
		{R: 0x45, G: 0xB7, B: 0xD1, A: 255},
	}
	labels := plotter.XYLabels{}
	for i, m := range means {
		bar, err := plotter.NewBarChart(plotter.Values{m}, vg.Points(60))
		if err != nil {
			return Figure{}, err
		}
		bar.XMin = float64(i)
		bar.Color = colors[i]
		bar.LineStyle.Color = color.Black
		p.Add(bar)

		labels.XYs = append(labels.XYs, plotter.XY{X: float64(i), Y: m + 0.02})
		labels.Labels = append(labels.Labels, fmt.Sprintf("%.2f", m))
	}
	text, err := plotter.NewLabels(labels)
	if err != nil {
		return Figure{}, err
	}
	p.Add(text)
	p.NominalX("α-Helix", "Turn", "β-Sheet")

	return Figure{Name: "secondary_structure", Plots: [][]*plot.Plot{{p}}, Width: 10 * vg.Inch, Height: 6 * vg.Inch}, nil
}

// ChargeFigure scatters charge at pH 7 against GRAVY, coloured by length.
func ChargeFigure(records []protparam.PropertyRecord) (Figure, error) {
	pts := make(plotter.XYs, len(records))
	minLen, maxLen := math.Inf(1), math.Inf(-1)
	for i, r := range records {
		pts[i].X = r.Gravy
		pts[i].Y = r.ChargeAtPH7
		minLen = math.Min(minLen, float64(r.Length))
		maxLen = math.Max(maxLen, float64(r.Length))
	}

	p := plot.New()
	p.Title.Text = "Charge vs Hydrophobicity (colour: peptide length)"
	p.X.Label.Text = "GRAVY (Hydrophobicity)"
	p.Y.Label.Text = "Charge at pH 7"
	p.Add(plotter.NewGrid())

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return Figure{}, err
	}
	cmap := moreland.SmoothBlueRed()
	if maxLen > minLen {
		cmap.SetMin(minLen)
		cmap.SetMax(maxLen)
	} else {
		cmap.SetMin(minLen - 1)
		cmap.SetMax(minLen + 1)
	}
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		c, err := cmap.At(float64(records[i].Length))
		if err != nil {
			c = color.Gray{Y: 128}
		}
		return draw.GlyphStyle{Color: c, Radius: vg.Points(3), Shape: draw.CircleGlyph{}}
	}
	p.Add(scatter)

	xmin, xmax, ymin, ymax := plotter.XYRange(pts)
	zero := color.RGBA{R: 255, A: 128}
	for _, seg := range []plotter.XYs{
		{{X: xmin, Y: 0}, {X: xmax, Y: 0}},
		{{X: 0, Y: ymin}, {X: 0, Y: ymax}},
	} {
		line, err := plotter.NewLine(seg)
		if err != nil {
			return Figure{}, err
		}
		line.Color = zero
		line.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
		p.Add(line)
	}

	return Figure{Name: "charge_vs_hydrophobicity", Plots: [][]*plot.Plot{{p}}, Width: 10 * vg.Inch, Height: 8 * vg.Inch}, nil
}
