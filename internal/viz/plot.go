package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/coulomb/internal/pairwise"
)

// SampleKernel evaluates the requested derivative order of a scheme's
// splitting function on a uniform q grid over [0, 1].
func SampleKernel(s pairwise.ShortRange, order, samples int) []float64 {
	if samples < 2 {
		samples = 2
	}
	data := make([]float64, samples)
	for i := range data {
		q := float64(i) / float64(samples-1)
		switch order {
		case 0:
			data[i] = s.F0(q)
		case 1:
			data[i] = pairwise.F1(s, q)
		case 2:
			data[i] = pairwise.F2(s, q)
		default:
			data[i] = pairwise.F3(s, q)
		}
	}
	return data
}

// PlotKernel renders one derivative order of the splitting function
// as an ascii chart.
func PlotKernel(s pairwise.ShortRange, order, width, height int, caption string) string {
	return asciigraph.Plot(SampleKernel(s, order, width),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
