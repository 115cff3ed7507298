package kdgo

import "sort"

// Window is a zero-copy view over a contiguous run of points inside a
// flat row-major coordinate buffer. Sub-windows share the same backing
// storage, so reordering points inside one window is visible through
// every overlapping window; the builder relies on this to partition in
// place before recursing.
type Window struct {
	buf []float64
	dim int
	off int // first point of the view, in points
	n   int // number of points in the view
}

// NewWindow creates a window covering every point in buf. It fails if
// dim is not positive or len(buf) is not a multiple of dim.
func NewWindow(buf []float64, dim int) (Window, error) {
	if dim < 1 {
		return Window{}, &ErrInvalidDimension{Dimension: dim}
	}
	if len(buf)%dim != 0 {
		return Window{}, &ErrBufferLength{Length: len(buf), Dimension: dim}
	}
	return Window{buf: buf, dim: dim, n: len(buf) / dim}, nil
}

// Len returns the number of points in the window.
func (w Window) Len() int { return w.n }

// Dimension returns the point dimensionality.
func (w Window) Dimension() int { return w.dim }

// Point returns the coordinate slice of point i within the window.
// The slice aliases the backing buffer.
func (w Window) Point(i int) []float64 {
	base := (w.off + i) * w.dim
	return w.buf[base : base+w.dim : base+w.dim]
}

// Slice returns the sub-window [start, end) in window-local point
// coordinates, sharing the same backing storage.
func (w Window) Slice(start, end int) Window {
	return Window{buf: w.buf, dim: w.dim, off: w.off + start, n: end - start}
}

// swap exchanges points i and j in place.
func (w Window) swap(i, j int) {
	a, b := w.Point(i), w.Point(j)
	for c := range a {
		a[c], b[c] = b[c], a[c]
	}
}

// axisSorter orders the points of a window by one coordinate axis.
type axisSorter struct {
	w    Window
	axis int
}

var _ sort.Interface = axisSorter{}

func (s axisSorter) Len() int           { return s.w.Len() }
func (s axisSorter) Less(i, j int) bool { return s.w.Point(i)[s.axis] < s.w.Point(j)[s.axis] }
func (s axisSorter) Swap(i, j int)      { s.w.swap(i, j) }
