package kdgo

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/kdgo/distance"
)

// Options contains configuration options for building a tree.
type Options struct {
	// DistanceFunc is the metric used for queries against the tree.
	// It must be non-negative and per-axis monotonic for pruning to be
	// correct; this is not validated.
	DistanceFunc distance.Func

	// Logger receives structured build/query diagnostics.
	Logger *Logger
}

// DefaultOptions contains the default configuration options for a tree.
var DefaultOptions = Options{
	DistanceFunc: distance.SquaredL2,
}

// WithDistanceFunc configures the distance function used by queries.
func WithDistanceFunc(fn distance.Func) func(*Options) {
	return func(o *Options) {
		if fn != nil {
			o.DistanceFunc = fn
		}
	}
}

// WithMetric configures the distance function from a named metric.
// Unknown metrics leave the default in place.
func WithMetric(m distance.Metric) func(*Options) {
	return func(o *Options) {
		if fn, err := distance.Provider(m); err == nil {
			o.DistanceFunc = fn
		}
	}
}

// WithLogger configures the logger used for build diagnostics.
func WithLogger(logger *Logger) func(*Options) {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// SearchOptions contains per-query configuration options.
type SearchOptions struct {
	// MaxDistance, when set (>= 0), is a hard radius cutoff: no result
	// farther than MaxDistance is returned. Negative means unset.
	MaxDistance float64

	// Filter, when non-nil, restricts results to the point indices
	// (Node.Index) present in the bitmap. The traversal still visits
	// filtered nodes for routing; only admission is restricted.
	// The bitmap is 32-bit: indices beyond the uint32 range are never
	// admitted.
	Filter *roaring.Bitmap

	// Sorted requests ascending-distance result order. The default
	// (false) returns results in the candidate heap's internal array
	// order, which is unspecified.
	Sorted bool
}

// DefaultSearchOptions contains the default per-query options.
var DefaultSearchOptions = SearchOptions{
	MaxDistance: -1,
}

// WithMaxDistance configures a hard radius cutoff for a query.
func WithMaxDistance(d float64) func(*SearchOptions) {
	return func(o *SearchOptions) {
		o.MaxDistance = d
	}
}

// WithFilter restricts a query to an allow-list of point indices.
func WithFilter(filter *roaring.Bitmap) func(*SearchOptions) {
	return func(o *SearchOptions) {
		o.Filter = filter
	}
}

// WithSorted requests results sorted by ascending distance.
func WithSorted() func(*SearchOptions) {
	return func(o *SearchOptions) {
		o.Sorted = true
	}
}
