package dashoutline

import "math"

const (
	// DefaultSplitSteps is the number of parameter steps tried when splitting
	// a cubic at a target length.
	DefaultSplitSteps = 30
	// SimpleSplitSteps is the coarser step count of the simple filter variant.
	SimpleSplitSteps = 20
)

// SplitOptions configures [SplitAtLength].
type SplitOptions struct {
	// Flatness tolerance for length measurements. Zero selects
	// [DefaultPrecision].
	Precision float64
	// Number of steps of the parameter search on cubics. Zero selects
	// [DefaultSplitSteps].
	Steps int
}

func (opts SplitOptions) withDefaults() SplitOptions {
	if !(opts.Precision > 0) {
		opts.Precision = DefaultPrecision
	}
	if opts.Steps < 2 {
		opts.Steps = DefaultSplitSteps
	}
	return opts
}

// SplitAtLength splits p into a head of approximately the target length and
// the remaining tail.
//
// Whole segments go into the head while they fit. The segment that reaches the
// target is split: lines exactly, cubics at the first of the parameters
// 1/steps, 2/steps, … whose first half reaches the target. This linear search
// may overshoot by up to one step's worth of length on strongly curved
// segments. Zero-length segments are always consumed whole.
//
// If p is shorter than target, SplitAtLength returns p itself, a nil tail and
// false; there is nothing left to split. A segment whose length isn't finite
// ends the walk the same way.
func SplitAtLength(p Path, target float64, opts SplitOptions) (head, tail Path, ok bool) {
	opts = opts.withDefaults()
	var running float64
	for i, seg := range p {
		l := seg.Length(opts.Precision)
		if math.IsNaN(l) || math.IsInf(l, 0) {
			break
		}
		if l == 0 || running+l < target {
			running += l
			continue
		}

		var first, second Segment
		switch seg.Kind {
		case LineKind:
			first, second = seg.SplitAt((target - running) / l)
		case CubicKind:
			for j := 1; j < opts.Steps; j++ {
				first, second = seg.SplitAt(float64(j) / float64(opts.Steps))
				if running+first.Length(opts.Precision) >= target {
					break
				}
			}
		default:
			panic(invalidKind(seg.Kind))
		}

		head = p.WithPrefix(i).WithAppended(first)
		tail = make(Path, 0, len(p)-i)
		tail = append(tail, second)
		tail = append(tail, p[i+1:]...)
		return head, tail, true
	}
	return p, nil, false
}
