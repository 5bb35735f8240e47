package dashoutline

// connectTolerance is the distance within which path ends are considered
// to coincide.
const connectTolerance = 1e-6

// ConnectOpenPaths joins open paths whose end points lie within tolerance of
// each other into longer paths. Paths are reversed where needed to make the
// ends meet. A joined path whose ends meet is closed by snapping its end to
// its start. Closed paths are passed through unchanged.
//
// The result keeps the order of the first path of each chain.
func ConnectOpenPaths(o Outline, tolerance float64) Outline {
	out := make(Outline, 0, len(o))
	for _, p := range o {
		if len(p) == 0 {
			continue
		}
		out = append(out, p.Clone())
	}

	for i := 0; i < len(out); i++ {
		if out[i].Closed() {
			continue
		}
		for joined := true; joined; {
			joined = false
			for j := i + 1; j < len(out); j++ {
				if out[j].Closed() {
					continue
				}
				if p, ok := joinPaths(out[i], out[j], tolerance); ok {
					out[i] = p
					out = append(out[:j], out[j+1:]...)
					joined = true
					break
				}
			}
		}
		if p := out[i]; len(p) > 1 && p.End().near(p.Start(), tolerance) {
			p[len(p)-1] = p[len(p)-1].withEnd(p.Start())
		}
	}
	return out
}

// joinPaths joins a and b if one of a's ends meets one of b's ends.
func joinPaths(a, b Path, tolerance float64) (Path, bool) {
	switch {
	case a.End().near(b.Start(), tolerance):
	case a.End().near(b.End(), tolerance):
		b = b.Reverse()
	case a.Start().near(b.End(), tolerance):
		a, b = b, a
	case a.Start().near(b.Start(), tolerance):
		a, b = b.Reverse(), a
	default:
		return nil, false
	}
	out := make(Path, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	out[len(a)] = out[len(a)].withStart(a.End())
	return out, true
}
