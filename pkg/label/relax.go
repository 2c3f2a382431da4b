package label

// Relaxation defaults.
const (
	DefaultIterations = 100
	DefaultRepulsion  = 1.0
	DefaultAttraction = 0.1
	DefaultGap        = 1.0
)

// RelaxOptions tunes the force-directed pass. Zero fields take the
// defaults above.
type RelaxOptions struct {
	// Iterations caps the number of passes.
	Iterations int `json:"iterations" toml:"iterations" yaml:"iterations"`

	// Repulsion scales how far an overlapping pair is pushed apart per
	// pass; 1 separates the pair completely along its shallower axis.
	Repulsion float64 `json:"repulsion" toml:"repulsion" yaml:"repulsion"`

	// Attraction pulls each displaced label back toward where it was
	// first placed, as a fraction of the displacement per pass.
	Attraction float64 `json:"attraction" toml:"attraction" yaml:"attraction"`

	// Gap is the clearance in pixels left between separated boxes.
	Gap float64 `json:"gap" toml:"gap" yaml:"gap"`
}

func (o RelaxOptions) withDefaults() RelaxOptions {
	if o.Iterations <= 0 {
		o.Iterations = DefaultIterations
	}
	if o.Repulsion <= 0 {
		o.Repulsion = DefaultRepulsion
	}
	if o.Attraction < 0 {
		o.Attraction = 0
	} else if o.Attraction == 0 {
		o.Attraction = DefaultAttraction
	}
	if o.Gap < 0 {
		o.Gap = 0
	} else if o.Gap == 0 {
		o.Gap = DefaultGap
	}
	return o
}

// RelaxResult reports what a relaxation pass did.
type RelaxResult struct {
	Iterations int `json:"iterations"`
	Moved      int `json:"moved"`
	Overlaps   int `json:"overlaps"`
}

// Relax moves accepted labels apart. Every overlapping pair is pushed along
// the axis where it overlaps least while each label is pulled back toward
// its original box. The pass stops when nothing overlaps or the iteration
// budget runs out.
//
// Relaxed boxes are not checked against the drawable area or re-proposed;
// Overlaps in the result counts the pairs still intersecting.
func (e *Engine) Relax(opts RelaxOptions) RelaxResult {
	opts = opts.withDefaults()
	n := len(e.placed)
	origin := make([]Box, n)
	for i, p := range e.placed {
		origin[i] = p.Box
	}

	var res RelaxResult
	dx := make([]float64, n)
	dy := make([]float64, n)
	for res.Iterations < opts.Iterations {
		clear(dx)
		clear(dy)

		overlapping := false
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				a, b := e.placed[i].Box, e.placed[j].Box
				if !a.Intersects(b) {
					continue
				}
				overlapping = true
				ox, oy := a.overlap(b)
				ca, cb := a.Center(), b.Center()
				if ox <= oy {
					push := (ox + opts.Gap) / 2 * opts.Repulsion
					// Ties go to acceptance order: earlier labels move left.
					if ca.X <= cb.X {
						push = -push
					}
					dx[i] += push
					dx[j] -= push
				} else {
					push := (oy + opts.Gap) / 2 * opts.Repulsion
					if ca.Y <= cb.Y {
						push = -push
					}
					dy[i] += push
					dy[j] -= push
				}
			}
		}
		if !overlapping {
			break
		}
		res.Iterations++

		for i := range e.placed {
			cur := e.placed[i].Box
			dx[i] += (origin[i].X0 - cur.X0) * opts.Attraction
			dy[i] += (origin[i].Y0 - cur.Y0) * opts.Attraction
			e.placed[i].Box = cur.Translate(dx[i], dy[i])
		}
	}

	for i := range e.placed {
		if e.placed[i].Box != origin[i] {
			res.Moved++
		}
	}
	res.Overlaps = Overlaps(e.placed)
	return res
}
