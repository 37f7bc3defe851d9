package render

// Call is one drawing call captured by a Recorder.
type Call struct {
	Op      string
	Color   string
	X, Y, D float64
}

// Recorder keeps every call in order. It draws nothing.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Fill(color string) { r.Calls = append(r.Calls, Call{Op: "fill", Color: color}) }
func (r *Recorder) NoStroke()         { r.Calls = append(r.Calls, Call{Op: "noStroke"}) }

func (r *Recorder) Ellipse(x, y, d float64) {
	r.Calls = append(r.Calls, Call{Op: "ellipse", X: x, Y: y, D: d})
}

func (r *Recorder) Ellipses() []Call {
	out := make([]Call, 0, len(r.Calls)/3)
	for _, c := range r.Calls {
		if c.Op == "ellipse" {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }
