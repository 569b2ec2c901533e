package tui

// OriginProvider reports where the form should be drawn, in terminal cells.
type OriginProvider interface {
	PreferredOrigin() (x, y int)
}

// FixedOrigin is an OriginProvider with a constant origin. The zero value is
// the fallback used when nothing better is known.
type FixedOrigin struct {
	X, Y int
}

func (o FixedOrigin) PreferredOrigin() (int, int) {
	return o.X, o.Y
}
