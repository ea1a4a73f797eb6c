package game

// Orientation is the direction a vessel extends from its bow.
type Orientation uint8

const (
	// Horizontal vessels extend along Y (to the right).
	Horizontal Orientation = iota
	// Vertical vessels extend along X (downward).
	Vertical
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Vessel is a straight-line ship.
type Vessel struct {
	Bow         Coord
	Length      int
	Orientation Orientation

	remaining int // hits left before the vessel sinks
}

// NewVessel creates an undamaged vessel.
func NewVessel(bow Coord, length int, o Orientation) *Vessel {
	return &Vessel{
		Bow:         bow,
		Length:      length,
		Orientation: o,
		remaining:   length,
	}
}

// Coords returns the cells the vessel occupies, starting at the bow.
func (v *Vessel) Coords() []Coord {
	coords := make([]Coord, 0, v.Length)
	for i := range v.Length {
		if v.Orientation == Vertical {
			coords = append(coords, v.Bow.Add(i, 0))
		} else {
			coords = append(coords, v.Bow.Add(0, i))
		}
	}
	return coords
}

// IsHitBy reports whether c is one of the vessel's cells.
func (v *Vessel) IsHitBy(c Coord) bool {
	for _, vc := range v.Coords() {
		if vc == c {
			return true
		}
	}
	return false
}

// Remaining returns how many more hits the vessel can take.
func (v *Vessel) Remaining() int {
	return v.remaining
}

// Sunk reports whether the vessel has been destroyed.
func (v *Vessel) Sunk() bool {
	return v.remaining == 0
}

// hit registers one hit. Never goes below zero.
func (v *Vessel) hit() {
	if v.remaining > 0 {
		v.remaining--
	}
}
