package geom

// Dir is one of the four orthogonal compass directions.
type Dir uint8

// The four orthogonal directions, clockwise from North.
const (
	North Dir = iota
	East
	South
	West
)

// Dirs returns the four orthogonal directions, clockwise from North.
func Dirs() []Dir {
	return []Dir{North, East, South, West}
}

// IsValid reports whether d is one of the four declared directions.
func (d Dir) IsValid() bool {
	return d <= West
}

// Opposite returns the direction pointing the other way.
func (d Dir) Opposite() Dir {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// RotateRight turns d by 90° clockwise.
func (d Dir) RotateRight() Dir {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	default:
		return d
	}
}

// RotateLeft turns d by 90° counter-clockwise.
func (d Dir) RotateLeft() Dir {
	switch d {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	case East:
		return North
	default:
		return d
	}
}

// MirrorH reflects d across the vertical axis (East and West swap).
func (d Dir) MirrorH() Dir {
	switch d {
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// MirrorV reflects d across the horizontal axis (North and South swap).
func (d Dir) MirrorV() Dir {
	switch d {
	case North:
		return South
	case South:
		return North
	default:
		return d
	}
}

// Delta returns the unit displacement of d. Y grows downward.
func (d Dir) Delta() Point {
	switch d {
	case North:
		return Point{0, -1}
	case East:
		return Point{1, 0}
	case South:
		return Point{0, 1}
	case West:
		return Point{-1, 0}
	default:
		return Point{}
	}
}

// Dir8 widens d to the equivalent 8-way direction.
func (d Dir) Dir8() Dir8 {
	switch d {
	case North:
		return N
	case East:
		return E
	case South:
		return S
	case West:
		return W
	default:
		return Dir8(255)
	}
}

func (d Dir) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Dir8 is one of the eight compass directions, orthogonal and diagonal.
type Dir8 uint8

// The eight directions, clockwise from N.
const (
	N Dir8 = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// Dirs8 returns the eight directions, clockwise from N.
func Dirs8() []Dir8 {
	return []Dir8{N, NE, E, SE, S, SW, W, NW}
}

// IsValid reports whether d is one of the eight declared directions.
func (d Dir8) IsValid() bool {
	return d <= NW
}

// IsDiagonal reports whether d is one of NE, SE, SW, NW.
func (d Dir8) IsDiagonal() bool {
	switch d {
	case NE, SE, SW, NW:
		return true
	default:
		return false
	}
}

// Next returns the neighbouring direction 45° clockwise; NW wraps to N.
func (d Dir8) Next() Dir8 {
	switch d {
	case N:
		return NE
	case NE:
		return E
	case E:
		return SE
	case SE:
		return S
	case S:
		return SW
	case SW:
		return W
	case W:
		return NW
	case NW:
		return N
	default:
		return d
	}
}

// Prev returns the neighbouring direction 45° counter-clockwise; N wraps to NW.
func (d Dir8) Prev() Dir8 {
	switch d {
	case N:
		return NW
	case NW:
		return W
	case W:
		return SW
	case SW:
		return S
	case S:
		return SE
	case SE:
		return E
	case E:
		return NE
	case NE:
		return N
	default:
		return d
	}
}

// Opposite returns the direction pointing the other way.
func (d Dir8) Opposite() Dir8 {
	switch d {
	case N:
		return S
	case NE:
		return SW
	case E:
		return W
	case SE:
		return NW
	case S:
		return N
	case SW:
		return NE
	case W:
		return E
	case NW:
		return SE
	default:
		return d
	}
}

// MirrorH reflects d across the vertical axis.
func (d Dir8) MirrorH() Dir8 {
	switch d {
	case NE:
		return NW
	case NW:
		return NE
	case E:
		return W
	case W:
		return E
	case SE:
		return SW
	case SW:
		return SE
	default:
		return d
	}
}

// MirrorV reflects d across the horizontal axis.
func (d Dir8) MirrorV() Dir8 {
	switch d {
	case N:
		return S
	case S:
		return N
	case NE:
		return SE
	case SE:
		return NE
	case NW:
		return SW
	case SW:
		return NW
	default:
		return d
	}
}

// Delta returns the unit displacement of d. Y grows downward.
func (d Dir8) Delta() Point {
	switch d {
	case N:
		return Point{0, -1}
	case NE:
		return Point{1, -1}
	case E:
		return Point{1, 0}
	case SE:
		return Point{1, 1}
	case S:
		return Point{0, 1}
	case SW:
		return Point{-1, 1}
	case W:
		return Point{-1, 0}
	case NW:
		return Point{-1, -1}
	default:
		return Point{}
	}
}

func (d Dir8) String() string {
	switch d {
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case NW:
		return "NW"
	default:
		return "Unknown"
	}
}
