package game

// Colour identifies one of the three players. Turn order is Blue, Green, Red.
type Colour int

const (
	Blue Colour = iota
	Green
	Red
)

const NumColours = 3

var Colours = [NumColours]Colour{Blue, Green, Red}

func (c Colour) Next() Colour {
	return (c + 1) % NumColours
}

func (c Colour) Previous() Colour {
	return (c + NumColours - 1) % NumColours
}

func (c Colour) String() string {
	switch c {
	case Blue:
		return "Blue"
	case Green:
		return "Green"
	case Red:
		return "Red"
	default:
		return "Unknown"
	}
}

func (c Colour) letter() byte {
	return "BGR"[c]
}
