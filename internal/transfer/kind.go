package transfer

// Direction says which collection items leave.
type Direction int

const (
	ToDestination Direction = iota
	ToSource
)

func (d Direction) String() string {
	switch d {
	case ToDestination:
		return "toDestination"
	case ToSource:
		return "toSource"
	default:
		return ""
	}
}

// Kind identifies a completed transfer for observers.
type Kind int

const (
	AllToDestination Kind = iota
	SelectedToDestination
	SelectedToSource
	AllToSource
)

func (k Kind) String() string {
	switch k {
	case AllToDestination:
		return "allToDestination"
	case SelectedToDestination:
		return "selectedToDestination"
	case SelectedToSource:
		return "selectedToSource"
	case AllToSource:
		return "allToSource"
	default:
		return ""
	}
}

func kindFor(dir Direction, selectedOnly bool) Kind {
	switch {
	case dir == ToDestination && selectedOnly:
		return SelectedToDestination
	case dir == ToDestination:
		return AllToDestination
	case selectedOnly:
		return SelectedToSource
	default:
		return AllToSource
	}
}
