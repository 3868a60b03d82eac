package selection

// Engine is the part of the filter engine the selection service drives
type Engine interface {
	Select(name string) bool
	Deselect() bool
	Reset()
}

// Transition describes the outcome of a category click
type Transition int

const (
	Unchanged Transition = iota
	Selected
	Deselected
)

func (t Transition) String() string {
	switch t {
	case Selected:
		return "selected"
	case Deselected:
		return "deselected"
	default:
		return "unchanged"
	}
}
