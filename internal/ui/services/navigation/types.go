package navigation

// State holds all navigation-related state
type State struct {
	Cursor         int
	ViewportOffset int
	ViewportHeight int // in rows
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp           Direction = "up"
	DirectionDown         Direction = "down"
	DirectionPageUp       Direction = "pageup"
	DirectionPageDown     Direction = "pagedown"
	DirectionHome         Direction = "home"
	DirectionEnd          Direction = "end"
	DirectionNextCategory Direction = "nextcategory"
	DirectionPrevCategory Direction = "prevcategory"
)
