package rules

/*
Next applies Conway's Game of Life rules to determine the next state of a cell.

	alive, 2 or 3 neighbors -> alive
	dead, exactly 3         -> alive
	alive, more than 3      -> dead
	alive, fewer than 2     -> dead
	dead, anything else     -> dead
*/
func Next(alive bool, neighbors int) bool {
	switch {
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case !alive && neighbors == 3:
		return true
	case alive && neighbors > 3:
		return false
	case alive && neighbors < 2:
		return false
	default:
		return false
	}
}
