package game

// Evaluate checks the player's marks against every winning line in
// table order and returns the first fully marked pattern. The free
// cell is always satisfied; marking numbers outside a pattern never
// invalidates it. Evaluate is pure and holds no state.
func Evaluate(card Card, marked map[int]bool) (Pattern, bool) {
	for _, p := range patterns {
		if patternSatisfied(card, p, marked) {
			return p, true
		}
	}
	return Pattern{}, false
}

func patternSatisfied(card Card, p Pattern, marked map[int]bool) bool {
	for _, idx := range p {
		n := card.Cell(idx)
		if n == 0 {
			continue
		}
		if !marked[n] {
			return false
		}
	}
	return true
}
