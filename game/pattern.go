package game

// Pattern is a winning line: five row-major cell indices on the card.
type Pattern [5]int

// patterns holds the 12 winning lines in their fixed order: the five
// rows top to bottom, the five columns left to right, then the two
// diagonals. The evaluator reports the first satisfied entry, so the
// order doubles as the tie-break.
var patterns = []Pattern{
	{0, 1, 2, 3, 4},
	{5, 6, 7, 8, 9},
	{10, 11, 12, 13, 14},
	{15, 16, 17, 18, 19},
	{20, 21, 22, 23, 24},
	{0, 5, 10, 15, 20},
	{1, 6, 11, 16, 21},
	{2, 7, 12, 17, 22},
	{3, 8, 13, 18, 23},
	{4, 9, 14, 19, 24},
	{0, 6, 12, 18, 24},
	{4, 8, 12, 16, 20},
}

// Patterns returns the fixed winning-line table.
func Patterns() []Pattern {
	out := make([]Pattern, len(patterns))
	copy(out, patterns)
	return out
}

// Indices returns the pattern's cell indices as a slice.
func (p Pattern) Indices() []int {
	return []int{p[0], p[1], p[2], p[3], p[4]}
}

// ContainsIndex reports whether the cell index belongs to the pattern.
func (p Pattern) ContainsIndex(i int) bool {
	for _, v := range p {
		if v == i {
			return true
		}
	}
	return false
}
