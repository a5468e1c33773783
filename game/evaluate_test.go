package game

import "testing"

func markSet(nums ...int) map[int]bool {
	m := make(map[int]bool, len(nums))
	for _, n := range nums {
		m[n] = true
	}
	return m
}

func TestEvaluateEmptyMarks(t *testing.T) {
	for _, n := range []int{1, 47, CatalogSize()} {
		card, _ := GetCard(n)
		if _, ok := Evaluate(card, nil); ok {
			t.Errorf("card %d: empty marks should not win", n)
		}
		if _, ok := Evaluate(card, map[int]bool{}); ok {
			t.Errorf("card %d: empty set should not win", n)
		}
	}
}

func TestEvaluateMiddleRowCard47(t *testing.T) {
	card, _ := GetCard(47)
	p, ok := Evaluate(card, markSet(5, 18, 50, 72))
	if !ok {
		t.Fatal("middle row of card 47 should win with {5,18,50,72}")
	}
	if p != (Pattern{10, 11, 12, 13, 14}) {
		t.Fatalf("got pattern %v, want the middle row", p)
	}
}

func TestEvaluateFirstMatchOrder(t *testing.T) {
	card, _ := GetCard(47)
	// Mark the whole card: the top row is first in table order.
	all := map[int]bool{}
	for idx := 0; idx < 25; idx++ {
		if n := card.Cell(idx); n != 0 {
			all[n] = true
		}
	}
	p, ok := Evaluate(card, all)
	if !ok {
		t.Fatal("fully marked card should win")
	}
	if p != (Pattern{0, 1, 2, 3, 4}) {
		t.Fatalf("got %v, want the top row as first match", p)
	}
}

// Extra marks never invalidate a win.
func TestEvaluateMonotonic(t *testing.T) {
	card, _ := GetCard(47)
	base := markSet(5, 18, 50, 72)
	if _, ok := Evaluate(card, base); !ok {
		t.Fatal("base set should win")
	}
	for extra := 1; extra <= 75; extra++ {
		m := markSet(5, 18, 50, 72, extra)
		if _, ok := Evaluate(card, m); !ok {
			t.Fatalf("adding %d broke the win", extra)
		}
	}
}

func TestEvaluatePartialPattern(t *testing.T) {
	card, _ := GetCard(47)
	// Three of four non-free middle-row numbers.
	if _, ok := Evaluate(card, markSet(5, 18, 50)); ok {
		t.Fatal("incomplete pattern should not win")
	}
	// Numbers not on any single line.
	if _, ok := Evaluate(card, markSet(3, 20, 34, 59)); ok {
		t.Fatal("scattered marks should not win")
	}
}

func TestEvaluateDiagonalUsesFreeCell(t *testing.T) {
	card, _ := GetCard(47)
	// Main diagonal of card 47: 3, 20, free, 46, 64.
	p, ok := Evaluate(card, markSet(3, 20, 46, 64))
	if !ok {
		t.Fatal("main diagonal should win through the free cell")
	}
	if p != (Pattern{0, 6, 12, 18, 24}) {
		t.Fatalf("got %v, want the main diagonal", p)
	}
}

func TestEvaluateZeroCardIsVacuous(t *testing.T) {
	// Every cell of the zero card reads as free, so every line is
	// vacuously satisfied. That is why the session only evaluates
	// after a card has been assigned.
	var zero Card
	if _, ok := Evaluate(zero, map[int]bool{}); !ok {
		t.Fatal("zero card should be vacuously satisfied")
	}
}
