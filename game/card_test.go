package game

import "testing"

func TestCatalogLoaded(t *testing.T) {
	if CatalogSize() == 0 {
		t.Fatal("catalog is empty")
	}
	for n := 1; n <= CatalogSize(); n++ {
		c, ok := GetCard(n)
		if !ok {
			t.Fatalf("card %d missing", n)
		}
		if err := c.validate(); err != nil {
			t.Fatalf("card %d invalid: %v", n, err)
		}
	}
}

func TestGetCardOutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, CatalogSize() + 1, 100000} {
		if _, ok := GetCard(n); ok {
			t.Errorf("GetCard(%d) should report not found", n)
		}
	}
}

func TestCard47MiddleRow(t *testing.T) {
	c, ok := GetCard(47)
	if !ok {
		t.Fatal("card 47 missing")
	}
	want := [5]int{5, 18, 0, 50, 72}
	if c[2] != want {
		t.Fatalf("card 47 middle row = %v, want %v", c[2], want)
	}
	if c != DefaultCard {
		t.Fatal("card 47 should equal the default display card")
	}
}

func TestDefaultCardValid(t *testing.T) {
	if err := DefaultCard.validate(); err != nil {
		t.Fatalf("default card invalid: %v", err)
	}
}

func TestCardContains(t *testing.T) {
	c := DefaultCard
	if !c.Contains(50) {
		t.Error("card should contain 50")
	}
	if c.Contains(0) {
		t.Error("free cell 0 is not a markable number")
	}
	if c.Contains(74) {
		t.Error("74 is not on the default card")
	}
}

func TestLetterFor(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "B"}, {15, "B"},
		{16, "I"}, {30, "I"},
		{31, "N"}, {45, "N"},
		{46, "G"}, {60, "G"},
		{61, "O"}, {75, "O"},
		{0, ""}, {76, ""}, {-3, ""},
	}
	for _, tt := range tests {
		if got := LetterFor(tt.n); got != tt.want {
			t.Errorf("LetterFor(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestLoadCatalogRejectsBadCards(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad json", `{`},
		{"wrong id", `[{"card_id":2,"B":[1,2,3,4,5],"I":[16,17,18,19,20],"N":[31,32,0,34,35],"G":[46,47,48,49,50],"O":[61,62,63,64,65]}]`},
		{"free cell occupied", `[{"card_id":1,"B":[1,2,3,4,5],"I":[16,17,18,19,20],"N":[31,32,33,34,35],"G":[46,47,48,49,50],"O":[61,62,63,64,65]}]`},
		{"band violation", `[{"card_id":1,"B":[1,2,3,4,16],"I":[16,17,18,19,20],"N":[31,32,0,34,35],"G":[46,47,48,49,50],"O":[61,62,63,64,65]}]`},
		{"duplicate", `[{"card_id":1,"B":[1,1,3,4,5],"I":[16,17,18,19,20],"N":[31,32,0,34,35],"G":[46,47,48,49,50],"O":[61,62,63,64,65]}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadCatalog([]byte(tt.data)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
