package services

import "testing"

func TestMemorySettings(t *testing.T) {
	s := NewMemorySettings()
	if _, ok := s.Get("audioOn"); ok {
		t.Fatal("empty store should miss")
	}
	s.Set("audioOn", "false")
	v, ok := s.Get("audioOn")
	if !ok || v != "false" {
		t.Fatalf("got (%q, %v)", v, ok)
	}
	s.Set("audioOn", "true")
	if v, _ := s.Get("audioOn"); v != "true" {
		t.Fatalf("overwrite failed: %q", v)
	}
}
