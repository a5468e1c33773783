package game

import "testing"

func TestWatchOnly(t *testing.T) {
	tests := []struct {
		name     string
		explicit bool
		balance  float64
		stake    float64
		phase    Phase
		want     bool
	}{
		{"all clear", false, 100, 10, PhasePlaying, false},
		{"explicit flag", true, 100, 10, PhasePlaying, true},
		{"insufficient balance", false, 5, 10, PhasePlaying, true},
		{"balance equals stake", false, 10, 10, PhasePlaying, false},
		{"finished phase", false, 100, 10, PhaseFinished, true},
		{"waiting phase", false, 100, 10, PhaseWaiting, false},
		{"insufficient wins over phase", false, 5, 10, PhaseWaiting, true},
		{"everything at once", true, 0, 10, PhaseFinished, true},
		{"zero stake", false, 0, 0, PhasePlaying, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WatchOnly(tt.explicit, tt.balance, tt.stake, tt.phase)
			if got != tt.want {
				t.Fatalf("WatchOnly(%v, %v, %v, %s) = %v, want %v",
					tt.explicit, tt.balance, tt.stake, tt.phase, got, tt.want)
			}
		})
	}
}

// Balance below stake forces watch-only regardless of the other inputs.
func TestWatchOnlyBalanceDominates(t *testing.T) {
	for _, explicit := range []bool{false, true} {
		for _, phase := range []Phase{PhaseWaiting, PhasePlaying, PhaseFinished} {
			if !WatchOnly(explicit, 9.99, 10, phase) {
				t.Fatalf("balance < stake must force watch-only (explicit=%v phase=%s)", explicit, phase)
			}
		}
	}
}
