package services

import (
	"testing"
	"time"

	"github.com/mekbib/bingo-gateway/game"
)

type fakeSender struct {
	claims int
	leaves int
}

func (f *fakeSender) SendClaim() { f.claims++ }
func (f *fakeSender) SendLeave() { f.leaves++ }

func newTestRoundService() (*RoundService, *fakeSender) {
	session := game.NewSession(NewMemorySettings(), time.Hour)
	hub := NewHub()
	rs := NewRoundService(session, hub, nil)
	hub.SetRounds(rs)
	sender := &fakeSender{}
	rs.SetSender(sender)
	return rs, sender
}

func joinRound(rs *RoundService) {
	rs.HandleEvent(game.BalanceChanged{Balance: 100})
	rs.HandleEvent(game.RoundAssigned{CardNumber: 47, Stake: 10, GameID: "rnd-1"})
	rs.HandleEvent(game.PhaseChanged{Phase: game.PhasePlaying})
}

func TestRoundServiceEventFlow(t *testing.T) {
	rs, _ := newTestRoundService()
	joinRound(rs)
	rs.HandleEvent(game.PlayerCountChanged{Count: 20})
	rs.HandleEvent(game.NumberCalled{Value: 5})

	snap := rs.Snapshot()
	if snap.GameID != "rnd-1" || snap.Players != 20 || snap.Current != 5 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.Prize != 160 {
		t.Fatalf("prize = %d, want 160", snap.Prize)
	}
}

func TestRoundServiceWinClaim(t *testing.T) {
	rs, sender := newTestRoundService()
	joinRound(rs)
	for _, n := range []int{5, 18, 50, 72} {
		rs.ToggleMark(n)
	}

	if got := rs.SubmitClaim(); got != game.ClaimWin {
		t.Fatalf("claim = %v, want win", got)
	}
	if sender.claims != 1 {
		t.Fatalf("claims sent upstream = %d, want 1", sender.claims)
	}
	if sender.leaves != 0 {
		t.Fatal("win must not send a leave")
	}
}

func TestRoundServiceFalseClaimForcesLeave(t *testing.T) {
	rs, sender := newTestRoundService()
	joinRound(rs)
	rs.ToggleMark(5)

	if got := rs.SubmitClaim(); got != game.ClaimRejected {
		t.Fatalf("claim = %v, want rejected", got)
	}
	if sender.leaves != 1 {
		t.Fatalf("leaves sent upstream = %d, want 1", sender.leaves)
	}
	if sender.claims != 0 {
		t.Fatal("false claim must not reach the server as a win")
	}
	if rs.Snapshot().GameID != "" {
		t.Fatal("round state should be gone after a false claim")
	}
}

func TestRoundServiceIgnoredClaimSendsNothing(t *testing.T) {
	rs, sender := newTestRoundService()
	rs.HandleEvent(game.BalanceChanged{Balance: 5})
	rs.HandleEvent(game.RoundAssigned{CardNumber: 47, Stake: 10, GameID: "rnd-1"})

	if got := rs.SubmitClaim(); got != game.ClaimIgnored {
		t.Fatalf("claim = %v, want ignored", got)
	}
	if sender.claims != 0 || sender.leaves != 0 {
		t.Fatal("ignored claim must not talk to the server")
	}
}

func TestRoundServiceLeave(t *testing.T) {
	rs, sender := newTestRoundService()
	joinRound(rs)
	rs.Leave()
	if sender.leaves != 1 {
		t.Fatalf("leaves = %d, want 1", sender.leaves)
	}
	if rs.Snapshot().GameID != "" {
		t.Fatal("round state should be cleared on leave")
	}
}

func TestRoundServiceDisconnectedClearsState(t *testing.T) {
	rs, sender := newTestRoundService()
	joinRound(rs)
	rs.HandleEvent(game.NumberCalled{Value: 5})

	rs.Disconnected()
	if rs.Snapshot().GameID != "" || len(rs.Snapshot().Called) != 0 {
		t.Fatal("stale round state survived a disconnect")
	}
	// The server already knows the connection dropped.
	if sender.leaves != 0 {
		t.Fatal("disconnect must not send a leave action")
	}
}
