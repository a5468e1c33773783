package services

import (
	"encoding/json"
	"sync"

	"github.com/mekbib/bingo-gateway/game"
	"github.com/mekbib/bingo-gateway/models"
	"github.com/mekbib/bingo-gateway/utils/logger"
)

// RoundSender carries player actions back to the upstream server.
type RoundSender interface {
	SendClaim()
	SendLeave()
}

// RoundService glues the domain session to its collaborators: upstream
// events flow in through HandleEvent, every session change is pushed to
// the browser hub, and claims/leaves go back out through the sender.
type RoundService struct {
	session *game.Session
	hub     *Hub
	history *History

	mu         sync.Mutex
	sender     RoundSender
	claimedWin bool
}

// NewRoundService wires the session's change feed to the hub. history
// may be nil.
func NewRoundService(session *game.Session, hub *Hub, history *History) *RoundService {
	rs := &RoundService{
		session: session,
		hub:     hub,
		history: history,
	}
	session.OnChange(func(snap game.Snapshot) {
		rs.hub.BroadcastSnapshot(snap)
	})
	return rs
}

// SetSender attaches the upstream action sender. The stream needs the
// service to exist first, hence the two-step wiring.
func (rs *RoundService) SetSender(s RoundSender) {
	rs.mu.Lock()
	rs.sender = s
	rs.mu.Unlock()
}

// Snapshot exposes the current session view.
func (rs *RoundService) Snapshot() game.Snapshot {
	return rs.session.Snapshot()
}

// HandleEvent applies one upstream round event. A finished phase
// closes the book on the round: its outcome is recorded before the
// eligibility flip becomes visible.
func (rs *RoundService) HandleEvent(ev game.Event) {
	if pc, ok := ev.(game.PhaseChanged); ok && pc.Phase == game.PhaseFinished {
		snap := rs.session.Snapshot()
		outcome := models.RoundOutcomeLost
		rs.mu.Lock()
		if rs.claimedWin {
			outcome = models.RoundOutcomeWin
		}
		rs.claimedWin = false
		rs.mu.Unlock()
		rs.history.Record(snap, outcome)
	}
	if _, ok := ev.(game.RoundAssigned); ok {
		rs.mu.Lock()
		rs.claimedWin = false
		rs.mu.Unlock()
	}
	rs.session.Apply(ev)
}

// ToggleMark marks or unmarks a number on the player's card.
func (rs *RoundService) ToggleMark(n int) {
	rs.session.ToggleMark(n)
}

// SubmitClaim runs the local claim gate. A win is forwarded upstream
// for adjudication; a false claim forces the player out of the round
// and tells the server so.
func (rs *RoundService) SubmitClaim() game.ClaimResult {
	before := rs.session.Snapshot()
	result := rs.session.SubmitClaim()
	switch result {
	case game.ClaimWin:
		rs.mu.Lock()
		rs.claimedWin = true
		sender := rs.sender
		rs.mu.Unlock()
		logger.Infof("[round %s] bingo claim submitted", before.GameID)
		if sender != nil {
			sender.SendClaim()
		}
	case game.ClaimRejected:
		rs.mu.Lock()
		sender := rs.sender
		rs.mu.Unlock()
		logger.Infof("[round %s] false claim, player removed", before.GameID)
		if sender != nil {
			sender.SendLeave()
		}
		rs.history.Record(before, models.RoundOutcomeForcedOut)
	}
	return result
}

// Leave exits the round voluntarily.
func (rs *RoundService) Leave() {
	before := rs.session.Snapshot()
	rs.session.Leave()
	rs.mu.Lock()
	sender := rs.sender
	rs.mu.Unlock()
	if sender != nil {
		sender.SendLeave()
	}
	rs.history.Record(before, models.RoundOutcomeLeft)
}

// ToggleAudio flips the persisted audio preference.
func (rs *RoundService) ToggleAudio() bool {
	return rs.session.ToggleAudio()
}

// SetWatchOnly sets the explicit watch-only flag.
func (rs *RoundService) SetWatchOnly(v bool) {
	rs.session.SetWatchOnly(v)
}

// Disconnected tears down round state after the upstream feed drops;
// stale calls must not survive a reconnect.
func (rs *RoundService) Disconnected() {
	rs.session.Leave()
}

// snapshotJSON is the hub broadcast payload.
func snapshotJSON(snap game.Snapshot) []byte {
	b, err := json.Marshal(map[string]any{
		"type":  "state",
		"state": snap,
	})
	if err != nil {
		logger.Errorf("[hub] marshal snapshot: %v", err)
		return nil
	}
	return b
}
