package game

import (
	"math"
	"sort"
	"sync"
	"time"
)

// DefaultReadyDelay is how long the "get ready" status shows before
// live calls are displayed.
const DefaultReadyDelay = 3 * time.Second

const audioKey = "audioOn"

// recentCalledMax caps the recent-called-numbers buffer.
const recentCalledMax = 4

// SettingsStore persists cosmetic preferences across rounds. It is
// injected so the session never reaches for process globals.
type SettingsStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Display status for the round view. Ready exists only to show the
// transition message for a fixed delay; it does not gate interaction.
const (
	StatusReady   = "ready"
	StatusPlaying = "playing"
)

// ClaimResult is the outcome of a bingo claim.
type ClaimResult int

const (
	// ClaimIgnored means the claim was dropped because the player is
	// watch-only.
	ClaimIgnored ClaimResult = iota
	// ClaimWin means a winning pattern is fully marked; the server
	// adjudicates the payout.
	ClaimWin
	// ClaimRejected means no pattern was satisfied. A false claim
	// removes the player from the round.
	ClaimRejected
)

// Event is a round notification pushed in from the upstream stream.
type Event interface{ isEvent() }

type NumberCalled struct{ Value int }

type PhaseChanged struct{ Phase Phase }

type PlayerCountChanged struct{ Count int }

// RoundAssigned starts a new round: the server hands the player a card
// number, the stake and the round's game ID.
type RoundAssigned struct {
	CardNumber int
	Stake      float64
	GameID     string
}

type BalanceChanged struct{ Balance float64 }

func (NumberCalled) isEvent()       {}
func (PhaseChanged) isEvent()       {}
func (PlayerCountChanged) isEvent() {}
func (RoundAssigned) isEvent()      {}
func (BalanceChanged) isEvent()     {}

// Snapshot is an immutable view of the session handed to the UI layer
// after every mutation.
type Snapshot struct {
	GameID       string  `json:"gameId"`
	Status       string  `json:"status"`
	Phase        Phase   `json:"phase"`
	Stake        float64 `json:"stake"`
	Players      int     `json:"players"`
	Prize        int     `json:"prize"`
	Balance      float64 `json:"balance"`
	WatchOnly    bool    `json:"watchOnly"`
	CardNumber   int     `json:"cardNumber"`
	Card         Card    `json:"card"`
	Marked       []int   `json:"marked"`
	Called       []int   `json:"called"`
	Current      int     `json:"current"`
	Recent       []int   `json:"recent"`
	WinningCells []int   `json:"winningCells,omitempty"`
	Audio        bool    `json:"audio"`
}

// Session tracks one player's view of a bingo round: called numbers,
// marks, eligibility and the derived win state. All mutations are
// serialized by the session mutex and the evaluator reruns inside the
// same critical section, so no partial state is ever observable.
type Session struct {
	mu sync.Mutex

	settings   SettingsStore
	readyDelay time.Duration
	onChange   func(Snapshot)

	status     string
	readyTimer *time.Timer

	phase         Phase
	gameID        string
	cardNumber    int
	card          Card
	hasCard       bool
	stake         float64
	players       int
	balance       float64
	explicitWatch bool

	called    []int
	calledSet map[int]bool
	current   int
	recent    []int
	marked    map[int]bool

	winning    Pattern
	hasWinning bool

	audio       bool
	audioLoaded bool
}

// NewSession builds an idle session. The settings store is required;
// readyDelay <= 0 falls back to DefaultReadyDelay.
func NewSession(settings SettingsStore, readyDelay time.Duration) *Session {
	if readyDelay <= 0 {
		readyDelay = DefaultReadyDelay
	}
	return &Session{
		settings:   settings,
		readyDelay: readyDelay,
		status:     StatusReady,
		phase:      PhaseWaiting,
		calledSet:  make(map[int]bool),
		marked:     make(map[int]bool),
	}
}

// OnChange registers the callback invoked with a fresh snapshot after
// every mutation. It runs outside the session lock.
func (s *Session) OnChange(fn func(Snapshot)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// SetWatchOnly sets the explicit watch-only flag.
func (s *Session) SetWatchOnly(v bool) {
	s.mu.Lock()
	s.explicitWatch = v
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.changed(snap)
}

// Apply folds an upstream round event into the session.
func (s *Session) Apply(ev Event) {
	s.mu.Lock()
	switch e := ev.(type) {
	case NumberCalled:
		s.applyNumberLocked(e.Value)
	case PhaseChanged:
		s.applyPhaseLocked(e.Phase)
	case PlayerCountChanged:
		s.players = e.Count
	case RoundAssigned:
		s.applyRoundLocked(e)
	case BalanceChanged:
		s.balance = e.Balance
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.changed(snap)
}

func (s *Session) applyNumberLocked(n int) {
	if n < 1 || n > 75 {
		return
	}
	s.current = n
	if !s.calledSet[n] {
		s.calledSet[n] = true
		s.called = append(s.called, n)
	}
	// Keep the last 4 unique values; a repeat moves to the newest slot.
	for i, v := range s.recent {
		if v == n {
			s.recent = append(s.recent[:i], s.recent[i+1:]...)
			break
		}
	}
	s.recent = append(s.recent, n)
	if len(s.recent) > recentCalledMax {
		s.recent = s.recent[len(s.recent)-recentCalledMax:]
	}
}

func (s *Session) applyPhaseLocked(p Phase) {
	s.phase = p
	if s.status == StatusReady && p != PhaseWaiting {
		s.stopReadyTimerLocked()
		s.status = StatusPlaying
	}
}

func (s *Session) applyRoundLocked(e RoundAssigned) {
	s.resetRoundLocked()
	s.gameID = e.GameID
	s.stake = e.Stake
	s.cardNumber = e.CardNumber
	card, ok := GetCard(e.CardNumber)
	if !ok {
		card = DefaultCard
	}
	s.card = card
	s.hasCard = true
	s.phase = PhaseWaiting
	s.status = StatusReady
	s.startReadyTimerLocked()
}

func (s *Session) startReadyTimerLocked() {
	s.stopReadyTimerLocked()
	s.readyTimer = time.AfterFunc(s.readyDelay, s.readyElapsed)
}

func (s *Session) readyElapsed() {
	s.mu.Lock()
	if s.status != StatusReady {
		s.mu.Unlock()
		return
	}
	s.status = StatusPlaying
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.changed(snap)
}

func (s *Session) stopReadyTimerLocked() {
	if s.readyTimer != nil {
		s.readyTimer.Stop()
		s.readyTimer = nil
	}
}

// ToggleMark marks or unmarks a number on the player's card. Dropped
// silently while watch-only, without a card, or for numbers not on the
// card.
func (s *Session) ToggleMark(n int) {
	s.mu.Lock()
	if s.watchOnlyLocked() || !s.hasCard || !s.card.Contains(n) {
		s.mu.Unlock()
		return
	}
	if s.marked[n] {
		delete(s.marked, n)
	} else {
		s.marked[n] = true
	}
	s.recomputeWinLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.changed(snap)
}

// SubmitClaim validates the current marks against the pattern table.
// Watch-only claims are ignored. A false claim forces the player out
// of the round immediately.
func (s *Session) SubmitClaim() ClaimResult {
	s.mu.Lock()
	if s.watchOnlyLocked() {
		s.mu.Unlock()
		return ClaimIgnored
	}
	if s.hasCard {
		if _, ok := Evaluate(s.card, s.marked); ok {
			snap := s.snapshotLocked()
			s.mu.Unlock()
			s.changed(snap)
			return ClaimWin
		}
	}
	s.resetRoundLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.changed(snap)
	return ClaimRejected
}

// Leave tears down all round-scoped state.
func (s *Session) Leave() {
	s.mu.Lock()
	s.resetRoundLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.changed(snap)
}

// Close stops the ready timer. The session must not be used after.
func (s *Session) Close() {
	s.mu.Lock()
	s.stopReadyTimerLocked()
	s.mu.Unlock()
}

func (s *Session) resetRoundLocked() {
	s.stopReadyTimerLocked()
	s.gameID = ""
	s.cardNumber = 0
	s.card = Card{}
	s.hasCard = false
	s.stake = 0
	s.called = nil
	s.calledSet = make(map[int]bool)
	s.current = 0
	s.recent = nil
	s.marked = make(map[int]bool)
	s.hasWinning = false
	s.phase = PhaseWaiting
	s.status = StatusReady
}

func (s *Session) recomputeWinLocked() {
	if !s.hasCard {
		s.hasWinning = false
		return
	}
	s.winning, s.hasWinning = Evaluate(s.card, s.marked)
}

func (s *Session) watchOnlyLocked() bool {
	return WatchOnly(s.explicitWatch, s.balance, s.stake, s.phase)
}

// Audio reports the persisted audio preference, defaulting to on.
func (s *Session) Audio() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.audioLocked()
}

func (s *Session) audioLocked() bool {
	if !s.audioLoaded {
		s.audio = true
		if v, ok := s.settings.Get(audioKey); ok {
			s.audio = v == "true"
		}
		s.audioLoaded = true
	}
	return s.audio
}

// ToggleAudio flips the audio preference and writes it through to the
// settings store.
func (s *Session) ToggleAudio() bool {
	s.mu.Lock()
	s.audio = !s.audioLocked()
	if s.audio {
		s.settings.Set(audioKey, "true")
	} else {
		s.settings.Set(audioKey, "false")
	}
	audio := s.audio
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.changed(snap)
	return audio
}

// Snapshot returns the current view state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		GameID:     s.gameID,
		Status:     s.status,
		Phase:      s.phase,
		Stake:      s.stake,
		Players:    s.players,
		Prize:      derivePrize(s.players, s.stake),
		Balance:    s.balance,
		WatchOnly:  s.watchOnlyLocked(),
		CardNumber: s.cardNumber,
		Card:       s.displayCardLocked(),
		Called:     append([]int(nil), s.called...),
		Current:    s.current,
		Recent:     append([]int(nil), s.recent...),
		Audio:      s.audioLocked(),
	}
	for n := range s.marked {
		snap.Marked = append(snap.Marked, n)
	}
	sort.Ints(snap.Marked)
	if s.hasWinning {
		snap.WinningCells = s.winning.Indices()
	}
	return snap
}

func (s *Session) displayCardLocked() Card {
	if s.hasCard {
		return s.card
	}
	return DefaultCard
}

func (s *Session) changed(snap Snapshot) {
	s.mu.Lock()
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn(snap)
	}
}

// derivePrize is the round pot shown to the player: 80% of the stakes
// collected, floored to whole currency units.
func derivePrize(players int, stake float64) int {
	return int(math.Floor(float64(players) * stake * 0.8))
}
