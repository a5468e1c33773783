package game

// Phase is the externally-signalled game phase for a round.
type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

// WatchOnly decides whether the player may only observe the round:
// the explicit flag is set, the wallet cannot cover the stake, or the
// round is already finished. While watch-only, marks and claims are
// ignored rather than errored.
func WatchOnly(explicit bool, walletBalance, stake float64, phase Phase) bool {
	return explicit || walletBalance < stake || phase == PhaseFinished
}
