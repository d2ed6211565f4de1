package entity

// Stats are the lifetime counters kept across matches.
type Stats struct {
	Total  int64 `json:"total"`
	P1Wins int64 `json:"p1_wins"`
	P2Wins int64 `json:"p2_wins"`
	Draws  int64 `json:"draws"`
}

// Apply counts a finished game. In-progress outcomes are ignored.
func (that *Stats) Apply(outcome Outcome) {
	switch outcome.Kind {
	case OutcomeWin:
		that.Total++
		if outcome.Winner == PlayerX {
			that.P1Wins++
		} else {
			that.P2Wins++
		}
	case OutcomeDraw:
		that.Total++
		that.Draws++
	case OutcomeInProgress:
	}
}
