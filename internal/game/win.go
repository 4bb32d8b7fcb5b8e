package game

import "github.com/samdwyer/pursuit/internal/entity"

// Outcome is the result of one win check.
type Outcome struct {
	Over    bool
	Winners []entity.Colour
}

// standing is the set of facts the win check reads.
type standing struct {
	quarry         entity.Colour
	quarryLocation int // true location
	pursuers       []entity.Colour
	locations      []int // pursuer locations, same order as pursuers
	quarryTurn     bool
	quarryStuck    bool // the quarry has no legal move; read only on its turn
	pursuersStuck  bool // every pursuer's only legal move is a pass
	roundsDone     bool // every scheduled quarry turn has been played
}

// evaluate decides the game from s. Capture or a stuck quarry is checked
// first, so the pursuers win if both sides would.
func evaluate(s standing) Outcome {
	for _, loc := range s.locations {
		if loc == s.quarryLocation {
			return Outcome{Over: true, Winners: append([]entity.Colour(nil), s.pursuers...)}
		}
	}
	if s.quarryTurn && s.quarryStuck {
		return Outcome{Over: true, Winners: append([]entity.Colour(nil), s.pursuers...)}
	}

	// roundsDone with the turn back on the quarry means a full rotation has
	// passed since the last scheduled quarry move.
	if (s.roundsDone && s.quarryTurn) || s.pursuersStuck {
		return Outcome{Over: true, Winners: []entity.Colour{s.quarry}}
	}

	return Outcome{}
}
