package gamedata

import "errors"

// RoundsFile is the structure of rounds.json. Each entry is one quarry turn;
// true marks a reveal round.
type RoundsFile struct {
	Rounds []bool `json:"rounds"`
}

// LoadRounds loads the embedded round schedule.
func LoadRounds() ([]bool, error) {
	file, err := Load[RoundsFile]("rounds.json")
	if err != nil {
		return nil, err
	}
	if len(file.Rounds) == 0 {
		return nil, errors.New("no rounds loaded from rounds.json")
	}
	return file.Rounds, nil
}
