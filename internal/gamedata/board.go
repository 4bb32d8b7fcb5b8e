package gamedata

import "errors"

// EdgeDef is one undirected connection in board.json.
type EdgeDef struct {
	From      int    `json:"from"`
	To        int    `json:"to"`
	Transport string `json:"transport"` // taxi, bus, underground or boat
}

// BoardDef is the structure of board.json.
type BoardDef struct {
	Nodes []int     `json:"nodes"`
	Edges []EdgeDef `json:"edges"`
}

// LoadBoard loads the embedded board.json.
func LoadBoard() (BoardDef, error) {
	def, err := Load[BoardDef]("board.json")
	if err != nil {
		return BoardDef{}, err
	}
	if len(def.Nodes) == 0 {
		return BoardDef{}, errors.New("no nodes loaded from board.json")
	}
	return def, nil
}
