package board

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samdwyer/pursuit/internal/gamedata"
)

// Edge is one directed connection out of (or into) a location.
type Edge struct {
	Source      int
	Destination int
	Transport   Transport
}

// Graph is the read-only view of the board the engine consumes.
type Graph interface {
	// HasNode returns true if location exists on the board.
	HasNode(location int) bool
	// EdgesFrom returns every connection leaving location.
	EdgesFrom(location int) []Edge
	// EdgesTo returns every connection arriving at location.
	EdgesTo(location int) []Edge
	// IsEmpty returns true if the board has no locations.
	IsEmpty() bool
}

// Map is an immutable in-memory Graph. Board connections are bidirectional,
// so every edge is stored in both directions.
type Map struct {
	nodes    []int
	outgoing map[int][]Edge
	incoming map[int][]Edge
}

// NewMap creates an empty map.
func NewMap() *Map {
	return &Map{
		outgoing: make(map[int][]Edge),
		incoming: make(map[int][]Edge),
	}
}

// FromDef builds a Map from loaded board data.
func FromDef(def gamedata.BoardDef) (*Map, error) {
	m := NewMap()
	for _, n := range def.Nodes {
		if n <= 0 {
			return nil, fmt.Errorf("invalid node %d: locations start at 1", n)
		}
		m.addNode(n)
	}
	for _, e := range def.Edges {
		transport, err := ParseTransport(e.Transport)
		if err != nil {
			return nil, fmt.Errorf("edge %d-%d: %w", e.From, e.To, err)
		}
		if err := m.connect(e.From, e.To, transport); err != nil {
			return nil, err
		}
	}
	sort.Ints(m.nodes)
	return m, nil
}

// LoadMap loads the embedded board.
func LoadMap() (*Map, error) {
	def, err := gamedata.LoadBoard()
	if err != nil {
		return nil, err
	}
	return FromDef(def)
}

func (m *Map) addNode(n int) {
	if _, ok := m.outgoing[n]; ok {
		return
	}
	m.nodes = append(m.nodes, n)
	m.outgoing[n] = nil
	m.incoming[n] = nil
}

func (m *Map) connect(a, b int, t Transport) error {
	if !m.HasNode(a) || !m.HasNode(b) {
		return fmt.Errorf("edge %d-%d references an unknown node", a, b)
	}
	if a == b {
		return errors.New("edge must join two distinct nodes")
	}
	m.outgoing[a] = append(m.outgoing[a], Edge{Source: a, Destination: b, Transport: t})
	m.outgoing[b] = append(m.outgoing[b], Edge{Source: b, Destination: a, Transport: t})
	m.incoming[b] = append(m.incoming[b], Edge{Source: a, Destination: b, Transport: t})
	m.incoming[a] = append(m.incoming[a], Edge{Source: b, Destination: a, Transport: t})
	return nil
}

// HasNode returns true if location exists on the map.
func (m *Map) HasNode(location int) bool {
	_, ok := m.outgoing[location]
	return ok
}

// EdgesFrom returns a copy of the connections leaving location.
func (m *Map) EdgesFrom(location int) []Edge {
	return append([]Edge(nil), m.outgoing[location]...)
}

// EdgesTo returns a copy of the connections arriving at location.
func (m *Map) EdgesTo(location int) []Edge {
	return append([]Edge(nil), m.incoming[location]...)
}

// IsEmpty returns true if the map has no nodes.
func (m *Map) IsEmpty() bool { return len(m.nodes) == 0 }

// Nodes returns every location in ascending order.
func (m *Map) Nodes() []int {
	return append([]int(nil), m.nodes...)
}

// Connected returns true if some edge of transport t joins a to b.
func (m *Map) Connected(a, b int, t Transport) bool {
	for _, e := range m.outgoing[a] {
		if e.Destination == b && e.Transport == t {
			return true
		}
	}
	return false
}

// Ensure Map implements Graph
var _ Graph = (*Map)(nil)
