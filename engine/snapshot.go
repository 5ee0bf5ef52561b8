package engine

import "github.com/lixenwraith/lanesim/core"

// AgentView is the read-only state of one agent
type AgentView struct {
	ID        core.Entity    `json:"id" msgpack:"id"`
	Kind      Kind           `json:"kind" msgpack:"kind"`
	Position  core.Point     `json:"position" msgpack:"position"`
	Movements int            `json:"movements" msgpack:"movements"`
	State     CollisionState `json:"state" msgpack:"state"`
}

// Snapshot is the full boundary surface after a step
// Consumers (view, feed, statistics) only ever see copies
type Snapshot struct {
	Step           int          `json:"step" msgpack:"step"`
	Width          int          `json:"width" msgpack:"width"`
	Height         int          `json:"height" msgpack:"height"`
	Running        bool         `json:"running" msgpack:"running"`
	TotalMovements int          `json:"total_movements" msgpack:"total_movements"`
	Collided       int          `json:"collided" msgpack:"collided"`
	Active         int          `json:"active" msgpack:"active"`
	FaultMoves     int          `json:"fault_moves" msgpack:"fault_moves"`
	Agents         []AgentView  `json:"agents" msgpack:"agents"`
	Obstacles      []core.Point `json:"obstacles" msgpack:"obstacles"`
}

// SeriesPoint is one entry of the per-step time series
type SeriesPoint struct {
	Step           int `json:"step" msgpack:"step"`
	TotalMovements int `json:"total_movements" msgpack:"total_movements"`
	Collided       int `json:"collided" msgpack:"collided"`
}
