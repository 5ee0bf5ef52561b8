package core

import "fmt"

// Entity is a simulation-scoped identifier, 0 is never assigned
type Entity uint64

// Point represents a 2D grid coordinate
type Point struct {
	X int `json:"x" msgpack:"x"`
	Y int `json:"y" msgpack:"y"`
}

// Add returns p offset by (dx, dy) without any wrapping
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String formats the point as (x,y)
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Wrap returns v folded into [0, n) for n > 0
func Wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
