// Package hex provides axial and cube coordinate math for flat-top
// hexagonal grids. It contains no external dependencies so that game
// logic built on top of it stays pure and testable.
package hex

import (
	"fmt"
	"strconv"
	"strings"
)

// Axial is the two-component (q, r) address of a hex cell.
type Axial struct {
	Q int
	R int
}

// A is a convenience constructor for Axial.
func A(q, r int) Axial {
	return Axial{Q: q, R: r}
}

// String returns the canonical "q,r" key for the coordinate.
func (a Axial) String() string {
	return strconv.Itoa(a.Q) + "," + strconv.Itoa(a.R)
}

// Key returns the canonical string key used for map/set membership
// wherever a comparable struct key is not an option (debug output,
// serialized snapshots).
func (a Axial) Key() string {
	return a.String()
}

// ParseKey parses a canonical "q,r" key back into an Axial coordinate.
// A malformed key indicates a broken invariant upstream, so it panics
// rather than returning an error.
func ParseKey(key string) Axial {
	q, r, ok := splitKey(key)
	if !ok {
		panic(fmt.Sprintf("hex: malformed coordinate key %q", key))
	}
	return Axial{Q: q, R: r}
}

func splitKey(key string) (q, r int, ok bool) {
	i := strings.IndexByte(key, ',')
	if i < 0 {
		return 0, 0, false
	}
	q, err := strconv.Atoi(key[:i])
	if err != nil {
		return 0, 0, false
	}
	r, err = strconv.Atoi(key[i+1:])
	if err != nil {
		return 0, 0, false
	}
	return q, r, true
}

// Add returns the sum of two axial coordinates.
func (a Axial) Add(other Axial) Axial {
	return Axial{Q: a.Q + other.Q, R: a.R + other.R}
}

// Sub returns the difference of two axial coordinates.
func (a Axial) Sub(other Axial) Axial {
	return Axial{Q: a.Q - other.Q, R: a.R - other.R}
}

// Cube is the three-component (x, y, z) representation with x+y+z = 0.
// It exists only transiently for rotation arithmetic.
type Cube struct {
	X int
	Y int
	Z int
}

// ToCube converts an axial coordinate to cube form.
// The invariant x+y+z = 0 holds by construction.
func (a Axial) ToCube() Cube {
	return Cube{X: a.Q, Y: a.R, Z: -a.Q - a.R}
}

// ToAxial converts a cube coordinate back to axial form.
// ToCube and ToAxial are exact mutual inverses.
func (c Cube) ToAxial() Axial {
	return Axial{Q: c.X, R: c.Y}
}

// RotateCW rotates the coordinate one 60-degree step clockwise around
// the origin using the cube permutation (x, y, z) -> (-y, -z, -x).
func (a Axial) RotateCW() Axial {
	c := a.ToCube()
	return Cube{X: -c.Y, Y: -c.Z, Z: -c.X}.ToAxial()
}

// RotateSteps rotates the coordinate by the given number of clockwise
// 60-degree steps. Negative steps are reduced modulo six.
func (a Axial) RotateSteps(steps int) Axial {
	steps %= 6
	if steps < 0 {
		steps += 6
	}
	out := a
	for i := 0; i < steps; i++ {
		out = out.RotateCW()
	}
	return out
}

// Neighbor directions for flat-top hexagons, enumerated once in a fixed
// order and reused by every component that needs adjacency or wall-kick
// candidates.
const (
	DirN = iota // top
	DirNE       // top-right
	DirSE       // bottom-right
	DirS        // bottom
	DirSW       // bottom-left
	DirNW       // top-left
)

// Directions lists the six unit neighbor offsets in fixed order:
// top, top-right, bottom-right, bottom, bottom-left, top-left.
var Directions = [6]Axial{
	{Q: 0, R: -1},
	{Q: 1, R: -1},
	{Q: 1, R: 0},
	{Q: 0, R: 1},
	{Q: -1, R: 1},
	{Q: -1, R: 0},
}

// Neighbor returns the adjacent coordinate in the given direction.
func (a Axial) Neighbor(dir int) Axial {
	return a.Add(Directions[dir])
}

// Neighbors returns all six adjacent coordinates in fixed order.
func (a Axial) Neighbors() [6]Axial {
	var out [6]Axial
	for i, d := range Directions {
		out[i] = a.Add(d)
	}
	return out
}
