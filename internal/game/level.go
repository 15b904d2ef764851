// Package game implements the brickwave brick breaker on top of the
// collision core in internal/sim. It owns everything the core treats as
// an external collaborator: input mapping, score, lives, level
// progression, and rendering.
package game

import "github.com/ndemidov/brickwave/internal/sim"

// brickSpec is one grid cell of a parsed level map.
type brickSpec struct {
	Type   sim.BrickType
	HP     int
	Points int
	Empty  bool
}

// Level is a parsed brick layout, independent of screen geometry.
type Level struct {
	ID     string
	Name   string
	Width  int // Columns
	Height int // Rows
	grid   [][]brickSpec
}

// ParseLevel creates a Level from an ASCII map.
// Characters:
//
//	'#' = normal brick (10 points)
//	'1'-'9' = normal brick with custom points (10 * digit)
//	'H' = reinforced brick (2 HP, 20 points)
//	'X' = indestructible brick (0 points)
//	'P' = power-up brick (30 points, drops a pickup)
//	'.' = empty
func ParseLevel(id, name string, lines []string) *Level {
	maxWidth := 0
	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}

	level := &Level{
		ID:     id,
		Name:   name,
		Width:  maxWidth,
		Height: len(lines),
		grid:   make([][]brickSpec, len(lines)),
	}

	for row, line := range lines {
		level.grid[row] = make([]brickSpec, maxWidth)
		for col := range maxWidth {
			var ch byte = '.'
			if col < len(line) {
				ch = line[col]
			}

			switch {
			case ch == '#':
				level.grid[row][col] = brickSpec{Type: sim.BrickNormal, HP: 1, Points: 10}
			case ch >= '1' && ch <= '9':
				level.grid[row][col] = brickSpec{Type: sim.BrickNormal, HP: 1, Points: int(ch-'0') * 10}
			case ch == 'H' || ch == 'h':
				level.grid[row][col] = brickSpec{Type: sim.BrickReinforced, HP: 2, Points: 20}
			case ch == 'X' || ch == 'x':
				level.grid[row][col] = brickSpec{Type: sim.BrickIndestructible, HP: 1}
			case ch == 'P' || ch == 'p':
				level.grid[row][col] = brickSpec{Type: sim.BrickPowerUp, HP: 1, Points: 30}
			default:
				level.grid[row][col] = brickSpec{Empty: true}
			}
		}
	}

	return level
}

// Bricks instantiates the layout into simulation bricks. Each grid cell
// becomes a brick rect of brickW x brickH cells, the grid anchored at
// (originX, originY).
func (l *Level) Bricks(originX, originY float64, brickW, brickH float64) []sim.Brick {
	bricks := make([]sim.Brick, 0, l.Width*l.Height)
	for row := range l.Height {
		for col := range l.Width {
			spec := l.grid[row][col]
			if spec.Empty {
				continue
			}
			bricks = append(bricks, sim.Brick{
				Type:   spec.Type,
				HP:     spec.HP,
				Points: spec.Points,
				Bounds: sim.NewRect(
					originX+float64(col)*brickW,
					originY+float64(row)*brickH,
					brickW, brickH,
				),
			})
		}
	}
	return bricks
}

// builtinLevels are the shipped campaign layouts, 20 columns wide.
var builtinLevels = []*Level{
	ParseLevel("classic", "Classic", []string{
		"####################",
		"####################",
		"33333333333333333333",
		"22222222222222222222",
		"11111111111111111111",
	}),
	ParseLevel("fortress", "Fortress", []string{
		"X##################X",
		"#HHHHHHHHHHHHHHHHHH#",
		"#H....P....P.....H.#",
		"#H################H#",
		"X##################X",
	}),
	ParseLevel("checker", "Checkerboard", []string{
		"#.H.#.H.#.H.#.H.#.H.",
		".P.#.#.#.P.#.#.#.P..",
		"#.H.#.H.#.H.#.H.#.H.",
		".#.#.P.#.#.#.P.#.#..",
		"#.H.#.H.#.H.#.H.#.H.",
	}),
	ParseLevel("vault", "The Vault", []string{
		"....XXXXXXXXXXXX....",
		"....X55555555P5X....",
		"....XHHHHHHHHHHX....",
		"....X5555P55555X....",
		"....X..........X....",
		"#####..........#####",
	}),
}

// LevelCount returns the number of built-in levels.
func LevelCount() int {
	return len(builtinLevels)
}

// GetLevel returns the built-in level at the given index.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(builtinLevels) {
		index = 0
	}
	return builtinLevels[index]
}
