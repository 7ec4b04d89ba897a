package model

import "fmt"

// Square is a board coordinate. X is the file (0 = a-file), Y is the rank
// index with black's back rank at 0 and white's at 7.
type Square struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Valid reports whether the square lies on the board. Every other engine
// function assumes squares have been checked with Valid before indexing.
func (s Square) Valid() bool {
	return s.X >= 0 && s.X < 8 && s.Y >= 0 && s.Y < 8
}

func (s Square) offset(dx, dy int) Square {
	return Square{X: s.X + dx, Y: s.Y + dy}
}

// Notation returns the algebraic name of the square, e.g. "e4".
func (s Square) Notation() string {
	return fmt.Sprintf("%c%d", 'a'+s.X, 8-s.Y)
}

func (s Square) fileNotation() string {
	return fmt.Sprintf("%c", 'a'+s.X)
}
