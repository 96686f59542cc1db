package engine

import "fmt"

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Square is a board cell. File runs 0..7 left to right; Rank runs 0..7
// top to bottom, so rank 0 is black's back rank.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{File: file, Rank: rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square df files and dr ranks away. The result may be off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns the conventional coordinate name, e.g. "e2" for Sq(4, 6).
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return fmt.Sprintf("%c%d", 'a'+s.File, BoardSize-s.Rank)
}

// ParseSquare parses a coordinate name such as "e2".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("engine: invalid square %q", name)
	}
	file := int(name[0] - 'a')
	rank := BoardSize - int(name[1]-'0')
	sq := Sq(file, rank)
	if name[1] < '1' || name[1] > '8' || !sq.Valid() {
		return Square{}, fmt.Errorf("engine: invalid square %q", name)
	}
	return sq, nil
}

// MustSquare is like ParseSquare but panics on malformed input.
// Intended for fixed setups and tests.
func MustSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

// containsSquare reports whether list holds sq.
func containsSquare(list []Square, sq Square) bool {
	for _, s := range list {
		if s == sq {
			return true
		}
	}
	return false
}
