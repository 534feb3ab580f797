package game

import "fmt"

// Cell identifies a board position. It is a plain value type so it can be
// used directly as a map key.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Compare orders cells row-major: by row, then by column. Used wherever a
// stable cell ordering is needed for deterministic behavior.
func (c Cell) Compare(other Cell) int {
	if c.Row != other.Row {
		return c.Row - other.Row
	}
	return c.Col - other.Col
}
