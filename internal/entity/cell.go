package entity

import (
	"encoding/json"
	"fmt"
)

// Cell is the content of one board square.
type Cell uint8

const (
	Empty Cell = iota
	MarkerX
	MarkerO
)

func (that Cell) String() string {
	switch that {
	case MarkerX:
		return "X"
	case MarkerO:
		return "O"
	default:
		return ""
	}
}

// IsMarker reports whether the cell holds X or O.
func (that Cell) IsMarker() bool {
	return that == MarkerX || that == MarkerO
}

// Opponent - returns the other marker. Empty stays Empty.
func (that Cell) Opponent() Cell {
	switch that {
	case MarkerX:
		return MarkerO
	case MarkerO:
		return MarkerX
	default:
		return Empty
	}
}

func (that Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.String())
}

func (that *Cell) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal cell: %w", err)
	}

	switch raw {
	case "":
		*that = Empty
	case "X":
		*that = MarkerX
	case "O":
		*that = MarkerO
	default:
		return fmt.Errorf("unknown cell value %q", raw)
	}

	return nil
}
