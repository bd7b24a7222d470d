package apperror

import "errors"

var (
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidCell   = errors.New("invalid cell index")
	ErrInvalidMarker = errors.New("invalid marker")
	ErrInvalidMove   = errors.New("invalid move number")
)
