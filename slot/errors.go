package slot

import "errors"

var (
	// ErrIndexOutOfBounds signals a slot index outside the array capacity.
	ErrIndexOutOfBounds = errors.New("slot: index out of bounds")
	// ErrSlotOccupied signals a put into a slot that already holds an element.
	ErrSlotOccupied = errors.New("slot: slot is occupied")
	// ErrSlotEmpty signals a take from a slot that holds no element.
	ErrSlotEmpty = errors.New("slot: slot is empty")
)
