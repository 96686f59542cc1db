package engine

import "errors"

// Errors returned by the programmatic API. They signal caller mistakes:
// the click-driven state machine never produces them.
var (
	ErrGameOver           = errors.New("engine: game is over")
	ErrPromotionPending   = errors.New("engine: promotion choice pending")
	ErrNoPromotionPending = errors.New("engine: no promotion pending")
	ErrInvalidPromotion   = errors.New("engine: invalid promotion kind")
	ErrNoPiece            = errors.New("engine: no piece of the side to move on square")
	ErrIllegalMove        = errors.New("engine: destination not in valid moves")
)
