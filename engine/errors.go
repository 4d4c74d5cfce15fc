package engine

import "errors"

// Recoverable player errors. The host must re-prompt the same player for
// a fresh decision when one of these is returned; they never end a deal.
var (
	// ErrNotInHand is returned when a requested card key is not present
	// in the acting player's hand.
	ErrNotInHand = errors.New("card is not in hand")

	// ErrMustFollowSuit is returned when a follow play is off-suit while
	// the player still holds the led suit.
	ErrMustFollowSuit = errors.New("must follow the led suit")

	// ErrExchangeCount is returned when an exchange requests more cards
	// than the player's allowance.
	ErrExchangeCount = errors.New("exchange count out of bounds")

	// ErrDuplicateCard is returned when one request names the same card
	// more than once.
	ErrDuplicateCard = errors.New("duplicate card in request")
)

// Fatal sequencing errors. These indicate a broken host, not a bad card
// choice, and must not be retried.
var (
	// ErrPhase is returned when an operation is invoked outside its
	// place in the deal's state sequence.
	ErrPhase = errors.New("operation not valid in current phase")

	// ErrMatchComplete is returned when a new deal is requested after
	// the partie's fixed number of deals has been played.
	ErrMatchComplete = errors.New("partie is complete")
)

// IsRecoverable reports whether err is a locally-retried player error, as
// opposed to a fatal engine sequencing violation.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrNotInHand) ||
		errors.Is(err, ErrMustFollowSuit) ||
		errors.Is(err, ErrExchangeCount) ||
		errors.Is(err, ErrDuplicateCard)
}
