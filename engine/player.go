package engine

// Player is the decision capability shared by every player variant:
// human-backed at the presentation boundary, or heuristic. The engine
// asks for exactly one decision at a time and validates every card
// reference it is handed; a rejected decision is simply requested again
// by the host.
type Player interface {
	// Name identifies the player in narration.
	Name() string

	// Hand gives read-only access to the player's current cards. The
	// engine mutates it only through the deal's transition functions.
	Hand() Hand

	// Reset clears the hand (and any per-deal memory) at the start of
	// a deal.
	Reset()

	// Draw delivers freshly drawn cards into the hand.
	Draw(cards []Card)

	// ElderExchange chooses up to five cards to discard as elder.
	ElderExchange() []Card

	// YoungerExchange chooses up to maxCards cards to discard as
	// younger, maxCards being whatever stock the elder left.
	YoungerExchange(maxCards int) []Card

	// JudgeDeclaration answers good, equal or not good to the elder's
	// announcement, from the younger seat.
	JudgeDeclaration(d Declaration) Goodness

	// Lead chooses the card to lead a trick with.
	Lead() Card

	// Follow chooses the card to answer the led card with. A
	// conforming player follows suit whenever it can; the engine
	// enforces this regardless.
	Follow(lead Card) Card

	// RegisterPlay observes a card played by either player. It is a
	// notification, never a decision.
	RegisterPlay(player Player, card Card)

	// Announce delivers a narration message. Best-effort: the engine
	// never depends on its effect.
	Announce(message string)
}
