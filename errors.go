package twistcube

import "errors"

// Sentinel errors for the twistcube package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("twistcube: invalid move notation")

	// Move validation errors
	ErrInvalidMove = errors.New("twistcube: invalid move")

	// State invariant violations. These indicate a logic bug or a
	// corrupted cube, never a user-facing condition.
	ErrDuplicatePosition = errors.New("twistcube: duplicate piece position")
	ErrStickerPlacement  = errors.New("twistcube: sticker placement inconsistent with position")
	ErrColorImbalance    = errors.New("twistcube: sticker color multiset violated")
)
