// Package errors provides the structured error type used across the
// railforge simulation core.
//
// Every expected domain failure is surfaced as an *Error carrying a
// Code, a human-readable message, and optional metadata. Engines never
// panic on player-facing failures; the Internal code is reserved for
// data-authoring bugs (a crafted slot with no equipment template, a
// level with no table entry) that callers should treat as programming
// errors rather than recoverable conditions.
//
// Creating errors:
//
//	err := errors.NotFoundf("recipe for slot %s not found", slot)
//	err := errors.ResourceExhausted("not enough gold").
//	    WithMeta("have", have).
//	    WithMeta("need", need)
//
// Checking errors:
//
//	if errors.IsResourceExhausted(err) {
//	    // show the shortfall to the player
//	}
//
// The ValidationBuilder collects per-field configuration problems and
// folds them into a single InvalidArgument error:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Inventory == nil {
//	    vb.RequiredField("Inventory")
//	}
//	return vb.Build()
//
// Code conventions in this repo:
//   - InvalidArgument / NotFound: validation failures (unknown slot,
//     malformed material key, missing item)
//   - ResourceExhausted: material/gold/spirit/stamina/charm shortfalls,
//     always with have/need metadata where available
//   - FailedPrecondition / AlreadyExists: state conflicts (already
//     learned, already maxed, quest not completable, slots full)
//   - Internal: fatal invariant violations in authored data
package errors
