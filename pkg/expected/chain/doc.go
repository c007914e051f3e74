// Package chain provides a fluent wrapper around expected.Result[T, E]
// for building synchronous Railway-Oriented chains.
//
// A Chain carries a context.Context next to its result so that steps can be
// repository calls or other context-aware work. Every step is traced through
// the zerolog logger found in that context, tagged with the chain id.
//
// Key operations:
// - Start/FromValue/FromError: begin a chain
// - Then/Map: same-type steps as methods; type-changing steps as functions
// - ThenTry: call a function (U, error) and convert error to failure
// - Recover/MapErr: work on the error track
// - Ensure: run side effects without changing the result
// - Or/And/RepeatUntil/While: combine and loop
// - Finally: collapse the chain into a final value via handlers
package chain
