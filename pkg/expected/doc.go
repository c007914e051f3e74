// Package expected provides Result[T, E], a value holding exactly one of an ok
// payload of type T or an error payload of type E, together with the
// combinator algebra used to build error-aware pipelines over it.
//
// Highlights:
// - Ok/Err/FromExpect/FromUnexpect/Make: construct Result[T, E]
// - IsOk/IsErr/Tag: inspect the discriminant
// - Unwrap/UnwrapErr: panicking access (BadResultAccess on misuse)
// - TryUnwrap/TryUnwrapErr: the same access returning the misuse as an error
// - Peek/PeekErr: unchecked access once the discriminant is known
// - ValueOr/ValueOrDefault/ValueOrElse/ToOptional: total fallbacks
// - Map/EMap/AndThen/OrElse/CatchError/Match/Then: the combinators
// - Aggregate2..4/AggregateAll/AggregateInto: all-or-nothing batches
//
// Domain errors are data: no combinator inspects or converts E on its own,
// every conversion is a caller supplied function.
package expected
