// Package stream moves expected.Result values through channel pipelines.
// Results are immutable, so they travel between goroutines as plain message
// payloads without synchronization.
//
// Common usage:
// - FromValues/FromResults: feed a channel from a slice
// - MapStage/AndThenStage/EMapStage/RecoverStage: lift combinators into stages
// - Run: execute a stage over an input channel with a fixed number of lines
// - Collect/Gather/Finally: drain the pipeline
//
// Worker counts may be carried in the context with WithWorkerOptions.
package stream
