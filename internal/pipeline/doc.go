// Package pipeline executes the word-cloud stages in sequence.
//
// A run is a linear pipeline: resolve input files, extract and tokenize
// text, count frequencies, render the cloud. Each stage is a Step that
// receives the accumulated CloudReport and fills in its part.
//
// Design decision: We use a pipeline pattern instead of direct function
// calls because:
//  1. It allows easy addition/removal of steps without modifying core logic
//  2. It provides consistent error handling and logging across steps
//  3. It supports cancellation via context between stages
//
// Processing is strictly sequential: files are extracted one at a time
// and the whole token stream is materialized before counting. The first
// failing step halts the run with no partial results.
package pipeline
