// Package ledger implements an append-only, hash-chained record of the hands
// played in a Truco match. The record lives in memory for the lifetime of the
// match; it is never written to disk.
//
// # Core Components
//
// Blockchain: An append-only log of hand results with SHA-256 hash chaining
// for tamper detection. It implements truco.Recorder.
//
// Block: A single hand result together with its index, timestamp and the
// hashes linking it to the previous block.
//
// # Usage
//
// Create a blockchain for a match id and hand it to the match with
// truco.WithRecorder. The Verify method can be called at any time to ensure
// the chain remains intact.
package ledger
