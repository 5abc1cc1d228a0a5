// Package nfpcache implements spec component K: a deterministic
// fingerprint-to-NFP-value cache with at-most-one concurrent compute per
// key. A second caller requesting a key whose value is already being
// computed waits for the first result instead of recomputing it; once
// published, a value never changes.
//
// What:
//
//   - Cache.Get(key, compute) either returns an already-published value, or
//     blocks until an in-flight compute for the same key finishes, or — if
//     no one has asked for key yet — runs compute itself and publishes the
//     result for everyone else.
//   - A failed (NoFit/Degenerate) outcome is published just like a
//     successful one: spec 4.N/4.K require that a calculator failure is
//     cached so the pair is never retried.
//
// Why: the GA driver evaluates many individuals concurrently (spec
// section 5), and most of them share NFP pairs (the same two parts at the
// same two rotations recur across permutations); without this cache the
// NFP calculator — the most expensive component — would redo the same work
// every generation.
//
// Concurrency: guarded by a single sync.Mutex over the entry map, following
// the same single-lock-per-map style as lvlath's core.Graph. Readers of an
// already-published entry never block on the mutex for longer than a map
// lookup; only the lookup that discovers a brand-new key pays the cost of
// the Compute call, release by closing a channel.
package nfpcache
