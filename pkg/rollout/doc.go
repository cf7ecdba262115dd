// Package rollout implements the deterministic membership decision behind
// percentage-based feature rollouts.
//
// Given a stable user identifier and a rollout fraction in [0, 1], the
// package decides whether that user falls inside the rollout. The decision is
// a pure function of its inputs: repeated calls, process restarts and
// re-implementations in other languages (using the same hash) all produce the
// same answer for the same identifier and fraction. This is what makes
// gradual rollouts safe — widening a rollout from 10% to 20% adds users
// without flapping anyone who already had the feature in or out.
//
// # Algorithm
//
// The identifier's raw bytes are hashed with SHA-256, the digest is
// interpreted as an arbitrary-precision integer and reduced modulo 100,
// yielding a stable bucket in [0, 99]. A user is inside the rollout when
// their bucket is strictly less than fraction*100:
//
//	bucket(id) < fraction * 100  =>  inside (new behavior)
//	bucket(id) >= fraction * 100 =>  outside (old behavior)
//
// At fraction 0 nobody is inside, at fraction 1 everybody is. Because the
// bucket is fixed per identifier and only the threshold moves, membership is
// monotone in the fraction: growing the rollout never evicts a user.
//
// A cryptographic digest is used deliberately. Non-cryptographic hashes (FNV,
// maphash, language-runtime hashes) are either poorly distributed on short
// keys or not stable across processes and implementations; SHA-256 guarantees
// both uniformity and portability.
//
// # Usage
//
//	import "github.com/featurelabs/flagkit/pkg/rollout"
//
//	inside, err := rollout.InRollout(user.ID, 0.25)
//	if err != nil {
//		// fraction out of range or empty identifier
//	}
//	if inside {
//		newCheckout(w, r)
//	} else {
//		oldCheckout(w, r)
//	}
//
// # Error Handling
//
// Invalid inputs (fraction outside [0, 1], NaN, empty identifier) fail
// immediately with an error matching ErrInvalidInput via errors.Is. The
// operation is pure, so retrying yields the identical error.
//
// All functions are stateless and safe for concurrent use without
// coordination.
package rollout
