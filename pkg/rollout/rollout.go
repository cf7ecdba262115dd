package rollout

import (
	"crypto/sha256"
	"errors"
	"math"
	"math/big"
)

// BucketCount is the number of rollout buckets. Buckets are in
// [0, BucketCount-1] and each holds roughly 1% of identifiers.
const BucketCount = 100

var bucketCount = big.NewInt(BucketCount)

// Bucket maps an identifier to its stable bucket in [0, BucketCount-1].
//
// The bucket is derived from the SHA-256 digest of the identifier's raw
// bytes, interpreted as an arbitrary-precision integer and reduced modulo
// BucketCount. The full digest is used rather than a truncated prefix, so the
// value matches any other implementation that performs the same base
// conversion.
func Bucket(identifier string) (int, error) {
	if identifier == "" {
		return 0, errors.Join(ErrInvalidInput, errors.New("identifier cannot be empty"))
	}

	digest := sha256.Sum256([]byte(identifier))
	n := new(big.Int).SetBytes(digest[:])
	return int(n.Mod(n, bucketCount).Int64()), nil
}

// InRollout reports whether identifier falls inside a rollout of the given
// fraction.
//
// The membership predicate is bucket < fraction*100: at fraction 0 no
// identifier is inside, at fraction 1 every identifier is, and for a fixed
// identifier a growing fraction flips the decision from outside to inside at
// most once.
func InRollout(identifier string, fraction float64) (bool, error) {
	if err := ValidateFraction(fraction); err != nil {
		return false, err
	}

	bucket, err := Bucket(identifier)
	if err != nil {
		return false, err
	}

	// Compare in fraction space rather than multiplying the fraction by 100:
	// fraction*100 overshoots for some two-decimal fractions (0.07*100 >
	// 7.0), which would include one bucket too many. bucket/100 and the
	// fraction literal round to the same float for every whole percent, so
	// the strict comparison selects exactly fraction*100 buckets.
	return float64(bucket)/BucketCount < fraction, nil
}

// ValidateFraction checks that fraction is a real number in the closed
// interval [0, 1].
func ValidateFraction(fraction float64) error {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return errors.Join(ErrInvalidInput, errors.New("fraction must be between 0 and 1"))
	}
	return nil
}
