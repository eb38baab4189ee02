package calculation

import (
	"io"
	"time"

	"github.com/oklog/ulid/v2"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// entropyFunc supplies randomness for run IDs (override for deterministic tests).
var entropyFunc = func() io.Reader { return ulid.DefaultEntropy() }

// SetEntropyFunc overrides the run ID entropy source (use only in tests).
func SetEntropyFunc(f func() io.Reader) { entropyFunc = f }

// newRunID stamps a scenario comparison. Run IDs sort by creation time.
func newRunID() string {
	return ulid.MustNew(ulid.Timestamp(nowFunc()), entropyFunc()).String()
}
