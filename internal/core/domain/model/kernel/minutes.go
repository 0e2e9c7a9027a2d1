package kernel

import (
	"fmt"
	"time"

	"restaurant/internal/pkg/errs"
)

// maxMinutes bounds time estimates to one day; anything longer is a data
// entry mistake, not a real kitchen or delivery estimate.
const maxMinutes = 24 * 60

// Minutes is a non-negative duration estimate, used for preparation and
// delivery times. The zero value is a valid "no estimate yet".
type Minutes struct {
	value int
}

// NewMinutes creates a duration estimate. Negative values and values above
// 24 hours are rejected with a ValueIsOutOfRangeError.
func NewMinutes(value int) (Minutes, error) {
	if value < 0 || value > maxMinutes {
		return Minutes{}, errs.NewValueIsOutOfRangeError("minutes", value, 0, maxMinutes)
	}
	return Minutes{value: value}, nil
}

// Value returns the estimate in whole minutes.
func (m Minutes) Value() int {
	return m.value
}

// Duration converts the estimate to a time.Duration.
func (m Minutes) Duration() time.Duration {
	return time.Duration(m.value) * time.Minute
}

// IsZero reports whether no estimate has been set.
func (m Minutes) IsZero() bool {
	return m.value == 0
}

// IsEqual reports whether two estimates are the same.
func (m Minutes) IsEqual(other Minutes) bool {
	return m.value == other.value
}

// String implements fmt.Stringer, e.g. "25m".
func (m Minutes) String() string {
	return fmt.Sprintf("%dm", m.value)
}
