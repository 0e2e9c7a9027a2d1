package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Kind distinguishes orders that need an exclusively assigned delivery agent
// from those the customer collects in person.
type Kind int

const (
	// KindUnknown catches uninitialized Kind values.
	KindUnknown Kind = iota

	// HomeDelivery requires a delivery agent bound at placement time.
	HomeDelivery

	// Takeaway requires no agent; the customer collects the order.
	Takeaway
)

func kindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:  "Unknown",
		HomeDelivery: "HomeDelivery",
		Takeaway:     "Takeaway",
	}
}

// KindFromString parses a kind name as it appears on the wire and in snapshots.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "HomeDelivery":
		return HomeDelivery, nil
	case "Takeaway":
		return Takeaway, nil
	default:
		return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a known order kind", s))
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if str, ok := kindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects KindUnknown and out-of-range values.
func (k Kind) Validate() error {
	if k != HomeDelivery && k != Takeaway {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid order kind", k))
	}
	return nil
}
