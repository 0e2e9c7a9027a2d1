package ports

import (
	"context"
	"time"
)

// ItemSnapshot is one order line in transport form.
type ItemSnapshot struct {
	MenuItemRef string
	Quantity    int
}

// OrderSnapshot is an order in transport form: plain strings and ints so
// the snapshot store stays independent of the domain model's internals.
type OrderSnapshot struct {
	ID              string
	CustomerID      string
	Items           []ItemSnapshot
	Kind            string
	Status          string
	AssignedChef    *string
	AssignedAgent   *string
	PrepMinutes     int
	DeliveryMinutes int
	CreatedAt       time.Time
}

// StaffSnapshot is a staff member in transport form. Removed tombstones are
// carried too so the Removed-vs-NotFound distinction survives a restart.
type StaffSnapshot struct {
	ID           string
	Name         string
	Role         string
	Duty         string
	CurrentOrder *string
	History      []string
	Removed      bool
}

// Snapshot is the full state of the order store and staff registry at one
// point in time.
type Snapshot struct {
	TakenAt time.Time
	Orders  []OrderSnapshot
	Staff   []StaffSnapshot
}

// SnapshotStore is the optional persistence collaborator. The core never
// depends on the storage format; it hands over a Snapshot and gets one
// back on restart.
type SnapshotStore interface {
	// Save persists the snapshot, replacing any previous one.
	Save(ctx context.Context, snap Snapshot) error

	// Load retrieves the latest snapshot. Returns an error unwrapping to
	// errs.ErrObjectNotFound when nothing was ever saved.
	Load(ctx context.Context) (Snapshot, error)
}
