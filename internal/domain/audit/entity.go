package audit

import "time"

// Record - an append-only trace of financially significant actions
// (exports, generation, state transitions). Writes are best-effort on the
// export path: losing an audit row must never block a financial export.
type Record struct {
	ID         string
	Action     string
	EntityType string
	EntityID   string
	ActorID    *string
	Details    *string
	CreatedAt  time.Time
}
