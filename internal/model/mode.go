// internal/model/mode.go
package model

import (
	"fmt"
	"time"
)

// IncrementalWindow is how far back an incremental run looks.
const IncrementalWindow = 24 * time.Hour

// SyncKind selects between a full backfill and an incremental refresh.
type SyncKind int

const (
	KindFull SyncKind = iota
	KindIncremental
)

// SyncMode is fixed for a whole run. The zero value is a full sync.
type SyncMode struct {
	Kind  SyncKind
	Since time.Time
}

// FullSync returns a mode with no lower bound.
func FullSync() SyncMode {
	return SyncMode{Kind: KindFull}
}

// IncrementalSync returns a mode bounded to commits authored in the
// IncrementalWindow before now.
func IncrementalSync(now time.Time) SyncMode {
	return SyncMode{Kind: KindIncremental, Since: now.UTC().Add(-IncrementalWindow)}
}

// IsIncremental reports whether the counters written by this run are additive.
func (m SyncMode) IsIncremental() bool {
	return m.Kind == KindIncremental
}

// LowerBound returns the since filter for commit listings; the zero time means none.
func (m SyncMode) LowerBound() time.Time {
	if !m.IsIncremental() {
		return time.Time{}
	}
	return m.Since
}

func (m SyncMode) String() string {
	if m.IsIncremental() {
		return fmt.Sprintf("incremental-since:%s", m.Since.UTC().Format(time.RFC3339))
	}
	return "full"
}
