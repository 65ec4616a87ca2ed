// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// SnapshotStore is the secondary port for whole-collection persistence:
// one document per entity kind, written and read as a single atomic unit.
// There is no incremental variant; a load that fails for any kind leaves
// the caller's state untouched.
type SnapshotStore interface {
	// Save writes all records of one kind. count must equal the number of
	// records; it is stored alongside them and re-checked on load.
	Save(kind string, count int, records any) error

	// Load reads all records of one kind into out (a pointer to a slice)
	// and returns the stored count. Format-version or kind mismatches and
	// count/record disagreements are hard failures.
	Load(kind string, out any) (int, error)
}

// ArchiveRecord is one row of the long-term archive: the record's header
// fields plus its full JSON body.
type ArchiveRecord struct {
	ID     int
	Active bool
	Body   []byte
}

// ArchiveStore is the secondary port for the sqlite archive. Unlike
// snapshots, an archive is queryable at rest and survives schema-agnostic:
// each kind maps to one table of (id, active, body).
type ArchiveStore interface {
	// Export replaces the archived rows of one kind.
	Export(ctx context.Context, kind string, records []ArchiveRecord) error

	// Import reads all archived rows of one kind in id order. A kind that
	// was never exported yields no rows and no error.
	Import(ctx context.Context, kind string) ([]ArchiveRecord, error)

	// Close releases the underlying database handle.
	Close() error
}
