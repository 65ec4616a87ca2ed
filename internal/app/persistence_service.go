package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/example/clerk/internal/config"
	"github.com/example/clerk/internal/ports/secondary"
	"github.com/example/clerk/internal/store"
)

// PersistenceServiceImpl implements the PersistenceService interface. It
// walks every collection through a binding table so adding an entity kind
// means adding one line to bindings().
type PersistenceServiceImpl struct {
	ledger  *Ledger
	caps    config.Capacities
	files   secondary.SnapshotStore
	archive secondary.ArchiveStore
	log     *logrus.Logger
}

// NewPersistenceService creates a new PersistenceService. The capacity set
// is needed to stage a fresh ledger during loads.
func NewPersistenceService(
	ledger *Ledger,
	caps config.Capacities,
	files secondary.SnapshotStore,
	archive secondary.ArchiveStore,
	log *logrus.Logger,
) *PersistenceServiceImpl {
	return &PersistenceServiceImpl{
		ledger:  ledger,
		caps:    caps,
		files:   files,
		archive: archive,
		log:     log,
	}
}

// binding ties one collection to the generic snapshot and archive
// operations without the service knowing its record type.
type binding struct {
	kind        string
	saveFile    func(secondary.SnapshotStore) error
	loadFile    func(secondary.SnapshotStore) error
	toArchive   func() ([]secondary.ArchiveRecord, error)
	fromArchive func([]secondary.ArchiveRecord) error
}

func bindCollection[T store.Entity](c *store.Collection[T]) binding {
	return binding{
		kind: c.Kind(),
		saveFile: func(s secondary.SnapshotStore) error {
			records := c.Records()
			if records == nil {
				records = []T{}
			}
			return s.Save(c.Kind(), c.Len(), records)
		},
		loadFile: func(s secondary.SnapshotStore) error {
			var records []T
			if _, err := s.Load(c.Kind(), &records); err != nil {
				return err
			}
			return c.Replace(records)
		},
		toArchive: func() ([]secondary.ArchiveRecord, error) {
			records := make([]secondary.ArchiveRecord, 0, c.Len())
			var encodeErr error
			c.Each(func(rec T) bool {
				body, err := json.Marshal(rec)
				if err != nil {
					encodeErr = fmt.Errorf("failed to encode %s %d: %w", c.Kind(), rec.Header().ID, err)
					return false
				}
				records = append(records, secondary.ArchiveRecord{
					ID:     rec.Header().ID,
					Active: rec.Header().Active,
					Body:   body,
				})
				return true
			})
			return records, encodeErr
		},
		fromArchive: func(rows []secondary.ArchiveRecord) error {
			records := make([]T, 0, len(rows))
			for _, row := range rows {
				var rec T
				if err := json.Unmarshal(row.Body, &rec); err != nil {
					return fmt.Errorf("failed to decode archived %s %d: %w", c.Kind(), row.ID, err)
				}
				records = append(records, rec)
			}
			return c.Replace(records)
		},
	}
}

func ledgerBindings(l *Ledger) []binding {
	return []binding{
		bindCollection(l.Rooms),
		bindCollection(l.Guests),
		bindCollection(l.Bookings),
		bindCollection(l.Customers),
		bindCollection(l.Accounts),
		bindCollection(l.Loans),
		bindCollection(l.Students),
		bindCollection(l.Courses),
		bindCollection(l.Enrollments),
		bindCollection(l.Teams),
		bindCollection(l.Players),
		bindCollection(l.Matches),
		bindCollection(l.Appearances),
	}
}

// SaveAll snapshots every collection, one document per entity kind.
func (s *PersistenceServiceImpl) SaveAll(ctx context.Context) error {
	s.ledger.Lock()
	defer s.ledger.Unlock()

	for _, b := range ledgerBindings(s.ledger) {
		if err := b.saveFile(s.files); err != nil {
			return fmt.Errorf("failed to save %s: %w", b.kind, err)
		}
	}
	s.log.Info("ledger snapshot saved")
	return nil
}

// LoadAll restores every collection from snapshots. Records are staged in
// a fresh ledger first; only a fully successful load is adopted, so any
// failure leaves the live state untouched.
func (s *PersistenceServiceImpl) LoadAll(ctx context.Context) error {
	staged := NewLedger(s.caps)
	for _, b := range ledgerBindings(staged) {
		if err := b.loadFile(s.files); err != nil {
			return fmt.Errorf("failed to load %s: %w", b.kind, err)
		}
	}

	s.ledger.Lock()
	defer s.ledger.Unlock()
	s.ledger.adopt(staged)
	s.log.Info("ledger snapshot loaded")
	return nil
}

// ExportArchive copies every collection into the sqlite archive.
func (s *PersistenceServiceImpl) ExportArchive(ctx context.Context) error {
	s.ledger.Lock()
	defer s.ledger.Unlock()

	for _, b := range ledgerBindings(s.ledger) {
		records, err := b.toArchive()
		if err != nil {
			return err
		}
		if err := s.archive.Export(ctx, b.kind, records); err != nil {
			return fmt.Errorf("failed to archive %s: %w", b.kind, err)
		}
	}
	s.log.Info("ledger archived")
	return nil
}

// ImportArchive restores every collection from the sqlite archive,
// staging like LoadAll so a bad archive never clobbers live state.
func (s *PersistenceServiceImpl) ImportArchive(ctx context.Context) error {
	staged := NewLedger(s.caps)
	for _, b := range ledgerBindings(staged) {
		rows, err := s.archive.Import(ctx, b.kind)
		if err != nil {
			return err
		}
		if err := b.fromArchive(rows); err != nil {
			return err
		}
	}

	s.ledger.Lock()
	defer s.ledger.Unlock()
	s.ledger.adopt(staged)
	s.log.Info("ledger imported from archive")
	return nil
}
