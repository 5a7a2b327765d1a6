// Package memory is a map-backed store implementing the repository ports.
// It enforces the same unique keys as the postgres schema and supports
// rollback, so services behave the same against it.
package memory

import (
	"context"
	"sync"

	"donation-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Store holds all ledger tables.
type Store struct {
	mu         sync.RWMutex
	donors     map[uuid.UUID]domain.Donor
	donations  map[uuid.UUID]domain.Donation
	logs       map[string]domain.ContributionLog // keyed by lowercased hash
	candidates map[uuid.UUID]domain.Candidate
}

// New creates an empty store.
func New() *Store {
	return &Store{
		donors:     make(map[uuid.UUID]domain.Donor),
		donations:  make(map[uuid.UUID]domain.Donation),
		logs:       make(map[string]domain.ContributionLog),
		candidates: make(map[uuid.UUID]domain.Candidate),
	}
}

// Donors returns the donor repository view.
func (s *Store) Donors() *DonorRepo { return &DonorRepo{s: s} }

// Donations returns the donation repository view.
func (s *Store) Donations() *DonationRepo { return &DonationRepo{s: s} }

// ContributionLogs returns the contribution log repository view.
func (s *Store) ContributionLogs() *ContributionLogRepo { return &ContributionLogRepo{s: s} }

// Candidates returns the candidate repository view.
func (s *Store) Candidates() *CandidateRepo { return &CandidateRepo{s: s} }

// Begin implements ports.DBTransactor.
func (s *Store) Begin(_ context.Context) (pgx.Tx, error) {
	return &Tx{store: s}, nil
}

// PutCandidate seeds a candidate. Campaign rows are owned elsewhere.
func (s *Store) PutCandidate(c domain.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates[c.ID] = c
}

// ContributionLogCount returns the number of committed or pending log rows.
func (s *Store) ContributionLogCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.logs)
}

// DonationCount returns the number of donation rows.
func (s *Store) DonationCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.donations)
}

// Tx undoes its writes on Rollback. Writes are visible before Commit.
// Only Commit and Rollback of pgx.Tx are implemented.
type Tx struct {
	pgx.Tx
	store *Store
	undo  []func()
	done  bool
}

// Commit keeps the transaction's writes.
func (t *Tx) Commit(_ context.Context) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.undo = nil
	return nil
}

// Rollback reverts the transaction's writes in reverse order.
func (t *Tx) Rollback(_ context.Context) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
	return nil
}

// onRollback registers fn when tx is a memory transaction.
// Callers hold s.mu.
func onRollback(tx pgx.Tx, fn func()) {
	if t, ok := tx.(*Tx); ok {
		t.undo = append(t.undo, fn)
	}
}
