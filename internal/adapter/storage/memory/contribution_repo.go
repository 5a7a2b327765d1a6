package memory

import (
	"context"

	"donation-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ContributionLogRepo implements ports.ContributionLogRepository.
type ContributionLogRepo struct {
	s *Store
}

// Create inserts a log row. The hash is unique case-insensitively.
func (r *ContributionLogRepo) Create(_ context.Context, tx pgx.Tx, l *domain.ContributionLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := domain.NormalizeAddress(l.TransactionHash)
	if _, exists := r.s.logs[key]; exists {
		return domain.ErrDuplicateTransactionHash
	}
	row := *l
	row.GasUsed = cloneString(l.GasUsed)
	row.GasPrice = cloneString(l.GasPrice)
	r.s.logs[key] = row
	onRollback(tx, func() { delete(r.s.logs, key) })
	return nil
}

func (r *ContributionLogRepo) GetByTransactionHash(_ context.Context, txHash string) (*domain.ContributionLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	l, ok := r.s.logs[domain.NormalizeAddress(txHash)]
	if !ok {
		return nil, nil
	}
	return &l, nil
}
