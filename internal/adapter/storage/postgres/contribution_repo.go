package postgres

import (
	"context"
	"errors"
	"fmt"

	"donation-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ContributionLogRepo implements ports.ContributionLogRepository.
// Rows are insert-only.
type ContributionLogRepo struct {
	pool Pool
}

// NewContributionLogRepo creates a new ContributionLogRepo.
func NewContributionLogRepo(pool Pool) *ContributionLogRepo {
	return &ContributionLogRepo{pool: pool}
}

// Create inserts a contribution log within a database transaction.
// A second insert for the same hash returns domain.ErrDuplicateTransactionHash.
func (r *ContributionLogRepo) Create(ctx context.Context, tx pgx.Tx, l *domain.ContributionLog) error {
	query := `INSERT INTO contribution_logs (id, transaction_hash, contributor_address, contract_address,
		amount_wei, amount_eth, block_number, gas_used, gas_price, status, webhook_received_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := tx.Exec(ctx, query,
		l.ID, l.TransactionHash, l.ContributorAddress, l.ContractAddress,
		l.AmountWei, l.AmountEth, l.BlockNumber, l.GasUsed, l.GasPrice,
		l.Status, l.WebhookReceivedAt, l.CreatedAt,
	)
	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("insert contribution log: %w", err)
	}
	return nil
}

// GetByTransactionHash fetches the log for a hash, or nil if none exists.
func (r *ContributionLogRepo) GetByTransactionHash(ctx context.Context, txHash string) (*domain.ContributionLog, error) {
	query := `SELECT id, transaction_hash, contributor_address, contract_address, amount_wei, amount_eth,
		block_number, gas_used, gas_price, status, webhook_received_at, created_at
		FROM contribution_logs WHERE transaction_hash = $1`

	l := &domain.ContributionLog{}
	err := r.pool.QueryRow(ctx, query, txHash).Scan(
		&l.ID, &l.TransactionHash, &l.ContributorAddress, &l.ContractAddress,
		&l.AmountWei, &l.AmountEth, &l.BlockNumber, &l.GasUsed, &l.GasPrice,
		&l.Status, &l.WebhookReceivedAt, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contribution log: %w", err)
	}
	return l, nil
}
