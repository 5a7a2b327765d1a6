package postgres

import (
	"context"
	"testing"
	"time"

	"donation-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHash = "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"

func newTestContribution() *domain.ContributionLog {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.ContributionLog{
		ID:                 uuid.New(),
		TransactionHash:    testHash,
		ContributorAddress: "0x52908400098527886e0f7030069857d2e4169ee7",
		ContractAddress:    "0x0000000000000000000000000000000000000001",
		AmountWei:          "500000000000000000",
		AmountEth:          decimal.RequireFromString("0.5"),
		BlockNumber:        46147,
		GasUsed:            strPtr("21000"),
		Status:             domain.ContributionStatusCompleted,
		WebhookReceivedAt:  now,
		CreatedAt:          now,
	}
}

func TestContributionLogRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewContributionLogRepo(mock)
	l := newTestContribution()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO contribution_logs").
		WithArgs(l.ID, l.TransactionHash, l.ContributorAddress, l.ContractAddress,
			l.AmountWei, l.AmountEth, l.BlockNumber, l.GasUsed, l.GasPrice,
			l.Status, l.WebhookReceivedAt, l.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, l)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContributionLogRepo_Create_DuplicateHash(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewContributionLogRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO contribution_logs").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "contribution_logs_transaction_hash_key"})

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, newTestContribution())
	assert.ErrorIs(t, err, domain.ErrDuplicateTransactionHash)
}

func TestContributionLogRepo_GetByTransactionHash(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewContributionLogRepo(mock)
	l := newTestContribution()
	cols := []string{"id", "transaction_hash", "contributor_address", "contract_address", "amount_wei", "amount_eth",
		"block_number", "gas_used", "gas_price", "status", "webhook_received_at", "created_at"}

	mock.ExpectQuery("SELECT .+ FROM contribution_logs WHERE transaction_hash").
		WithArgs(testHash).
		WillReturnRows(pgxmock.NewRows(cols).AddRow(
			l.ID, l.TransactionHash, l.ContributorAddress, l.ContractAddress, l.AmountWei, l.AmountEth,
			l.BlockNumber, l.GasUsed, l.GasPrice, l.Status, l.WebhookReceivedAt, l.CreatedAt,
		))
	mock.ExpectQuery("SELECT .+ FROM contribution_logs WHERE transaction_hash").
		WithArgs("0xmissing").
		WillReturnRows(pgxmock.NewRows(cols))

	found, err := repo.GetByTransactionHash(context.Background(), testHash)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, l.ID, found.ID)
	assert.True(t, decimal.RequireFromString("0.5").Equal(found.AmountEth))

	missing, err := repo.GetByTransactionHash(context.Background(), "0xmissing")
	assert.NoError(t, err)
	assert.Nil(t, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}
