package postgres

import (
	"context"
	"errors"
	"fmt"

	"donation-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const candidateColumns = `id, name, COALESCE(description, ''), wallet_address, campaign_goal, total_raised, is_active, created_at, updated_at`

// CandidateRepo implements ports.CandidateRepository. Read-only.
type CandidateRepo struct {
	pool Pool
}

// NewCandidateRepo creates a new CandidateRepo.
func NewCandidateRepo(pool Pool) *CandidateRepo {
	return &CandidateRepo{pool: pool}
}

// GetByID fetches a candidate regardless of its active flag.
func (r *CandidateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`

	c, err := scanCandidate(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get candidate by id: %w", err)
	}
	return c, nil
}

// ListActive returns active candidates, newest first.
func (r *CandidateRepo) ListActive(ctx context.Context) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE is_active = TRUE ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active candidates: %w", err)
	}
	defer rows.Close()

	candidates := make([]domain.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		candidates = append(candidates, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidates: %w", err)
	}
	return candidates, nil
}

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	c := &domain.Candidate{}
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.WalletAddress,
		&c.Goal, &c.Raised, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}
