package memory

import (
	"context"
	"testing"
	"time"

	"donation-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func seedDonor(t *testing.T, s *Store, email, code, wallet string) *domain.Donor {
	t.Helper()
	d := &domain.Donor{
		ID:           uuid.New(),
		Email:        email,
		FullName:     "Test Donor",
		ReferralCode: code,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if wallet != "" {
		d.WalletAddress = strPtr(wallet)
	}
	require.NoError(t, s.Donors().Create(context.Background(), d))
	return d
}

func seedDonation(t *testing.T, s *Store, donor uuid.UUID, referrer *uuid.UUID, amount string, status domain.DonationStatus, hash *string) *domain.Donation {
	t.Helper()
	d := &domain.Donation{
		ID:              uuid.New(),
		DonorID:         donor,
		CandidateID:     uuid.New(),
		Amount:          decimal.RequireFromString(amount),
		Status:          status,
		ReferrerID:      referrer,
		TransactionHash: hash,
		DonationDate:    time.Now(),
		CreatedAt:       time.Now(),
	}
	require.NoError(t, s.Donations().Create(context.Background(), d))
	return d
}

func TestDonorRepo_UniqueKeys(t *testing.T) {
	s := New()
	seedDonor(t, s, "a@x.org", "AAA1111", "")

	err := s.Donors().Create(context.Background(), &domain.Donor{ID: uuid.New(), Email: "a@x.org", ReferralCode: "BBB2222"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	err = s.Donors().Create(context.Background(), &domain.Donor{ID: uuid.New(), Email: "b@x.org", ReferralCode: "AAA1111"})
	assert.ErrorIs(t, err, domain.ErrDuplicateReferralCode)
}

func TestDonorRepo_ReferralLookupSkipsInactive(t *testing.T) {
	s := New()
	ctx := context.Background()
	d := seedDonor(t, s, "a@x.org", "AAA1111", "")
	s.Donors().SetActive(d.ID, false)

	found, err := s.Donors().GetByReferralCode(ctx, "AAA1111")
	require.NoError(t, err)
	assert.Nil(t, found)

	exists, err := s.Donors().ReferralCodeExists(ctx, "AAA1111")
	require.NoError(t, err)
	assert.True(t, exists, "inactive donors still hold their code")
}

func TestDonorRepo_ReturnsCopies(t *testing.T) {
	s := New()
	ctx := context.Background()
	d := seedDonor(t, s, "a@x.org", "AAA1111", "0xabc")

	got, err := s.Donors().GetByID(ctx, d.ID)
	require.NoError(t, err)
	*got.WalletAddress = "0xmutated"

	again, err := s.Donors().GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", *again.WalletAddress)
}

func TestTx_RollbackUndoesWrites(t *testing.T) {
	s := New()
	ctx := context.Background()
	donor := seedDonor(t, s, "a@x.org", "AAA1111", "0xabc")
	donation := seedDonation(t, s, donor.ID, nil, "1", domain.DonationStatusPending, strPtr("0xhash"))

	tx, err := s.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, s.ContributionLogs().Create(ctx, tx, &domain.ContributionLog{ID: uuid.New(), TransactionHash: "0xHASH"}))
	updated, err := s.Donations().TransitionStatus(ctx, tx, domain.StatusTransition{
		DonationID: donation.ID, To: domain.DonationStatusCompleted, At: time.Now(),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	require.NoError(t, tx.Rollback(ctx))
	assert.ErrorIs(t, tx.Commit(ctx), pgx.ErrTxClosed)

	assert.Equal(t, 0, s.ContributionLogCount())
	after, err := s.Donations().GetByID(ctx, donation.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DonationStatusPending, after.Status)
}

func TestTx_CommitKeepsWrites(t *testing.T) {
	s := New()
	ctx := context.Background()

	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, s.ContributionLogs().Create(ctx, tx, &domain.ContributionLog{ID: uuid.New(), TransactionHash: "0xAbC"}))
	require.NoError(t, tx.Commit(ctx))
	assert.ErrorIs(t, tx.Rollback(ctx), pgx.ErrTxClosed)

	found, err := s.ContributionLogs().GetByTransactionHash(ctx, "0xabc")
	require.NoError(t, err)
	assert.NotNil(t, found)

	tx2, err := s.Begin(ctx)
	require.NoError(t, err)
	err = s.ContributionLogs().Create(ctx, tx2, &domain.ContributionLog{ID: uuid.New(), TransactionHash: "0xABC"})
	assert.ErrorIs(t, err, domain.ErrDuplicateTransactionHash)
}

func TestDonationRepo_TransitionOnlyFromPending(t *testing.T) {
	s := New()
	ctx := context.Background()
	donor := seedDonor(t, s, "a@x.org", "AAA1111", "")
	d := seedDonation(t, s, donor.ID, nil, "1", domain.DonationStatusFailed, nil)

	out, err := s.Donations().TransitionStatus(ctx, nil, domain.StatusTransition{
		DonationID: d.ID, To: domain.DonationStatusCompleted, At: time.Now(),
	})
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = s.Donations().TransitionStatus(ctx, nil, domain.StatusTransition{
		DonationID: uuid.New(), To: domain.DonationStatusCompleted, At: time.Now(),
	})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestDonationRepo_FindByWalletAndTxHash(t *testing.T) {
	s := New()
	ctx := context.Background()
	donor := seedDonor(t, s, "a@x.org", "AAA1111", "0xAbCd")
	d := seedDonation(t, s, donor.ID, nil, "1", domain.DonationStatusPending, strPtr("0xFeed"))
	seedDonation(t, s, donor.ID, nil, "1", domain.DonationStatusPending, strPtr("0xother"))

	found, err := s.Donations().FindByWalletAndTxHash(ctx, nil, "0xabcd", "0xfeed")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, d.ID, found.ID)

	missing, err := s.Donations().FindByWalletAndTxHash(ctx, nil, "0xnobody", "0xfeed")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDonationRepo_Totals(t *testing.T) {
	s := New()
	ctx := context.Background()
	referrer := seedDonor(t, s, "a@x.org", "AAA1111", "")
	donor := seedDonor(t, s, "b@x.org", "BBB2222", "")

	seedDonation(t, s, donor.ID, &referrer.ID, "100", domain.DonationStatusCompleted, nil)
	seedDonation(t, s, donor.ID, &referrer.ID, "50", domain.DonationStatusCompleted, nil)
	seedDonation(t, s, donor.ID, &referrer.ID, "25", domain.DonationStatusFailed, nil)
	seedDonation(t, s, referrer.ID, nil, "10", domain.DonationStatusPending, nil)

	ref, err := s.Donations().ReferralTotals(ctx, referrer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), ref.Count)
	assert.Equal(t, int64(2), ref.Completed)
	assert.Equal(t, int64(1), ref.Failed)
	assert.True(t, decimal.NewFromInt(150).Equal(ref.SumCompleted))
	assert.True(t, decimal.NewFromInt(175).Equal(ref.SumAll))
	assert.NotNil(t, ref.LastDate)

	own, err := s.Donations().DonorTotals(ctx, referrer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), own.Count)
	assert.Equal(t, int64(1), own.Pending)
	assert.True(t, own.SumCompleted.IsZero())
}

func TestCandidateRepo_ListActive(t *testing.T) {
	s := New()
	now := time.Now()
	s.PutCandidate(domain.Candidate{ID: uuid.New(), Name: "old", IsActive: true, CreatedAt: now.Add(-time.Hour)})
	s.PutCandidate(domain.Candidate{ID: uuid.New(), Name: "new", IsActive: true, CreatedAt: now})
	s.PutCandidate(domain.Candidate{ID: uuid.New(), Name: "closed", IsActive: false, CreatedAt: now})

	list, err := s.Candidates().ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].Name)
	assert.Equal(t, "old", list[1].Name)
}
