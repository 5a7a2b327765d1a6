package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	codeAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeNamePrefix   = 3
	defaultCodeTries = 10
)

// reservedCodeWords never appear anywhere in an issued code.
var reservedCodeWords = []string{"ADMIN", "TEST", "NULL", "ROOT", "FUCK", "SHIT", "CUNT", "NAZI"}

// ReferralCodeService implements ports.ReferralCodeGenerator.
type ReferralCodeService struct {
	donors      ports.DonorRepository
	metrics     ports.LedgerMetrics
	maxAttempts int
	random      io.Reader
	log         zerolog.Logger
}

// NewReferralCodeService creates a generator that tries at most maxAttempts
// candidates per call.
func NewReferralCodeService(
	donors ports.DonorRepository,
	metrics ports.LedgerMetrics,
	maxAttempts int,
	log zerolog.Logger,
) *ReferralCodeService {
	if maxAttempts < 1 {
		maxAttempts = defaultCodeTries
	}
	return &ReferralCodeService{
		donors:      donors,
		metrics:     metrics,
		maxAttempts: maxAttempts,
		random:      rand.Reader,
		log:         log,
	}
}

// Generate returns a code not currently issued to any donor. The check is
// read-only; the unique index on donors.referral_code is the real guard.
func (s *ReferralCodeService) Generate(ctx context.Context, seedName string) (string, error) {
	prefix := namePrefix(seedName)

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		code, err := s.candidate(prefix)
		if err != nil {
			return "", apperror.InternalError(fmt.Errorf("draw referral code: %w", err))
		}

		if isReservedCode(code) {
			s.metrics.ReferralCodeCollision()
			continue
		}

		taken, err := s.donors.ReferralCodeExists(ctx, code)
		if err != nil {
			return "", apperror.ErrDatastore(fmt.Errorf("check referral code: %w", err))
		}
		if !taken {
			return code, nil
		}

		s.metrics.ReferralCodeCollision()
		s.log.Debug().Int("attempt", attempt).Msg("referral code collision, retrying")
	}

	s.log.Warn().Int("attempts", s.maxAttempts).Msg("referral code generation exhausted")
	return "", apperror.ErrCodeGenerationExhausted(s.maxAttempts)
}

// candidate fills prefix up to the code length with random characters.
func (s *ReferralCodeService) candidate(prefix string) (string, error) {
	var b strings.Builder
	b.Grow(domain.ReferralCodeLength)
	b.WriteString(prefix)

	alphabetLen := big.NewInt(int64(len(codeAlphabet)))
	for b.Len() < domain.ReferralCodeLength {
		n, err := rand.Int(s.random, alphabetLen)
		if err != nil {
			return "", err
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// namePrefix keeps the first few uppercase alphanumerics of name.
func namePrefix(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() == codeNamePrefix {
				break
			}
		}
	}
	return b.String()
}

func isReservedCode(code string) bool {
	for _, w := range reservedCodeWords {
		if strings.Contains(code, w) {
			return true
		}
	}
	return false
}
