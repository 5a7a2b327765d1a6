// Package chain verifies contribution transactions against an Ethereum node.
package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"donation-ledger/config"
	"donation-ledger/internal/core/domain"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
)

// Client is the part of *ethclient.Client the verifier needs.
type Client interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BlockNumber(ctx context.Context) (uint64, error)
	Close()
}

// Verifier implements ports.ChainVerifier by polling for a receipt.
type Verifier struct {
	client       Client
	pollInterval time.Duration
	log          zerolog.Logger
}

// Dial connects to the RPC endpoint in cfg.
func Dial(ctx context.Context, cfg config.ChainConfig, log zerolog.Logger) (*Verifier, error) {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dialing chain rpc: %w", err)
	}

	log.Info().Str("rpc_url", cfg.RPCURL).Msg("chain RPC client ready")
	return NewVerifier(client, cfg.PollInterval, log), nil
}

// NewVerifier wraps an existing client.
func NewVerifier(client Client, pollInterval time.Duration, log zerolog.Logger) *Verifier {
	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}
	return &Verifier{client: client, pollInterval: pollInterval, log: log}
}

// WaitForTransaction polls until txHash is mined. It returns ctx's error,
// wrapped, once the deadline passes; callers bound the wait with ctx.
// Transport errors end the wait immediately.
func (v *Verifier) WaitForTransaction(ctx context.Context, txHash string) (*domain.ChainReceipt, error) {
	hash := common.HexToHash(txHash)

	ticker := time.NewTicker(v.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := v.client.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			return toChainReceipt(receipt), nil
		case errors.Is(err, ethereum.NotFound):
			v.log.Debug().Str("tx_hash", txHash).Msg("transaction not mined yet")
		case ctx.Err() != nil:
			return nil, fmt.Errorf("waiting for %s: %w", txHash, ctx.Err())
		default:
			return nil, fmt.Errorf("fetch receipt %s: %w", txHash, err)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for %s: %w", txHash, ctx.Err())
		case <-ticker.C:
		}
	}
}

// Ping implements ports.HealthChecker.
func (v *Verifier) Ping(ctx context.Context) error {
	_, err := v.client.BlockNumber(ctx)
	return err
}

// Name returns the dependency name.
func (v *Verifier) Name() string {
	return "chain"
}

// Close releases the RPC connection.
func (v *Verifier) Close() {
	v.client.Close()
}

func toChainReceipt(r *types.Receipt) *domain.ChainReceipt {
	out := &domain.ChainReceipt{
		Success:         r.Status == types.ReceiptStatusSuccessful,
		TransactionHash: r.TxHash.Hex(),
		GasUsed:         new(big.Int).SetUint64(r.GasUsed).String(),
		GasPrice:        "0",
	}
	if r.BlockNumber != nil {
		out.BlockNumber = r.BlockNumber.Int64()
	}
	if r.EffectiveGasPrice != nil {
		out.GasPrice = r.EffectiveGasPrice.String()
	}
	return out
}
