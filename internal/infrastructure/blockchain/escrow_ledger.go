package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"fundvault.backend/pkg/metrics"
)

// EscrowContractABI covers the two entry points the backend drives. The
// contract holds all escrowed value; deposits are pulled from pre-approved
// backer balances and payouts are operator-gated.
var EscrowContractABI = mustParseABI(`[
	{"inputs":[{"internalType":"address","name":"from","type":"address"},{"internalType":"uint256","name":"amount","type":"uint256"}],"name":"deposit","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"internalType":"address","name":"to","type":"address"},{"internalType":"uint256","name":"amount","type":"uint256"}],"name":"payout","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`)

func toWeiArg(amount uint64) *big.Int {
	return new(big.Int).SetUint64(amount)
}

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}
	return parsed
}

var (
	dialEVMClient = ethclient.Dial

	performContractTransact = func(client *ethclient.Client, contractAddress string, parsedABI abi.ABI, auth *bind.TransactOpts, method string, args ...interface{}) (string, error) {
		contract := bind.NewBoundContract(common.HexToAddress(contractAddress), parsedABI, client, client, client)
		tx, err := contract.Transact(auth, method, args...)
		if err != nil {
			return "", err
		}
		return tx.Hash().Hex(), nil
	}
)

// EvmEscrowLedger drives the escrow contract on an EVM chain and serves block
// height as the monotonic clock. It implements both EscrowLedger and
// HeightClock.
type EvmEscrowLedger struct {
	client          *ethclient.Client
	contractAddress string
	operatorKeyHex  string
}

// NewEvmEscrowLedger dials the RPC endpoint and binds the escrow contract
func NewEvmEscrowLedger(rpcURL, contractAddress, operatorKeyHex string) (*EvmEscrowLedger, error) {
	client, err := dialEVMClient(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rpc: %w", err)
	}
	return &EvmEscrowLedger{
		client:          client,
		contractAddress: contractAddress,
		operatorKeyHex:  strings.TrimSpace(operatorKeyHex),
	}, nil
}

// CurrentHeight returns the latest block number
func (l *EvmEscrowLedger) CurrentHeight(ctx context.Context) (uint64, error) {
	return l.client.BlockNumber(ctx)
}

// Deposit pulls a backer's contribution into the escrow contract
func (l *EvmEscrowLedger) Deposit(ctx context.Context, from string, amount uint64) (string, error) {
	return l.transact(ctx, "deposit", common.HexToAddress(from), toWeiArg(amount))
}

// Payout pays value out of the escrow contract
func (l *EvmEscrowLedger) Payout(ctx context.Context, to string, amount uint64) (string, error) {
	return l.transact(ctx, "payout", common.HexToAddress(to), toWeiArg(amount))
}

func (l *EvmEscrowLedger) transact(ctx context.Context, method string, args ...interface{}) (txHash string, err error) {
	start := time.Now()
	defer func() {
		status := "success"
		if err != nil {
			status = "failed"
		}
		metrics.RecordLedgerTransfer(method, status, time.Since(start))
	}()

	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(l.operatorKeyHex, "0x"))
	if err != nil {
		return "", fmt.Errorf("invalid operator key: %w", err)
	}

	chainID, err := l.client.ChainID(ctx)
	if err != nil {
		return "", err
	}
	auth, err := bind.NewKeyedTransactorWithChainID(privateKey, chainID)
	if err != nil {
		return "", err
	}
	auth.Context = ctx

	return performContractTransact(l.client, l.contractAddress, EscrowContractABI, auth, method, args...)
}
