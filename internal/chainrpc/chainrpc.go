package chainrpc

import (
	"context"
	"math/big"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"

	"github.com/vaultpay/payout-backend/contracts/settlementvault"
	"github.com/vaultpay/payout-backend/internal/utils/config"
	"github.com/vaultpay/payout-backend/internal/utils/logger"
)

const rpcTimeout = 15 * time.Second

type ChainRPC struct {
	logger *logger.Logger
	client *ethclient.Client
	vault  *settlementvault.SettlementVault
	auth   *bind.TransactOpts
}

func New(appConfig *config.AppConfig, logger *logger.Logger) (IChainRPC, error) {
	client, err := ethclient.Dial(appConfig.Blockchain.RPCEndpoint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial rpc endpoint")
	}

	vaultAddress := common.HexToAddress(appConfig.Blockchain.VaultContractAddr)
	vault, err := settlementvault.NewSettlementVault(vaultAddress, client)
	if err != nil {
		return nil, errors.Wrap(err, "failed to bind settlement vault")
	}

	operatorKey, err := crypto.HexToECDSA(appConfig.Blockchain.OperatorPrivateKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse operator key")
	}

	auth, err := bind.NewKeyedTransactorWithChainID(operatorKey, big.NewInt(appConfig.Blockchain.ChainID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build transactor")
	}

	return &ChainRPC{
		logger: logger,
		client: client,
		vault:  vault,
		auth:   auth,
	}, nil
}

// SubmitPayout calls the vault's payout method. The requestId is hashed to
// the contract's bytes32 replay key, so resubmitting the same requestId
// reverts on-chain instead of paying twice.
func (c *ChainRPC) SubmitPayout(input SubmitPayoutInput) (string, error) {
	amount, ok := new(big.Int).SetString(input.Amount.Value, 10)
	if !ok {
		return "", errors.Errorf("invalid amount %q", input.Amount.Value)
	}

	requestKey := crypto.Keccak256Hash([]byte(input.RequestID))

	tx, err := c.vault.Payout(c.auth, common.HexToAddress(input.ToAddress), amount, requestKey)
	if err != nil {
		c.logger.Error("[SubmitPayout][Payout]", map[string]string{
			"requestId": input.RequestID,
			"error":     err.Error(),
		})
		return "", err
	}

	return tx.Hash().Hex(), nil
}

func (c *ChainRPC) GetReceipt(txHash string) (*TxReceipt, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	receipt, err := c.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, nil
		}
		c.logger.Error("[GetReceipt][TransactionReceipt]", map[string]string{
			"txHash": txHash,
			"error":  err.Error(),
		})
		return nil, err
	}

	head, err := c.client.BlockNumber(ctx)
	if err != nil {
		return nil, err
	}

	confirmations := int64(head) - receipt.BlockNumber.Int64() + 1

	return &TxReceipt{
		TxHash:        txHash,
		Confirmations: confirmations,
		Reverted:      receipt.Status == types.ReceiptStatusFailed,
	}, nil
}
