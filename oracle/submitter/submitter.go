package submitter

import (
	"fmt"
	"sync"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"

	"github.com/GPTx-global/bandoracle/oracle/config"
	"github.com/GPTx-global/bandoracle/oracle/log"
	bandoracletypes "github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

// Submitter signs and broadcasts MsgSendRequest transactions. It tracks the
// account sequence locally and resyncs it from the chain after a failed tx.
type Submitter struct {
	clientContext  client.Context
	accountNumber  uint64
	sequenceNumber uint64
	mu             sync.Mutex
}

// New creates a Submitter with the account state queried from the chain.
func New(clientContext client.Context) (*Submitter, error) {
	accountNumber, sequenceNumber, err := clientContext.AccountRetriever.GetAccountNumberSequence(clientContext, clientContext.GetFromAddress())
	if err != nil {
		return nil, fmt.Errorf("failed to get account number sequence: %w", err)
	}

	return NewWithAccount(clientContext, accountNumber, sequenceNumber), nil
}

func NewWithAccount(clientContext client.Context, accountNumber, sequenceNumber uint64) *Submitter {
	return &Submitter{
		clientContext:  clientContext,
		accountNumber:  accountNumber,
		sequenceNumber: sequenceNumber,
	}
}

func (s *Submitter) Sequence() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sequenceNumber
}

// Submit sends a registered request and returns the tx hash.
func (s *Submitter) Submit(requestID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	factory, txBuilder, err := s.BuildTransaction(requestID)
	if err != nil {
		return "", err
	}

	txBytes, err := s.SignTransaction(factory, txBuilder)
	if err != nil {
		return "", err
	}

	res, err := s.BroadcastTransaction(txBytes)
	if err != nil {
		return "", err
	}

	return res.TxHash, nil
}

// BuildTransaction creates the unsigned tx carrying a MsgSendRequest.
func (s *Submitter) BuildTransaction(requestID string) (tx.Factory, client.TxBuilder, error) {
	msg := bandoracletypes.NewMsgSendRequest(s.clientContext.GetFromAddress().String(), requestID)
	if err := msg.ValidateBasic(); err != nil {
		return tx.Factory{}, nil, err
	}

	gasPrice, err := sdk.ParseDecCoin(config.GasPrices())
	if err != nil {
		return tx.Factory{}, nil, fmt.Errorf("failed to parse gas price: %w", err)
	}

	factory := tx.Factory{}.
		WithTxConfig(s.clientContext.TxConfig).
		WithAccountRetriever(s.clientContext.AccountRetriever).
		WithKeybase(s.clientContext.Keyring).
		WithChainID(config.ChainID()).
		WithGas(config.GasLimit()).
		WithGasPrices(gasPrice.String()).
		WithAccountNumber(s.accountNumber).
		WithSequence(s.sequenceNumber).
		WithSignMode(signing.SignMode_SIGN_MODE_DIRECT)

	txBuilder, err := factory.BuildUnsignedTx(msg)
	if err != nil {
		return tx.Factory{}, nil, fmt.Errorf("failed to build unsigned transaction: %w", err)
	}

	return factory, txBuilder, nil
}

// SignTransaction signs the tx with the configured key and encodes it.
func (s *Submitter) SignTransaction(factory tx.Factory, txBuilder client.TxBuilder) ([]byte, error) {
	if err := tx.Sign(factory, s.clientContext.GetFromName(), txBuilder, true); err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	txBytes, err := s.clientContext.TxConfig.TxEncoder()(txBuilder.GetTx())
	if err != nil {
		return nil, fmt.Errorf("failed to encode transaction: %w", err)
	}

	return txBytes, nil
}

// BroadcastTransaction broadcasts a signed tx. The local sequence moves on
// after a successful CheckTx and is reloaded from the chain otherwise.
func (s *Submitter) BroadcastTransaction(txBytes []byte) (*sdk.TxResponse, error) {
	res, err := s.clientContext.BroadcastTx(txBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to broadcast transaction: %w", err)
	}

	if res.Code == 0 {
		log.Debugf("transaction broadcasted successfully: %s", res.TxHash)
		s.sequenceNumber++
		return res, nil
	}

	failedSequence := s.sequenceNumber
	_, sequence, err := s.clientContext.AccountRetriever.GetAccountNumberSequence(s.clientContext, s.clientContext.GetFromAddress())
	if err != nil {
		return res, fmt.Errorf("failed to get account number sequence: %w", err)
	}
	s.sequenceNumber = sequence

	if res.Codespace == sdkerrors.RootCodespace && res.Code == sdkerrors.ErrWrongSequence.ABCICode() {
		log.Debugf("sequence number synchronized: %d -> %d", failedSequence, s.sequenceNumber)
	}

	return res, fmt.Errorf("code: %d, codespace: %s, raw log: %s, tx hash: %s", res.Code, res.Codespace, res.RawLog, res.TxHash)
}
