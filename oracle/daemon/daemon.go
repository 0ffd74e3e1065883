package daemon

import (
	"context"
	"errors"
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/tendermint/tendermint/rpc/client/http"

	"github.com/GPTx-global/bandoracle/encoding"
	"github.com/GPTx-global/bandoracle/oracle/config"
	"github.com/GPTx-global/bandoracle/oracle/log"
	"github.com/GPTx-global/bandoracle/oracle/scheduler"
	"github.com/GPTx-global/bandoracle/oracle/submitter"
	"github.com/GPTx-global/bandoracle/oracle/subscribe"
	bandoracletypes "github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

// RequestSubmitter sends a registered request and returns the tx hash.
type RequestSubmitter interface {
	Submit(requestID string) (string, error)
}

// RequestQuerier loads a registered request from the chain.
type RequestQuerier func(requestID string) (bandoracletypes.Request, error)

type Daemon struct {
	client    *http.HTTP
	clientCtx client.Context

	subscribeManager *subscribe.SubscribeManager
	scheduler        *scheduler.Scheduler
	submitter        RequestSubmitter
	queryRequest     RequestQuerier

	ctx context.Context
}

// New creates a daemon connected to the configured node
func New(ctx context.Context) (*Daemon, error) {
	clt, err := http.New(config.ChainEndpoint(), "/websocket")
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	keyRing, err := config.Keyring()
	if err != nil {
		return nil, err
	}

	fromAddress, err := config.Address(keyRing)
	if err != nil {
		return nil, err
	}

	encCfg := encoding.MakeConfig()
	clientCtx := client.Context{}.
		WithCodec(encCfg.Codec).
		WithInterfaceRegistry(encCfg.InterfaceRegistry).
		WithTxConfig(encCfg.TxConfig).
		WithLegacyAmino(encCfg.Amino).
		WithKeyring(keyRing).
		WithChainID(config.ChainID()).
		WithAccountRetriever(authtypes.AccountRetriever{}).
		WithNodeURI(config.ChainEndpoint()).
		WithClient(clt).
		WithFromAddress(fromAddress).
		WithFromName(config.KeyName()).
		WithBroadcastMode("sync")

	sub, err := submitter.New(clientCtx)
	if err != nil {
		return nil, err
	}

	d := newDaemon(
		ctx,
		sub,
		scheduler.New(config.ChannelSize(), config.RetryMaxAttempts(), config.RetryDelay()),
		func(requestID string) (bandoracletypes.Request, error) {
			return queryRequest(clientCtx, requestID)
		},
	)
	d.client = clt
	d.clientCtx = clientCtx

	return d, nil
}

func newDaemon(ctx context.Context, sub RequestSubmitter, sched *scheduler.Scheduler, querier RequestQuerier) *Daemon {
	return &Daemon{
		subscribeManager: subscribe.NewSubscribeManager(ctx),
		scheduler:        sched,
		submitter:        sub,
		queryRequest:     querier,
		ctx:              ctx,
	}
}

// Start starts the scheduler and the rpc client, schedules the configured
// jobs and subscribes to request events.
func (d *Daemon) Start() error {
	d.scheduler.Start()

	if err := d.client.Start(); err != nil {
		return fmt.Errorf("failed to start client: %w", err)
	}

	d.LoadJobs(config.Jobs())

	if err := d.subscribeManager.SetSubscribe(d.client); err != nil {
		return fmt.Errorf("failed to set subscribe: %w", err)
	}

	return nil
}

// Stop shuts down the scheduler and the rpc client
func (d *Daemon) Stop() {
	d.scheduler.Stop()
	if d.client != nil && d.client.IsRunning() {
		if err := d.client.Stop(); err != nil {
			log.Errorf("failed to stop client: %v", err)
		}
	}
}

// LoadJobs schedules every job whose request is registered on chain.
func (d *Daemon) LoadJobs(jobs []config.Job) int {
	scheduled := 0
	for _, job := range jobs {
		request, err := d.queryRequest(job.RequestID)
		if err != nil {
			log.Errorf("skip job %s: %v", job.RequestID, err)
			continue
		}

		if err := d.scheduler.Add(job.RequestID, job.Interval); err != nil {
			log.Errorf("skip job %s: %v", job.RequestID, err)
			continue
		}

		log.Info("job scheduled", "request-id", job.RequestID, "symbols", request.Symbols, "interval", job.Interval)
		scheduled++
	}

	return scheduled
}

// Monitor reacts to request events until the context is done
func (d *Daemon) Monitor() {
	for {
		notices := d.subscribeManager.Subscribe()
		if d.ctx.Err() != nil {
			return
		}

		for _, notice := range notices {
			d.HandleNotice(notice)
		}
	}
}

// HandleNotice resends timed out requests and clears the retry count of
// resolved ones. Events of requests the daemon does not schedule are ignored.
func (d *Daemon) HandleNotice(notice subscribe.Notice) {
	if !d.scheduler.Has(notice.RequestID) {
		return
	}

	switch notice.Kind {
	case subscribe.NoticeResolved:
		d.scheduler.Reset(notice.RequestID)
		log.Info("request resolved", "request-id", notice.RequestID)

	case subscribe.NoticeAcknowledged:
		if !notice.Success {
			log.Error("request rejected by bandchain", "request-id", notice.RequestID)
		}

	case subscribe.NoticeTimeout:
		err := d.scheduler.Retry(notice.RequestID)
		switch {
		case errors.Is(err, scheduler.ErrRetryExceeded):
			log.Error("request keeps timing out, waiting for next interval", "request-id", notice.RequestID)
		case err != nil:
			log.Errorf("failed to retry %s: %v", notice.RequestID, err)
		default:
			log.Info("request timed out, retrying", "request-id", notice.RequestID)
		}
	}
}

// ServeRequests sends due jobs until the context is done
func (d *Daemon) ServeRequests() {
	for {
		select {
		case job := <-d.scheduler.Result():
			d.send(job)
		case <-d.ctx.Done():
			return
		}
	}
}

func (d *Daemon) send(job scheduler.Job) {
	txHash, err := d.submitter.Submit(job.RequestID)
	if err != nil {
		log.Errorf("failed to send request %s: %v", job.RequestID, err)
	} else {
		log.Info("request sent", "request-id", job.RequestID, "tx-hash", txHash, "attempt", job.Attempts)
	}

	if err := d.scheduler.Next(job.RequestID); err != nil {
		log.Errorf("failed to reschedule %s: %v", job.RequestID, err)
	}
}

func queryRequest(clientCtx client.Context, requestID string) (bandoracletypes.Request, error) {
	params := bandoracletypes.NewQueryRequestParams(requestID)
	bz, err := bandoracletypes.ModuleCdc.MarshalJSON(params)
	if err != nil {
		return bandoracletypes.Request{}, err
	}

	route := fmt.Sprintf("custom/%s/%s", bandoracletypes.QuerierRoute, bandoracletypes.QueryRequest)
	res, _, err := clientCtx.QueryWithData(route, bz)
	if err != nil {
		return bandoracletypes.Request{}, fmt.Errorf("failed to query request %s: %w", requestID, err)
	}

	var request bandoracletypes.Request
	if err := bandoracletypes.ModuleCdc.UnmarshalJSON(res, &request); err != nil {
		return bandoracletypes.Request{}, fmt.Errorf("failed to decode request %s: %w", requestID, err)
	}

	return request, nil
}
