package subscribe

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	rpcclient "github.com/tendermint/tendermint/rpc/client"
	coretypes "github.com/tendermint/tendermint/rpc/core/types"

	"github.com/GPTx-global/bandoracle/oracle/log"
	bandoracletypes "github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

const subscriber = "bandoracled"

// NoticeKind tells which lifecycle event of a sent request was observed.
type NoticeKind int

const (
	NoticeResolved NoticeKind = iota + 1
	NoticeAcknowledged
	NoticeTimeout
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeResolved:
		return "resolved"
	case NoticeAcknowledged:
		return "acknowledged"
	case NoticeTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Notice is a single request event pulled out of a tx result.
type Notice struct {
	Kind      NoticeKind
	RequestID string
	// Success is only meaningful for acknowledgements.
	Success bool
}

var eventTypes = map[NoticeKind]string{
	NoticeResolved:     bandoracletypes.EventTypeRequestResolved,
	NoticeAcknowledged: bandoracletypes.EventTypeRequestAcknowledged,
	NoticeTimeout:      bandoracletypes.EventTypeRequestTimeout,
}

type SubscribeManager struct {
	subscriptions     map[NoticeKind]<-chan coretypes.ResultEvent
	subscriptionsLock sync.RWMutex
	channelSize       int
	ctx               context.Context
}

// NewSubscribeManager creates a new subscription manager for request events
func NewSubscribeManager(ctx context.Context) *SubscribeManager {
	return &SubscribeManager{
		subscriptions: make(map[NoticeKind]<-chan coretypes.ResultEvent),
		channelSize:   2 << 10,
		ctx:           ctx,
	}
}

// Query returns the event query matching txs that emitted the given notice.
func Query(kind NoticeKind) string {
	return fmt.Sprintf("tm.event='Tx' AND %s.%s EXISTS", eventTypes[kind], bandoracletypes.AttributeKeyRequestID)
}

// SetSubscribe subscribes to the resolve, acknowledgement and timeout events
func (sm *SubscribeManager) SetSubscribe(client rpcclient.EventsClient) error {
	if client == nil {
		return fmt.Errorf("events client is nil")
	}

	sm.subscriptionsLock.Lock()
	defer sm.subscriptionsLock.Unlock()

	for _, kind := range []NoticeKind{NoticeResolved, NoticeAcknowledged, NoticeTimeout} {
		ch, err := client.Subscribe(sm.ctx, subscriber, Query(kind), sm.channelSize)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", eventTypes[kind], err)
		}
		sm.subscriptions[kind] = ch
	}

	log.Debugf("subscribed to %d request events", len(sm.subscriptions))

	return nil
}

// Subscribe blocks until one of the subscriptions delivers an event and
// returns its notices. It returns nil once the context is done.
func (sm *SubscribeManager) Subscribe() []Notice {
	sm.subscriptionsLock.RLock()
	resolved := sm.subscriptions[NoticeResolved]
	acknowledged := sm.subscriptions[NoticeAcknowledged]
	timeout := sm.subscriptions[NoticeTimeout]
	sm.subscriptionsLock.RUnlock()

	select {
	case event := <-resolved:
		return ParseNotices(NoticeResolved, event)
	case event := <-acknowledged:
		return ParseNotices(NoticeAcknowledged, event)
	case event := <-timeout:
		return ParseNotices(NoticeTimeout, event)
	case <-sm.ctx.Done():
		return nil
	}
}

// ParseNotices extracts one notice per request id found in the event.
func ParseNotices(kind NoticeKind, event coretypes.ResultEvent) []Notice {
	eventType, ok := eventTypes[kind]
	if !ok {
		return nil
	}

	requestIDs := event.Events[eventType+"."+bandoracletypes.AttributeKeyRequestID]
	successes := event.Events[eventType+"."+bandoracletypes.AttributeKeyAckSuccess]

	notices := make([]Notice, 0, len(requestIDs))
	for i, requestID := range requestIDs {
		notice := Notice{Kind: kind, RequestID: requestID}
		if kind == NoticeAcknowledged && i < len(successes) {
			notice.Success, _ = strconv.ParseBool(successes[i])
		}
		notices = append(notices, notice)
	}

	return notices
}
