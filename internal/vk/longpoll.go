package vk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Handler processes one raw group event. It must isolate its own failures;
// the poller never inspects the outcome.
type Handler func(ctx context.Context, eventType string, object json.RawMessage)

// LongPoller drives the Bots Long Poll loop for one community and hands
// every update to the handler in its own goroutine. Updates are independent,
// so no ordering is imposed between them.
type LongPoller struct {
	client  *Client
	groupID int64
	wait    int
	handler Handler
	logger  *zap.Logger

	key    string
	server string
	ts     string
}

func NewLongPoller(client *Client, groupID int64, wait int, handler Handler, logger *zap.Logger) *LongPoller {
	if wait <= 0 {
		wait = 25
	}
	return &LongPoller{
		client:  client,
		groupID: groupID,
		wait:    wait,
		handler: handler,
		logger:  logger.Named("longpoll"),
	}
}

// Run polls until ctx is cancelled. Server-side resync requests (failed 1-3)
// are handled in place; transient errors back off briefly instead of tearing
// the loop down.
func (lp *LongPoller) Run(ctx context.Context) error {
	if err := lp.init(ctx); err != nil {
		return fmt.Errorf("long poll init: %w", err)
	}
	lp.logger.Info("long poll started", zap.Int64("group_id", lp.groupID))

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		res, err := lp.poll(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lp.logger.Error("poll failed", zap.Error(err))
			select {
			case <-time.After(3 * time.Second):
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}

		switch res.Failed {
		case 0:
			lp.ts = res.TS
			for _, u := range res.Updates {
				go lp.handler(ctx, u.Type, u.Object)
			}
		case 1:
			// History is stale; adopt the ts the server suggests.
			lp.ts = res.TS
		default:
			// Key or server expired.
			lp.logger.Warn("long poll session expired, reinitializing", zap.Int("failed", res.Failed))
			if err := lp.init(ctx); err != nil {
				lp.logger.Error("long poll reinit failed", zap.Error(err))
				select {
				case <-time.After(3 * time.Second):
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
	}
}

func (lp *LongPoller) init(ctx context.Context) error {
	params := url.Values{}
	params.Set("group_id", strconv.FormatInt(lp.groupID, 10))

	var srv longPollServer
	if err := lp.client.call(ctx, "groups.getLongPollServer", lp.client.BotToken, params, &srv); err != nil {
		return err
	}

	lp.key = srv.Key
	lp.server = srv.Server
	lp.ts = srv.TS
	return nil
}

func (lp *LongPoller) poll(ctx context.Context) (longPollResult, error) {
	q := url.Values{}
	q.Set("act", "a_check")
	q.Set("key", lp.key)
	q.Set("ts", lp.ts)
	q.Set("wait", strconv.Itoa(lp.wait))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lp.server+"?"+q.Encode(), nil)
	if err != nil {
		return longPollResult{}, err
	}

	resp, err := lp.client.HTTPClient.Do(req)
	if err != nil {
		return longPollResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return longPollResult{}, fmt.Errorf("poll failed with status: %d", resp.StatusCode)
	}

	var res longPollResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return longPollResult{}, fmt.Errorf("decode poll response: %w", err)
	}
	return res, nil
}
