package vk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mamediksunduk/sunduk-relay/internal/core/domain"
	"github.com/mamediksunduk/sunduk-relay/internal/core/ports"
	"github.com/mamediksunduk/sunduk-relay/internal/metrics"
)

const (
	DefaultBaseURL = "https://api.vk.com/method"
	apiVersion     = "5.199"
)

// Client is the adapter for the VK API. It looks up users with the bot
// token, posts with the user token (wall.get with extended attributes is
// only available to user tokens) and delivers messages to the configured
// destination chat with the bot token.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	BotToken   string
	UserToken  string
	ChatID     int64

	logger *zap.Logger
}

func NewClient(botToken, userToken string, chatID int64, logger *zap.Logger) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{},
		BotToken:   botToken,
		UserToken:  userToken,
		ChatID:     chatID,
		logger:     logger.Named("vk"),
	}
}

// Ensure Client implements the outbound ports.
var _ ports.Directory = (*Client)(nil)
var _ ports.Messenger = (*Client)(nil)

func (c *Client) Name() string {
	return "vk"
}

// FetchUser resolves one user id to a name. Every failure mode, from a
// transport error to an empty result, collapses to not-found; absence is an
// expected outcome here, not an exceptional one.
func (c *Client) FetchUser(ctx context.Context, userID int64) (domain.UserIdentity, bool) {
	c.logger.Debug("fetching user", zap.Int64("user_id", userID))

	params := url.Values{}
	params.Set("user_ids", strconv.FormatInt(userID, 10))

	var users []apiUser
	if err := c.call(ctx, "users.get", c.BotToken, params, &users); err != nil {
		c.logger.Error("user lookup failed", zap.Int64("user_id", userID), zap.Error(err))
		metrics.LookupFailures.WithLabelValues("users.get").Inc()
		return domain.UserIdentity{}, false
	}
	if len(users) == 0 {
		metrics.LookupFailures.WithLabelValues("users.get").Inc()
		return domain.UserIdentity{}, false
	}

	u := users[0]
	return domain.UserIdentity{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}, true
}

// FetchPost fetches a single post with its extended authorship attributes.
// Same failure-collapsing contract as FetchUser.
func (c *Client) FetchPost(ctx context.Context, ownerID, postID int64) (domain.PostRecord, bool) {
	c.logger.Debug("fetching post", zap.Int64("owner_id", ownerID), zap.Int64("post_id", postID))

	params := url.Values{}
	params.Set("owner_id", strconv.FormatInt(ownerID, 10))
	params.Set("filter", "all")
	params.Set("count", "1")
	params.Set("item_ids", strconv.FormatInt(postID, 10))
	params.Set("extended", "1")

	var res wallGetResponse
	if err := c.call(ctx, "wall.get", c.UserToken, params, &res); err != nil {
		c.logger.Error("post lookup failed",
			zap.Int64("owner_id", ownerID),
			zap.Int64("post_id", postID),
			zap.Error(err),
		)
		metrics.LookupFailures.WithLabelValues("wall.get").Inc()
		return domain.PostRecord{}, false
	}
	if len(res.Items) == 0 {
		c.logger.Warn("post not found", zap.Int64("owner_id", ownerID), zap.Int64("post_id", postID))
		metrics.LookupFailures.WithLabelValues("wall.get").Inc()
		return domain.PostRecord{}, false
	}

	p := res.Items[0]
	return domain.PostRecord{
		CreatedBy: p.CreatedBy,
		SignerID:  p.SignerID,
		FromID:    p.FromID,
		OwnerID:   p.OwnerID,
	}, true
}

// SendMessage delivers a message to the configured destination chat.
// random_id stays 0: the relay keeps at-most-once semantics itself and does
// not lean on VK-side dedup.
func (c *Client) SendMessage(ctx context.Context, text string, payload map[string]any) error {
	params := url.Values{}
	params.Set("peer_id", strconv.FormatInt(c.ChatID, 10))
	params.Set("random_id", "0")
	params.Set("message", text)

	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode payload: %w", err)
		}
		params.Set("payload", string(b))
	}

	var msgID int64
	if err := c.call(ctx, "messages.send", c.BotToken, params, &msgID); err != nil {
		return err
	}
	return nil
}

// call invokes one VK API method as a form POST and decodes the response
// envelope into out.
func (c *Client) call(ctx context.Context, method, token string, params url.Values, out any) error {
	params.Set("access_token", token)
	params.Set("v", apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/"+method,
		strings.NewReader(params.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s failed with status: %d", method, resp.StatusCode)
	}

	var env apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s: decode response: %w", method, err)
	}
	if env.Error != nil {
		return fmt.Errorf("%s: api error %d: %s", method, env.Error.Code, env.Error.Message)
	}
	if out != nil {
		if err := json.Unmarshal(env.Response, out); err != nil {
			return fmt.Errorf("%s: decode result: %w", method, err)
		}
	}
	return nil
}
