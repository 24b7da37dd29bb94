// Package rest talks HTTP to the platform API. It owns routing, auth and
// audit headers, and the error envelope; entity models hand it sparse JSON
// patches and get parsed responses back.
package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fogfish/opts"
	"github.com/strigidae/perch/pkg/slogx"
	"github.com/strigidae/perch/pkg/snowflake"
	"github.com/strigidae/perch/pkg/uuidx"
	"github.com/tidwall/gjson"
)

const (
	defaultBaseURL = "https://discord.com/api/v9"
	userAgent      = "perch (https://github.com/strigidae/perch)"
)

// Client issues authenticated requests against the platform API.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

var (
	// Token sets the bot token used for the Authorization header.
	Token = opts.ForName[Client, string]("token")
	// BaseURL overrides the API root, mainly for tests.
	BaseURL = opts.ForName[Client, string]("baseURL")
	// HTTPClient overrides the underlying http.Client.
	HTTPClient = opts.ForName[Client, *http.Client]("http")
)

// New builds a REST client. Without options it targets the public API with
// a 30 second request timeout; a token is required for any authenticated
// route.
func New(options ...opts.Option[Client]) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	if err := opts.Apply(c, options); err != nil {
		panic(err)
	}
	return c
}

// APIError is the platform's error envelope for non-2xx responses.
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d code %d: %s", e.Status, e.Code, e.Message)
}

// do runs one request. reason, when set, travels in the X-Audit-Log-Reason
// header and shows up in the guild's audit log.
func (c *Client) do(ctx context.Context, method, path string, body []byte, reason string) (gjson.Result, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return gjson.Result{}, err
	}

	req.Header.Set("Authorization", "Bot "+c.token)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-Id", uuidx.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if reason != "" {
		req.Header.Set("X-Audit-Log-Reason", url.PathEscape(reason))
	}

	slog.Debug("api request",
		slog.String("method", method),
		slog.String("path", path),
		slogx.LoggerName("rest"),
	)

	res, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return gjson.Result{}, err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{Status: res.StatusCode}
		if gjson.ValidBytes(data) {
			envelope := gjson.ParseBytes(data)
			apiErr.Code = int(envelope.Get("code").Int())
			apiErr.Message = envelope.Get("message").String()
		}
		return gjson.Result{}, apiErr
	}

	if len(data) == 0 || res.StatusCode == http.StatusNoContent {
		return gjson.Result{}, nil
	}
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("invalid json response from %s %s", method, path)
	}
	return gjson.ParseBytes(data), nil
}

func scheduledEventPath(guildID, eventID snowflake.ID) string {
	return fmt.Sprintf("/guilds/%s/scheduled-events/%s", guildID, eventID)
}

// ScheduledEvent fetches one scheduled event, optionally with its
// subscriber count.
func (c *Client) ScheduledEvent(ctx context.Context, guildID, eventID snowflake.ID, withUserCount bool) (gjson.Result, error) {
	path := scheduledEventPath(guildID, eventID)
	if withUserCount {
		path += "?with_user_count=true"
	}
	return c.do(ctx, http.MethodGet, path, nil, "")
}

// EditScheduledEvent PATCHes a sparse field patch onto an event and
// returns the updated object.
func (c *Client) EditScheduledEvent(ctx context.Context, guildID, eventID snowflake.ID, patch []byte, reason string) (gjson.Result, error) {
	return c.do(ctx, http.MethodPatch, scheduledEventPath(guildID, eventID), patch, reason)
}

// DeleteScheduledEvent removes an event.
func (c *Client) DeleteScheduledEvent(ctx context.Context, guildID, eventID snowflake.ID, reason string) error {
	_, err := c.do(ctx, http.MethodDelete, scheduledEventPath(guildID, eventID), nil, reason)
	return err
}

// ScheduledEventUsers pages through the users subscribed to an event.
// before/after are exclusive snowflake cursors; zero means unset.
func (c *Client) ScheduledEventUsers(ctx context.Context, guildID, eventID snowflake.ID, limit int, before, after snowflake.ID, withMember bool) (gjson.Result, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if !before.IsZero() {
		query.Set("before", before.String())
	}
	if !after.IsZero() {
		query.Set("after", after.String())
	}
	if withMember {
		query.Set("with_member", "true")
	}

	path := scheduledEventPath(guildID, eventID) + "/users"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return c.do(ctx, http.MethodGet, path, nil, "")
}

// Channel fetches one channel object.
func (c *Client) Channel(ctx context.Context, channelID snowflake.ID) (gjson.Result, error) {
	return c.do(ctx, http.MethodGet, "/channels/"+channelID.String(), nil, "")
}
