package rpc_client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/atomic"
)

var (
	ErrInvalidRPCURL     = errors.New("invalid rpc url, expected user:password@host:port")
	ErrRPCFailed         = errors.New("rpc call failed")
	ErrMalformedResponse = errors.New("malformed rpc response")
)

// RPCError is an error returned by the daemon in the error member of the response.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

func (e *RPCError) Unwrap() error {
	return ErrRPCFailed
}

type rpcResponse struct {
	ID     uint64          `json:"id"`
	Result json.RawMessage `json:"result"`
	Err    *RPCError       `json:"error"`
}

type Client struct {
	logger     *slog.Logger
	httpClient *http.Client
	endpoint   string
	user       string
	password   string
	id         atomic.Uint64
}

func WithLogger(logger *slog.Logger) func(*Client) {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithHTTPClient(httpClient *http.Client) func(*Client) {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithTimeout(timeout time.Duration) func(*Client) {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a client for a daemon reachable at rpcURL of the form user:password@host:port.
func New(rpcURL string, opts ...func(*Client)) (*Client, error) {
	rpcURL = strings.TrimPrefix(rpcURL, "http://")

	parts := strings.Split(rpcURL, "@")
	if len(parts) != 2 {
		return nil, ErrInvalidRPCURL
	}

	user, password, found := strings.Cut(parts[0], ":")
	if !found || user == "" {
		return nil, errors.Join(ErrInvalidRPCURL, errors.New("missing credentials"))
	}

	_, _, err := net.SplitHostPort(parts[1])
	if err != nil {
		return nil, errors.Join(ErrInvalidRPCURL, err)
	}

	c := &Client{
		logger:     slog.Default(),
		httpClient: &http.Client{},
		endpoint:   "http://" + parts[1],
		user:       user,
		password:   password,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.logger.With(slog.String("module", "rpc-client"))

	return c, nil
}

// Call sends a JSON-RPC request. The params have to be valid JSON fragments, e.g. strings already quoted.
func (c *Client) Call(ctx context.Context, method string, params ...string) (json.RawMessage, error) {
	return c.call(ctx, method, false, params)
}

// CallMayFail is like Call but logs failures at debug level only.
func (c *Client) CallMayFail(ctx context.Context, method string, params ...string) (json.RawMessage, error) {
	return c.call(ctx, method, true, params)
}

func (c *Client) call(ctx context.Context, method string, mayFail bool, params []string) (json.RawMessage, error) {
	result, err := c.send(ctx, method, params)
	if err != nil {
		level := slog.LevelError
		if mayFail {
			level = slog.LevelDebug
		}
		c.logger.Log(ctx, level, "RPC call failed", slog.String("method", method), slog.String("err", err.Error()))

		return nil, err
	}

	return result, nil
}

func (c *Client) send(ctx context.Context, method string, params []string) (json.RawMessage, error) {
	payload := fmt.Sprintf(`{"jsonrpc":"1.0","method":%q,"params":[%s],"id":%d}`, method, strings.Join(params, ","), c.id.Inc())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBufferString(payload))
	if err != nil {
		return nil, errors.Join(ErrRPCFailed, err)
	}

	req.SetBasicAuth(c.user, c.password)
	req.Header.Add("Content-Type", "application/json;charset=utf-8")
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrRPCFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrRPCFailed, err)
	}

	var response rpcResponse

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// bitcoind answers rpc errors with a non 2xx status and the error in the body
		if json.Unmarshal(data, &response) == nil && response.Err != nil {
			return nil, response.Err
		}

		return nil, fmt.Errorf("%w: HTTP error: %s", ErrRPCFailed, resp.Status)
	}

	err = json.Unmarshal(data, &response)
	if err != nil {
		return nil, errors.Join(ErrMalformedResponse, err)
	}

	if response.Err != nil {
		return nil, response.Err
	}

	if len(response.Result) == 0 {
		return nil, errors.Join(ErrMalformedResponse, errors.New("missing result"))
	}

	return response.Result, nil
}

func callResult[T any](ctx context.Context, c *Client, method string, mayFail bool, params ...string) (T, error) {
	var result T

	raw, err := c.call(ctx, method, mayFail, params)
	if err != nil {
		return result, err
	}

	err = json.Unmarshal(raw, &result)
	if err != nil {
		err = errors.Join(ErrMalformedResponse, fmt.Errorf("failed to unmarshal %s result: %w", method, err))
		c.logger.Error("RPC call failed", slog.String("method", method), slog.String("err", err.Error()))

		return result, err
	}

	return result, nil
}

// Quote returns s as a JSON string fragment usable as a Call parameter.
func Quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
