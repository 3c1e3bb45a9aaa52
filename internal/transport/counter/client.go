package counter

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
)

const DefaultTimeout = 3 * time.Second

// Client reports finished games to the win counter service.
type Client struct {
	logger   *slog.Logger
	endpoint string
	timeout  time.Duration

	http *http.Client

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// New returns a reporter for endpoint. An empty endpoint disables reporting.
func New(logger *slog.Logger, endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		logger:   logger.With("component", "counter_client"),
		endpoint: strings.TrimRight(endpoint, "/"),
		timeout:  timeout,

		http: &http.Client{Timeout: timeout},
	}
}

// ReportWinner sends POST {endpoint}/{winner} in the background.
// Failures are logged and never retried.
func (that *Client) ReportWinner(ctx context.Context, winner entity.Mark) {
	log := that.logger.With("method", "ReportWinner", "winner", winner)

	if that.endpoint == "" {
		log.Debug("reporting disabled, no endpoint configured")
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		log.Warn("reporter closed, winner not reported")
		return
	}

	// the report outlives the caller's request
	reportCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), that.timeout)

	that.wg.Add(1)
	go func() {
		defer that.wg.Done()
		defer cancel()

		if err := that.post(reportCtx, winner); err != nil {
			log.Error("failed to report winner", "error", err)
			return
		}

		log.Debug("winner reported")
	}()
}

// Close waits for in-flight reports. Each one is bounded by the client timeout.
// Reports requested after Close are dropped.
func (that *Client) Close() {
	that.mu.Lock()
	that.closed = true
	that.mu.Unlock()

	that.wg.Wait()
}

func (that *Client) post(ctx context.Context, winner entity.Mark) error {
	url := that.endpoint + "/" + string(winner)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := that.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	return nil
}
