package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/arcanaland/bestiary/internal/animal"
)

const (
	AnimalsPath    = "/v1/animals"
	APIKeyHeader   = "X-Api-Key"
	DefaultTimeout = 10 * time.Second
)

// Options is fixed at construction time
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client looks up animals by name
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient builds a client. A nil logger disables logging.
func NewClient(opts Options, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseURL)
	client.SetTimeout(opts.Timeout)
	client.SetHeader(APIKeyHeader, opts.APIKey)
	client.SetHeader("Accept", "application/json")

	return &Client{http: client, logger: logger}
}

// FetchAnimals returns every animal matching name. A non-200 response is
// logged and yields an empty result; only transport and decoding failures
// are returned as errors.
func (c *Client) FetchAnimals(ctx context.Context, name string) ([]animal.Record, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("name", name).
		Get(AnimalsPath)
	if err != nil {
		return nil, fmt.Errorf("error requesting animals: %v", err)
	}

	if res.StatusCode() != http.StatusOK {
		c.logger.Warn("animals request failed",
			zap.String("name", name),
			zap.Int("status", res.StatusCode()),
			zap.String("body", res.String()))
		return []animal.Record{}, nil
	}

	records, err := animal.Decode(res.Body())
	if err != nil {
		return nil, err
	}

	valid := make([]animal.Record, 0, len(records))
	for i, r := range records {
		if r.Name == "" {
			c.logger.Warn("dropping animal record without a name", zap.Int("index", i))
			continue
		}
		valid = append(valid, r)
	}

	c.logger.Debug("fetched animals",
		zap.String("name", name),
		zap.Int("count", len(valid)))

	return valid, nil
}
