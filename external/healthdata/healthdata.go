package healthdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tsnevan4204/health-app-sub000/schema"
)

const (
	defaultTimeout = 10 * time.Second
	statusOK       = "ok"
)

var (
	errResponseStatus = fmt.Errorf("response status not ok")
	errEmptyToken     = fmt.Errorf("empty token")
)

// Source - interface to a health data provider. A source may return
// synthetic data transparently; callers treat both identically.
type Source interface {
	GetAllHealthData(ctx context.Context, r schema.DateRange) (map[string][]schema.HealthSample, error)
}

type client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

type jsonResponse struct {
	Status string                           `json:"status"`
	Data   map[string][]schema.HealthSample `json:"data"`
}

// GetAllHealthData fetches every metric series within the range from the
// remote provider.
func (c client) GetAllHealthData(ctx context.Context, r schema.DateRange) (map[string][]schema.HealthSample, error) {
	if c.token == "" {
		return nil, errEmptyToken
	}

	query := fmt.Sprintf("%s/v1/samples?start=%s&end=%s&token=%s",
		c.endpoint,
		r.StartDate.UTC().Format(time.RFC3339),
		r.EndDate.UTC().Format(time.RFC3339),
		c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	d, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var jr jsonResponse
	if err := json.Unmarshal(d, &jr); err != nil {
		return nil, err
	}

	if jr.Status != statusOK {
		return nil, errResponseStatus
	}

	return jr.Data, nil
}

// New - remote health data source
func New(endpoint, token string, httpClient *http.Client) Source {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &client{
		endpoint:   endpoint,
		token:      token,
		httpClient: httpClient,
	}
}
