// internal/infra/practicum/client.go
package practicum

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// DefaultEndpoint is the production homework status API.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// ConnectionError covers both transport failures and unexpected HTTP statuses
// from the homework API.
type ConnectionError struct {
	Endpoint string
	Status   int   // 0 when the request never completed
	Err      error // underlying transport error, nil on a status mismatch
}

func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("endpoint %s is unreachable: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("endpoint %s answered with status %d instead of 200", e.Endpoint, e.Status)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Client calls the homework status API on behalf of a single student token.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

// NewClient builds an API client. A nil httpClient falls back to a client
// with no request timeout; callers that want one pass their own. An empty
// endpoint selects DefaultEndpoint.
func NewClient(httpClient *http.Client, endpoint, token string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{httpClient: httpClient, endpoint: endpoint, token: token}
}

// HomeworkStatuses requests review updates that happened after fromDate and
// returns the decoded body untyped. Shape validation is deliberately left to
// the caller.
func (c *Client) HomeworkStatuses(fromDate int64) (any, error) {
	req, err := http.NewRequest(http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, &ConnectionError{Endpoint: c.endpoint, Err: err}
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	q := req.URL.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{Endpoint: c.endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ConnectionError{Endpoint: c.endpoint, Status: resp.StatusCode}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber() // keeps current_date integrality checks exact
	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response from %s: %w", c.endpoint, err)
	}
	return body, nil
}
