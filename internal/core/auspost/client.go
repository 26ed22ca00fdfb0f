package auspost

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/snowball-one/auspost-apis/internal/core/config"
	"github.com/snowball-one/auspost-apis/internal/core/httpclient"
	"github.com/snowball-one/auspost-apis/internal/core/logger"

	"go.uber.org/zap"
)

const (
	// SandboxEndpoint is the developer sandbox base URL.
	SandboxEndpoint = "https://devcentre.auspost.com.au/myapi"
	// ProductionEndpoint is the production base URL.
	ProductionEndpoint = "https://api.auspost.com.au"

	// Fixed anonymous credentials accepted by the sandbox.
	anonymousUsername = "anonymous@auspost.com.au"
	anonymousPassword = "password"
)

// Client issues authenticated GET requests against the Delivery Choice API
// family and rejects responses that carry an embedded business exception.
// It owns no interpretation beyond status and envelope checks; capability
// codecs decode the body.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a Client from configuration. When credentials are
// absent the sandbox endpoint and its anonymous account are used.
func NewClient(cfg config.AusPostConfig) *Client {
	baseURL := SandboxEndpoint
	username := anonymousUsername
	password := anonymousPassword

	if cfg.Username != "" && cfg.Password != "" {
		baseURL = ProductionEndpoint
		username = cfg.Username
		password = cfg.Password
	}

	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if cfg.TimeoutSeconds == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    baseURL,
		username:   username,
		password:   password,
		httpClient: httpclient.NewClient(timeout),
		logger:     logger.Get(),
	}
}

// Get requests a capability endpoint and returns the raw JSON body.
// Non-200 statuses surface as TransportError; a business-exception
// envelope inside a 200 body surfaces as BusinessError.
func (c *Client) Get(ctx context.Context, capability string, params url.Values) ([]byte, error) {
	requestURL := fmt.Sprintf("%s/%s.json", c.baseURL, capability)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.URL.RawQuery = params.Encode()
	req.SetBasicAuth(c.username, c.password)
	// The upstream login gate expects this cookie alongside basic auth.
	req.AddCookie(&http.Cookie{Name: "OBBasicAuth", Value: "fromDialog"})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Upstream returned non-200 status",
			zap.String("capability", capability),
			zap.Int("status_code", resp.StatusCode),
		)
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if err := CheckBusinessException(body); err != nil {
		return nil, err
	}

	return body, nil
}

// businessEnvelope is the shared error shape nested under any response's
// top-level value.
type businessEnvelope struct {
	BusinessException *struct {
		Code        int    `json:"Code"`
		Description string `json:"Description"`
	} `json:"BusinessException"`
}

// CheckBusinessException inspects the top-level values of a decoded
// payload for an embedded business-exception envelope. The upstream
// signals business failures inside HTTP 200 responses, so this must run
// before any capability codec.
func CheckBusinessException(body []byte) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		// Not a JSON object; leave it to the codec to reject.
		return nil
	}

	for _, value := range top {
		var envelope businessEnvelope
		if err := json.Unmarshal(value, &envelope); err != nil {
			continue
		}
		if envelope.BusinessException != nil && envelope.BusinessException.Code != 0 {
			return NewBusinessError(
				envelope.BusinessException.Code,
				envelope.BusinessException.Description,
			)
		}
	}
	return nil
}
