package metaapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"

	"tradevault/internal/reconcile"
)

// Client MetaApi云端桥接。绑定账户时先在provider侧开通并部署，
// 之后从history接口拉取成交流水
type Client interface {
	// 在provider侧创建MT5账户镜像，返回provider的账户id
	ProvisionAccount(ctx context.Context, login, password, server string) (string, error)
	// 部署账户，部署完成后才能拉取数据
	DeployAccount(ctx context.Context, providerAccountId string) error
	// 拉取[start, end)窗口内的全部成交
	HistoryDeals(ctx context.Context, providerAccountId string, start, end time.Time) ([]reconcile.Deal, error)
}

type restClient struct {
	provisioningURL string
	clientURL       string
	token           string
	httpClient      *http.Client
}

// NewRestClient region形如"new-york"，拼进MetaApi的区域域名
func NewRestClient(token, region string) (*restClient, error) {
	if token == "" {
		return nil, fmt.Errorf("metaapi token is empty")
	}
	if region == "" {
		region = "new-york"
	}
	provisioningURL := fmt.Sprintf("https://mt-provisioning-api-v1.%s.agiliumtrade.ai", region)
	clientURL := fmt.Sprintf("https://mt-client-api-v1.%s.agiliumtrade.ai", region)
	for _, raw := range []string{provisioningURL, clientURL} {
		if _, err := url.Parse(raw); err != nil {
			return nil, fmt.Errorf("invalid URL: %s", raw)
		}
	}
	return &restClient{
		provisioningURL: provisioningURL,
		clientURL:       clientURL,
		token:           token,
		httpClient:      &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// 引入重试循环和指数退避
const (
	maxRetries  = 5
	backoffBase = 2 * time.Second
)

func (c *restClient) doRequest(ctx context.Context, method, rawURL string, body interface{}, result interface{}) error {
	var reqBodyJSON []byte
	if body != nil {
		var err error
		reqBodyJSON, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// 请求体在每次循环内重建，失败重试时io.Reader已经被读完不能复用
		var reader io.Reader
		if reqBodyJSON != nil {
			reader = bytes.NewBuffer(reqBodyJSON)
		}
		req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
		if err != nil {
			return fmt.Errorf("failed to create new request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("auth-token", c.token)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// 网络错误，走重试
			lastErr = fmt.Errorf("failed to execute request (network error): %w", err)
		} else {
			byteData, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()
			switch {
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				if readErr != nil {
					return fmt.Errorf("failed to read response body: %w", readErr)
				}
				if result != nil {
					if err := json.Unmarshal(byteData, result); err != nil {
						return fmt.Errorf("failed to unmarshal response: %w", err)
					}
				}
				return nil
			case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
				lastErr = fmt.Errorf("received %s on attempt %d", resp.Status, attempt+1)
			default:
				// 4xx基本是参数或权限问题，重试没有意义
				return fmt.Errorf("received non-OK HTTP status: %s: %s", resp.Status, string(byteData))
			}
		}

		if attempt == maxRetries-1 {
			return fmt.Errorf("metaapi request failed after %d retries. Last error: %w", maxRetries, lastErr)
		}
		// 指数退避：backoffBase * 2^attempt
		waitTime := backoffBase * time.Duration(1<<attempt)
		select {
		case <-time.After(waitTime):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf("unexpected exit from retry loop")
}

type provisionRequest struct {
	Login            string `json:"login"`
	Password         string `json:"password"`
	Name             string `json:"name"`
	Server           string `json:"server"`
	Platform         string `json:"platform"`
	Magic            int    `json:"magic"`
	KeepalivePeriod  int    `json:"keepalivePeriod,omitempty"`
	Type             string `json:"type"`
	TransactionScope string `json:"transactionScope,omitempty"`
}

type provisionResponse struct {
	Id string `json:"id"`
}

func (c *restClient) ProvisionAccount(ctx context.Context, login, password, server string) (string, error) {
	body := provisionRequest{
		Login:    login,
		Password: password,
		Name:     fmt.Sprintf("tradevault-%s", login),
		Server:   server,
		Platform: "mt5",
		Type:     "cloud",
	}
	var res provisionResponse
	err := c.doRequest(ctx, http.MethodPost, c.provisioningURL+"/users/current/accounts", body, &res)
	if err != nil {
		return "", err
	}
	if res.Id == "" {
		return "", fmt.Errorf("provisioning returned empty account id")
	}
	return res.Id, nil
}

func (c *restClient) DeployAccount(ctx context.Context, providerAccountId string) error {
	endpoint := fmt.Sprintf("%s/users/current/accounts/%s/deploy", c.provisioningURL, url.PathEscape(providerAccountId))
	return c.doRequest(ctx, http.MethodPost, endpoint, nil, nil)
}

func (c *restClient) HistoryDeals(ctx context.Context, providerAccountId string, start, end time.Time) ([]reconcile.Deal, error) {
	endpoint := fmt.Sprintf("%s/users/current/accounts/%s/history-deals/time/%s/%s",
		c.clientURL,
		url.PathEscape(providerAccountId),
		url.PathEscape(start.UTC().Format(time.RFC3339)),
		url.PathEscape(end.UTC().Format(time.RFC3339)),
	)
	var deals []reconcile.Deal
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &deals); err != nil {
		return nil, err
	}
	return deals, nil
}
