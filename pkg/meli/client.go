package meli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"

	"meli_dev_v1_202610/pkg/errs"
)

const (
	DefaultAPIBaseURL = "https://api.mercadolibre.com"
	DefaultAuthURL    = "https://auth.mercadolivre.com.br/authorization"
	DefaultTokenURL   = "https://api.mercadolibre.com/oauth/token"
	DefaultTimeout    = 20 * time.Second
)

// Config Mercado Livre 应用配置
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string // 默认回调地址，调用方可覆盖
	APIBaseURL   string
	AuthURL      string
	TokenURL     string
	Timeout      time.Duration
	Debug        bool
}

// Client Mercado Livre API 客户端
// 每次调用只发一次请求，不重试；token 由调用方传入
type Client struct {
	cfg        Config
	rest       *resty.Client
	httpClient *http.Client
}

// NewClient 创建客户端
func NewClient(cfg Config) *Client {
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	if cfg.AuthURL == "" {
		cfg.AuthURL = DefaultAuthURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	rest := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIBaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetDebug(cfg.Debug).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "Meli-Hub-Go/1.0")

	return &Client{
		cfg:        cfg,
		rest:       rest,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Config 返回生效的配置
func (c *Client) Config() Config {
	return c.cfg
}

// ==================== 请求封装 ====================

type requestOption func(r *resty.Request)

func withQuery(params map[string]string) requestOption {
	return func(r *resty.Request) {
		r.SetQueryParams(params)
	}
}

func withHeader(key, value string) requestOption {
	return func(r *resty.Request) {
		r.SetHeader(key, value)
	}
}

func withBody(body interface{}) requestOption {
	return func(r *resty.Request) {
		r.SetHeader("Content-Type", "application/json").SetBody(body)
	}
}

// execute 发送请求，非 2xx 映射为 errs.Upstream；out 非空时解析响应
// 返回原始响应体，供需要保存原始 JSON 的调用方使用
func (c *Client) execute(ctx context.Context, method, path, token string, out interface{}, opts ...requestOption) ([]byte, error) {
	req := c.rest.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	for _, opt := range opts {
		opt(req)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, &errs.Error{
			Kind:    errs.KindUpstream,
			Message: "请求 Mercado Livre 失败",
			Err:     err,
		}
	}
	if resp.IsError() {
		return nil, upstreamError(resp.StatusCode(), resp.Body())
	}

	body := resp.Body()
	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return nil, &errs.Error{
				Kind:           errs.KindUpstream,
				UpstreamStatus: http.StatusBadGateway,
				Message:        "解析 Mercado Livre 响应失败",
				Err:            err,
			}
		}
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, path, token string, out interface{}, opts ...requestOption) ([]byte, error) {
	return c.execute(ctx, http.MethodGet, path, token, out, opts...)
}

// upstreamError 提取 Mercado Livre 错误信息
func upstreamError(status int, body []byte) error {
	msg := ""
	var e ErrorResp
	if err := json.Unmarshal(body, &e); err == nil {
		msg = e.Message
		if msg == "" {
			msg = e.Error
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return errs.Upstream(status, fmt.Sprintf("Mercado Livre 返回错误 [%d]: %s", status, msg))
}

// ==================== 错误判断 ====================

func upstreamStatus(err error) int {
	var e *errs.Error
	if errors.As(err, &e) && e.Kind == errs.KindUpstream {
		return e.UpstreamStatus
	}
	return 0
}

// IsNotFound 上游返回 404
func IsNotFound(err error) bool {
	return upstreamStatus(err) == http.StatusNotFound
}

// IsForbidden 上游返回 403
func IsForbidden(err error) bool {
	return upstreamStatus(err) == http.StatusForbidden
}

// IsUnauthorized 上游返回 401
func IsUnauthorized(err error) bool {
	return upstreamStatus(err) == http.StatusUnauthorized
}

// ==================== OAuth 配置 ====================

func (c *Client) oauthConfig(redirectURI string) *oauth2.Config {
	if redirectURI == "" {
		redirectURI = c.cfg.RedirectURI
	}
	return &oauth2.Config{
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		RedirectURL:  redirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:  c.cfg.AuthURL,
			TokenURL: c.cfg.TokenURL,
			// Mercado Livre 要求 client_id / client_secret 放在表单中
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// oauthContext 注入带超时的 http.Client
func (c *Client) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}
