package meli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"meli_dev_v1_202610/pkg/errs"
)

// AuthorizationURL 生成授权链接
// 参数: response_type=code, client_id, redirect_uri, state (可选)
func (c *Client) AuthorizationURL(state, redirectURI string) (string, error) {
	if c.cfg.ClientID == "" {
		return "", errs.Validation("Mercado Livre client_id 未配置")
	}
	return c.oauthConfig(redirectURI).AuthCodeURL(state), nil
}

// ExchangeCode 授权码换取 token
func (c *Client) ExchangeCode(ctx context.Context, code, redirectURI string) (*TokenResponse, error) {
	if code == "" {
		return nil, errs.Validation("授权码不能为空")
	}
	tok, err := c.oauthConfig(redirectURI).Exchange(c.oauthContext(ctx), code)
	if err != nil {
		return nil, tokenError("授权码换取 token 失败", err)
	}
	return tokenFromOAuth(tok, ""), nil
}

// RefreshToken 使用 refresh_token 换取新 token
// 响应中没有新的 refresh_token 时沿用旧值
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	if refreshToken == "" {
		return nil, errs.Validation("refresh_token 为空")
	}
	// AccessToken 为空，TokenSource 必然走刷新流程
	src := c.oauthConfig("").TokenSource(c.oauthContext(ctx), &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return nil, tokenError("刷新 token 失败", err)
	}
	return tokenFromOAuth(tok, refreshToken), nil
}

// ==================== 转换 ====================

func tokenFromOAuth(tok *oauth2.Token, fallbackRefresh string) *TokenResponse {
	resp := &TokenResponse{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		ExpiresIn:    extraInt(tok, "expires_in"),
		Scope:        extraString(tok, "scope"),
		UserID:       extraString(tok, "user_id"),
	}
	if resp.RefreshToken == "" {
		resp.RefreshToken = fallbackRefresh
	}
	if resp.TokenType == "" {
		resp.TokenType = "Bearer"
	}
	if resp.ExpiresIn == 0 && !tok.Expiry.IsZero() {
		resp.ExpiresIn = int(math.Round(time.Until(tok.Expiry).Seconds()))
	}
	return resp
}

// extraString token 响应中的附加字段，数字按整数格式化
func extraString(tok *oauth2.Token, key string) string {
	switch v := tok.Extra(key).(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func extraInt(tok *oauth2.Token, key string) int {
	switch v := tok.Extra(key).(type) {
	case float64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	default:
		return 0
	}
}

// tokenError token 端点错误统一映射为 Upstream
func tokenError(message string, err error) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		status := 0
		if re.Response != nil {
			status = re.Response.StatusCode
		}
		detail := re.ErrorDescription
		if detail == "" {
			detail = re.ErrorCode
		}
		if detail == "" {
			detail = strings.TrimSpace(string(re.Body))
		}
		return errs.Upstream(status, fmt.Sprintf("%s [%d]: %s", message, status, detail))
	}
	return &errs.Error{Kind: errs.KindUpstream, Message: message, Err: err}
}
