package meli

import (
	"context"
	"net/url"
)

// GetMe 当前授权用户
func (c *Client) GetMe(ctx context.Context, token string) (*User, error) {
	var user User
	if _, err := c.get(ctx, "/users/me", token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser 指定用户（卖家信誉等公开信息）
func (c *Client) GetUser(ctx context.Context, token, userID string) (*User, error) {
	var user User
	if _, err := c.get(ctx, "/users/"+url.PathEscape(userID), token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
