package service

import (
	"github.com/ErkanYT/movie-admin-panel/internal/model"
)

// AuthService 上游登录接口
type AuthService struct {
	client *Client
}

// NewAuthService 创建登录服务
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// LoginResult 登录成功后上游返回的令牌和用户信息
type LoginResult struct {
	Token string            `json:"token"`
	User  model.SessionUser `json:"user"`
}

// Login 用账号密码向上游换取令牌。密码不在本面板留存。
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	payload := map[string]string{
		"username": username,
		"password": password,
	}

	var result LoginResult
	if err := s.client.PostJSON("/api/auth/login", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
