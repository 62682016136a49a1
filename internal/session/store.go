package session

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ErkanYT/movie-admin-panel/internal/model"
)

// Session 键
const (
	keyToken = "token"
	keyUser  = "userinfo"
)

// Session 当前登录态：上游签发的令牌 + 登录时返回的用户信息。
// 令牌对本面板是不透明的，存在即视为有效；真正的鉴权由上游 API 完成。
type Session struct {
	Token string
	User  model.SessionUser
}

// Store 基于 Cookie Session 的登录态存储。进程启动时创建一个实例，
// 显式注入到需要它的中间件和 Handler，不走全局变量。
type Store struct{}

// NewStore 创建存储实例
func NewStore() *Store {
	return &Store{}
}

// Save 持久化令牌和用户信息，直到显式 Clear 或 Cookie 失效
func (s *Store) Save(c *gin.Context, token string, user model.SessionUser) error {
	sess := sessions.Default(c)
	sess.Set(keyToken, token)
	sess.Set(keyUser, user)
	return sess.Save()
}

// Clear 同时清除令牌和用户信息（登出）
func (s *Store) Clear(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	return sess.Save()
}

// Current 返回当前登录态。令牌为空即视为未登录，不做任何有效性校验。
func (s *Store) Current(c *gin.Context) (Session, bool) {
	sess := sessions.Default(c)

	token, ok := sess.Get(keyToken).(string)
	if !ok || token == "" {
		return Session{}, false
	}

	cur := Session{Token: token}
	if user, ok := sess.Get(keyUser).(model.SessionUser); ok {
		cur.User = user
	}
	return cur, true
}

// TokenClaims 令牌中可展示的元信息
type TokenClaims struct {
	Subject   string
	IssuedAt  *time.Time
	ExpiresAt *time.Time
}

// Claims 尝试把令牌按 JWT 解开，仅用于面板展示签发/过期时间。
// 不做签名校验，也不影响登录态判断；解不开返回 nil。
func (s *Store) Claims(token string) *TokenClaims {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil
	}

	tc := &TokenClaims{}
	if sub, err := parsed.Claims.GetSubject(); err == nil {
		tc.Subject = sub
	}
	if iat, err := parsed.Claims.GetIssuedAt(); err == nil && iat != nil {
		tc.IssuedAt = &iat.Time
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		tc.ExpiresAt = &exp.Time
	}
	return tc
}
