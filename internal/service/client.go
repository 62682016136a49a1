package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client 上游 Nova Stream 后端的 JSON 客户端。
// 每个调用就是一次请求/响应，不做重试、不做去重；
// POST 重复提交会产生重复记录，由上游和操作员自行承担。
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient 创建上游客户端
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetJSON 发送GET请求并解析JSON响应
func (c *Client) GetJSON(path string, target interface{}) error {
	return c.do(http.MethodGet, path, nil, target, "")
}

// PostJSON 发送POST请求
func (c *Client) PostJSON(path string, body, target interface{}) error {
	return c.do(http.MethodPost, path, body, target, "")
}

// PostJSONAuth 发送携带 Bearer 令牌的POST请求
func (c *Client) PostJSONAuth(path string, body, target interface{}, token string) error {
	return c.do(http.MethodPost, path, body, target, token)
}

// PutJSON 发送PUT请求
func (c *Client) PutJSON(path string, body, target interface{}) error {
	return c.do(http.MethodPut, path, body, target, "")
}

// Delete 发送DELETE请求
func (c *Client) Delete(path string) error {
	return c.do(http.MethodDelete, path, nil, nil, "")
}

func (c *Client) do(method, path string, body, target interface{}, token string) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("序列化请求体失败: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("创建请求失败: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServerError{Op: op, Status: resp.StatusCode, Message: decodeErrorMessage(resp.Body)}
	}

	if target == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("解析响应失败 (%s): %w", op, err)
	}
	return nil
}

// decodeErrorMessage 尽量从错误响应体里取出提示文案
func decodeErrorMessage(body io.Reader) string {
	var payload struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	switch {
	case payload.Msg != "":
		return payload.Msg
	case payload.Message != "":
		return payload.Message
	default:
		return payload.Error
	}
}
