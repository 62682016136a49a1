package service

import "fmt"

// TransportError 网络层失败：连接不上、超时等，请求根本没有得到响应
type TransportError struct {
	Op  string // 出错的操作，如 "GET /api/content"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("网络错误 (%s): %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerError 上游返回了非 2xx 响应。Message 可能带有上游给出的提示，
// 为空时由调用方自行兜底文案。校验失败也归入此类，不单独区分。
type ServerError struct {
	Op      string
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("上游错误 (%s, %d): %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("上游错误 (%s): 状态码 %d", e.Op, e.Status)
}

// UserMessage 提取可展示给操作员的文案
func UserMessage(err error, fallback string) string {
	if se, ok := err.(*ServerError); ok && se.Message != "" {
		return se.Message
	}
	return fallback
}
