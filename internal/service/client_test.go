package service

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// 非 2xx 响应：归为上游错误，尽量带出提示文案
func TestClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"标题不能为空"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL).PostJSON("/api/content", map[string]string{}, nil)
	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("期望 ServerError, 得到 %T: %v", err, err)
	}
	if se.Status != http.StatusBadRequest || se.Message != "标题不能为空" {
		t.Fatalf("错误内容不对: %+v", se)
	}
	if got := UserMessage(err, "兜底"); got != "标题不能为空" {
		t.Fatalf("应展示上游提示, 得到 %q", got)
	}
}

// 上游没给提示文案：调用方用兜底文案
func TestClientServerErrorFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).GetJSON("/api/content", &struct{}{})
	if got := UserMessage(err, "操作失败"); got != "操作失败" {
		t.Fatalf("应用兜底文案, 得到 %q", got)
	}
}

// 连不上：归为网络错误
func TestClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // 立即关掉，后续请求必然连接失败

	err := NewClient(srv.URL).GetJSON("/api/content", &struct{}{})
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("期望 TransportError, 得到 %T: %v", err, err)
	}
}

// 携带 Bearer 令牌的请求
func TestClientPostJSONAuth(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	if err := NewClient(srv.URL).PostJSONAuth("/api/settings/update", map[string]string{}, nil, "tok123"); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer tok123" {
		t.Fatalf("Authorization 头不对: %q", gotAuth)
	}
}
