package workflow

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Hub 按操作员会话分发工作流实例。状态放在带过期时间的缓存里，
// 半小时没动静的编辑现场自动丢弃。
type Hub struct {
	mu     sync.Mutex
	api    CatalogAPI
	states *cache.Cache
}

// NewHub 创建工作流分发器
func NewHub(api CatalogAPI) *Hub {
	return &Hub{
		api:    api,
		states: cache.New(30*time.Minute, 10*time.Minute),
	}
}

// Editor 取出（或新建）该会话的内容编辑工作流
func (h *Hub) Editor(sessionKey string) *Editor {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := "editor:" + sessionKey
	if val, ok := h.states.Get(key); ok {
		ed := val.(*Editor)
		h.states.Set(key, ed, cache.DefaultExpiration) // 续期
		return ed
	}

	ed := NewEditor(h.api)
	h.states.Set(key, ed, cache.DefaultExpiration)
	return ed
}

// SeasonManager 取出（或新建）该会话下某个剧集的季管理工作流
func (h *Hub) SeasonManager(sessionKey string, seriesID int, seriesTitle string) *SeasonManager {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := fmt.Sprintf("seasons:%s:%d", sessionKey, seriesID)
	if val, ok := h.states.Get(key); ok {
		sm := val.(*SeasonManager)
		h.states.Set(key, sm, cache.DefaultExpiration)
		return sm
	}

	sm := NewSeasonManager(h.api, seriesID, seriesTitle)
	h.states.Set(key, sm, cache.DefaultExpiration)
	return sm
}

// Drop 清掉一个会话的全部工作流状态（登出时调用）
func (h *Hub) Drop(sessionKey string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for key := range h.states.Items() {
		if key == "editor:"+sessionKey || strings.HasPrefix(key, "seasons:"+sessionKey+":") {
			h.states.Delete(key)
		}
	}
}
