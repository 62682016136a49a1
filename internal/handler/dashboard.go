package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ErkanYT/movie-admin-panel/internal/middleware"
	"github.com/ErkanYT/movie-admin-panel/internal/model"
)

// Dashboard 面板首页：目录统计 + 待处理求片 + 当前令牌信息
func (h *Handler) Dashboard(c *gin.Context) {
	var movieCount, seriesCount int

	items, err := h.Catalog.ListContent()
	if err != nil {
		// 上游挂了也要把页面渲染出来，统计显示为 0
		log.Printf("[Dashboard] 拉取内容列表失败: %v", err)
	}
	for _, item := range items {
		if item.Type() == model.TypeSeries {
			seriesCount++
		} else {
			movieCount++
		}
	}

	pending := 0
	if requests, err := h.Admin.ListRequests(); err == nil {
		for _, req := range requests {
			if req.Status == model.RequestPending {
				pending++
			}
		}
	}

	data := gin.H{
		"Title":           "面板 - " + h.Config.SiteName,
		"ContentCount":    len(items),
		"MovieCount":      movieCount,
		"SeriesCount":     seriesCount,
		"PendingRequests": pending,
		"APIOnline":       err == nil,
	}

	// 令牌若是 JWT，展示签发/过期时间（仅展示，不校验）
	if claims := h.Store.Claims(middleware.GetToken(c)); claims != nil {
		data["TokenClaims"] = claims
	}

	c.HTML(http.StatusOK, "dashboard.html", h.RenderData(c, data))
}
