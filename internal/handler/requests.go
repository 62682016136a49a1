package handler

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ErkanYT/movie-admin-panel/internal/model"
	"github.com/ErkanYT/movie-admin-panel/internal/service"
)

// RequestsPage 求片管理页面
func (h *Handler) RequestsPage(c *gin.Context) {
	requests, err := h.Admin.ListRequests()
	if err != nil {
		log.Printf("[Requests] 拉取求片列表失败: %v", err)
	}

	c.HTML(http.StatusOK, "requests.html", h.RenderData(c, gin.H{
		"Title":    "求片管理 - " + h.Config.SiteName,
		"Requests": requests,
		"Error":    c.Query("error"),
	}))
}

// RequestStatusUpdate 标记求片为已完成/已拒绝，处理后重拉列表
func (h *Handler) RequestStatusUpdate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/requests")
		return
	}

	status := c.PostForm("status")
	if status != model.RequestCompleted && status != model.RequestRejected {
		c.Redirect(http.StatusFound, "/requests?error="+url.QueryEscape("无效的状态"))
		return
	}

	if err := h.Admin.UpdateRequestStatus(id, status); err != nil {
		log.Printf("[Requests] 更新状态失败 (ID: %d): %v", id, err)
		msg := service.UserMessage(err, "更新状态失败")
		c.Redirect(http.StatusFound, "/requests?error="+url.QueryEscape(msg))
		return
	}

	c.Redirect(http.StatusFound, "/requests")
}
