package handler

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ErkanYT/movie-admin-panel/internal/model"
	"github.com/ErkanYT/movie-admin-panel/internal/service"
	"github.com/ErkanYT/movie-admin-panel/internal/utils"
)

// ReferersPage 防盗链白名单页面
func (h *Handler) ReferersPage(c *gin.Context) {
	referers, err := h.Admin.ListReferers()
	if err != nil {
		log.Printf("[Referers] 拉取白名单失败: %v", err)
	}

	c.HTML(http.StatusOK, "referers.html", h.RenderData(c, gin.H{
		"Title":    "防盗链管理 - " + h.Config.SiteName,
		"Referers": referers,
		"Error":    c.Query("error"),
	}))
}

// RefererCreate 新增白名单条目
func (h *Handler) RefererCreate(c *gin.Context) {
	entry := &model.RefererEntry{
		SiteName: c.PostForm("site_name"),
		URL:      c.PostForm("url"),
		IsGlobal: c.PostForm("is_global") == "on" || c.PostForm("is_global") == "true",
	}

	if entry.URL == "" {
		c.Redirect(http.StatusFound, "/referers?error="+url.QueryEscape("URL 不能为空"))
		return
	}

	if _, err := h.Admin.CreateReferer(entry); err != nil {
		log.Printf("[Referers] 新增失败 (%s): %v", entry.URL, err)
		msg := service.UserMessage(err, "新增失败")
		c.Redirect(http.StatusFound, "/referers?error="+url.QueryEscape(msg))
		return
	}

	c.Redirect(http.StatusFound, "/referers")
}

// RefererDelete 删除白名单条目
func (h *Handler) RefererDelete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "无效的 ID")
		return
	}

	if err := h.Admin.DeleteReferer(id); err != nil {
		log.Printf("[Referers] 删除失败 (ID: %d): %v", id, err)
		utils.InternalServerError(c, service.UserMessage(err, "删除失败"))
		return
	}

	utils.Success(c, nil)
}
