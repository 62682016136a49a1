package handler

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ErkanYT/movie-admin-panel/internal/service"
	"github.com/ErkanYT/movie-admin-panel/internal/utils"
	"github.com/ErkanYT/movie-admin-panel/internal/workflow"
)

// ContentPage 内容库页面
func (h *Handler) ContentPage(c *gin.Context) {
	editor := h.Flows.Editor(h.sessionKey(c))

	if err := editor.Reload(); err != nil {
		log.Printf("[Content] 拉取内容列表失败: %v", err)
	}

	search := c.Query("q")
	c.HTML(http.StatusOK, "content.html", h.RenderData(c, gin.H{
		"Title":   "内容库 - " + h.Config.SiteName,
		"Items":   editor.Items(search),
		"Keyword": search,
		"Draft":   editor.Draft(),
		"Mode":    editor.Mode(),
		"TMDBID":  editor.TMDBID(),
		"Error":   c.Query("error"),
		"Success": c.Query("success"),
	}))
}

// ContentModeSet 切换新增表单的录入模式（手动 / TMDB 自动）
func (h *Handler) ContentModeSet(c *gin.Context) {
	editor := h.Flows.Editor(h.sessionKey(c))
	editor.SetMode(c.PostForm("mode"))
	c.Redirect(http.StatusFound, "/content")
}

// ContentTMDBFetch TMDB 自动补全：抓取元数据合并进草稿后跳回手动模式复核
func (h *Handler) ContentTMDBFetch(c *gin.Context) {
	tmdbID := c.PostForm("tmdb_id")
	if tmdbID == "" {
		c.Redirect(http.StatusFound, "/content?error="+url.QueryEscape("请填写 TMDB ID"))
		return
	}

	editor := h.Flows.Editor(h.sessionKey(c))

	// 先落表单里选的类型，抓取按类型走
	draft := editor.Draft()
	if t := c.PostForm("type"); t != "" {
		draft.Type = t
	}
	editor.SetDraft(draft)

	if err := editor.FetchMetadata(tmdbID); err != nil {
		log.Printf("[Content] TMDB 抓取失败 (ID: %s): %v", tmdbID, err)
		msg := service.UserMessage(err, "TMDB 抓取失败，请检查 ID 后重试")
		c.Redirect(http.StatusFound, "/content?error="+url.QueryEscape(msg))
		return
	}

	c.Redirect(http.StatusFound, "/content")
}

// ContentCreate 提交新增内容表单
func (h *Handler) ContentCreate(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.DefaultPostForm("category_id", "1"))
	rating, _ := strconv.ParseFloat(c.DefaultPostForm("rating", "7.0"), 64)

	draft := workflow.ContentDraft{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		PosterURL:   c.PostForm("poster_url"),
		BackdropURL: c.PostForm("backdrop_url"),
		VideoURL:    c.PostForm("video_url"),
		CategoryID:  categoryID,
		Rating:      rating,
		ReleaseDate: c.PostForm("release_date"),
		Type:        c.DefaultPostForm("type", "movie"),
	}

	editor := h.Flows.Editor(h.sessionKey(c))
	editor.SetDraft(draft)

	if err := editor.Submit(); err != nil {
		log.Printf("[Content] 新增内容失败: %v", err)
		msg := service.UserMessage(err, "保存失败，请检查表单内容")
		c.Redirect(http.StatusFound, "/content?error="+url.QueryEscape(msg))
		return
	}

	c.Redirect(http.StatusFound, "/content?success="+url.QueryEscape("内容已添加"))
}

// ContentDelete 删除内容（二次确认在前端完成）。
// 列表先行移除，上游失败会自动还原，响应里带上错误提示。
func (h *Handler) ContentDelete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "无效的 ID")
		return
	}

	editor := h.Flows.Editor(h.sessionKey(c))
	if err := editor.Delete(id); err != nil {
		log.Printf("[Content] 删除失败 (ID: %d): %v", id, err)
		utils.InternalServerError(c, service.UserMessage(err, "删除失败"))
		return
	}

	utils.Success(c, nil)
}
