package handler

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ErkanYT/movie-admin-panel/internal/service"
	"github.com/ErkanYT/movie-admin-panel/internal/workflow"
)

// SeasonsPage 剧集的季/集管理页面
func (h *Handler) SeasonsPage(c *gin.Context) {
	seriesID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/content")
		return
	}

	sm := h.Flows.SeasonManager(h.sessionKey(c), seriesID, "")
	if err := sm.Reload(); err != nil {
		log.Printf("[Seasons] 拉取剧集详情失败 (ID: %d): %v", seriesID, err)
		msg := service.UserMessage(err, "拉取剧集详情失败")
		c.Redirect(http.StatusFound, "/content?error="+url.QueryEscape(msg))
		return
	}

	c.HTML(http.StatusOK, "seasons.html", h.RenderData(c, gin.H{
		"Title":       sm.SeriesTitle() + " - 季管理 - " + h.Config.SiteName,
		"SeriesID":    sm.SeriesID(),
		"SeriesTitle": sm.SeriesTitle(),
		"Seasons":     sm.Seasons(),
		"Expanded":    sm.Expanded(),
		"NextEpisode": sm.NextEpisode(),
		"Error":       c.Query("error"),
	}))
}

// SeasonToggle 展开/收起某一季（同时只展开一个）
func (h *Handler) SeasonToggle(c *gin.Context) {
	seriesID, _ := strconv.Atoi(c.Param("id"))
	seasonID, _ := strconv.Atoi(c.PostForm("season_id"))

	sm := h.Flows.SeasonManager(h.sessionKey(c), seriesID, "")
	sm.Toggle(seasonID)

	c.Redirect(http.StatusFound, fmt.Sprintf("/content/%d/seasons", seriesID))
}

// SeasonAdd 追加一季（季号 = 当前季数 + 1）
func (h *Handler) SeasonAdd(c *gin.Context) {
	seriesID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/content")
		return
	}

	sm := h.Flows.SeasonManager(h.sessionKey(c), seriesID, "")
	if err := sm.AddSeason(); err != nil {
		log.Printf("[Seasons] 添加季失败 (剧集: %d): %v", seriesID, err)
		msg := service.UserMessage(err, "添加季失败")
		c.Redirect(http.StatusFound, fmt.Sprintf("/content/%d/seasons?error=%s", seriesID, url.QueryEscape(msg)))
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/content/%d/seasons", seriesID))
}

// EpisodeAdd 向展开的季提交新集表单
func (h *Handler) EpisodeAdd(c *gin.Context) {
	seriesID, _ := strconv.Atoi(c.Param("id"))
	seasonID, err := strconv.Atoi(c.Param("seasonId"))
	if err != nil {
		c.Redirect(http.StatusFound, fmt.Sprintf("/content/%d/seasons", seriesID))
		return
	}

	sm := h.Flows.SeasonManager(h.sessionKey(c), seriesID, "")

	// 表单里的编号可被操作员手改，以提交值为准
	number, err := strconv.Atoi(c.PostForm("episode_number"))
	if err != nil || number < 1 {
		number = sm.NextEpisode().Number
	}
	sm.SetNextEpisode(workflow.EpisodeForm{
		Number:   number,
		Title:    c.PostForm("title"),
		VideoURL: c.PostForm("video_url"),
	})

	if err := sm.AddEpisode(seasonID); err != nil {
		log.Printf("[Seasons] 添加集失败 (季: %d): %v", seasonID, err)
		msg := service.UserMessage(err, "添加集失败")
		c.Redirect(http.StatusFound, fmt.Sprintf("/content/%d/seasons?error=%s", seriesID, url.QueryEscape(msg)))
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/content/%d/seasons", seriesID))
}
