package http

import (
	"fmt"
	"net/http"

	"pagecaster/domain/dto"
	"pagecaster/infrastructure/logger"
	"pagecaster/usecase"

	"github.com/gin-gonic/gin"
)

type IPageHandler interface {
	ListAvailablePages(c *gin.Context)
	SavePage(c *gin.Context)
	ListRegisteredPages(c *gin.Context)
	RemovePage(c *gin.Context)
}

type PageHandler struct {
	pageUsecase usecase.IPageUsecase
}

func NewPageHandler(pageUsecase usecase.IPageUsecase) IPageHandler {
	return &PageHandler{pageUsecase: pageUsecase}
}

// ListAvailablePages lists the pages the logged-in user administers, using
// the user token carried in the session.
func (handler *PageHandler) ListAvailablePages(c *gin.Context) {
	userToken := c.GetString("user_access_token")
	pages, err := handler.pageUsecase.ListAvailablePages(c.Request.Context(), userToken)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": pages})
}

func (handler *PageHandler) SavePage(c *gin.Context) {
	var req dto.SavePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, fmt.Sprintf("%s %v", ErrorUnmarshal, err.Error()))
		return
	}
	ownerUserID := c.GetString("user_id")
	if err := handler.pageUsecase.SavePage(c.Request.Context(), req.PageID, req.PageName, req.AccessToken, ownerUserID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "page_id": req.PageID})
}

func (handler *PageHandler) ListRegisteredPages(c *gin.Context) {
	ownerUserID := c.GetString("user_id")
	creds, err := handler.pageUsecase.ListRegisteredPages(c.Request.Context(), ownerUserID)
	if err != nil {
		writeError(c, err)
		return
	}
	// PageCredential serializes without its access token.
	c.JSON(http.StatusOK, gin.H{"data": creds})
}

func (handler *PageHandler) RemovePage(c *gin.Context) {
	if err := handler.pageUsecase.RemovePage(c.Request.Context(), c.Param("pageId")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
