package service

import (
	"errors"
	"net/http"

	"github.com/answerd/answerd/internal/answer/biz"
	"github.com/answerd/answerd/internal/websearch/types"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QueryService struct {
	uc     *biz.QueryUseCase
	logger *zap.Logger
}

func NewQueryService(uc *biz.QueryUseCase, logger *zap.Logger) *QueryService {
	return &QueryService{
		uc:     uc,
		logger: logger,
	}
}

type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

type AnswerResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (s *QueryService) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := s.uc.AskQuestion(c.Request.Context(), req.Question)
	if err != nil {
		s.logger.Error("failed to answer question", zap.Error(err))
		c.JSON(statusFromError(err), gin.H{"error": "question could not be answered"})
		return
	}

	c.JSON(http.StatusOK, AnswerResponse{
		Question: req.Question,
		Answer:   answer,
	})
}

func (s *QueryService) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter 'q'"})
		return
	}

	answer, err := s.uc.SearchWeb(c.Request.Context(), query)
	if err != nil {
		s.logger.Error("web search failed", zap.Error(err))
		c.JSON(statusFromError(err), gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, AnswerResponse{
		Question: query,
		Answer:   answer,
	})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, types.ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrTransportFailure), errors.Is(err, types.ErrParseFailure):
		return http.StatusBadGateway
	case errors.Is(err, biz.ErrNoCredential):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *QueryService) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/questions", s.Ask)
	r.GET("/search", s.Search)
}
