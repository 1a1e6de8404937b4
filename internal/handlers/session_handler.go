package handlers

import (
	"context"
	"errors"
	"net/http"

	"quizhub/internal/models"
	"quizhub/internal/quiz"
	"quizhub/internal/repository"
	"quizhub/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	Manager   *quiz.Manager
	Questions *service.QuestionService
}

func NewSessionHandler(m *quiz.Manager, questions *service.QuestionService) *SessionHandler {
	return &SessionHandler{Manager: m, Questions: questions}
}

type startSessionRequest struct {
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

type answerRequest struct {
	Selected *int `json:"selected"`
}

// questionView is what the player sees: the correct answer stays server-side.
type questionView struct {
	Index    int      `json:"index"`
	Total    int      `json:"total"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

func currentView(s *quiz.Session) *questionView {
	current, err := s.Current()
	if err != nil {
		return nil
	}
	return &questionView{
		Index:    s.CurrentIndex,
		Total:    len(s.Questions),
		Question: current.Question,
		Options:  current.Options,
	}
}

// StartSession fetches the matching questions and opens a shuffled session.
// A pair with no questions is an explicit empty state, not an error and not a
// zero-question result screen.
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Category == "" || req.Difficulty == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category and difficulty are required"})
		return
	}

	questions, err := h.Questions.ListQuestions(context.Background(), repository.QuestionFilter{
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Manager.Start(questions, req.Category, req.Difficulty)
	if errors.Is(err, quiz.ErrNoQuestions) {
		c.JSON(http.StatusOK, gin.H{
			"empty":   true,
			"message": "No questions found for " + req.Category + " - " + req.Difficulty,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       session.ID,
		"total":    len(session.Questions),
		"score":    session.Score,
		"question": currentView(session),
	})
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	session, ok := h.Manager.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	resp := gin.H{
		"id":           session.ID,
		"category":     session.Category,
		"difficulty":   session.Difficulty,
		"total":        len(session.Questions),
		"currentIndex": session.CurrentIndex,
		"score":        session.Score,
		"showResult":   session.ShowResult,
	}
	if session.ShowResult {
		resp["percentage"] = session.Percentage()
	} else {
		resp["question"] = currentView(session)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SessionHandler) SubmitAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Selected == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "selected option index is required"})
		return
	}

	session, correct, err := h.Manager.Answer(c.Param("id"), *req.Selected)
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	case errors.Is(err, quiz.ErrSessionFinished):
		c.JSON(http.StatusConflict, gin.H{"error": "Session already finished"})
		return
	case errors.Is(err, quiz.ErrInvalidOption):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Selected option out of range"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{
		"correct":      correct,
		"score":        session.Score,
		"currentIndex": session.CurrentIndex,
		"finished":     session.ShowResult,
	}
	if session.ShowResult {
		resp["percentage"] = session.Percentage()
	} else {
		resp["question"] = currentView(session)
	}
	c.JSON(http.StatusOK, resp)
}
