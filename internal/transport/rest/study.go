package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/avoronov/certprep-backend/internal/domain"
	"github.com/avoronov/certprep-backend/internal/service/study"
)

// studyService defines the minimal interface needed by StudyHandler.
type studyService interface {
	RateCard(ctx context.Context, input study.RateCardInput) (*domain.CardProgress, error)
	ListCards(ctx context.Context, input study.ListCardsInput) ([]domain.StudyCard, int, error)
	CardHistory(ctx context.Context, input study.CardHistoryInput) ([]domain.ReviewLog, error)
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
}

// StudyHandler serves the study REST endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

type rateCardRequest struct {
	Rating string `json:"rating"`
}

type progressResponse struct {
	EaseFactor     float64    `json:"easeFactor"`
	IntervalDays   int        `json:"intervalDays"`
	Repetitions    int        `json:"repetitions"`
	Status         string     `json:"status"`
	NextReviewAt   *time.Time `json:"nextReviewAt"`
	LastReviewedAt *time.Time `json:"lastReviewedAt"`
}

type rateCardResponse struct {
	FlashcardID string           `json:"flashcardId"`
	Progress    progressResponse `json:"progress"`
	Message     string           `json:"message"`
}

type flashcardResponse struct {
	ID           string  `json:"id"`
	DomainID     string  `json:"domainId"`
	CategoryID   *string `json:"categoryId,omitempty"`
	SkillID      *string `json:"skillId,omitempty"`
	Question     string  `json:"question"`
	Answer       string  `json:"answer"`
	Explanation  *string `json:"explanation,omitempty"`
	DisplayOrder int     `json:"displayOrder"`
}

type studyCardResponse struct {
	Flashcard flashcardResponse `json:"flashcard"`
	Progress  *progressResponse `json:"progress"`
}

type listCardsResponse struct {
	Items []studyCardResponse `json:"items"`
	Total int                 `json:"total"`
}

type reviewLogResponse struct {
	Rating          string    `json:"rating"`
	Quality         int       `json:"quality"`
	PrevEaseFactor  float64   `json:"prevEaseFactor"`
	PrevIntervalDay int       `json:"prevIntervalDays"`
	PrevRepetitions int       `json:"prevRepetitions"`
	ReviewedAt      time.Time `json:"reviewedAt"`
}

type cardHistoryResponse struct {
	Items []reviewLogResponse `json:"items"`
}

type dashboardResponse struct {
	DueCount      int `json:"dueCount"`
	ReviewedToday int `json:"reviewedToday"`
	StatusCounts  struct {
		New      int `json:"new"`
		Learning int `json:"learning"`
		Known    int `json:"known"`
		Total    int `json:"total"`
	} `json:"statusCounts"`
}

// RateCard handles POST /api/v1/flashcards/{id}/rating.
func (h *StudyHandler) RateCard(w http.ResponseWriter, r *http.Request) {
	flashcardID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid flashcard id")
		return
	}

	var req rateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	progress, err := h.svc.RateCard(r.Context(), study.RateCardInput{
		FlashcardID: flashcardID,
		Rating:      domain.Rating(req.Rating),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rateCardResponse{
		FlashcardID: flashcardID.String(),
		Progress:    toProgressResponse(progress),
		Message:     scheduleMessage(progress.IntervalDays),
	})
}

// ListCards handles GET /api/v1/flashcards.
func (h *StudyHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	input, err := parseListCardsQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cards, total, err := h.svc.ListCards(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := listCardsResponse{
		Items: make([]studyCardResponse, 0, len(cards)),
		Total: total,
	}
	for _, card := range cards {
		item := studyCardResponse{Flashcard: toFlashcardResponse(card.Flashcard)}
		if card.Progress != nil {
			p := toProgressResponse(card.Progress)
			item.Progress = &p
		}
		resp.Items = append(resp.Items, item)
	}

	writeJSON(w, http.StatusOK, resp)
}

// CardHistory handles GET /api/v1/flashcards/{id}/reviews.
func (h *StudyHandler) CardHistory(w http.ResponseWriter, r *http.Request) {
	flashcardID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid flashcard id")
		return
	}

	logs, err := h.svc.CardHistory(r.Context(), study.CardHistoryInput{FlashcardID: flashcardID})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := cardHistoryResponse{Items: make([]reviewLogResponse, 0, len(logs))}
	for _, entry := range logs {
		resp.Items = append(resp.Items, reviewLogResponse{
			Rating:          string(entry.Rating),
			Quality:         entry.Quality,
			PrevEaseFactor:  entry.PrevEaseFactor,
			PrevIntervalDay: entry.PrevIntervalDay,
			PrevRepetitions: entry.PrevRepetitions,
			ReviewedAt:      entry.ReviewedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Dashboard handles GET /api/v1/study/dashboard.
func (h *StudyHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.svc.Dashboard(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var resp dashboardResponse
	resp.DueCount = dash.DueCount
	resp.ReviewedToday = dash.ReviewedToday
	resp.StatusCounts.New = dash.StatusCounts.New
	resp.StatusCounts.Learning = dash.StatusCounts.Learning
	resp.StatusCounts.Known = dash.StatusCounts.Known
	resp.StatusCounts.Total = dash.StatusCounts.Total

	writeJSON(w, http.StatusOK, resp)
}

func (h *StudyHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func parseListCardsQuery(r *http.Request) (study.ListCardsInput, error) {
	var input study.ListCardsInput
	q := r.URL.Query()

	for param, dst := range map[string]**uuid.UUID{
		"domain_id":   &input.DomainID,
		"category_id": &input.CategoryID,
		"skill_id":    &input.SkillID,
	} {
		if raw := q.Get(param); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return input, fmt.Errorf("invalid %s", param)
			}
			*dst = &id
		}
	}

	if raw := q.Get("q"); raw != "" {
		input.Search = &raw
	}
	if raw := q.Get("status"); raw != "" {
		status := domain.CardStatus(raw)
		input.Status = &status
	}
	if raw := q.Get("due"); raw != "" {
		due, err := strconv.ParseBool(raw)
		if err != nil {
			return input, fmt.Errorf("invalid due flag")
		}
		input.DueOnly = due
	}
	for param, dst := range map[string]*int{
		"limit":  &input.Limit,
		"offset": &input.Offset,
	} {
		if raw := q.Get(param); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return input, fmt.Errorf("invalid %s", param)
			}
			*dst = n
		}
	}

	return input, nil
}

func toProgressResponse(p *domain.CardProgress) progressResponse {
	return progressResponse{
		EaseFactor:     p.EaseFactor,
		IntervalDays:   p.IntervalDays,
		Repetitions:    p.Repetitions,
		Status:         string(p.Status),
		NextReviewAt:   p.NextReviewAt,
		LastReviewedAt: p.LastReviewedAt,
	}
}

func toFlashcardResponse(f domain.Flashcard) flashcardResponse {
	resp := flashcardResponse{
		ID:           f.ID.String(),
		DomainID:     f.DomainID.String(),
		Question:     f.Question,
		Answer:       f.Answer,
		Explanation:  f.Explanation,
		DisplayOrder: f.DisplayOrder,
	}
	if f.CategoryID != nil {
		s := f.CategoryID.String()
		resp.CategoryID = &s
	}
	if f.SkillID != nil {
		s := f.SkillID.String()
		resp.SkillID = &s
	}
	return resp
}

func scheduleMessage(intervalDays int) string {
	if intervalDays == 1 {
		return "scheduled for review in 1 day"
	}
	return fmt.Sprintf("scheduled for review in %d days", intervalDays)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
