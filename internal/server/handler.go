// Package server provides the JSON HTTP handlers for the generation service.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/artifact"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/generation"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/identity"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/inference"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/plan"
	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/progress"
)

//go:generate mockgen -source=handler.go -destination=../mocks/server/mock_services.go -package=mock_server

const recentListLimit = 20

// GenerationService runs the full generation pipeline for one request.
type GenerationService interface {
	Generate(ctx context.Context, req generation.Request, tier plan.Tier) (generation.Artifact, error)
}

// ProgressTracker records quiz completions and reads the running aggregate.
type ProgressTracker interface {
	RecordCompletion(ctx context.Context, userID, quizID string, answers []int) (progress.Result, error)
	Overview(ctx context.Context, userID string) (progress.Aggregate, error)
}

// ArtifactLister reads back recently stored artifacts.
type ArtifactLister interface {
	ListRecentQuizzes(ctx context.Context, userID string, limit int) ([]artifact.Quiz, error)
	ListRecentFlashcardSets(ctx context.Context, userID string, limit int) ([]artifact.FlashcardSet, error)
}

// Handler serves the /api endpoints.
type Handler struct {
	generator GenerationService
	progress  ProgressTracker
	artifacts ArtifactLister
	identity  identity.Provider
	logger    *slog.Logger
}

func NewHandler(
	generator GenerationService,
	progressTracker ProgressTracker,
	artifacts ArtifactLister,
	identityProvider identity.Provider,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		generator: generator,
		progress:  progressTracker,
		artifacts: artifacts,
		identity:  identityProvider,
		logger:    logger,
	}
}

// Routes registers every endpoint on a fresh mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/generate-quiz", h.generateQuiz)
	mux.HandleFunc("POST /api/generate-flashcards", h.generateFlashcards)
	mux.HandleFunc("POST /api/complete-quiz", h.completeQuiz)
	mux.HandleFunc("GET /api/progress", h.getProgress)
	mux.HandleFunc("GET /api/quizzes", h.listArtifacts)
	mux.HandleFunc("POST /api/auth/signup", h.signUp)
	mux.HandleFunc("POST /api/auth/signin", h.signIn)
	mux.HandleFunc("POST /api/auth/signout", h.signOut)
	return mux
}

type generateRequest struct {
	Notes string `json:"notes"`
	Title string `json:"title"`
}

type generateQuizResponse struct {
	Title     string                    `json:"title"`
	Questions []generation.QuizQuestion `json:"questions"`
}

type generateFlashcardsResponse struct {
	Title      string                 `json:"title"`
	Flashcards []generation.Flashcard `json:"flashcards"`
}

func (h *Handler) generateQuiz(w http.ResponseWriter, r *http.Request) {
	a, ok := h.generate(w, r, generation.KindQuiz)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, generateQuizResponse{Title: a.Title, Questions: a.Questions})
}

func (h *Handler) generateFlashcards(w http.ResponseWriter, r *http.Request) {
	a, ok := h.generate(w, r, generation.KindFlashcards)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, generateFlashcardsResponse{Title: a.Title, Flashcards: a.Flashcards})
}

// generate runs the shared half of both generation endpoints: decode, resolve
// the caller's identity and tier, and invoke the pipeline.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request, kind generation.Kind) (generation.Artifact, bool) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return generation.Artifact{}, false
	}

	user, err := h.resolveUser(r)
	if err != nil {
		h.logger.Error("resolve user failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return generation.Artifact{}, false
	}

	tier := plan.TierFree
	userID := ""
	if user != nil {
		tier = plan.ParseTier(user.Plan)
		userID = user.ID
	}

	a, err := h.generator.Generate(r.Context(), generation.Request{
		Notes:  req.Notes,
		Kind:   kind,
		Title:  req.Title,
		UserID: userID,
	}, tier)
	if err != nil {
		h.writeGenerationError(w, err)
		return generation.Artifact{}, false
	}
	return a, true
}

func (h *Handler) writeGenerationError(w http.ResponseWriter, err error) {
	var budgetErr *plan.BudgetExceededError
	switch {
	case errors.Is(err, generation.ErrEmptyNotes):
		h.writeError(w, http.StatusBadRequest, "Notes content is required")
	case errors.As(err, &budgetErr):
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf(
			"Notes exceed the %d word limit for the %s plan (%d words)",
			budgetErr.Limit, budgetErr.Tier, budgetErr.WordCount))
	case errors.Is(err, inference.ErrUnavailable):
		h.writeError(w, http.StatusBadGateway, "generation service is unavailable")
	case errors.Is(err, generation.ErrMalformedResponse), errors.Is(err, generation.ErrSchemaMismatch):
		h.writeError(w, http.StatusBadGateway, "generation produced an unusable response")
	default:
		h.logger.Error("generation failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

type completeQuizRequest struct {
	QuizID  string `json:"quizId"`
	Answers []int  `json:"answers"`
}

type completeQuizResponse struct {
	Score         int     `json:"score"`
	TotalSessions int     `json:"totalSessions"`
	AverageScore  float64 `json:"averageScore"`
}

func (h *Handler) completeQuiz(w http.ResponseWriter, r *http.Request) {
	var req completeQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuizID == "" {
		h.writeError(w, http.StatusBadRequest, "quizId is required")
		return
	}

	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	result, err := h.progress.RecordCompletion(r.Context(), user.ID, req.QuizID, req.Answers)
	switch {
	case err == nil:
	case errors.Is(err, artifact.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "quiz not found")
		return
	case errors.Is(err, artifact.ErrAlreadyCompleted):
		h.writeError(w, http.StatusConflict, "quiz is already completed")
		return
	default:
		h.logger.Error("record completion failed", "error", err, "quizId", req.QuizID)
		h.writeError(w, http.StatusBadGateway, "failed to record the completion")
		return
	}

	h.writeJSON(w, http.StatusOK, completeQuizResponse{
		Score:         result.Score,
		TotalSessions: result.TotalSessions,
		AverageScore:  result.AverageScore,
	})
}

type progressResponse struct {
	TotalSessions int        `json:"totalSessions"`
	AverageScore  float64    `json:"averageScore"`
	LastActiveAt  *time.Time `json:"lastActiveAt,omitempty"`
}

func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	agg, err := h.progress.Overview(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("load progress failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := progressResponse{
		TotalSessions: agg.TotalSessions,
		AverageScore:  agg.AverageScore,
	}
	if !agg.LastActiveAt.IsZero() {
		resp.LastActiveAt = &agg.LastActiveAt
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type quizSummary struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	TotalQuestions int        `json:"totalQuestions"`
	Score          *int       `json:"score,omitempty"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type flashcardSetSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CardCount int       `json:"cardCount"`
	CreatedAt time.Time `json:"createdAt"`
}

type listArtifactsResponse struct {
	Quizzes       []quizSummary         `json:"quizzes"`
	FlashcardSets []flashcardSetSummary `json:"flashcardSets"`
}

func (h *Handler) listArtifacts(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	quizzes, err := h.artifacts.ListRecentQuizzes(r.Context(), user.ID, recentListLimit)
	if err != nil {
		h.logger.Error("list quizzes failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	sets, err := h.artifacts.ListRecentFlashcardSets(r.Context(), user.ID, recentListLimit)
	if err != nil {
		h.logger.Error("list flashcard sets failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := listArtifactsResponse{
		Quizzes:       make([]quizSummary, 0, len(quizzes)),
		FlashcardSets: make([]flashcardSetSummary, 0, len(sets)),
	}
	for _, q := range quizzes {
		resp.Quizzes = append(resp.Quizzes, quizSummary{
			ID:             q.ID,
			Title:          q.Title,
			TotalQuestions: q.TotalQuestions,
			Score:          q.Score,
			CompletedAt:    q.CompletedAt,
			CreatedAt:      q.CreatedAt,
		})
	}
	for _, s := range sets {
		resp.FlashcardSets = append(resp.FlashcardSets, flashcardSetSummary{
			ID:        s.ID,
			Title:     s.Title,
			CardCount: s.TotalCards,
			CreatedAt: s.CreatedAt,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type signUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token       string `json:"token"`
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Plan        string `json:"plan"`
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.identity.SignUp(r.Context(), req.Email, req.Password, req.DisplayName)
	switch {
	case err == nil:
	case errors.Is(err, identity.ErrEmailTaken):
		h.writeError(w, http.StatusConflict, "email is already registered")
		return
	case errors.Is(err, identity.ErrInvalidCredentials):
		h.writeError(w, http.StatusBadRequest, "email and password are required")
		return
	default:
		h.logger.Error("sign up failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(w, http.StatusCreated, authResponse{
		Token:       token,
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Plan:        user.Plan,
	})
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.identity.SignIn(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, identity.ErrInvalidCredentials):
		h.writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	default:
		h.logger.Error("sign in failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, authResponse{
		Token:       token,
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Plan:        user.Plan,
	})
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	if err := h.identity.SignOut(r.Context(), bearerToken(r)); err != nil {
		h.logger.Error("sign out failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// resolveUser maps the request's bearer token to an identity. No token, or a
// token the provider does not recognize, means an anonymous caller.
func (h *Handler) resolveUser(r *http.Request) (*identity.UserIdentity, error) {
	token := bearerToken(r)
	if token == "" {
		return nil, nil
	}
	user, err := h.identity.CurrentUser(r.Context(), token)
	if err != nil {
		return nil, fmt.Errorf("identity.CurrentUser > %w", err)
	}
	return user, nil
}

func (h *Handler) requireUser(w http.ResponseWriter, r *http.Request) (*identity.UserIdentity, bool) {
	user, err := h.resolveUser(r)
	if err != nil {
		h.logger.Error("resolve user failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	if user == nil {
		h.writeError(w, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	return user, true
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response failed", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Error: message})
}
