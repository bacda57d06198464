package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/userdash-backend/internal/domain"
	"github.com/heartmarshall/userdash-backend/internal/provider"
	"github.com/heartmarshall/userdash-backend/internal/transport/middleware"
)

// dashboardService defines the minimal interface needed by DashboardHandler.
type dashboardService interface {
	Load(ctx context.Context, userID int64) (*domain.DashboardData, error)
}

// DashboardHandler serves the aggregated dashboard REST endpoint.
type DashboardHandler struct {
	svc          dashboardService
	log          *slog.Logger
	authRequired bool
}

// NewDashboardHandler creates a DashboardHandler. When authRequired is set,
// requests must carry an identity matching the requested user (or admin).
func NewDashboardHandler(svc dashboardService, logger *slog.Logger, authRequired bool) *DashboardHandler {
	return &DashboardHandler{
		svc:          svc,
		log:          logger.With("handler", "dashboard"),
		authRequired: authRequired,
	}
}

type dashboardResponse struct {
	User          userResponse           `json:"user"`
	Posts         []postResponse         `json:"posts"`
	Notifications []notificationResponse `json:"notifications"`
	Metrics       metricsResponse        `json:"metrics"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type postResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type notificationResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
	IsRead  bool   `json:"isRead"`
}

type metricsResponse struct {
	PostsCount               int `json:"postsCount"`
	UnreadNotificationsCount int `json:"unreadNotificationsCount"`
	TotalNotificationsCount  int `json:"totalNotificationsCount"`
}

// GetDashboard handles GET /api/v1/users/{userID}/dashboard.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("userID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if h.authRequired {
		if err := middleware.RequireOwner(r.Context(), userID); err != nil {
			h.handleError(w, r, err)
			return
		}
	}

	data, err := h.svc.Load(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDashboardResponse(data))
}

func (h *DashboardHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, provider.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, provider.ErrProfileTimeout),
		errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "upstream timed out")
	case errors.Is(err, provider.ErrPostsNetwork),
		errors.Is(err, provider.ErrPostsInvalidResponse),
		errors.Is(err, provider.ErrNotificationsNoConnection),
		errors.Is(err, provider.ErrNotificationsUnauthorized):
		writeError(w, http.StatusBadGateway, "upstream provider failed")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toDashboardResponse(data *domain.DashboardData) dashboardResponse {
	posts := make([]postResponse, 0, len(data.Posts))
	for _, p := range data.Posts {
		posts = append(posts, postResponse{ID: p.ID, Title: p.Title, Content: p.Content})
	}

	notifications := make([]notificationResponse, 0, len(data.Notifications))
	for _, n := range data.Notifications {
		notifications = append(notifications, notificationResponse{ID: n.ID, Message: n.Message, IsRead: n.IsRead})
	}

	m := data.Metrics()

	return dashboardResponse{
		User: userResponse{
			ID:    data.Profile.ID,
			Name:  data.Profile.Name,
			Email: data.Profile.Email,
		},
		Posts:         posts,
		Notifications: notifications,
		Metrics: metricsResponse{
			PostsCount:               m.PostsCount,
			UnreadNotificationsCount: m.UnreadNotificationsCount,
			TotalNotificationsCount:  m.TotalNotificationsCount,
		},
	}
}
