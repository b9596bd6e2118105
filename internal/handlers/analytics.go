package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"unidash-be/internal/analytics"
	"unidash-be/internal/models"
	"unidash-be/internal/repository"
)

// UserFinder looks up users. A missing user is reported as repository.ErrUserNotFound.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type MailClientFactory interface {
	NewMailClient(ctx context.Context, user *models.User) (analytics.MailClient, error)
}

type DashboardBuilder interface {
	BuildDashboard(ctx context.Context, req analytics.Request) (models.DashboardSnapshot, error)
}

type AnalyticsHandler struct {
	users     UserFinder
	mail      MailClientFactory
	dashboard DashboardBuilder
	log       logrus.FieldLogger
}

func NewAnalyticsHandler(users UserFinder, mail MailClientFactory, dashboard DashboardBuilder, log logrus.FieldLogger) *AnalyticsHandler {
	return &AnalyticsHandler{
		users:     users,
		mail:      mail,
		dashboard: dashboard,
		log:       log,
	}
}

// GetDashboard godoc
// @Summary Get productivity dashboard
// @Description Aggregates mailbox activity, AI reply usage, document statistics, productivity and collaboration metrics for the selected period
// @Tags analytics
// @Security ApiKeyAuth
// @Produce json
// @Param period query string false "Time period: week, month, year" default(week)
// @Param startDate query string false "Accepted for compatibility, ignored"
// @Param endDate query string false "Accepted for compatibility, ignored"
// @Success 200 {object} models.DashboardResponse
// @Failure 401 {object} models.DashboardErrorResponse
// @Failure 502 {object} models.DashboardErrorResponse
// @Failure 500 {object} models.DashboardErrorResponse
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		h.fail(c, analytics.NewError(analytics.KindAuth, "get dashboard", nil))
		return
	}

	ctx := c.Request.Context()

	user, err := h.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		h.fail(c, analytics.NewError(analytics.KindAuth, "find user", err))
		return
	}
	if err != nil {
		h.fail(c, analytics.NewError(analytics.KindInternal, "find user", err))
		return
	}

	client, err := h.mail.NewMailClient(ctx, user)
	if err != nil {
		h.fail(c, err)
		return
	}

	snap, err := h.dashboard.BuildDashboard(ctx, analytics.Request{
		UserID:      userID,
		Mail:        client,
		PeriodLabel: c.DefaultQuery("period", analytics.PeriodWeek),
		StartDate:   c.Query("startDate"),
		EndDate:     c.Query("endDate"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DashboardResponse{
		Success: true,
		Data:    snap,
	})
}

func (h *AnalyticsHandler) fail(c *gin.Context, err error) {
	kind := analytics.KindOf(err)
	h.log.WithFields(logrus.Fields{
		"kind":   kind,
		"userId": c.GetString("userID"),
	}).WithError(err).Warn("dashboard request failed")

	c.JSON(analytics.HTTPStatus(kind), models.DashboardErrorResponse{
		Success:   false,
		Error:     analytics.UserMessage(kind),
		Timestamp: time.Now(),
	})
}
