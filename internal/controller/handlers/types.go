package handlers

import (
	"github.com/mergington/activities/internal/service"
	"go.uber.org/zap"
)

// Handlers carries the dependencies shared by all request handlers.
type Handlers struct {
	authService     *service.AuthService
	activityService *service.ActivityService
	logger          *zap.Logger
}

func NewHandlers(
	authService *service.AuthService,
	activityService *service.ActivityService,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		authService:     authService,
		activityService: activityService,
		logger:          logger,
	}
}
