package service

import (
	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/repository"
	"go.uber.org/zap"
)

type ActivityService struct {
	activityRepo *repository.ActivityRepository
	logger       *zap.Logger
}

func NewActivityService(activityRepo *repository.ActivityRepository, logger *zap.Logger) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// List returns the full catalog keyed by activity name.
func (s *ActivityService) List() map[string]*model.Activity {
	return s.activityRepo.List()
}

// SignUp adds the student email to the activity's roster.
func (s *ActivityService) SignUp(activity, email string) error {
	if err := s.activityRepo.AddParticipant(activity, email); err != nil {
		return err
	}

	s.logger.Info("Student signed up",
		zap.String("activity", activity),
		zap.String("email", email),
	)

	return nil
}

// Unregister removes the student email from the activity's roster.
func (s *ActivityService) Unregister(activity, email string) error {
	if err := s.activityRepo.RemoveParticipant(activity, email); err != nil {
		return err
	}

	s.logger.Info("Student unregistered",
		zap.String("activity", activity),
		zap.String("email", email),
	)

	return nil
}
