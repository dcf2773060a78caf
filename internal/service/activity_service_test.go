package service_test

import (
	"testing"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/repository"
	"github.com/mergington/activities/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newActivityService() *service.ActivityService {
	repo := repository.NewActivityRepository(model.SeedActivities())
	return service.NewActivityService(repo, zap.NewNop())
}

func TestActivityService_List(t *testing.T) {
	svc := newActivityService()

	list := svc.List()

	assert.Len(t, list, 9)
	require.Contains(t, list, "Debate Team")
	assert.Equal(t, 12, list["Debate Team"].MaxParticipants)
}

func TestActivityService_SignUp(t *testing.T) {
	t.Run("adds the student", func(t *testing.T) {
		svc := newActivityService()

		require.NoError(t, svc.SignUp("Art Club", "new@mergington.edu"))

		assert.Contains(t, svc.List()["Art Club"].Participants, "new@mergington.edu")
	})

	t.Run("is not idempotent", func(t *testing.T) {
		svc := newActivityService()

		require.NoError(t, svc.SignUp("Art Club", "new@mergington.edu"))
		err := svc.SignUp("Art Club", "new@mergington.edu")

		assert.ErrorIs(t, err, model.ErrAlreadySignedUp)
		assert.Len(t, svc.List()["Art Club"].Participants, 3)
	})

	t.Run("unknown activity", func(t *testing.T) {
		svc := newActivityService()

		err := svc.SignUp("Knitting Circle", "new@mergington.edu")

		assert.ErrorIs(t, err, model.ErrActivityNotFound)
	})
}

func TestActivityService_Unregister(t *testing.T) {
	t.Run("undoes a signup", func(t *testing.T) {
		svc := newActivityService()
		before := svc.List()["Art Club"].Participants

		require.NoError(t, svc.SignUp("Art Club", "new@mergington.edu"))
		require.NoError(t, svc.Unregister("Art Club", "new@mergington.edu"))

		assert.Equal(t, before, svc.List()["Art Club"].Participants)

		err := svc.Unregister("Art Club", "new@mergington.edu")
		assert.ErrorIs(t, err, model.ErrNotSignedUp)
	})

	t.Run("unknown activity", func(t *testing.T) {
		svc := newActivityService()

		err := svc.Unregister("Knitting Circle", "amelia@mergington.edu")

		assert.ErrorIs(t, err, model.ErrActivityNotFound)
	})
}
