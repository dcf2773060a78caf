package repository_test

import (
	"testing"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/repository"
	"github.com/stretchr/testify/assert"
)

func TestSessionRepository(t *testing.T) {
	t.Run("stores and returns the role", func(t *testing.T) {
		repo := repository.NewSessionRepository()

		repo.Create("abc123", model.RoleTeacher)

		role, ok := repo.Role("abc123")
		assert.True(t, ok)
		assert.Equal(t, model.RoleTeacher, role)
	})

	t.Run("unknown token", func(t *testing.T) {
		repo := repository.NewSessionRepository()

		_, ok := repo.Role("missing")
		assert.False(t, ok)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		repo := repository.NewSessionRepository()
		repo.Create("abc123", model.RoleTeacher)

		assert.True(t, repo.Delete("abc123"))
		assert.False(t, repo.Delete("abc123"))
		assert.False(t, repo.Delete("never-existed"))

		_, ok := repo.Role("abc123")
		assert.False(t, ok)
	})
}
