package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/repository"
	"go.uber.org/zap"
)

// tokenBytes is the entropy of a session token; hex-encoded it yields a
// 32 character string.
const tokenBytes = 16

type AuthService struct {
	teacherRepo *repository.TeacherRepository
	sessionRepo *repository.SessionRepository
	logger      *zap.Logger
}

func NewAuthService(
	teacherRepo *repository.TeacherRepository,
	sessionRepo *repository.SessionRepository,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		teacherRepo: teacherRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Login exchanges a username/password pair for a fresh session token.
// Credentials are re-read from the teachers file on every attempt and
// compared exactly, first match wins. Returns ErrInvalidCredentials when
// no record matches.
func (s *AuthService) Login(username, password string) (string, error) {
	teachers, err := s.teacherRepo.LoadAll()
	if err != nil {
		return "", fmt.Errorf("load teachers: %w", err)
	}

	for _, t := range teachers {
		if t.Username != username || t.Password != password {
			continue
		}

		token, err := generateToken()
		if err != nil {
			return "", fmt.Errorf("generate token: %w", err)
		}

		s.sessionRepo.Create(token, model.RoleTeacher)

		s.logger.Info("Teacher logged in",
			zap.String("username", username),
		)

		return token, nil
	}

	return "", model.ErrInvalidCredentials
}

// Logout invalidates the token if a session exists. It never fails;
// logging out an unknown token is a no-op.
func (s *AuthService) Logout(token string) {
	if s.sessionRepo.Delete(token) {
		s.logger.Info("Session invalidated")
	}
}

// VerifySession reports whether the token denotes a live teacher session.
func (s *AuthService) VerifySession(token string) bool {
	role, ok := s.sessionRepo.Role(token)
	return ok && role == model.RoleTeacher
}

// generateToken returns a cryptographically random hex token.
func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
