package controller

import (
	"net/http"

	"github.com/mergington/activities/internal/controller/handlers"
	"github.com/mergington/activities/internal/service"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type HTTPController struct {
	handlers  *handlers.Handlers
	staticDir string
	logger    *zap.Logger
}

func NewHTTPController(
	authService *service.AuthService,
	activityService *service.ActivityService,
	staticDir string,
	logger *zap.Logger,
) *HTTPController {
	return &HTTPController{
		handlers:  handlers.NewHandlers(authService, activityService, logger),
		staticDir: staticDir,
		logger:    logger,
	}
}

// Handler assembles the route table and wraps it with the CORS and
// request-logging layers.
func (c *HTTPController) Handler() http.Handler {
	mux := http.NewServeMux()

	// API routes
	mux.HandleFunc("GET /{$}", c.handlers.HandleRoot)
	mux.HandleFunc("GET /healthz", c.handlers.HandleHealth)
	mux.HandleFunc("GET /activities", c.handlers.HandleListActivities)
	mux.HandleFunc("POST /login", c.handlers.HandleLogin)
	mux.HandleFunc("POST /logout", c.handlers.HandleLogout)
	mux.HandleFunc("GET /verify-session", c.handlers.HandleVerifySession)
	mux.HandleFunc("POST /activities/{name}/signup", c.handlers.HandleSignup)
	mux.HandleFunc("DELETE /activities/{name}/unregister", c.handlers.HandleUnregister)

	// Web UI
	mux.Handle("GET /static/", http.StripPrefix("/static/",
		http.FileServer(http.Dir(c.staticDir))))

	// Mirror the permissive posture the UI relies on: any origin may call
	// with credentials, so the origin is echoed rather than wildcarded.
	corsLayer := cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return c.logRequests(corsLayer.Handler(mux))
}
