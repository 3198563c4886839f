package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/introbot/chatbot-server/internal/api/http/handler"
	"github.com/introbot/chatbot-server/internal/api/http/middleware"
	"github.com/introbot/chatbot-server/internal/logger"
	"github.com/introbot/chatbot-server/internal/model"
	"github.com/introbot/chatbot-server/internal/service"
	"github.com/introbot/chatbot-server/internal/wizard"
)

// Router wires handlers and middleware into the HTTP surface.
type Router struct {
	authService  *service.Auth
	userService  *service.User
	sessions     *wizard.Manager
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// New creates new Router instance.
func New(
	authService *service.Auth,
	userService *service.User,
	sessions *wizard.Manager,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:  authService,
		userService:  userService,
		sessions:     sessions,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register builds the route tree. The admin listing sits behind the
// bearer token guard; everything else is open.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.logger)
	userHandler := handler.NewUser(r.userService, r.logger)
	chatHandler := handler.NewChat(r.sessions, r.logger)

	mux := chi.NewRouter()
	mux.Use(logging.Handle)

	mux.Route("/api", func(api chi.Router) {
		api.Post("/admin/login", authHandler.Login)
		api.Group(func(g chi.Router) {
			g.Use(authenticate.Handle)
			g.Get("/admin/users", userHandler.List)
		})

		api.Post("/users", userHandler.Create)

		api.Route("/chat/sessions", func(c chi.Router) {
			c.Post("/", chatHandler.Create)
			c.Get("/{sessionID}", chatHandler.Get)
			c.Post("/{sessionID}/messages", chatHandler.Submit)
		})
	})

	return mux
}
