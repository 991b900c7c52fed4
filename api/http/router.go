package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/mood/api/http/handlers"
	"github.com/artem13815/mood/pkg/auth"
	"github.com/artem13815/mood/pkg/security/jwt"
)

// Handlers groups every route handler of the API.
type Handlers struct {
	User    *handlers.UserHandler
	Mood    *handlers.MoodHandler
	Uploads *handlers.UploadsHandler
	Health  *handlers.HealthHandler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, verifier auth.TokenVerifier, h Handlers) {
	requireAuth := jwt.NewAuthMiddleware(verifier)

	app.Get("/", h.Health.Root)

	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", h.Health.Health)
	app.Get("/ready", h.Health.Ready)

	app.Get("/uploads/:name", h.Uploads.Serve)

	u := app.Group("/user")
	u.Post("/register", h.User.Register)
	u.Post("/login", h.User.Login)
	u.Put("/update", requireAuth, h.User.Update)
	u.Get("/me", requireAuth, h.User.Me)
	u.Delete("/delete", requireAuth, h.User.Delete)

	// static paths first so they are not captured by /:id
	m := app.Group("/mood", requireAuth)
	m.Post("/create", h.Mood.Create)
	m.Get("/all", h.Mood.All)
	m.Get("/latest", h.Mood.Latest)
	m.Get("/stats", h.Mood.Stats)
	m.Get("/range", h.Mood.Range)
	m.Get("/:id", h.Mood.Get)
	m.Put("/:id", h.Mood.Update)
	m.Delete("/:id", h.Mood.Delete)
}
