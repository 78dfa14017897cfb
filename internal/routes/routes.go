package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/internlink/internlink-api/internal/config"
	"github.com/internlink/internlink-api/internal/handlers"
	"github.com/internlink/internlink-api/internal/metrics"
	"github.com/internlink/internlink-api/internal/middleware"
	"github.com/internlink/internlink-api/internal/models"
	"github.com/internlink/internlink-api/internal/services"
	"gorm.io/gorm"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Health       *handlers.HealthHandler
	Profile      *handlers.ProfileHandler
	Internship   *handlers.InternshipHandler
	Application  *handlers.ApplicationHandler
	Message      *handlers.MessageHandler
	Notification *handlers.NotificationHandler
	Admin        *handlers.AdminHandler
}

// NewHandlers wires every service and handler onto db.
func NewHandlers(db *gorm.DB, cfg *config.Config, tokens *services.TokenManager, mailer services.Mailer) Handlers {
	internshipService := services.NewInternshipService(db, cfg.RequireInternshipApproval)
	applicationService := services.NewApplicationService(db, mailer, cfg.RequireInternshipApproval)

	return Handlers{
		Auth:         handlers.NewAuthHandler(services.NewAuthService(db, tokens)),
		Health:       handlers.NewHealthHandler(db),
		Profile:      handlers.NewProfileHandler(services.NewProfileService(db, cfg.RequireInternshipApproval)),
		Internship:   handlers.NewInternshipHandler(internshipService),
		Application:  handlers.NewApplicationHandler(applicationService),
		Message:      handlers.NewMessageHandler(services.NewMessageService(db)),
		Notification: handlers.NewNotificationHandler(services.NewNotificationService(db)),
		Admin:        handlers.NewAdminHandler(services.NewAdminService(db), internshipService, applicationService),
	}
}

func Setup(app *fiber.App, cfg *config.Config, tokens *services.TokenManager, h Handlers) {
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	api := app.Group("/api")

	// General API rate limiter, per IP
	api.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))

	authenticated := middleware.RequireAuthenticated(tokens)
	intern := []fiber.Handler{authenticated, middleware.RequireRole(models.RoleIntern)}
	provider := []fiber.Handler{authenticated, middleware.RequireRole(models.RoleProvider)}

	api.Get("/health", h.Health.Check)

	// Login and signup get a stricter per-IP limit
	strict := middleware.RateLimit(cfg.AuthRateLimit, time.Minute)
	api.Post("/auth/login", strict, h.Auth.Login)
	api.Get("/auth/me", authenticated, h.Auth.Me)
	api.Post("/intern/signup", strict, h.Auth.SignupIntern)
	api.Post("/provider/signup", strict, h.Auth.SignupProvider)

	// Intern profiles
	internProfile := api.Group("/intern-profile")
	internProfile.Get("/my/profile", with(intern, h.Profile.GetMyInternProfile)...)
	internProfile.Put("/my/profile", with(intern, h.Profile.UpsertMyInternProfile)...)
	internProfile.Get("/:internId", authenticated,
		middleware.RequireRole(models.RoleProvider, models.RoleAdmin), h.Profile.GetInternProfile)

	// Company profiles; static paths before :companyId
	company := api.Group("/company-profile")
	company.Get("/all", h.Profile.ListCompanies)
	company.Get("/my/profile", with(provider, h.Profile.GetMyCompanyProfile)...)
	company.Put("/my/profile", with(provider, h.Profile.UpsertMyCompanyProfile)...)
	company.Get("/:companyId", h.Profile.GetCompanyProfile)

	// Internships; static paths before :id
	internships := api.Group("/internships")
	internships.Get("/", h.Internship.List)
	internships.Get("/provider", with(provider, h.Internship.ListMine)...)
	internships.Post("/", with(provider, h.Internship.Create)...)
	internships.Get("/:id", h.Internship.Get)
	internships.Put("/:id", with(provider, h.Internship.Update)...)
	internships.Delete("/:id", with(provider, h.Internship.Delete)...)

	// Applications
	applications := api.Group("/applications")
	applications.Post("/apply", with(intern, h.Application.Apply)...)
	applications.Get("/provider", with(provider, h.Application.ListForProvider)...)
	applications.Get("/intern", with(intern, h.Application.ListForIntern)...)
	applications.Put("/:id/status", with(provider, h.Application.UpdateStatus)...)

	// Messages (any authenticated role)
	messages := api.Group("/messages", authenticated)
	messages.Post("/send", h.Message.Send)
	messages.Get("/conversations", h.Message.Conversations)
	messages.Get("/conversation/:otherUserId", h.Message.Conversation)
	messages.Put("/read/:otherUserId", h.Message.MarkRead)

	// Notifications
	notifications := api.Group("/notifications", authenticated)
	notifications.Get("/", h.Notification.List)
	notifications.Put("/:id/read", h.Notification.MarkRead)
	notifications.Post("/", middleware.RequireRole(models.RoleAdmin), h.Notification.Create)

	// Public lookups
	api.Get("/categories", h.Admin.ListCategories)
	api.Get("/skills", h.Admin.ListSkills)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", authenticated, middleware.RequireRole(models.RoleAdmin))
	admin.Get("/stats", h.Admin.Stats)
	admin.Get("/users", h.Admin.ListUsers)
	admin.Put("/users/:id/block", h.Admin.ToggleBlock)
	admin.Put("/users/:id/role", h.Admin.ChangeRole)
	admin.Delete("/users/:id", h.Admin.DeleteUser)
	admin.Get("/internships", h.Admin.ListInternships)
	admin.Put("/internships/:id/approve", h.Admin.ApproveInternship)
	admin.Put("/internships/:id/reject", h.Admin.RejectInternship)
	admin.Get("/applications", h.Admin.ListApplications)
	admin.Get("/categories", h.Admin.ListCategories)
	admin.Post("/categories", h.Admin.AddCategory)
	admin.Delete("/categories/:id", h.Admin.DeleteCategory)
	admin.Get("/skills", h.Admin.ListSkills)
	admin.Post("/skills", h.Admin.AddSkill)
	admin.Delete("/skills/:id", h.Admin.DeleteSkill)
}

func with(guards []fiber.Handler, handler fiber.Handler) []fiber.Handler {
	chain := make([]fiber.Handler, 0, len(guards)+1)
	chain = append(chain, guards...)
	return append(chain, handler)
}
