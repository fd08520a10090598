package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/manoj8056887579/careerhq-sub001/internal/http/handlers"
	httpmw "github.com/manoj8056887579/careerhq-sub001/internal/http/middleware"
)

type RouterDependencies struct {
	AuthHandler        *handlers.AuthHandler
	ModuleHandler      *handlers.ModuleHandler
	JobHandler         *handlers.JobHandler
	ApplicationHandler *handlers.ApplicationHandler
	LeadHandler        *handlers.LeadHandler
	PartnerHandler     *handlers.PartnerHandler
	CompanyHandler     *handlers.CompanyHandler
	VideoHandler       *handlers.VideoHandler
	UploadHandler      *handlers.UploadHandler
	Session            *httpmw.SessionMiddleware
	Limiter            httpmw.Limiter
	CORSOrigins        []string
	RequestTimeout     time.Duration
}

const maxBodyBytes = 12 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(deps.RequestTimeout))
	r.Use(chimw.RequestSize(maxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	intakeLimit := httpmw.RateLimit(deps.Limiter, "intake", httpmw.ClientIP, 10, time.Minute)
	authLimit := httpmw.RateLimit(deps.Limiter, "auth", httpmw.ClientIP, 5, time.Minute)

	r.Route("/api", func(api chi.Router) {
		// Public content.
		api.Get("/modules", deps.ModuleHandler.List)
		api.Get("/modules/{id}", deps.ModuleHandler.Get)
		api.Get("/modules/categories", deps.ModuleHandler.ListCategories)
		api.Get("/videos", deps.VideoHandler.List)
		api.Get("/companies", deps.CompanyHandler.List)

		// Careers pages live on a separate frontend origin.
		api.Route("/careers", func(careers chi.Router) {
			careers.Use(httpmw.CORS(deps.CORSOrigins))
			careers.Get("/jobs", deps.JobHandler.List)
			careers.Get("/jobs/{id}", deps.JobHandler.Get)
			careers.With(intakeLimit).Post("/applications", deps.ApplicationHandler.Submit)
		})

		// Public intake.
		api.With(intakeLimit).Post("/leads", deps.LeadHandler.Submit)
		api.Get("/leads/verify", deps.LeadHandler.Verify)
		api.With(intakeLimit).Post("/partner-applications", deps.PartnerHandler.Submit)

		// Admin session lifecycle.
		api.Route("/admin/auth", func(auth chi.Router) {
			auth.With(authLimit).Post("/login", deps.AuthHandler.Login)
			auth.Post("/logout", deps.AuthHandler.Logout)
			auth.With(authLimit).Post("/forgot-password", deps.AuthHandler.ForgotPassword)
			auth.With(authLimit).Post("/reset-password", deps.AuthHandler.ResetPassword)
			auth.With(deps.Session.Authenticate).Get("/session", deps.AuthHandler.Session)
		})

		// Everything below requires a session.
		api.Group(func(protected chi.Router) {
			protected.Use(deps.Session.Authenticate)

			protected.Get("/admin/profile", deps.AuthHandler.GetProfile)
			protected.Put("/admin/profile", deps.AuthHandler.UpdateProfile)

			protected.Get("/admin/modules", deps.ModuleHandler.ListAdmin)
			protected.Get("/admin/modules/{id}", deps.ModuleHandler.GetAdmin)
			protected.Post("/modules", deps.ModuleHandler.Create)
			protected.Put("/modules/{id}", deps.ModuleHandler.Update)
			protected.Delete("/modules/{id}", deps.ModuleHandler.Delete)
			protected.Post("/modules/categories", deps.ModuleHandler.CreateCategory)

			protected.Get("/admin/careers/jobs", deps.JobHandler.ListAdmin)
			protected.Get("/admin/careers/jobs/{id}", deps.JobHandler.GetAdmin)
			protected.Post("/careers/jobs", deps.JobHandler.Create)
			protected.Put("/careers/jobs/{id}", deps.JobHandler.Update)
			protected.Delete("/careers/jobs/{id}", deps.JobHandler.Delete)

			protected.Get("/careers/applications", deps.ApplicationHandler.List)
			protected.Get("/careers/applications/{id}", deps.ApplicationHandler.Get)
			protected.Get("/careers/applications/{id}/download", deps.ApplicationHandler.DownloadResume)
			protected.Patch("/careers/applications/{id}/status", deps.ApplicationHandler.UpdateStatus)
			protected.Delete("/careers/applications/{id}", deps.ApplicationHandler.Delete)

			protected.Get("/leads", deps.LeadHandler.List)
			protected.Get("/leads/export", deps.LeadHandler.Export)
			protected.Get("/leads/{id}", deps.LeadHandler.Get)
			protected.Patch("/leads/{id}/status", deps.LeadHandler.UpdateStatus)
			protected.Delete("/leads/{id}", deps.LeadHandler.Delete)

			protected.Get("/partner-applications", deps.PartnerHandler.List)
			protected.Get("/partner-applications/{id}", deps.PartnerHandler.Get)
			protected.Patch("/partner-applications/{id}/status", deps.PartnerHandler.UpdateStatus)
			protected.Delete("/partner-applications/{id}", deps.PartnerHandler.Delete)

			protected.Post("/companies", deps.CompanyHandler.Create)
			protected.Get("/companies/{id}", deps.CompanyHandler.Get)
			protected.Put("/companies/{id}", deps.CompanyHandler.Update)
			protected.Delete("/companies/{id}", deps.CompanyHandler.Delete)

			protected.Get("/admin/videos", deps.VideoHandler.ListAdmin)
			protected.Get("/videos/{id}", deps.VideoHandler.Get)
			protected.Post("/videos", deps.VideoHandler.Create)
			protected.Put("/videos/{id}", deps.VideoHandler.Update)
			protected.Delete("/videos/{id}", deps.VideoHandler.Delete)

			protected.Post("/upload", deps.UploadHandler.Upload)
		})
	})

	return r
}
