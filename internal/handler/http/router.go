package http

import (
	"log/slog"
	"os"

	"github.com/attendly/attendance-backend-go/internal/config"
	"github.com/attendly/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth          AuthHandler
	VerticalHead  VerticalHeadHandler
	Member        MemberHandler
	Meeting       MeetingHandler
	Attendance    AttendanceHandler
	DeleteRequest DeleteRequestHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/globaladmin/login", h.Auth.GlobalAdminLogin)
		r.Post("/verticalleads/login", h.Auth.VerticalLeadLogin)

		// Logout revokes whichever session the cookie carries.
		r.Post("/globaladmin/logout", h.Auth.Logout)
		r.Post("/verticalleads/logout", h.Auth.Logout)
	})

	// Office bearer console
	r.Route("/globaladmin", func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtService))
		r.Use(middleware.GlobalAdminOnly)

		r.Route("/verticalleads", func(r chi.Router) {
			r.Post("/create", h.VerticalHead.Create)
			r.Get("/", h.VerticalHead.List)
			r.Get("/{roll_no}", h.VerticalHead.Get)
			r.Put("/{roll_no}", h.VerticalHead.Update)
			r.Delete("/{roll_no}", h.VerticalHead.Delete)
		})

		r.Route("/meetings", func(r chi.Router) {
			r.Get("/", h.Meeting.List)
			r.Get("/{id}", h.Meeting.Get)
			r.Get("/{id}/members-attendance", h.Attendance.GetRoster)
			r.Put("/{id}/attendance", h.Attendance.UpdateRoster)
		})

		r.Get("/attendance-summary/all", h.Attendance.SummaryAll)
		r.Get("/attendance-report", h.Attendance.DownloadReport)

		r.Delete("/members/{roll_no}", h.Member.AdminDelete)
		r.Get("/members/deleted", h.Member.ListDeleted)

		r.Route("/delete-requests", func(r chi.Router) {
			r.Get("/", h.DeleteRequest.List)
			r.Get("/{id}", h.DeleteRequest.Get)
			r.Put("/{id}", h.DeleteRequest.Review)
		})
	})

	// Vertical lead console
	r.Route("/verticalleads", func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtService))
		r.Use(middleware.VerticalLeadOnly)

		r.Route("/members", func(r chi.Router) {
			r.Post("/", h.Member.Add)
			r.Get("/", h.Member.List)
			r.Get("/template", h.Member.DownloadTemplate)
			r.Post("/upload-xlsx", h.Member.UploadXLSX)
			r.Get("/{roll_no}", h.Member.Get)
			r.Put("/{roll_no}", h.Member.Update)
			r.Delete("/{roll_no}", h.Member.Delete)
		})

		r.Post("/delete-requests", h.DeleteRequest.Create)

		r.Route("/meetings", func(r chi.Router) {
			r.Post("/", h.Meeting.Create)
			r.Get("/", h.Meeting.List)
			r.Get("/{id}", h.Meeting.Get)
			r.Put("/{id}", h.Meeting.Update)
			r.Delete("/{id}", h.Meeting.Delete)
			r.Get("/{id}/members-attendance", h.Attendance.GetRoster)
			r.Put("/{id}/attendance", h.Attendance.UpdateRoster)
		})
	})

	return r
}
