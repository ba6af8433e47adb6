package handler

import (
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-playground/locales/vi"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	vi_translations "github.com/go-playground/validator/v10/translations/vi"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/config"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	vi := vi.New()
	uni := ut.New(vi, vi)
	trans, _ := uni.GetTranslator("vi")
	if err := vi_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(h.config.Server.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	// xác thực
	h.Mux.Route("/auth", func(r chi.Router) {
		r.With(httprate.LimitByIP(
			h.config.RateLimit.LoginRequests,
			time.Duration(h.config.RateLimit.LoginWindow)*time.Second,
		)).Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// các API dưới đây phải đăng nhập mới được gọi
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo) // bác sĩ và điều dưỡng đều được xem danh sách nhân viên
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteUser)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/password", h.UpdateUserPassword)
			})
		})

		r.Route("/hospitals", func(r chi.Router) {
			r.Get("/", h.GetAllHospitals)
			r.Route("/{hospitalID}", func(r chi.Router) {
				r.Use(h.hospital)
				r.Get("/", h.GetHospital)
				r.Get("/rooms", h.GetHospitalRooms)

				r.Route("/working-hours", func(r chi.Router) {
					r.Get("/", h.GetWorkingHours)
					r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Put("/", h.UpdateWorkingHours)
				})

				r.Route("/schedules", func(r chi.Router) {
					r.Get("/", h.GetScheduleEvents)
					r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateSchedule)
					r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/bulk", h.BulkCreateSchedules)
					r.Route("/{scheduleID}", func(r chi.Router) {
						r.Use(h.schedule)
						r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateSchedule)
						r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteSchedule)
					})
				})
			})
		})
	})
}
