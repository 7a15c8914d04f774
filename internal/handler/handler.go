package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	fr_translations "github.com/go-playground/validator/v10/translations/fr"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/chu-physmed/rotation-planner/backend/internal/config"
	"github.com/chu-physmed/rotation-planner/backend/internal/repository"
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
	fr := fr.New()
	uni := ut.New(fr, fr)
	trans, _ := uni.GetTranslator("fr")
	if err := fr_translations.RegisterDefaultTranslations(validate, trans); err != nil {
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

	h.Mux.Route("/persons", func(r chi.Router) {
		r.Post("/", h.CreatePerson)
		r.Get("/", h.GetAllPersons)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.person)
			r.Get("/", h.GetPerson)
			r.Patch("/", h.UpdatePerson)
			r.Delete("/", h.DeletePerson)
		})
	})

	h.Mux.Route("/schedule", func(r chi.Router) {
		r.Get("/", h.GetSchedule)
		r.Post("/generate", h.GenerateSchedule)
		// single-cell manual overrides
		r.Put("/tasks", h.SetTask)
		r.Put("/guards", h.SetGuard)
	})
}
