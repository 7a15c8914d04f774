package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/chu-physmed/rotation-planner/backend/internal/domain"
	"github.com/chu-physmed/rotation-planner/backend/internal/planner"
)

const generationLockKey = "planner:generation_lock"

type scheduleResponse struct {
	Tasks  []*domain.TaskAssignment  `json:"tasks"`
	Guards []*domain.GuardAssignment `json:"guards"`
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	rng, err := parseRangeParams(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		h.errorResponse(w, r, "période invalide, format attendu AAAA-MM-JJ")
		return
	}
	if rng.Start.After(rng.End) {
		h.errorResponse(w, r, planner.ErrInvalidRange.Error())
		return
	}

	tasks, err := h.repository.GetTaskAssignmentsInRange(rng)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	guards, err := h.repository.GetGuardAssignmentsInRange(rng)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "planning récupéré", scheduleResponse{
		Tasks:  tasks,
		Guards: guards,
	})
}

func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Start string `json:"start" validate:"required,datetime=2006-01-02"`
		End   string `json:"end" validate:"required,datetime=2006-01-02"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	start, _ := time.Parse(time.DateOnly, req.Start)
	end, _ := time.Parse(time.DateOnly, req.End)
	rng := domain.ScheduleRange{Start: start, End: end}

	// two generations over overlapping ranges must never run concurrently,
	// so the whole generate-and-replace step is fenced by a redis lock
	lockTTL := time.Duration(h.config.Generation.LockExpiration) * time.Second
	locked, err := h.redisClient.SetNX(r.Context(), generationLockKey, 1, lockTTL).Result()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !locked {
		h.errorResponse(w, r, "une génération est déjà en cours, réessayez dans un instant")
		return
	}
	defer h.redisClient.Del(context.Background(), generationLockKey)

	roster, err := h.repository.GetEligiblePersons(rng.Start)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	schedule, err := planner.New(roster).Generate(rng)
	if err != nil {
		switch {
		case errors.Is(err, planner.ErrInvalidRange), errors.Is(err, planner.ErrEmptyRoster):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// generation is pure; committing the result is this separate, atomic step
	if err := h.repository.ReplaceScheduleRange(rng, schedule.Tasks, schedule.Guards); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.notifySchedulePublished(rng, schedule.Summary); err != nil {
		// the schedule is committed at this point, a notification failure
		// must not report the generation itself as failed
		h.logInternalServerError(r, err)
	}

	h.successResponse(w, r, "planning généré", schedule)
}

func (h *Handler) notifySchedulePublished(rng domain.ScheduleRange, summary domain.ScheduleSummary) error {
	for _, recipient := range h.config.Email.Recipients {
		mailMessage := domain.MailMessage{
			Type: "schedule_published",
			To:   recipient,
			Data: domain.SchedulePublishedMailData{
				Start:           rng.Start.Format(time.DateOnly),
				End:             rng.End.Format(time.DateOnly),
				AssignmentCount: summary.AssignmentCount,
				GuardCount:      summary.GuardCount,
			},
		}

		if err := h.publishMailMessage(mailMessage); err != nil {
			return err
		}
	}

	return nil
}

func (h *Handler) publishMailMessage(mailMessage domain.MailMessage) error {
	emailData, err := json.Marshal(mailMessage)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        emailData,
		},
	)
}

func (h *Handler) SetTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date     string           `json:"date" validate:"required,datetime=2006-01-02"`
		PersonID int64            `json:"personID" validate:"required"`
		Task     *domain.TaskKind `json:"task"` // null clears the cell
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, _ := time.Parse(time.DateOnly, req.Date)

	if req.Task == nil {
		// clearing an empty cell stays a success so the edit is idempotent
		if err := h.repository.ClearTaskAssignment(date, req.PersonID); err != nil {
			h.internalServerError(w, r, err)
			return
		}

		h.successResponse(w, r, "tâche effacée", nil)
		return
	}

	if !req.Task.Valid() {
		h.errorResponse(w, r, "type de tâche inconnu")
		return
	}

	assignment := &domain.TaskAssignment{
		Date:     date,
		PersonID: req.PersonID,
		Task:     *req.Task,
	}

	if err := h.repository.SetTaskAssignment(assignment); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "task_assignments_person_id_fkey":
				h.errorResponse(w, r, "personne introuvable")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "tâche enregistrée", assignment)
}

func (h *Handler) SetGuard(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date     string           `json:"date" validate:"required,datetime=2006-01-02"`
		Guard    domain.GuardKind `json:"guard" validate:"required"`
		PersonID *int64           `json:"personID"` // null empties the slot
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if !req.Guard.Valid() {
		h.errorResponse(w, r, "type de garde inconnu")
		return
	}

	date, _ := time.Parse(time.DateOnly, req.Date)

	if req.PersonID == nil {
		if err := h.repository.ClearGuardAssignment(date, req.Guard); err != nil {
			h.internalServerError(w, r, err)
			return
		}

		h.successResponse(w, r, "garde effacée", nil)
		return
	}

	assignment := &domain.GuardAssignment{
		Date:     date,
		Guard:    req.Guard,
		PersonID: *req.PersonID,
	}

	if err := h.repository.SetGuardAssignment(assignment); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "guard_assignments_person_id_fkey":
				h.errorResponse(w, r, "personne introuvable")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "garde enregistrée", assignment)
}

func parseRangeParams(startParam, endParam string) (domain.ScheduleRange, error) {
	start, err := time.Parse(time.DateOnly, startParam)
	if err != nil {
		return domain.ScheduleRange{}, err
	}

	end, err := time.Parse(time.DateOnly, endParam)
	if err != nil {
		return domain.ScheduleRange{}, err
	}

	return domain.ScheduleRange{Start: start, End: end}, nil
}
