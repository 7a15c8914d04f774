package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/chu-physmed/rotation-planner/backend/internal/domain"
	"github.com/chu-physmed/rotation-planner/backend/internal/utils"
)

func (h *Handler) GetAllPersons(w http.ResponseWriter, r *http.Request) {
	persons, err := h.repository.GetAllPersons()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "liste des personnes récupérée", persons)
}

func (h *Handler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName     string  `json:"fullName" validate:"required"`
		Email        string  `json:"email" validate:"required,email"`
		ServiceStart string  `json:"serviceStart" validate:"required,datetime=2006-01-02"`
		ServiceEnd   *string `json:"serviceEnd" validate:"omitempty,datetime=2006-01-02"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	serviceStart, _ := time.Parse(time.DateOnly, req.ServiceStart)
	person := &domain.Person{
		FullName:     req.FullName,
		Email:        req.Email,
		ServiceStart: serviceStart,
	}
	if req.ServiceEnd != nil {
		serviceEnd, _ := time.Parse(time.DateOnly, *req.ServiceEnd)
		person.ServiceEnd = &serviceEnd
	}

	if err := utils.ValidatePersonServiceDates(person); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreatePerson(person); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "persons_email_key":
				h.errorResponse(w, r, "cette adresse email est déjà utilisée")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "personne créée", person)
}

func (h *Handler) GetPerson(w http.ResponseWriter, r *http.Request) {
	person := r.Context().Value(PersonCtx).(*domain.Person)

	h.successResponse(w, r, "personne récupérée", person)
}

func (h *Handler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	person := r.Context().Value(PersonCtx).(*domain.Person)

	var req struct {
		FullName     *string `json:"fullName"`
		Email        *string `json:"email" validate:"omitempty,email"`
		ServiceStart *string `json:"serviceStart" validate:"omitempty,datetime=2006-01-02"`
		ServiceEnd   *string `json:"serviceEnd" validate:"omitempty,datetime=2006-01-02"`
		// ClearServiceEnd reopens the service period of someone marked as leaving.
		ClearServiceEnd bool `json:"clearServiceEnd"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.FullName != nil {
		person.FullName = *req.FullName
	}
	if req.Email != nil {
		person.Email = *req.Email
	}
	if req.ServiceStart != nil {
		serviceStart, _ := time.Parse(time.DateOnly, *req.ServiceStart)
		person.ServiceStart = serviceStart
	}
	if req.ServiceEnd != nil {
		serviceEnd, _ := time.Parse(time.DateOnly, *req.ServiceEnd)
		person.ServiceEnd = &serviceEnd
	}
	if req.ClearServiceEnd {
		person.ServiceEnd = nil
	}

	if err := utils.ValidatePersonServiceDates(person); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdatePerson(person); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "persons_email_key":
				h.errorResponse(w, r, "cette adresse email est déjà utilisée")
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "échec de la mise à jour, veuillez réessayer")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "personne mise à jour", person)
}

func (h *Handler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	person := r.Context().Value(PersonCtx).(*domain.Person)

	if err := h.repository.DeletePerson(person.ID); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "task_assignments_person_id_fkey", "guard_assignments_person_id_fkey":
				h.errorResponse(w, r, "impossible de supprimer une personne ayant des affectations")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "personne supprimée", nil)
}
