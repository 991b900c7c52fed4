package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/mood/api/http/presenter"
	"github.com/artem13815/mood/pkg/mood"
	"github.com/artem13815/mood/pkg/security/jwt"
)

type MoodHandler struct {
	uc mood.UseCase
}

func NewMoodHandler(uc mood.UseCase) *MoodHandler { return &MoodHandler{uc: uc} }

type createMoodRequest struct {
	Mood       string   `json:"mood"`
	Feelings   []string `json:"feelings"`
	Notes      *string  `json:"notes"`
	SleepHours string   `json:"sleepHours"`
	EntryDate  string   `json:"entryDate"`
}

type updateMoodRequest struct {
	Mood       *string   `json:"mood"`
	Feelings   *[]string `json:"feelings"`
	Notes      *string   `json:"notes"`
	SleepHours *string   `json:"sleepHours"`
}

// entryID parses the :id path parameter. A malformed id cannot name an
// existing entry and is reported as not found.
func entryID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	return id, err == nil
}

// Create records the caller's mood for a day.
// @Summary Create mood entry
// @Tags    mood
// @Accept  json
// @Produce json
// @Param   input body createMoodRequest true "mood entry"
// @Security BearerAuth
// @Success 201 {object} presenter.DataResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /mood/create [post]
func (h *MoodHandler) Create(c *fiber.Ctx) error {
	id, ok := jwt.IdentityFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	var req createMoodRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	e, err := h.uc.Create(c.Context(), id, mood.CreateInput{
		Mood:       req.Mood,
		Feelings:   req.Feelings,
		Notes:      req.Notes,
		SleepHours: req.SleepHours,
		EntryDate:  req.EntryDate,
	})
	if err != nil {
		return writeError(c, "create mood entry", err)
	}
	return presenter.Data(c, http.StatusCreated, "mood entry created successfully", e)
}

// Latest returns today's entry.
// @Summary Today's mood entry
// @Tags    mood
// @Produce json
// @Security BearerAuth
// @Success 200 {object} presenter.DataResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /mood/latest [get]
func (h *MoodHandler) Latest(c *fiber.Ctx) error {
	id, ok := jwt.IdentityFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	e, err := h.uc.GetLatest(c.Context(), id)
	if err != nil {
		return writeError(c, "latest mood entry", err)
	}
	return presenter.Data(c, http.StatusOK, "", e)
}

// All lists every entry of the caller, newest first. An optional limit
// pages the list.
// @Summary List mood entries
// @Tags    mood
// @Produce json
// @Param   limit  query int false "page size (1..200)"
// @Param   offset query int false "entries to skip"
// @Security BearerAuth
// @Success 200 {object} presenter.DataResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /mood/all [get]
func (h *MoodHandler) All(c *fiber.Ctx) error {
	id, ok := jwt.IdentityFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	entries, err := h.uc.GetAll(c.Context(), id)
	if err != nil {
		return writeError(c, "list mood entries", err)
	}
	if limit, offset, ok := parseLimitOffset(c); ok {
		entries = page(entries, limit, offset)
	}
	return presenter.Data(c, http.StatusOK, "mood entries retrieved successfully", entries)
}

// Range lists entries between two dates, both inclusive.
// @Summary Mood entries by date range
// @Tags    mood
// @Produce json
// @Param   startDate query string true "YYYY-MM-DD"
// @Param   endDate   query string true "YYYY-MM-DD"
// @Security BearerAuth
// @Success 200 {object} presenter.DataResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /mood/range [get]
func (h *MoodHandler) Range(c *fiber.Ctx) error {
	id, ok := jwt.IdentityFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	entries, err := h.uc.GetByDateRange(c.Context(), id, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return writeError(c, "mood entries by range", err)
	}
	return presenter.Data(c, http.StatusOK, "mood entries retrieved successfully", entries)
}

// Stats summarizes the caller's entries over a trailing period.
// @Summary Mood statistics
// @Tags    mood
// @Produce json
// @Param   period query string false "week, month or year" Enums(week, month, year)
// @Security BearerAuth
// @Success 200 {object} presenter.DataResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /mood/stats [get]
func (h *MoodHandler) Stats(c *fiber.Ctx) error {
	id, ok := jwt.IdentityFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	stats, err := h.uc.GetStats(c.Context(), id, c.Query("period"))
	if err != nil {
		return writeError(c, "mood stats", err)
	}
	return presenter.Data(c, http.StatusOK, "statistics retrieved successfully", stats)
}

// Get returns one entry of the caller.
// @Summary Get mood entry
// @Tags    mood
// @Produce json
// @Param   id path string true "entry id (UUID)"
// @Security BearerAuth
// @Success 200 {object} presenter.DataResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /mood/{id} [get]
func (h *MoodHandler) Get(c *fiber.Ctx) error {
	id, ok := jwt.IdentityFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	eid, ok := entryID(c)
	if !ok {
		return presenter.Error(c, http.StatusNotFound, mood.ErrNotFound.Error())
	}
	e, err := h.uc.GetByID(c.Context(), id, eid)
	if err != nil {
		return writeError(c, "get mood entry", err)
	}
	return presenter.Data(c, http.StatusOK, "mood entry retrieved successfully", e)
}

// Update changes the supplied fields of one entry.
// @Summary Update mood entry
// @Tags    mood
// @Accept  json
// @Produce json
// @Param   id    path string            true "entry id (UUID)"
// @Param   input body updateMoodRequest true "fields to change"
// @Security BearerAuth
// @Success 200 {object} presenter.DataResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /mood/{id} [put]
func (h *MoodHandler) Update(c *fiber.Ctx) error {
	id, ok := jwt.IdentityFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	eid, ok := entryID(c)
	if !ok {
		return presenter.Error(c, http.StatusNotFound, mood.ErrNotFound.Error())
	}
	var req updateMoodRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	e, err := h.uc.Update(c.Context(), id, eid, mood.UpdateInput{
		Mood:       req.Mood,
		Feelings:   req.Feelings,
		Notes:      req.Notes,
		SleepHours: req.SleepHours,
	})
	if err != nil {
		return writeError(c, "update mood entry", err)
	}
	return presenter.Data(c, http.StatusOK, "mood entry updated successfully", e)
}

// Delete removes one entry of the caller.
// @Summary Delete mood entry
// @Tags    mood
// @Produce json
// @Param   id path string true "entry id (UUID)"
// @Security BearerAuth
// @Success 200 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /mood/{id} [delete]
func (h *MoodHandler) Delete(c *fiber.Ctx) error {
	id, ok := jwt.IdentityFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	eid, ok := entryID(c)
	if !ok {
		return presenter.Error(c, http.StatusNotFound, mood.ErrNotFound.Error())
	}
	if err := h.uc.Delete(c.Context(), id, eid); err != nil {
		return writeError(c, "delete mood entry", err)
	}
	return presenter.Message(c, http.StatusOK, "mood entry deleted successfully")
}
