// Package handler exposes the HTTP handlers of the waitlist service.  This
// file holds the CRUD handlers; each one validates its input, performs a
// single store call and shapes the result into an Envelope.
package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tablequeue/waitlist/internal/model"
	"github.com/tablequeue/waitlist/internal/queue"
	"github.com/tablequeue/waitlist/internal/repository"
)

// WaitlistStore is the persistence the handlers need.
// *repository.WaitlistRepo satisfies it.
type WaitlistStore interface {
	Create(ctx context.Context, f model.WaitlistFields) (uint64, error)
	ListActive(ctx context.Context) ([]model.WaitlistEntry, error)
	ListByLastName(ctx context.Context, name string) ([]model.WaitlistEntry, error)
	GetByID(ctx context.Context, id uint64) ([]model.WaitlistEntry, error)
	Update(ctx context.Context, id uint64, f model.WaitlistFields) error
	SoftDelete(ctx context.Context, id uint64) error
}

// EventPublisher receives a change event after every successful write.
// *queue.Publisher satisfies it.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.WaitlistEvent) error
}

// publishTimeout bounds a background publish once the response is gone.
const publishTimeout = 5 * time.Second

// WaitlistHandler bundles the store, the optional event publisher and the
// logger used by the CRUD endpoints.
type WaitlistHandler struct {
	Store    WaitlistStore
	Events   EventPublisher // nil disables publishing
	Log      zerolog.Logger
	validate *validator.Validate
}

// NewWaitlistHandler constructs a WaitlistHandler and panics if store is nil.
func NewWaitlistHandler(store WaitlistStore, events EventPublisher, log zerolog.Logger) *WaitlistHandler {
	if store == nil {
		panic("nil store passed to NewWaitlistHandler")
	}
	return &WaitlistHandler{Store: store, Events: events, Log: log, validate: newValidator()}
}

// Create handles POST /waitlist.  All eight fields must be present; the
// response carries the generated id.
func (h *WaitlistHandler) Create(c echo.Context) error {
	f, err := h.bindFields(c)
	if err != nil {
		return h.validationFailure(c, err, msgCreateMissing)
	}
	ctx := c.Request().Context()
	id, err := h.Store.Create(ctx, f)
	if err != nil {
		return h.storeFailure(c, "create", err, false)
	}
	entry := f.Entry(id)
	h.publish(ctx, queue.NewEvent(queue.EventCreated, id, &entry))
	return ok(c, id)
}

// ListAll handles GET /waitlist and returns every entry not soft-deleted.
func (h *WaitlistHandler) ListAll(c echo.Context) error {
	items, err := h.Store.ListActive(c.Request().Context())
	if err != nil {
		return h.storeFailure(c, "list", err, false)
	}
	return ok(c, items)
}

// ListByLastName handles GET /waitlist/lastname/:cust_LName.  Matching is
// exact; results are ordered by position in line.
func (h *WaitlistHandler) ListByLastName(c echo.Context) error {
	items, err := h.Store.ListByLastName(c.Request().Context(), c.Param("cust_LName"))
	if err != nil {
		return h.storeFailure(c, "list by last name", err, false)
	}
	return ok(c, items)
}

// GetByID handles GET /waitlist/:id.  The result is always a list so an unknown
// id yields an empty list rather than 404.
func (h *WaitlistHandler) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	items, err := h.Store.GetByID(c.Request().Context(), id)
	if err != nil {
		return h.storeFailure(c, "get", err, false)
	}
	return ok(c, items)
}

// Update handles PATCH /waitlist/:id and overwrites all eight fields,
// is_deleted included.  Updating an id that does not exist is a silent no-op.
func (h *WaitlistHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	f, err := h.bindFields(c)
	if err != nil {
		return h.validationFailure(c, err, msgUpdateMissing)
	}
	ctx := c.Request().Context()
	if err := h.Store.Update(ctx, id, f); err != nil {
		return h.storeFailure(c, "update", err, true)
	}
	entry := f.Entry(id)
	h.publish(ctx, queue.NewEvent(queue.EventUpdated, id, &entry))
	return ok(c, nil)
}

// Delete handles DELETE /waitlist/:id by setting is_deleted.  Rows are never
// removed.
func (h *WaitlistHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	if err := h.Store.SoftDelete(ctx, id); err != nil {
		return h.storeFailure(c, "delete", err, true)
	}
	h.publish(ctx, queue.NewEvent(queue.EventDeleted, id, nil))
	return ok(c, nil)
}

// parseID reads the :id path parameter.  Zero and anything that is not a
// base-10 unsigned integer are rejected.
func parseID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

func (h *WaitlistHandler) bindFields(c echo.Context) (model.WaitlistFields, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return model.WaitlistFields{}, ErrInvalidBody
	}
	return decodeFields(h.validate, body)
}

func (h *WaitlistHandler) validationFailure(c echo.Context, err error, missingMsg string) error {
	switch {
	case errors.Is(err, ErrMissingFields):
		return fail(c, http.StatusBadRequest, missingMsg)
	case IsValidation(err):
		return fail(c, http.StatusBadRequest, err.Error())
	}
	h.Log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("request body validation failed")
	return fail(c, http.StatusInternalServerError, err.Error())
}

func (h *WaitlistHandler) storeFailure(c echo.Context, op string, err error, write bool) error {
	if IsValidation(err) {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	status := storeStatus(write)
	h.Log.Error().Err(err).Str("op", op).Bool("store", repository.IsStoreError(err)).Str("path", c.Request().URL.Path).Int("status", status).Msg("store call failed")
	return fail(c, status, err.Error())
}

// publish sends ev in the background.  Failures are logged and never reach
// the client.
func (h *WaitlistHandler) publish(ctx context.Context, ev queue.WaitlistEvent) {
	if h.Events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	go func() {
		defer cancel()
		if err := h.Events.Publish(ctx, ev); err != nil {
			h.Log.Warn().Err(err).Str("event", ev.Type).Uint64("entry_id", ev.EntryID).Msg("publish waitlist event failed")
		}
	}()
}
