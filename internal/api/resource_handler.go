package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/mart-api/internal/api/shared"
	"github.com/phrazzld/mart-api/internal/platform/logger"
	"github.com/phrazzld/mart-api/internal/store"
	"github.com/phrazzld/mart-api/internal/validation"
)

// Resource describes one back-office entity exposed over HTTP.
type Resource struct {
	// Name is the singular display name used in messages, e.g. "Invoice item".
	Name string
	// Collection names the resource in log records, e.g. "invoice_items".
	Collection string
	// Rules validate create and update bodies and whitelist their fields.
	Rules validation.Rules
	// Filters are the query parameters applied as exact-match constraints.
	Filters []string
}

var restoreRules = validation.Rules{
	{Field: "id", Tags: "filled,integer"},
}

// ResourceHandler serves list, get, create, update, delete and restore
// for a single resource.
type ResourceHandler[T any] struct {
	res       Resource
	store     store.ResourceStore[T]
	validator *validation.Validator
}

// NewResourceHandler creates a handler for res backed by s.
func NewResourceHandler[T any](res Resource, s store.ResourceStore[T], v *validation.Validator) *ResourceHandler[T] {
	return &ResourceHandler[T]{res: res, store: s, validator: v}
}

// List handles GET /<resource>.
func (h *ResourceHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.store.List(r.Context(), listQuery(r, h.res.Filters))
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "", NewPageResponse(page))
}

// All handles the unpaginated listing: every active row in id order.
func (h *ResourceHandler[T]) All(w http.ResponseWriter, r *http.Request) {
	items := make([]T, 0)
	q := store.ListQuery{Page: 1, PerPage: store.MaxPerPage}
	for {
		page, err := h.store.List(r.Context(), q)
		if err != nil {
			h.respondStoreError(w, r, err)
			return
		}
		items = append(items, page.Items...)
		if len(page.Items) < q.PerPage || int64(len(items)) >= page.Total {
			break
		}
		q.Page++
	}

	shared.RespondWithData(w, r, http.StatusOK, "", items)
}

// Get handles GET /<resource>/{id}.
func (h *ResourceHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.respondNotFound(w, r)
		return
	}

	entity, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, "", entity)
}

// Create handles POST /<resource>.
func (h *ResourceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	input, ok := h.validInput(w, r, h.res.Rules)
	if !ok {
		return
	}

	entity := new(T)
	if err := bind(h.res.Rules.Pick(input), entity); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgUnexpected, err)
		return
	}
	if err := h.store.Create(r.Context(), entity); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context()).Info("resource created", "resource", h.res.Collection)
	shared.RespondWithData(w, r, http.StatusCreated, h.res.Name+" created successfully", entity)
}

// Update handles PUT /<resource>/{id}. Every whitelisted field is replaced;
// absent nullable fields are cleared.
func (h *ResourceHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	input, ok := h.validInput(w, r, h.res.Rules)
	if !ok {
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		h.respondNotFound(w, r)
		return
	}
	entity, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	if err := bind(h.res.Rules.Pick(input), entity); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgUnexpected, err)
		return
	}
	if err := h.store.Update(r.Context(), entity); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, h.res.Name+" updated successfully", entity)
}

// Delete handles DELETE /<resource>/{id}.
func (h *ResourceHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.respondNotFound(w, r)
		return
	}

	entity, err := h.store.Delete(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context()).Info("resource deleted", "resource", h.res.Collection, "id", id)
	shared.RespondWithData(w, r, http.StatusOK, h.res.Name+" deleted successfully", entity)
}

// Restore handles POST /<resource>/restore with body {"id": n}.
func (h *ResourceHandler[T]) Restore(w http.ResponseWriter, r *http.Request) {
	input, ok := h.validInput(w, r, restoreRules)
	if !ok {
		return
	}

	id, ok := inputID(input["id"])
	if !ok {
		h.respondNotFound(w, r)
		return
	}

	entity, err := h.store.Restore(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context()).Info("resource restored", "resource", h.res.Collection, "id", id)
	shared.RespondWithData(w, r, http.StatusOK, h.res.Name+" restored successfully", entity)
}

// validInput decodes and validates the body, writing the 400/422/500
// response itself when it reports false.
func (h *ResourceHandler[T]) validInput(w http.ResponseWriter, r *http.Request, rules validation.Rules) (map[string]any, bool) {
	return decodeAndValidate(w, r, h.validator, rules)
}

func (h *ResourceHandler[T]) respondNotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, h.res.Name+" not found")
}

func (h *ResourceHandler[T]) respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	msg := GetSafeErrorMessage(err, h.res.Name)
	if errors.Is(err, store.ErrNotFound) {
		shared.RespondWithError(w, r, status, msg)
		return
	}
	shared.RespondWithErrorAndLog(w, r, status, msg, err)
}

func decodeAndValidate(
	w http.ResponseWriter,
	r *http.Request,
	v *validation.Validator,
	rules validation.Rules,
) (map[string]any, bool) {
	input, err := shared.DecodeInput(w, r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidRequest, err)
		return nil, false
	}

	fieldErrs, err := v.Validate(r.Context(), input, rules)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgUnexpected, err)
		return nil, false
	}
	if len(fieldErrs) > 0 {
		shared.RespondWithValidationErrors(w, r, fieldErrs)
		return nil, false
	}
	return input, true
}
