package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"go-cms-app/internal/admin"
	"go-cms-app/internal/logger"
	"go-cms-app/internal/middleware"
	"go-cms-app/internal/view"

	"github.com/go-chi/chi/v5"
)

// adminPerPage is the page size of the dashboard list views.
const adminPerPage = 20

// AdminHandler serves the record-management dashboard over the entity
// registry. Every route here sits behind the authorization middleware.
type AdminHandler struct {
	registry *admin.Registry
	view     *view.View
	log      logger.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(registry *admin.Registry, v *view.View, log logger.Logger) *AdminHandler {
	return &AdminHandler{registry: registry, view: v, log: log}
}

// indexHandler lists the managed entities.
func (h *AdminHandler) indexHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	data := map[string]interface{}{
		"Resources": h.registry.All(),
		"UserInfo":  middleware.GetUserInfo(r.Context()),
	}
	if err := h.view.Render(w, r, "admin_index.html", data); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render dashboard", Code: http.StatusInternalServerError}
	}
	return nil
}

// listHandler shows one page of a resource's records.
func (h *AdminHandler) listHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	res, appErr := h.resource(r)
	if appErr != nil {
		return appErr
	}
	page := queryInt(r, "page", 1)

	records, p, err := res.Store.List(r.Context(), page, adminPerPage)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to list records", Code: http.StatusInternalServerError}
	}

	data := map[string]interface{}{
		"Resource":   res,
		"Records":    records,
		"Pagination": p,
		"PageArgs":   pageArgs(r),
	}
	if err := h.view.Render(w, r, "admin_list.html", data); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render record list", Code: http.StatusInternalServerError}
	}
	return nil
}

// newFormHandler renders an empty create form for a resource.
func (h *AdminHandler) newFormHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	res, appErr := h.resource(r)
	if appErr != nil {
		return appErr
	}
	return h.renderForm(w, r, res, nil, "/admin/"+res.Name)
}

// createHandler inserts a new record from the submitted form.
func (h *AdminHandler) createHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	res, appErr := h.resource(r)
	if appErr != nil {
		return appErr
	}
	values, appErr := formValues(r, res)
	if appErr != nil {
		return appErr
	}
	if err := res.Store.Create(r.Context(), values); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to create record", Code: http.StatusInternalServerError}
	}
	http.Redirect(w, r, "/admin/"+res.Name, http.StatusFound)
	return nil
}

// editFormHandler renders the edit form for an existing record.
func (h *AdminHandler) editFormHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	res, appErr := h.resource(r)
	if appErr != nil {
		return appErr
	}
	id, appErr := recordID(r)
	if appErr != nil {
		return appErr
	}
	record, err := res.Store.Get(r.Context(), id)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load record", Code: http.StatusInternalServerError}
	}
	if record == nil {
		return &middleware.AppError{Error: fmt.Errorf("%s record %d not found", res.Name, id), Message: "Record not found", Code: http.StatusNotFound}
	}
	return h.renderForm(w, r, res, record, fmt.Sprintf("/admin/%s/%d", res.Name, id))
}

// updateHandler rewrites an existing record from the submitted form.
func (h *AdminHandler) updateHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	res, appErr := h.resource(r)
	if appErr != nil {
		return appErr
	}
	id, appErr := recordID(r)
	if appErr != nil {
		return appErr
	}
	values, appErr := formValues(r, res)
	if appErr != nil {
		return appErr
	}
	if err := res.Store.Update(r.Context(), id, values); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to update record", Code: http.StatusInternalServerError}
	}
	http.Redirect(w, r, "/admin/"+res.Name, http.StatusFound)
	return nil
}

// deleteHandler removes a record.
func (h *AdminHandler) deleteHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	res, appErr := h.resource(r)
	if appErr != nil {
		return appErr
	}
	id, appErr := recordID(r)
	if appErr != nil {
		return appErr
	}
	if err := res.Store.Delete(r.Context(), id); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to delete record", Code: http.StatusInternalServerError}
	}
	http.Redirect(w, r, "/admin/"+res.Name, http.StatusFound)
	return nil
}

func (h *AdminHandler) resource(r *http.Request) (*admin.Resource, *middleware.AppError) {
	name := chi.URLParam(r, "resource")
	res, ok := h.registry.Lookup(name)
	if !ok {
		return nil, &middleware.AppError{Error: fmt.Errorf("unknown resource %q", name), Message: "Unknown resource", Code: http.StatusNotFound}
	}
	return res, nil
}

func (h *AdminHandler) renderForm(w http.ResponseWriter, r *http.Request, res *admin.Resource, record *admin.Record, action string) *middleware.AppError {
	data := map[string]interface{}{
		"Resource": res,
		"Record":   record,
		"Action":   action,
	}
	if err := h.view.Render(w, r, "admin_form.html", data); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render form", Code: http.StatusInternalServerError}
	}
	return nil
}

func recordID(r *http.Request) (int64, *middleware.AppError) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &middleware.AppError{Error: err, Message: "Invalid record id", Code: http.StatusBadRequest}
	}
	return id, nil
}

func formValues(r *http.Request, res *admin.Resource) ([]string, *middleware.AppError) {
	if err := r.ParseForm(); err != nil {
		return nil, &middleware.AppError{Error: err, Message: "Invalid form submission", Code: http.StatusBadRequest}
	}
	values := make([]string, len(res.Fields))
	for i, f := range res.Fields {
		values[i] = r.PostFormValue(f.Name)
	}
	return values, nil
}
