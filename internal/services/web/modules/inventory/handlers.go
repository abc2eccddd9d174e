package inventory

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/homeoinvent/homeoinvent/internal/services/inventory/domain"
	"github.com/homeoinvent/homeoinvent/internal/services/inventory/storage"
	webi18n "github.com/homeoinvent/homeoinvent/internal/services/web/i18n"
	apperrors "github.com/homeoinvent/homeoinvent/internal/services/web/platform/errors"
	"github.com/homeoinvent/homeoinvent/internal/services/web/platform/httpx"
	"github.com/homeoinvent/homeoinvent/internal/services/web/platform/pagerender"
	"github.com/homeoinvent/homeoinvent/internal/services/web/platform/weberror"
	"github.com/homeoinvent/homeoinvent/internal/services/web/routepath"
	webtemplates "github.com/homeoinvent/homeoinvent/internal/services/web/templates"
)

// inventoryService defines the service operations used by inventory handlers.
type inventoryService interface {
	listPage(ctx context.Context, pageSize int, pageToken string) (storage.MedicinePage, error)
	getMedicine(ctx context.Context, medicineID string) (domain.Medicine, error)
	createMedicine(ctx context.Context, draft domain.Draft) (domain.Medicine, error)
	updateMedicine(ctx context.Context, medicineID string, draft domain.Draft) (domain.Medicine, error)
	deleteMedicine(ctx context.Context, medicineID string) error
}

type handlers struct {
	service inventoryService
	opts    Options
}

func newHandlers(s inventoryService, opts Options) handlers {
	return handlers{service: s, opts: opts}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	pageToken := strings.TrimSpace(r.URL.Query().Get(routepath.PageQueryKey))
	h.renderIndex(w, r, http.StatusOK, pageToken, newFormView(domain.Draft{}, routepath.Medicines, "action.add", ""))
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := httpx.ParseForm(w, r); err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	draft := draftFromRequest(r)
	_, err := h.service.createMedicine(httpx.RequestContext(r), draft)
	if err == nil {
		httpx.WriteRedirect(w, r, routepath.Inventory)
		return
	}
	form := newFormView(draft, routepath.Medicines, "action.add", "")
	if status, ok := applyFormError(&form, err); ok {
		h.renderIndex(w, r, status, "", form)
		return
	}
	weberror.WriteModuleError(w, r, err)
}

func (h handlers) handleEdit(w http.ResponseWriter, r *http.Request) {
	medicineID := r.PathValue(routepath.MedicineIDPathValueName)
	medicine, err := h.service.getMedicine(httpx.RequestContext(r), medicineID)
	if err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	form := newFormView(domain.DraftFromMedicine(medicine), routepath.Medicine(medicine.ID), "action.save", routepath.Inventory)
	h.renderEdit(w, r, http.StatusOK, medicine, form)
}

func (h handlers) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if err := httpx.ParseForm(w, r); err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	medicineID := r.PathValue(routepath.MedicineIDPathValueName)
	draft := draftFromRequest(r)
	current, err := h.service.updateMedicine(httpx.RequestContext(r), medicineID, draft)
	if err == nil {
		httpx.WriteRedirect(w, r, routepath.Inventory)
		return
	}
	if current.ID == "" {
		weberror.WriteModuleError(w, r, err)
		return
	}
	form := newFormView(draft, routepath.Medicine(current.ID), "action.save", routepath.Inventory)
	if status, ok := applyFormError(&form, err); ok {
		h.renderEdit(w, r, status, current, form)
		return
	}
	weberror.WriteModuleError(w, r, err)
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	medicineID := r.PathValue(routepath.MedicineIDPathValueName)
	if err := h.service.deleteMedicine(httpx.RequestContext(r), medicineID); err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Inventory)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}

func (h handlers) renderIndex(w http.ResponseWriter, r *http.Request, status int, pageToken string, form webtemplates.MedicineFormView) {
	page, err := h.service.listPage(httpx.RequestContext(r), h.opts.PageSize, pageToken)
	if err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	loc, lang := webi18n.ResolveLocalizer(w, r)
	view := mapInventoryView(page, pageToken, form, h.opts.LowStockThreshold, h.opts.Now(), loc)
	h.writePage(w, r, pagerender.Page{
		Title:      webtemplates.T(loc, "title.inventory"),
		StatusCode: status,
		Fragment:   webtemplates.InventoryPage(view, loc),
		Loc:        loc,
		Lang:       lang,
	})
}

func (h handlers) renderEdit(w http.ResponseWriter, r *http.Request, status int, medicine domain.Medicine, form webtemplates.MedicineFormView) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	h.writePage(w, r, pagerender.Page{
		Title:      webtemplates.T(loc, "title.medicine_edit", medicine.Label()),
		StatusCode: status,
		Fragment: webtemplates.MedicineEditPage(webtemplates.MedicineEditView{
			Label:     medicine.Label(),
			DeleteURL: routepath.MedicineDelete(medicine.ID),
			Form:      form,
		}, loc),
		Loc:  loc,
		Lang: lang,
	})
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.WritePage(w, r, page); err != nil {
		weberror.WriteModuleError(w, r, err)
	}
}

func draftFromRequest(r *http.Request) domain.Draft {
	return domain.Draft{
		Name:      r.PostFormValue("name"),
		Potency:   r.PostFormValue("potency"),
		Form:      r.PostFormValue("form"),
		Quantity:  r.PostFormValue("quantity"),
		Unit:      r.PostFormValue("unit"),
		Location:  r.PostFormValue("location"),
		Notes:     r.PostFormValue("notes"),
		ExpiresOn: r.PostFormValue("expires_on"),
	}
}

// applyFormError folds validation and duplicate failures into the form view
// and returns the status the re-rendered form should carry.
func applyFormError(form *webtemplates.MedicineFormView, err error) (int, bool) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		form.FieldErrors = fieldErrorKeys(verr)
		form.ErrorKey = "error.medicine_invalid"
		return http.StatusUnprocessableEntity, true
	}
	if apperrors.KindOf(err) == apperrors.KindConflict {
		form.ErrorKey = apperrors.LocalizationKey(err)
		return http.StatusConflict, true
	}
	return 0, false
}
