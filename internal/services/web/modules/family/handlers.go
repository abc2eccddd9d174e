package family

import (
	"net/http"

	"github.com/homeoinvent/homeoinvent/internal/services/familysync"
	webi18n "github.com/homeoinvent/homeoinvent/internal/services/web/i18n"
	apperrors "github.com/homeoinvent/homeoinvent/internal/services/web/platform/errors"
	"github.com/homeoinvent/homeoinvent/internal/services/web/platform/httpx"
	"github.com/homeoinvent/homeoinvent/internal/services/web/platform/pagerender"
	"github.com/homeoinvent/homeoinvent/internal/services/web/platform/weberror"
	"github.com/homeoinvent/homeoinvent/internal/services/web/routepath"
	webtemplates "github.com/homeoinvent/homeoinvent/internal/services/web/templates"
)

type familyService interface {
	status() (familysync.Membership, bool, error)
	connect(familyID, memberID, memberName string) error
	disconnect() error
}

type handlers struct {
	service familyService
}

func newHandlers(s familyService) handlers {
	return handlers{service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, "", familysync.Membership{})
}

func (h handlers) redirectIndex(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, routepath.Family)
}

func (h handlers) handleConnect(w http.ResponseWriter, r *http.Request) {
	if err := httpx.ParseForm(w, r); err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	submitted := familysync.Membership{
		FamilyID:   r.PostFormValue("family_id"),
		MemberID:   r.PostFormValue("member_id"),
		MemberName: r.PostFormValue("member_name"),
	}
	err := h.service.connect(submitted.FamilyID, submitted.MemberID, submitted.MemberName)
	if err == nil {
		httpx.WriteRedirect(w, r, routepath.Family)
		return
	}
	if apperrors.KindOf(err) == apperrors.KindInvalidInput {
		h.renderPage(w, r, http.StatusUnprocessableEntity, apperrors.LocalizationKey(err), submitted)
		return
	}
	weberror.WriteModuleError(w, r, err)
}

func (h handlers) handleDisconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.service.disconnect(); err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Family)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}

// renderPage shows the stored membership, or the submitted values when the
// connect form is being re-shown with an error.
func (h handlers) renderPage(w http.ResponseWriter, r *http.Request, status int, errorKey string, submitted familysync.Membership) {
	membership, connected, err := h.service.status()
	if err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	if errorKey != "" {
		membership, connected = submitted, false
	}
	loc, lang := webi18n.ResolveLocalizer(w, r)
	err = pagerender.WritePage(w, r, pagerender.Page{
		Title:      webtemplates.T(loc, "title.family"),
		StatusCode: status,
		Fragment:   webtemplates.FamilyPage(mapFamilyView(membership, connected, errorKey), loc),
		Loc:        loc,
		Lang:       lang,
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err)
	}
}

func mapFamilyView(membership familysync.Membership, connected bool, errorKey string) webtemplates.FamilyView {
	return webtemplates.FamilyView{
		Connected:     connected,
		FamilyID:      membership.FamilyID,
		MemberID:      membership.MemberID,
		MemberName:    membership.MemberName,
		ErrorKey:      errorKey,
		ConnectURL:    routepath.FamilyConnect,
		DisconnectURL: routepath.FamilyDisconnect,
	}
}
