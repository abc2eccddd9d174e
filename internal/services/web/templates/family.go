package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// FamilyView is the family sync page content.
type FamilyView struct {
	Connected     bool
	FamilyID      string
	MemberID      string
	MemberName    string
	ErrorKey      string
	ConnectURL    string
	DisconnectURL string
}

// FamilyPage renders the family sync status with connect or disconnect controls.
func FamilyPage(view FamilyView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section class="family"><h1>`)
		h.text(T(loc, "family.heading"))
		h.raw(`</h1><p>`)
		h.text(T(loc, "family.description"))
		h.raw(`</p>`)
		if view.ErrorKey != "" {
			h.raw(`<p class="form-error" role="alert">`)
			h.text(T(loc, view.ErrorKey))
			h.raw(`</p>`)
		}
		if view.Connected {
			h.raw(`<p class="status status-connected">`)
			h.text(T(loc, "family.status_connected", view.FamilyID, view.MemberName))
			h.raw(`</p><form method="post"`)
			h.action(view.DisconnectURL)
			h.raw(`><button type="submit" class="button-secondary">`)
			h.text(T(loc, "family.disconnect"))
			h.raw(`</button></form></section>`)
			return h.err
		}
		h.raw(`<p class="status">`)
		h.text(T(loc, "family.status_disconnected"))
		h.raw(`</p><form class="family-form" method="post"`)
		h.action(view.ConnectURL)
		h.raw(`>`)
		for _, field := range []struct{ name, key, value string }{
			{name: "family_id", key: "family.family_id", value: view.FamilyID},
			{name: "member_id", key: "family.member_id", value: view.MemberID},
			{name: "member_name", key: "family.member_name", value: view.MemberName},
		} {
			id := "family-" + field.name
			h.raw(`<label`)
			h.attr("for", id)
			h.raw(`>`)
			h.text(T(loc, field.key))
			h.raw(`</label><input type="text"`)
			h.attr("id", id)
			h.attr("name", field.name)
			h.attr("value", field.value)
			h.raw(`>`)
		}
		h.raw(`<button type="submit">`)
		h.text(T(loc, "family.connect"))
		h.raw(`</button></form></section>`)
		return h.err
	})
}
