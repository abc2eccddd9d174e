package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// SelectOption is one choice of a select input.
type SelectOption struct {
	Value    string
	LabelKey string
}

// MedicineFormView carries the values and field errors of a medicine form.
// FieldErrors maps form field names to localization keys.
type MedicineFormView struct {
	Action      string
	SubmitKey   string
	CancelURL   string
	ErrorKey    string
	Name        string
	Potency     string
	Form        string
	Quantity    string
	Unit        string
	Location    string
	ExpiresOn   string
	Notes       string
	FormOptions []SelectOption
	FieldErrors map[string]string
}

// MedicineForm renders the create/edit form for a remedy.
func MedicineForm(view MedicineFormView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<form class="medicine-form" method="post"`)
		h.action(view.Action)
		h.raw(`>`)
		if view.ErrorKey != "" {
			h.raw(`<p class="form-error" role="alert">`)
			h.text(T(loc, view.ErrorKey))
			h.raw(`</p>`)
		}
		textField(h, view, loc, "name", view.Name, "text", true)
		textField(h, view, loc, "potency", view.Potency, "text", true)
		h.raw(`<small class="field-hint">`)
		h.text(T(loc, "field.potency_hint"))
		h.raw(`</small>`)

		h.raw(`<label for="medicine-form">`)
		h.text(T(loc, "field.form"))
		h.raw(`</label><select id="medicine-form" name="form" required>`)
		for _, option := range view.FormOptions {
			h.raw(`<option`)
			h.attr("value", option.Value)
			if option.Value == view.Form {
				h.raw(` selected`)
			}
			h.raw(`>`)
			h.text(T(loc, option.LabelKey))
			h.raw(`</option>`)
		}
		h.raw(`</select>`)
		fieldError(h, view, loc, "form")

		textField(h, view, loc, "quantity", view.Quantity, "number", true)
		textField(h, view, loc, "unit", view.Unit, "text", false)
		textField(h, view, loc, "location", view.Location, "text", false)
		textField(h, view, loc, "expires_on", view.ExpiresOn, "date", false)

		h.raw(`<label for="medicine-notes">`)
		h.text(T(loc, "field.notes"))
		h.raw(`</label><textarea id="medicine-notes" name="notes" rows="3">`)
		h.text(view.Notes)
		h.raw(`</textarea>`)
		fieldError(h, view, loc, "notes")

		h.raw(`<div class="form-actions"><button type="submit">`)
		h.text(T(loc, view.SubmitKey))
		h.raw(`</button>`)
		if view.CancelURL != "" {
			h.raw(`<a class="button-secondary"`)
			h.href(view.CancelURL)
			h.raw(`>`)
			h.text(T(loc, "action.cancel"))
			h.raw(`</a>`)
		}
		h.raw(`</div></form>`)
		return h.err
	})
}

func textField(h *htmlWriter, view MedicineFormView, loc Localizer, name, value, inputType string, required bool) {
	id := "medicine-" + name
	h.raw(`<label`)
	h.attr("for", id)
	h.raw(`>`)
	h.text(T(loc, "field."+name))
	h.raw(`</label><input`)
	h.attr("id", id)
	h.attr("name", name)
	h.attr("type", inputType)
	h.attr("value", value)
	if inputType == "number" {
		h.raw(` min="0"`)
	}
	if required {
		h.raw(` required`)
	}
	if _, failed := view.FieldErrors[name]; failed {
		h.raw(` aria-invalid="true"`)
	}
	h.raw(`>`)
	fieldError(h, view, loc, name)
}

func fieldError(h *htmlWriter, view MedicineFormView, loc Localizer, name string) {
	key, failed := view.FieldErrors[name]
	if !failed {
		return
	}
	h.raw(`<small class="field-error">`)
	h.text(T(loc, key))
	h.raw(`</small>`)
}
