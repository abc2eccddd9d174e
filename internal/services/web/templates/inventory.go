package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// MedicineRow is one remedy line of the inventory table.
type MedicineRow struct {
	Label     string
	FormKey   string
	Quantity  string
	Location  string
	ExpiresOn string
	LowStock  bool
	Expired   bool
	EditURL   string
	DeleteURL string
}

// InventoryView is the inventory page content.
type InventoryView struct {
	Rows         []MedicineRow
	NextPageURL  string
	FirstPageURL string
	Form         MedicineFormView
}

// InventoryPage renders the remedy table followed by the add form.
func InventoryPage(view InventoryView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section class="inventory"><h1>`)
		h.text(T(loc, "inventory.heading"))
		h.raw(`</h1>`)
		if len(view.Rows) == 0 {
			h.raw(`<p class="empty">`)
			h.text(T(loc, "inventory.empty"))
			h.raw(`</p>`)
		} else {
			h.raw(`<table class="medicine-table"><thead><tr>`)
			for _, key := range []string{
				"inventory.column_name",
				"inventory.column_form",
				"inventory.column_quantity",
				"inventory.column_location",
				"inventory.column_expires",
				"inventory.column_actions",
			} {
				h.raw(`<th scope="col">`)
				h.text(T(loc, key))
				h.raw(`</th>`)
			}
			h.raw(`</tr></thead><tbody>`)
			for _, row := range view.Rows {
				medicineRow(h, row, loc)
			}
			h.raw(`</tbody></table>`)
		}
		if view.NextPageURL != "" || view.FirstPageURL != "" {
			h.raw(`<nav class="pager">`)
			if view.FirstPageURL != "" {
				h.raw(`<a`)
				h.href(view.FirstPageURL)
				h.raw(`>`)
				h.text(T(loc, "inventory.first_page"))
				h.raw(`</a>`)
			}
			if view.NextPageURL != "" {
				h.raw(`<a rel="next"`)
				h.href(view.NextPageURL)
				h.raw(`>`)
				h.text(T(loc, "inventory.next_page"))
				h.raw(`</a>`)
			}
			h.raw(`</nav>`)
		}
		h.raw(`</section><section class="add-medicine"><h2>`)
		h.text(T(loc, "inventory.add_heading"))
		h.raw(`</h2>`)
		h.component(ctx, MedicineForm(view.Form, loc))
		h.raw(`</section>`)
		return h.err
	})
}

func medicineRow(h *htmlWriter, row MedicineRow, loc Localizer) {
	h.raw(`<tr><td>`)
	h.text(row.Label)
	if row.LowStock {
		h.raw(` <span class="badge badge-warning">`)
		h.text(T(loc, "inventory.badge_low_stock"))
		h.raw(`</span>`)
	}
	if row.Expired {
		h.raw(` <span class="badge badge-danger">`)
		h.text(T(loc, "inventory.badge_expired"))
		h.raw(`</span>`)
	}
	h.raw(`</td><td>`)
	h.text(T(loc, row.FormKey))
	h.raw(`</td><td>`)
	h.text(row.Quantity)
	h.raw(`</td><td>`)
	h.text(row.Location)
	h.raw(`</td><td>`)
	h.text(row.ExpiresOn)
	h.raw(`</td><td class="row-actions"><a`)
	h.href(row.EditURL)
	h.raw(`>`)
	h.text(T(loc, "action.edit"))
	h.raw(`</a>`)
	deleteButton(h, row.DeleteURL, row.Label, loc)
	h.raw(`</td></tr>`)
}

func deleteButton(h *htmlWriter, deleteURL, label string, loc Localizer) {
	h.raw(`<form class="inline-form" method="post"`)
	h.action(deleteURL)
	h.attr("hx-confirm", T(loc, "action.confirm_delete", label))
	h.raw(`><button type="submit" class="button-danger">`)
	h.text(T(loc, "action.delete"))
	h.raw(`</button></form>`)
}

// MedicineEditView is the medicine edit page content.
type MedicineEditView struct {
	Label     string
	DeleteURL string
	Form      MedicineFormView
}

// MedicineEditPage renders the edit form for one remedy.
func MedicineEditPage(view MedicineEditView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section class="medicine-edit"><h1>`)
		h.text(T(loc, "title.medicine_edit", view.Label))
		h.raw(`</h1>`)
		h.component(ctx, MedicineForm(view.Form, loc))
		deleteButton(h, view.DeleteURL, view.Label, loc)
		h.raw(`</section>`)
		return h.err
	})
}
