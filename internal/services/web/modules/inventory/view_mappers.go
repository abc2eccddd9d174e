package inventory

import (
	"time"

	"github.com/homeoinvent/homeoinvent/internal/services/inventory/domain"
	"github.com/homeoinvent/homeoinvent/internal/services/inventory/storage"
	"github.com/homeoinvent/homeoinvent/internal/services/web/routepath"
	webtemplates "github.com/homeoinvent/homeoinvent/internal/services/web/templates"
)

var validationRuleKeys = map[string]string{
	"required":     "validation.required",
	"max":          "validation.max",
	"potency":      "validation.potency",
	"medicineform": "validation.medicineform",
	"number":       "validation.number",
	"datetime":     "validation.datetime",
}

func mapInventoryView(page storage.MedicinePage, pageToken string, form webtemplates.MedicineFormView, lowStockThreshold int, now time.Time, loc webtemplates.Localizer) webtemplates.InventoryView {
	rows := make([]webtemplates.MedicineRow, 0, len(page.Medicines))
	for _, medicine := range page.Medicines {
		rows = append(rows, mapMedicineRow(medicine, lowStockThreshold, now, loc))
	}
	view := webtemplates.InventoryView{Rows: rows, Form: form}
	if page.NextPageToken != "" {
		view.NextPageURL = routepath.InventoryPage(page.NextPageToken)
	}
	if pageToken != "" {
		view.FirstPageURL = routepath.Inventory
	}
	return view
}

func mapMedicineRow(medicine domain.Medicine, lowStockThreshold int, now time.Time, loc webtemplates.Localizer) webtemplates.MedicineRow {
	row := webtemplates.MedicineRow{
		Label:     medicine.Label(),
		FormKey:   medicine.Form.MessageKey(),
		Quantity:  quantityText(medicine, loc),
		Location:  medicine.Location,
		LowStock:  medicine.IsLowStock(lowStockThreshold),
		Expired:   medicine.IsExpired(now),
		EditURL:   routepath.Medicine(medicine.ID),
		DeleteURL: routepath.MedicineDelete(medicine.ID),
	}
	if medicine.HasExpiry() {
		row.ExpiresOn = medicine.ExpiresAt.UTC().Format(domain.DateLayout)
	}
	return row
}

func quantityText(medicine domain.Medicine, loc webtemplates.Localizer) string {
	text := webtemplates.Count(loc, medicine.Quantity)
	if medicine.Unit != "" {
		text += " " + medicine.Unit
	}
	return text
}

func newFormView(draft domain.Draft, action, submitKey, cancelURL string) webtemplates.MedicineFormView {
	return webtemplates.MedicineFormView{
		Action:      action,
		SubmitKey:   submitKey,
		CancelURL:   cancelURL,
		Name:        draft.Name,
		Potency:     draft.Potency,
		Form:        draft.Form,
		Quantity:    draft.Quantity,
		Unit:        draft.Unit,
		Location:    draft.Location,
		ExpiresOn:   draft.ExpiresOn,
		Notes:       draft.Notes,
		FormOptions: formOptions(),
	}
}

func formOptions() []webtemplates.SelectOption {
	options := make([]webtemplates.SelectOption, 0, len(domain.Forms))
	for _, form := range domain.Forms {
		options = append(options, webtemplates.SelectOption{Value: string(form), LabelKey: form.MessageKey()})
	}
	return options
}

func fieldErrorKeys(verr *domain.ValidationError) map[string]string {
	if verr == nil || len(verr.Fields) == 0 {
		return nil
	}
	keys := make(map[string]string, len(verr.Fields))
	for field, rule := range verr.Fields {
		key, ok := validationRuleKeys[rule]
		if !ok {
			key = "validation.invalid"
		}
		keys[field] = key
	}
	return keys
}
