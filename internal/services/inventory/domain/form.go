package domain

import "strings"

// Form is the physical preparation of a remedy.
type Form string

const (
	FormPellets  Form = "pellets"
	FormGlobules Form = "globules"
	FormTablets  Form = "tablets"
	FormDrops    Form = "drops"
	FormOintment Form = "ointment"
	FormPowder   Form = "powder"
	FormOther    Form = "other"
)

// Forms lists every supported preparation in display order.
var Forms = []Form{FormPellets, FormGlobules, FormTablets, FormDrops, FormOintment, FormPowder, FormOther}

// ParseForm matches a preparation name case-insensitively.
func ParseForm(raw string) (Form, bool) {
	value := Form(strings.ToLower(strings.TrimSpace(raw)))
	for _, form := range Forms {
		if form == value {
			return form, true
		}
	}
	return "", false
}

// MessageKey returns the localization key for the form label.
func (f Form) MessageKey() string {
	return "form." + string(f)
}
