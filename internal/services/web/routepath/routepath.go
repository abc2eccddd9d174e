// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root                    = "/"
	Inventory               = Root
	Analytics               = "/analytics"
	AnalyticsPrefix         = "/analytics/"
	Family                  = "/family"
	FamilyPrefix            = "/family/"
	FamilyConnect           = "/family/connect"
	FamilyDisconnect        = "/family/disconnect"
	Medicines               = "/medicines"
	MedicinesPrefix         = "/medicines/"
	MedicinePattern         = MedicinesPrefix + "{medicineID}"
	MedicineDeletePattern   = MedicinesPrefix + "{medicineID}/delete"
	MedicineRestPattern     = MedicinesPrefix + "{medicineID}/{rest...}"
	Health                  = "/up"
	StaticPrefix            = "/static/"
	PageQueryKey            = "page"
	MedicineIDPathValueName = "medicineID"
)

// Medicine returns the medicine edit route.
func Medicine(medicineID string) string {
	return MedicinesPrefix + escapeSegment(medicineID)
}

// MedicineDelete returns the medicine delete route.
func MedicineDelete(medicineID string) string {
	return Medicine(medicineID) + "/delete"
}

// InventoryPage returns the inventory route positioned at a page token.
func InventoryPage(pageToken string) string {
	pageToken = strings.TrimSpace(pageToken)
	if pageToken == "" {
		return Inventory
	}
	return Inventory + "?" + PageQueryKey + "=" + url.QueryEscape(pageToken)
}

// Static returns the URL for an embedded static asset.
func Static(name string) string {
	return StaticPrefix + strings.TrimLeft(strings.TrimSpace(name), "/")
}

func escapeSegment(value string) string {
	return url.PathEscape(strings.TrimSpace(value))
}
