// Package branding holds product naming shared by every surface.
package branding

// AppName is the user-facing product name.
const AppName = "HomeoInvent"

// Tagline describes the product in page metadata.
const Tagline = "Household inventory for homeopathic remedies"
