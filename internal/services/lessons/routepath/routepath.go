// Package routepath centralizes route constants for the lessons service.
package routepath

// Service-level routes.
const (
	Root       = "/"
	Healthz    = "/healthz"
	Metrics    = "/metrics"
	StateReset = "/state/reset"
)

// Lesson module mount prefixes.
const (
	SmartHomePrefix  = "/smart-home"
	RegistrarPrefix  = "/registrar"
	InventoryPrefix  = "/inventory"
	PostOfficePrefix = "/post-office"
	LibraryPrefix    = "/library"
	NewsDeskPrefix   = "/news-desk"
	ATMPrefix        = "/atm"
	GardenPrefix     = "/garden"
)
