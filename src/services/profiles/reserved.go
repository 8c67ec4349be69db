package profiles

// reservedIdentifiers are path roots owned by fixed pages and API groups.
// They can never be claimed as handles, so the public resolver never has
// to disambiguate them from real routes.
var reservedIdentifiers = map[string]bool{
	"dashboard":      true,
	"settings":       true,
	"api":            true,
	"auth":           true,
	"users":          true,
	"profiles":       true,
	"emails":         true,
	"feedbacks":      true,
	"feedback-types": true,
	"apikeys":        true,
	"swagger":        true,
	"favicon.ico":    true,
}

// IsReservedIdentifier reports whether an identifier is off limits for
// registration and resolution.
func IsReservedIdentifier(identifier string) bool {
	return reservedIdentifiers[identifier]
}
