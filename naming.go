package fontreg

// SystemFamily is the sentinel family name that always bypasses the
// registry: it refers to whatever the platform considers its default UI
// font. ResolveFamily returns it as the fallback for fonts that are not
// loaded, since text must always render with something.
const SystemFamily = "System"

// namespacedName combines the process session id with a caller-chosen font
// name. Font names are only unique within one process; the session id keeps
// instances (dev-workflow reloads in particular) from colliding in the
// native layer's global registry.
func namespacedName(sessionID, name string) string {
	return sessionID + "-" + name
}
