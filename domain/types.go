package domain

// Status represents lifecycle states for experience documents
type Status string

const (
	// StatusDraft indicates an experience still under preparation
	StatusDraft Status = "draft"
	// StatusPublished identifies an experience available to attendees
	StatusPublished Status = "published"
	// StatusArchived marks an experience retained for history but no longer listed
	StatusArchived Status = "archived"
)

// Visibility controls whether a published experience appears in public listings
type Visibility string

const (
	// VisibilityPublic lists the experience on marketplace surfaces
	VisibilityPublic Visibility = "public"
	// VisibilityPrivate restricts the experience to direct links
	VisibilityPrivate Visibility = "private"
)

// VisibilityFromFlag maps the builder level isPublic flag onto a Visibility.
func VisibilityFromFlag(isPublic bool) Visibility {
	if isPublic {
		return VisibilityPublic
	}
	return VisibilityPrivate
}
