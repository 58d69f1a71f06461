package media

// Upload is a binary attachment extracted from the block sequence, paired
// with the request it accompanies. The persistence collaborator receives the
// JSON request and this list separately.
type Upload struct {
	// Field names the request slot the attachment fills, e.g. "featured_image"
	// or "gallery".
	Field    string `json:"field"`
	Name     string `json:"name"`
	MimeType string `json:"mime_type,omitempty"`
	Alt      string `json:"alt,omitempty"`
	Data     []byte `json:"-"`
}

// FromResource snapshots a preview resource into an upload attachment. It
// returns false when the resource is absent or already released.
func FromResource(field, alt string, r *Resource) (Upload, bool) {
	if r == nil || r.Released() {
		return Upload{}, false
	}
	return Upload{
		Field:    field,
		Name:     r.Name(),
		MimeType: r.MimeType(),
		Alt:      alt,
		Data:     r.Bytes(),
	}, true
}
