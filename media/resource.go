package media

import "sync"

// Resource is a locally previewed binary acquired when the host selects a
// file, before any upload has happened. The preview object reference is a
// scoped resource: it must be released when no block references it any more,
// never left to garbage collection timing.
//
// Duplicated blocks share the same Resource pointer; the owning session
// releases it only once the last referencing block is gone.
type Resource struct {
	mu       sync.Mutex
	name     string
	mime     string
	data     []byte
	revoke   func()
	released bool
}

// NewResource acquires a preview resource for the supplied binary. The
// revoke hook may be nil; when set it runs exactly once on release (e.g. to
// revoke a browser object URL or delete a temp file).
func NewResource(name, mimeType string, data []byte, revoke func()) *Resource {
	return &Resource{
		name:   name,
		mime:   mimeType,
		data:   data,
		revoke: revoke,
	}
}

// Name reports the original file name.
func (r *Resource) Name() string {
	if r == nil {
		return ""
	}
	return r.name
}

// MimeType reports the detected content type.
func (r *Resource) MimeType() string {
	if r == nil {
		return ""
	}
	return r.mime
}

// Size reports the binary length in bytes.
func (r *Resource) Size() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}

// Bytes returns a copy of the binary payload, or nil once released.
func (r *Resource) Bytes() []byte {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return nil
	}
	out := make([]byte, len(r.data))
	copy(out, r.data)
	return out
}

// Release revokes the preview binary. It is idempotent.
func (r *Resource) Release() {
	if r == nil {
		return
	}
	r.mu.Lock()
	if r.released {
		r.mu.Unlock()
		return
	}
	r.released = true
	r.data = nil
	revoke := r.revoke
	r.revoke = nil
	r.mu.Unlock()

	if revoke != nil {
		revoke()
	}
}

// Released reports whether the resource has been revoked.
func (r *Resource) Released() bool {
	if r == nil {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.released
}
