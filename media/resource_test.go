package media_test

import (
	"bytes"
	"testing"

	"github.com/goliatone/go-experiences/media"
)

func TestResourceReleaseRunsRevokeOnce(t *testing.T) {
	revoked := 0
	r := media.NewResource("photo.jpg", "image/jpeg", []byte{1, 2, 3}, func() {
		revoked++
	})

	if r.Released() {
		t.Fatal("fresh resource reported released")
	}

	r.Release()
	r.Release()

	if revoked != 1 {
		t.Fatalf("revoke hook ran %d times, want 1", revoked)
	}
	if !r.Released() {
		t.Fatal("resource not marked released")
	}
	if r.Bytes() != nil {
		t.Fatal("released resource still returns bytes")
	}
}

func TestResourceBytesReturnsCopy(t *testing.T) {
	payload := []byte{1, 2, 3}
	r := media.NewResource("photo.jpg", "image/jpeg", payload, nil)

	got := r.Bytes()
	got[0] = 9

	if again := r.Bytes(); !bytes.Equal(again, []byte{1, 2, 3}) {
		t.Fatalf("caller mutation leaked into the resource: %v", again)
	}
}

func TestNilResourceIsSafe(t *testing.T) {
	var r *media.Resource

	r.Release()
	if !r.Released() {
		t.Fatal("nil resource should report released")
	}
	if r.Bytes() != nil || r.Size() != 0 || r.Name() != "" {
		t.Fatal("nil resource leaked data")
	}
}

func TestFromResource(t *testing.T) {
	r := media.NewResource("photo.jpg", "image/jpeg", []byte{1, 2}, nil)

	upload, ok := media.FromResource("featured_image", "A sunrise", r)
	if !ok {
		t.Fatal("live resource not snapshotted")
	}
	if upload.Field != "featured_image" || upload.Name != "photo.jpg" || upload.Alt != "A sunrise" {
		t.Fatalf("upload = %+v", upload)
	}
	if !bytes.Equal(upload.Data, []byte{1, 2}) {
		t.Fatalf("upload data = %v", upload.Data)
	}

	r.Release()
	if _, ok := media.FromResource("featured_image", "", r); ok {
		t.Fatal("released resource produced an upload")
	}
	if _, ok := media.FromResource("featured_image", "", nil); ok {
		t.Fatal("nil resource produced an upload")
	}
}
