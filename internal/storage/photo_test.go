package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhotoFromRowPrefersExternalURL(t *testing.T) {
	url := "https://bucket.nyc3.digitaloceanspaces.com/cuidadores/1_a.jpg"
	ref := PhotoFromRow(&url, []byte("stale"), "image/jpeg")
	assert.Equal(t, PhotoExternal, ref.Kind)
	assert.Equal(t, url, ref.URL)
	assert.Nil(t, ref.Data)
}

func TestPhotoFromRowInline(t *testing.T) {
	ref := PhotoFromRow(nil, []byte{0xff, 0xd8}, "image/jpeg")
	assert.Equal(t, PhotoInline, ref.Kind)
	assert.Equal(t, "image/jpeg", ref.ContentType)
	assert.Equal(t, []byte{0xff, 0xd8}, ref.Data)
}

func TestPhotoFromRowNone(t *testing.T) {
	empty := ""
	assert.Equal(t, PhotoNone, PhotoFromRow(nil, nil, "").Kind)
	assert.Equal(t, PhotoNone, PhotoFromRow(&empty, nil, "").Kind)
}

func TestInlinePhotoDefaultsContentType(t *testing.T) {
	ref := InlinePhoto([]byte{1}, "")
	assert.Equal(t, "application/octet-stream", ref.ContentType)
}

func TestDBStoreReturnsInlineRef(t *testing.T) {
	store := NewDBStore()
	ref, err := store.Save(context.Background(), "cuidadores/9_x.png", []byte{1, 2, 3}, "image/png")
	assert.NoError(t, err)
	assert.Equal(t, PhotoInline, ref.Kind)
	assert.Equal(t, []byte{1, 2, 3}, ref.Data)
}

func TestNewPhotoStoreUnknownType(t *testing.T) {
	_, err := NewPhotoStore(Config{Type: "ftp"})
	assert.Error(t, err)
}
