package storage

// PhotoKind discriminates the ways a profile photo can be represented.
type PhotoKind int

const (
	// PhotoNone means no photo; callers substitute the placeholder.
	PhotoNone PhotoKind = iota
	// PhotoExternal references an object-storage URL.
	PhotoExternal
	// PhotoInline carries the raw bytes stored on the profile row.
	PhotoInline
)

// PhotoRef is the single representation of a profile photo across both
// deployment variants.
type PhotoRef struct {
	Kind        PhotoKind
	URL         string
	Data        []byte
	ContentType string
}

func NoPhoto() PhotoRef {
	return PhotoRef{Kind: PhotoNone}
}

func ExternalPhoto(url string) PhotoRef {
	if url == "" {
		return NoPhoto()
	}
	return PhotoRef{Kind: PhotoExternal, URL: url}
}

func InlinePhoto(data []byte, contentType string) PhotoRef {
	if len(data) == 0 {
		return NoPhoto()
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return PhotoRef{Kind: PhotoInline, Data: data, ContentType: contentType}
}

// PhotoFromRow rebuilds the reference from the persisted profile columns.
// An external URL wins over stale inline bytes.
func PhotoFromRow(url *string, data []byte, contentType string) PhotoRef {
	if url != nil && *url != "" {
		return ExternalPhoto(*url)
	}
	if len(data) > 0 {
		return InlinePhoto(data, contentType)
	}
	return NoPhoto()
}
