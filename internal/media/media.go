// Package media describes the upload formats the analyzer accepts.
package media

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Kind is the broad media category of an upload. It only drives previews.
type Kind string

const (
	KindAudio Kind = "audio"
	KindVideo Kind = "video"
	KindImage Kind = "image"
)

// ErrUnsupportedFormat is returned for extensions outside the accepted list.
var ErrUnsupportedFormat = errors.New("unsupported media format")

// Format is one accepted file extension.
type Format struct {
	Ext      string
	MIMEType string
	Kind     Kind
}

var formats = []Format{
	{".mp3", "audio/mpeg", KindAudio},
	{".wav", "audio/wav", KindAudio},
	{".m4a", "audio/mp4", KindAudio},
	{".mp4", "video/mp4", KindVideo},
	{".mov", "video/quicktime", KindVideo},
	{".webm", "video/webm", KindVideo},
	{".jpg", "image/jpeg", KindImage},
	{".jpeg", "image/jpeg", KindImage},
	{".png", "image/png", KindImage},
	{".webp", "image/webp", KindImage},
}

// Formats returns every accepted format.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// Lookup resolves the format of a file name by its extension.
func Lookup(name string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(name))
	for _, f := range formats {
		if f.Ext == ext {
			return f, nil
		}
	}
	return Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// IsSupported reports whether name has an accepted extension.
func IsSupported(name string) bool {
	_, err := Lookup(name)
	return err == nil
}
