// Package datauri reads inline image references, of the form
//
//	data:image/<subtype>[;params],<base64 payload>
//
// Every other reference (http, file, fragment, other media types)
// is reported as not inline.
package datauri

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"strings"
	"sync"

	// registered image formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrNotInline is returned for references which do not
	// embed image content. It is not a failure: such references
	// are simply not rendered.
	ErrNotInline = errors.New("datauri: not an inline image reference")

	// ErrMalformed is returned when the embedded content
	// can't be decoded.
	ErrMalformed = errors.New("datauri: malformed inline content")
)

const scheme = "data:"

// DataURI is a parsed inline reference.
// Data is backed by a pooled buffer: it must not be used after Release.
type DataURI struct {
	MediaType string   // such as image/png
	Params    []string // such as base64
	Data      []byte   // the decoded payload

	buf *bytes.Buffer
}

var bufPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

func getBuffer() *bytes.Buffer {
	b := bufPool.Get().(*bytes.Buffer)
	b.Reset()
	return b
}

// IsInline returns true if `ref` has the shape of an inline image reference.
// The payload is not validated.
func IsInline(ref string) bool {
	_, _, _, ok := split(ref)
	return ok
}

// split cuts `ref` into media type, parameters and payload
func split(ref string) (mediaType string, params []string, payload string, ok bool) {
	ref = strings.TrimSpace(ref)
	if len(ref) < len(scheme) || !strings.EqualFold(ref[:len(scheme)], scheme) {
		return "", nil, "", false
	}
	header, payload, found := strings.Cut(ref[len(scheme):], ",")
	if !found || payload == "" {
		return "", nil, "", false
	}
	chunks := strings.Split(header, ";")
	mediaType = strings.ToLower(strings.TrimSpace(chunks[0]))
	subtype, isImage := strings.CutPrefix(mediaType, "image/")
	if !isImage || subtype == "" {
		return "", nil, "", false
	}
	return mediaType, chunks[1:], payload, true
}

// stripSpaces copies `s` into `b`, without ASCII white spaces,
// which are allowed (and common) in base64 payloads.
func stripSpaces(b *bytes.Buffer, s string) {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case ' ', '\t', '\n', '\r', '\f':
		default:
			b.WriteByte(c)
		}
	}
}

// Parse decodes the inline reference `ref`.
// ErrNotInline is returned if `ref` is not an inline image,
// and an error wrapping ErrMalformed if its payload is not valid base64.
// The caller must call Release once done with the returned value.
func Parse(ref string) (*DataURI, error) {
	mediaType, params, payload, ok := split(ref)
	if !ok {
		return nil, ErrNotInline
	}

	text := getBuffer()
	defer bufPool.Put(text)
	stripSpaces(text, payload)

	out := getBuffer()
	out.Grow(base64.StdEncoding.DecodedLen(text.Len()))
	data := out.Bytes()[:base64.StdEncoding.DecodedLen(text.Len())]
	n, err := base64.StdEncoding.Decode(data, text.Bytes())
	if err != nil {
		bufPool.Put(out)
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}

	return &DataURI{MediaType: mediaType, Params: params, Data: data[:n], buf: out}, nil
}

// Release returns the payload buffer to the pool.
// It is safe to call Release on a nil value, or several times.
func (d *DataURI) Release() {
	if d == nil || d.buf == nil {
		return
	}
	bufPool.Put(d.buf)
	d.buf = nil
	d.Data = nil
}

// DecodeImage decodes the payload, returning the image
// and its format name, as registered in the image package.
// PNG, JPEG, GIF, WebP, BMP and TIFF are supported.
func (d *DataURI) DecodeImage() (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(d.Data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", ErrMalformed, d.MediaType, err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, "", fmt.Errorf("%w: %s: empty image", ErrMalformed, d.MediaType)
	}
	return img, format, nil
}

// DecodeImage parses `ref` and decodes its image,
// releasing the transient payload buffer before returning.
func DecodeImage(ref string) (image.Image, string, error) {
	d, err := Parse(ref)
	if err != nil {
		return nil, "", err
	}
	defer d.Release()
	return d.DecodeImage()
}

// Encode returns the inline reference embedding `data`.
func Encode(mediaType string, data []byte) string {
	return scheme + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
