// Package logo converts an uploaded image into an embeddable data URI
// and delivers it to the draft asynchronously. This is the one
// asynchronous boundary in the system: until the read resolves, the
// logo field keeps its prior value, and a failed read leaves it unset.
package logo

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/http"

	"tdsbill/internal/domain"
)

// Sink receives the resolved logo reference. The draft service
// implements it; assignment is last-write-wins.
type Sink interface {
	SetLogo(dataURI string)
}

// Reader validates and encodes logo uploads.
type Reader struct {
	maxBytes int64
}

// NewReader creates a Reader with the given size cap in megabytes.
func NewReader(maxSizeMB int64) *Reader {
	return &Reader{maxBytes: maxSizeMB * 1024 * 1024}
}

// Attach validates the image synchronously and encodes it into a data
// URI on a background goroutine, delivering the result to the sink when
// done. There is no cancellation: two in-flight reads race and the last
// delivery wins, which is accepted for a single-user single-field scope.
func (r *Reader) Attach(data []byte, sink Sink) error {
	if int64(len(data)) > r.maxBytes {
		return domain.ErrLogoTooLarge
	}

	// Magic-byte content type detection; the declared filename is not
	// trusted.
	sniff := data
	if len(sniff) > 512 {
		sniff = sniff[:512]
	}
	contentType := http.DetectContentType(sniff)
	if _, ok := domain.AllowedLogoContentTypes[contentType]; !ok {
		return domain.ErrUnsupportedLogoType
	}

	go func() {
		uri := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
		sink.SetLogo(uri)
		log.Printf("logo.Attach: resolved %s logo (%d bytes)", contentType, len(data))
	}()
	return nil
}
