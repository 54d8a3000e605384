package logo_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tdsbill/internal/domain"
	"tdsbill/internal/logo"
)

// captureSink records logo deliveries for assertions.
type captureSink struct {
	mu   sync.Mutex
	uris []string
}

func (s *captureSink) SetLogo(dataURI string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uris = append(s.uris, dataURI)
}

func (s *captureSink) last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.uris) == 0 {
		return ""
	}
	return s.uris[len(s.uris)-1]
}

// pngBytes is a minimal payload carrying the PNG magic signature.
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

var jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 64)...)

func TestAttach_PNG(t *testing.T) {
	r := logo.NewReader(5)
	sink := &captureSink{}

	require.NoError(t, r.Attach(pngBytes, sink))

	assert.Eventually(t, func() bool {
		return strings.HasPrefix(sink.last(), "data:image/png;base64,")
	}, time.Second, 10*time.Millisecond)
}

func TestAttach_JPEG(t *testing.T) {
	r := logo.NewReader(5)
	sink := &captureSink{}

	require.NoError(t, r.Attach(jpegBytes, sink))

	assert.Eventually(t, func() bool {
		return strings.HasPrefix(sink.last(), "data:image/jpeg;base64,")
	}, time.Second, 10*time.Millisecond)
}

func TestAttach_RejectsNonImage(t *testing.T) {
	r := logo.NewReader(5)
	sink := &captureSink{}

	err := r.Attach([]byte("%PDF-1.7 definitely not an image"), sink)
	assert.ErrorIs(t, err, domain.ErrUnsupportedLogoType)
	assert.Empty(t, sink.last(), "rejected upload must never reach the draft")
}

func TestAttach_RejectsOversized(t *testing.T) {
	r := logo.NewReader(1)
	sink := &captureSink{}

	big := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 2*1024*1024)...)
	err := r.Attach(big, sink)
	assert.ErrorIs(t, err, domain.ErrLogoTooLarge)
}
