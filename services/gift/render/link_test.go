package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"http://example.com", "/g/abc", "http://example.com/g/abc"},
		{"http://example.com/", "/g/abc", "http://example.com/g/abc"},
		{"http://example.com//", "g/abc", "http://example.com/g/abc"},
		{"https://gifts.example.org/clinic", "g/abc", "https://gifts.example.org/clinic/g/abc"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AbsoluteURL(tt.base, tt.path), "%s + %s", tt.base, tt.path)
	}
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8000/g/Ab-_9xYz", PublicURL("http://localhost:8000/", "Ab-_9xYz"))
}

func TestTokenQuery(t *testing.T) {
	assert.Equal(t, "", TokenQuery(""))
	assert.Equal(t, "?token=s3cret", TokenQuery("s3cret"))
	assert.Equal(t, "?token=a+b%26c", TokenQuery("a b&c"))
}
