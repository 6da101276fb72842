package configuration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedImageHost(t *testing.T) {
	c := &Config{ImageHosts: "nrs.harvard.edu, ids.lib.harvard.edu"}

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"exact host", "https://nrs.harvard.edu/urn-3:HUAM:1", true},
		{"subdomain", "https://iiif.ids.lib.harvard.edu/x.jpg", true},
		{"uppercase host", "https://NRS.Harvard.edu/urn", true},
		{"foreign host", "https://example.com/x.jpg", false},
		{"suffix trick", "https://evilnrs.harvard.edu.example.com/x.jpg", false},
		{"file scheme", "file:///etc/passwd", false},
		{"garbage", "::::", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsAllowedImageHost(tt.url))
		})
	}
}

func TestDurations(t *testing.T) {
	c := &Config{RequestTimeoutSeconds: 15, SessionIdleMinutes: 60, LookupMaxAgeHours: 24}

	assert.Equal(t, 15*time.Second, c.RequestTimeout())
	assert.Equal(t, time.Hour, c.SessionIdleTimeout())
	assert.Equal(t, 24*time.Hour, c.LookupMaxAge())
}
