package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginHost(t *testing.T) {
	assert.Equal(t, "sevafoundation.org", originHost("https://sevafoundation.org"))
	assert.Equal(t, "sevafoundation.org:8443", originHost("https://sevafoundation.org:8443"))
	assert.Equal(t, "localhost:3000", originHost("http://localhost:3000"))
	assert.Equal(t, "sevafoundation.org", originHost("sevafoundation.org"))
}

func TestOriginAllowed(t *testing.T) {
	assert.True(t, originAllowed("sevafoundation.org", "sevafoundation.org"))
	assert.True(t, originAllowed("sevafoundation.org", "SevaFoundation.org"))
	assert.False(t, originAllowed("sevafoundation.org", "www.sevafoundation.org"))

	assert.True(t, originAllowed("*.sevafoundation.org", "sevafoundation.org"))
	assert.True(t, originAllowed("*.sevafoundation.org", "blog.sevafoundation.org"))
	assert.False(t, originAllowed("*.sevafoundation.org", "evil-sevafoundation.org"))
	assert.False(t, originAllowed("*.sevafoundation.org", "sevafoundation.org.evil.com"))
}
