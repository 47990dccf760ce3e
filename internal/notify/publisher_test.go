package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledPublisherIsNoOp(t *testing.T) {
	p, err := NewPublisher(PublisherConfig{Enabled: false})
	require.NoError(t, err)

	event := LeadEvent{QuoteID: 1, Name: "Jane", Timestamp: time.Now()}
	assert.NoError(t, p.PublishLead(event, "summary"))
	assert.NoError(t, p.PublishTestimonial(2, "Tunde"))
	assert.False(t, p.IsConnected())

	// Close on a never-connected publisher must not panic.
	p.Close()
}
