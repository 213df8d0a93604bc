package mail

import (
	"bytes"
	"testing"

	"github.com/inventory-backend/stockroom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	msg, err := buildMessage("shop@example.com", usecase.Mail{
		To:       []string{"a@b.com"},
		Subject:  "Restock",
		HTMLBody: usecase.RenderMailBody("Letterhead Ltd", "please send 10 more"),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.Contains(t, raw, "a@b.com")
	assert.Contains(t, raw, "Subject: Restock")
	assert.Contains(t, raw, "text/html")
	assert.Contains(t, raw, "please send 10 more")
}

func TestBuildMessage_InvalidRecipient(t *testing.T) {
	_, err := buildMessage("shop@example.com", usecase.Mail{To: []string{"not an address"}})
	assert.Error(t, err)
}
