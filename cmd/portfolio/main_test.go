package main

import (
	"bytes"
	"testing"

	"github.com/deppfellow/portfolio-backend/internal/lib/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailPreviewCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"email", "preview", string(email.TemplateContactNotification)})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "jane@example.com")
}

func TestEmailPreviewCommand_UnknownTemplate(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"email", "preview", "welcome"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.ErrorIs(t, err, email.ErrUnknownTemplate)
	assert.Contains(t, err.Error(), "contact_notification")
}
