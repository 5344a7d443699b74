package services

import (
	"testing"

	"github.com/cybershield/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestEmailTemplates_EscapeUserInput(t *testing.T) {
	msg := &models.ContactMessage{
		Name:    `Ana <script>alert(1)</script>`,
		Email:   "ana@example.com",
		Message: `<img src=x onerror=alert(1)>`,
	}

	email := contactNotificationEmail("admin@cybershield.io", msg)

	assert.NotContains(t, email.HTMLBody, "<script>")
	assert.NotContains(t, email.HTMLBody, "<img")
	assert.Contains(t, email.HTMLBody, "&lt;script&gt;")

	// Plain-text body carries the input verbatim
	assert.Contains(t, email.TextBody, "<script>")
}

func TestAuditTemplates_EscapeUserInput(t *testing.T) {
	req := &models.AuditRequest{
		ID:          "11111111-1111-1111-1111-111111111111",
		Name:        "Ana",
		Email:       "ana@example.com",
		Company:     `Acme <b>Logistics</b>`,
		Description: `"quotes" & <tags>`,
		Urgency:     models.UrgencyHigh,
	}

	alert := auditAlertEmail("admin@cybershield.io", req)
	assert.NotContains(t, alert.HTMLBody, "<b>Logistics</b>")
	assert.Contains(t, alert.HTMLBody, "&lt;b&gt;Logistics&lt;/b&gt;")
	assert.Contains(t, alert.HTMLBody, "&amp; &lt;tags&gt;")

	confirmation := auditConfirmationEmail(req)
	assert.Equal(t, "ana@example.com", confirmation.To)
	assert.NotContains(t, confirmation.HTMLBody, "<b>Logistics</b>")
	assert.Contains(t, confirmation.HTMLBody, req.ID)
}

func TestWelcomeEmail_EscapesName(t *testing.T) {
	user := &models.User{Name: "Ana <i>T</i>", Email: "ana@example.com"}

	email := welcomeEmail(user)
	assert.Equal(t, "ana@example.com", email.To)
	assert.NotContains(t, email.HTMLBody, "<i>T</i>")
	assert.Contains(t, email.HTMLBody, "Ana &lt;i&gt;T&lt;/i&gt;")
}
