package services

import (
	"fmt"
	"html"

	"github.com/cybershield/backend/internal/models"
)

// Email templates for the transactional notifications the API sends.
// Each builder returns a complete message with HTML and plain-text bodies.
// User-supplied fields are HTML-escaped before interpolation.

func contactNotificationEmail(adminAddress string, msg *models.ContactMessage) EmailMessage {
	body := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">New contact message - CyberShield</h2>
  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Message:</strong></p>
    <p style="background: white; padding: 15px; border-radius: 4px;">%s</p>
  </div>
  <p style="color: #64748b; font-size: 14px;">
    This message was sent from the CyberShield contact form.
  </p>
</div>`, html.EscapeString(msg.Name), html.EscapeString(msg.Email), html.EscapeString(msg.Message))

	return EmailMessage{
		To:       adminAddress,
		Subject:  fmt.Sprintf("New contact from %s - CyberShield", msg.Name),
		HTMLBody: body,
		TextBody: fmt.Sprintf("New message from %s (%s): %s", msg.Name, msg.Email, msg.Message),
	}
}

func welcomeEmail(user *models.User) EmailMessage {
	body := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">Welcome to CyberShield!</h2>
  <p>Hi <strong>%s</strong>,</p>
  <p>Thanks for registering with CyberShield. Your account has been created successfully.</p>
  <div style="background: #f0f9ff; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>What you can do now:</h3>
    <ul>
      <li>Request a free security audit</li>
      <li>Access our security resources</li>
      <li>Receive personalized security alerts</li>
    </ul>
  </div>
  <p>If you have any questions, don't hesitate to contact us.</p>
  <p><strong>The CyberShield team</strong></p>
</div>`, html.EscapeString(user.Name))

	return EmailMessage{
		To:       user.Email,
		Subject:  "Welcome to CyberShield",
		HTMLBody: body,
		TextBody: fmt.Sprintf("Hi %s! Welcome to CyberShield. Your account has been created successfully.", user.Name),
	}
}

func auditAlertEmail(adminAddress string, req *models.AuditRequest) EmailMessage {
	body := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #dc2626;">New audit request - CyberShield</h2>
  <div style="background: #fef2f2; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Requester:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Company:</strong> %s</p>
    <p><strong>Urgency:</strong> %s</p>
    <p><strong>Description:</strong></p>
    <p style="background: white; padding: 15px; border-radius: 4px;">%s</p>
  </div>
  <p style="color: #dc2626; font-weight: bold;">Action required: contact the client within 24 hours</p>
</div>`, html.EscapeString(req.Name), html.EscapeString(req.Email), html.EscapeString(req.Company),
		req.Urgency, html.EscapeString(req.Description))

	return EmailMessage{
		To:       adminAddress,
		Subject:  fmt.Sprintf("New audit requested by %s", req.Name),
		HTMLBody: body,
		TextBody: fmt.Sprintf("New audit requested by %s (%s) - Company: %s - %s",
			req.Name, req.Email, req.Company, req.Description),
	}
}

func auditConfirmationEmail(req *models.AuditRequest) EmailMessage {
	body := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">Request received</h2>
  <p>Hi <strong>%s</strong>,</p>
  <p>We have received your security audit request for <strong>%s</strong>.</p>
  <div style="background: #f0f9ff; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Next steps:</h3>
    <ul>
      <li>We will contact you within the next 24 hours</li>
      <li>We will perform a free initial assessment</li>
      <li>You will receive a preliminary report</li>
      <li>We will discuss full audit options</li>
    </ul>
  </div>
  <p><strong>Request number:</strong> #%s</p>
  <p>Thank you for trusting CyberShield to protect your company.</p>
  <p><strong>The CyberShield team</strong></p>
</div>`, html.EscapeString(req.Name), html.EscapeString(req.Company), req.ID)

	return EmailMessage{
		To:       req.Email,
		Subject:  "Audit request received - CyberShield",
		HTMLBody: body,
		TextBody: fmt.Sprintf("Hi %s, we received your audit request for %s. We will contact you within 24 hours. Request number: #%s",
			req.Name, req.Company, req.ID),
	}
}
