package mail

import (
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/samber/oops"
)

type templateData struct {
	AppName  string
	Username string
	Link     string
}

type emailTemplate struct {
	text *texttemplate.Template
	html *htmltemplate.Template
}

func mustTemplate(name, text, html string) emailTemplate {
	return emailTemplate{
		text: texttemplate.Must(texttemplate.New(name).Parse(text)),
		html: htmltemplate.Must(htmltemplate.New(name).Parse(html)),
	}
}

var verificationTemplate = mustTemplate("verification", `Hi {{.Username}},

Welcome to {{.AppName}}! We're very excited to have you on board.

To verify your email please open the link below:
{{.Link}}

Need help, or have questions? Just reply to this email.
`, `<p>Hi {{.Username}},</p>
<p>Welcome to {{.AppName}}! We're very excited to have you on board.</p>
<p>To verify your email please click the button below.</p>
<p><a href="{{.Link}}" style="background:#22bc66;color:#fff;padding:8px 16px;text-decoration:none">Verify your email</a></p>
<p>Need help, or have questions? Just reply to this email.</p>`)

var passwordResetTemplate = mustTemplate("password_reset", `Hi {{.Username}},

We got a request to reset the password of your {{.AppName}} account.

To reset your password open the link below:
{{.Link}}

If you did not ask for this, ignore this email.
`, `<p>Hi {{.Username}},</p>
<p>We got a request to reset the password of your {{.AppName}} account.</p>
<p>To reset your password click the button below.</p>
<p><a href="{{.Link}}" style="background:#22bc66;color:#fff;padding:8px 16px;text-decoration:none">Reset password</a></p>
<p>If you did not ask for this, ignore this email.</p>`)

func render(t emailTemplate, to, subject string, data templateData) (Message, error) {
	var text, html strings.Builder
	if err := t.text.Execute(&text, data); err != nil {
		return Message{}, oops.Code("MAIL_RENDER_FAILED").With("template", t.text.Name()).Wrap(err)
	}
	if err := t.html.Execute(&html, data); err != nil {
		return Message{}, oops.Code("MAIL_RENDER_FAILED").With("template", t.html.Name()).Wrap(err)
	}
	return Message{To: to, Subject: subject, Text: text.String(), HTML: html.String()}, nil
}
