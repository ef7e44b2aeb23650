package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/notification"
)

// Rendered is a ready-to-send email.
type Rendered struct {
	Subject string
	HTML    string
	Plain   string
}

type emailTemplate struct {
	subject *texttemplate.Template
	html    *htmltemplate.Template
	plain   *texttemplate.Template
}

func mustTemplate(name, subject, html, plain string) emailTemplate {
	return emailTemplate{
		subject: texttemplate.Must(texttemplate.New(name + ".subject").Option("missingkey=zero").Parse(subject)),
		html:    htmltemplate.Must(htmltemplate.New(name + ".html").Option("missingkey=zero").Parse(html)),
		plain:   texttemplate.Must(texttemplate.New(name + ".plain").Option("missingkey=zero").Parse(plain)),
	}
}

var templates = map[notification.Kind]emailTemplate{
	notification.KindAccountCreated: mustTemplate("account_created",
		`Welcome to GoldVault!`,
		`<html><body>
<h2>Welcome to GoldVault, {{.full_name}}!</h2>
<p>Your GoldVault account has been successfully created by our admin team.</p>
<p>You can now subscribe to an investment plan and start building your gold portfolio.</p>
<p>Regards,<br>The GoldVault Team</p>
</body></html>`,
		`Welcome to GoldVault, {{.full_name}}!

Your GoldVault account has been successfully created by our admin team.
You can now subscribe to an investment plan and start building your gold portfolio.

Regards,
The GoldVault Team
`),
	notification.KindSubscriptionActive: mustTemplate("subscription_active",
		`Your GoldVault Plan Subscription is Active!`,
		`<html><body>
<h2>Hello {{.full_name}},</h2>
<p>Your subscription to <strong>{{.plan_name}}</strong> is now active.</p>
<p>Minimum monthly investment: {{.minimum_investment_amount}}</p>
<p>Deposit on time every month to earn your plan bonus.</p>
<p>Regards,<br>The GoldVault Team</p>
</body></html>`,
		`Hello {{.full_name}},

Your subscription to {{.plan_name}} is now active.
Minimum monthly investment: {{.minimum_investment_amount}}
Deposit on time every month to earn your plan bonus.

Regards,
The GoldVault Team
`),
	notification.KindInvestmentConfirmation: mustTemplate("investment_confirmation",
		`Investment Confirmation - {{.plan_name}}`,
		`<html><body>
<h2>Hello {{.full_name}},</h2>
<p>We have received your investment in <strong>{{.plan_name}}</strong>.</p>
<table>
<tr><td>Deposit date</td><td>{{.deposit_date}}</td></tr>
<tr><td>Amount</td><td>{{.amount}} {{.currency}}</td></tr>
<tr><td>Gold purchased</td><td>{{.grams_purchased}} g</td></tr>
<tr><td>Total invested</td><td>{{.total_invested}} {{.currency}}</td></tr>
<tr><td>Total gold</td><td>{{.total_grams}} g</td></tr>
</table>
<p>Regards,<br>The GoldVault Team</p>
</body></html>`,
		`Hello {{.full_name}},

We have received your investment in {{.plan_name}}.

Deposit date:   {{.deposit_date}}
Amount:         {{.amount}} {{.currency}}
Gold purchased: {{.grams_purchased}} g
Total invested: {{.total_invested}} {{.currency}}
Total gold:     {{.total_grams}} g

Regards,
The GoldVault Team
`),
}

// Render fills the template registered for msg.Kind.
func Render(msg notification.Message) (*Rendered, error) {
	tpl, ok := templates[msg.Kind]
	if !ok {
		return nil, fmt.Errorf("no email template for kind %q", msg.Kind)
	}

	var subject, html, plain bytes.Buffer
	if err := tpl.subject.Execute(&subject, msg.Data); err != nil {
		return nil, fmt.Errorf("failed to render subject: %w", err)
	}
	if err := tpl.html.Execute(&html, msg.Data); err != nil {
		return nil, fmt.Errorf("failed to render html body: %w", err)
	}
	if err := tpl.plain.Execute(&plain, msg.Data); err != nil {
		return nil, fmt.Errorf("failed to render text body: %w", err)
	}

	return &Rendered{Subject: subject.String(), HTML: html.String(), Plain: plain.String()}, nil
}
