package notifications

import (
	"bytes"
	"html/template"
)

var (
	verificationTmpl = template.Must(template.New("verification").Parse(`
<h1>Email Verification</h1>
<p>Please verify your email by clicking the link below:</p>
<a href="{{.Link}}">Verify Email</a>
<p>If you did not register, please ignore this email.</p>
`))

	resetTmpl = template.Must(template.New("reset").Parse(`
<h1>Password Reset</h1>
<p>You have requested to reset your password. Click the link below to reset:</p>
<a href="{{.Link}}">Reset Password</a>
<p>The link expires in one hour. If you did not request this, please ignore this email.</p>
`))

	orderTmpl = template.Must(template.New("order").Parse(`
<p>Terima kasih telah melakukan pemesanan, {{.Name}}! Berikut detail pesanan Anda dalam lampiran PDF.</p>
{{- if .WhatsAppLink}}
<a href="{{.WhatsAppLink}}" style="padding: 10px; background: #25D366; color: white; text-decoration: none; border-radius: 5px;">Hubungi via WhatsApp</a>
{{- end}}
`))
)

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
