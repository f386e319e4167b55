// Package views renders the HTML pages from embedded templates and serves
// the browser scripts.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-venue-booking/internal/models"
	"github.com/shopspring/decimal"
)

// Page names accepted by Render.
const (
	PageHome           = "home"
	PageCheckout       = "checkout"
	PageLogin          = "login"
	PageRegister       = "register"
	PageForgotPassword = "forgot_password"
	PageResetPassword  = "reset_password"
	PageAdminDashboard = "admin_dashboard"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// PageData is passed to every template.
type PageData struct {
	Title   string
	User    *models.SessionUser
	Flashes map[string][]string
	Data    any
}

// Renderer executes page templates wrapped in the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"rupiah": Rupiah,
	"price":  func(d decimal.Decimal) string { return d.StringFixed(2) },
}

// New parses the layout together with every page.
func New() (*Renderer, error) {
	names := []string{
		PageHome, PageCheckout, PageLogin, PageRegister,
		PageForgotPassword, PageResetPassword, PageAdminDashboard,
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render writes page with the given status. The page is executed into a
// buffer first so a template error never produces a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data PageData) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("render page %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// StaticHandler serves the embedded static directory; mount it under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// Rupiah formats an amount the Indonesian way: Rp 1.500.000 or Rp 1.500.000,50.
func Rupiah(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	whole := d.Truncate(0).String()
	var b strings.Builder
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}

	out := "Rp " + sign + b.String()
	if frac := d.Sub(d.Truncate(0)); !frac.IsZero() {
		out += "," + strings.TrimPrefix(frac.StringFixed(2), "0.")
	}
	return out
}
