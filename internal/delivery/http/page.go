package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"github.com/Xausdorf/vietqr-receive/internal/domain/i18n"
	"github.com/Xausdorf/vietqr-receive/internal/usecase/generateqr"
	"github.com/Xausdorf/vietqr-receive/internal/usecase/receive"
)

//go:embed templates/*.html
var templates embed.FS

var pageTmpl = template.Must(template.ParseFS(templates, "templates/receive.html"))

type pageData struct {
	Lang   string
	Theme  receive.Theme
	T      i18n.Receive
	Result *generateqr.Result
	Back   string
}

// HandlePage renders the receive screen. Amount and memo come back through
// the form's query string; theme and lang stick to the page.
func (h *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	res, err := h.generateQRUC.Execute(r.Context(), requestFrom(r))
	if err != nil {
		code := statusFor(err)
		if code == http.StatusInternalServerError {
			h.logger.ErrorContext(r.Context(), "render receive page failed", "path", r.URL.Path, "error", err)
		}
		http.Error(w, http.StatusText(code), code)
		return
	}

	q := r.URL.Query()
	theme := h.defaultTheme
	if t := q.Get("theme"); t != "" {
		theme = receive.ParseTheme(t)
	}
	lang := q.Get("lang")
	t := h.catalog.Lookup(lang, r.Header.Get("Accept-Language"), h.defaultLang)

	back := q.Get("back")
	if u, err := url.Parse(back); back == "" || err != nil || u.IsAbs() || u.Host != "" {
		back = "/"
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, pageData{
		Lang:   lang,
		Theme:  theme,
		T:      t.Receive,
		Result: res,
		Back:   back,
	}); err != nil {
		h.logger.ErrorContext(r.Context(), "execute receive template", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
