package page

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/you-humble/noventa-support/internal/model"
	"github.com/you-humble/noventa-support/platform/logger"
)

const loginPath = "/api/auth/identity/login"

var (
	//go:embed templates/*.html
	templatesFS embed.FS
	templates   = template.Must(template.ParseFS(templatesFS, "templates/*.html"))
)

var errorText = map[string]string{
	"identity_auth_failed":           "Discord sign-in was cancelled or failed. Please try again.",
	"identity_token_exchange_failed": "We could not complete Discord sign-in. Please try again.",
	"identity_fetch_failed":          "We could not read your Discord account. Please try again.",
	"missing_identity_id":            "Your Discord account was not passed to checkout. Please sign in again.",
	"checkout_failed":                "We could not start the checkout. Please try again or contact support.",
}

var titles = map[model.CompletionState]string{
	model.CompletionSuccess:    "Payment Successful!",
	model.CompletionError:      "Payment Error",
	model.CompletionProcessing: "Payment Processing",
}

type Reconciler interface {
	Reconcile(ctx context.Context, sessionID string) model.Completion
}

type homeView struct {
	LoginURL string
	Error    string
	Detail   string
}

type successView struct {
	State     model.CompletionState
	Title     string
	Message   string
	Success   bool
	Resolved  bool
	InviteURL string
}

type handler struct {
	reconciler Reconciler
	inviteURL  string
}

func NewPageHandler(reconciler Reconciler, inviteURL string) *handler {
	return &handler{reconciler: reconciler, inviteURL: inviteURL}
}

func (h *handler) Home(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	view := homeView{LoginURL: loginPath}
	if flag := q.Get("error"); flag != "" {
		text, ok := errorText[flag]
		if !ok {
			text = "Something went wrong. Please try again."
		}
		view.Error = text
		view.Detail = q.Get("errorMessage")
	}

	render(w, r, http.StatusOK, "home.html", view)
}

// Success is the checkout return page. Every visit re-reads the session.
func (h *handler) Success(w http.ResponseWriter, r *http.Request) {
	c := h.reconciler.Reconcile(r.Context(), r.URL.Query().Get("session_id"))

	render(w, r, http.StatusOK, "success.html", successView{
		State:     c.State,
		Title:     titles[c.State],
		Message:   c.Message,
		Success:   c.State == model.CompletionSuccess,
		Resolved:  c.Resolved(),
		InviteURL: h.inviteURL,
	})
}

func render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		logger.Error(r.Context(), "render page", logger.String("template", name), logger.ErrorF(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(r.Context(), "write page", logger.ErrorF(err))
	}
}
