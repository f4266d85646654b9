package router_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

// rewriteTransport points clients with hardcoded provider hosts at a local server.
type rewriteTransport struct {
	target *url.URL
}

func (rt rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.URL.Scheme = rt.target.Scheme
	r.URL.Host = rt.target.Host
	r.Host = rt.target.Host
	return http.DefaultTransport.RoundTrip(r)
}

type discordFake struct {
	mu         sync.Mutex
	roleStatus int
	roleCalls  int
	messages   []string
}

func (f *discordFake) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roleStatus = http.StatusNoContent
	f.roleCalls = 0
	f.messages = nil
}

func (f *discordFake) setRoleStatus(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roleStatus = status
}

func (f *discordFake) RoleCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.roleCalls
}

func (f *discordFake) Messages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.messages...)
}

func (f *discordFake) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case path == "/api/oauth2/token":
		_ = r.ParseForm()
		w.Header().Set("Content-Type", "application/json")
		if r.PostForm.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":"invalid_grant"}`)
			return
		}
		_, _ = io.WriteString(w, `{"access_token":"user-token","token_type":"Bearer"}`)

	case strings.HasSuffix(path, "/users/@me"):
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"42","username":"subscriber"}`)

	case r.Method == http.MethodPut && strings.Contains(path, "/guilds/guild-1/members/"):
		f.mu.Lock()
		f.roleCalls++
		status := f.roleStatus
		f.mu.Unlock()

		switch status {
		case http.StatusNoContent:
			w.WriteHeader(status)
		case http.StatusNotFound:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = io.WriteString(w, `{"message":"Unknown Member","code":10007}`)
		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = io.WriteString(w, `{"message":"Missing Permissions","code":50013}`)
		}

	case r.Method == http.MethodPost && strings.HasSuffix(path, "/channels/chan-1/messages"):
		var msg struct {
			Content string `json:"content"`
		}
		_ = json.NewDecoder(r.Body).Decode(&msg)

		f.mu.Lock()
		f.messages = append(f.messages, msg.Content)
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"m1","channel_id":"chan-1"}`)

	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"404: Not Found","code":0}`)
	}
}

type stripeSession struct {
	ClientReferenceID string
	PaymentStatus     string
	Status            string
}

type stripeFake struct {
	mu          sync.Mutex
	sessions    map[string]stripeSession
	createCalls int
	lastForm    url.Values
}

func (f *stripeFake) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = map[string]stripeSession{}
	f.createCalls = 0
	f.lastForm = nil
}

func (f *stripeFake) put(id string, s stripeSession) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[id] = s
}

func (f *stripeFake) CreateCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createCalls
}

func (f *stripeFake) LastForm() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastForm
}

func (f *stripeFake) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/v1/checkout/sessions":
		body, _ := io.ReadAll(r.Body)
		form, _ := url.ParseQuery(string(body))

		f.mu.Lock()
		f.createCalls++
		f.lastForm = form
		id := fmt.Sprintf("cs_test_%d", f.createCalls)
		f.sessions[id] = stripeSession{
			ClientReferenceID: form.Get("client_reference_id"),
			PaymentStatus:     "unpaid",
			Status:            "open",
		}
		f.mu.Unlock()

		_, _ = fmt.Fprintf(w, `{"id":%q,"object":"checkout.session","url":"https://checkout.stripe.com/c/pay/%s","client_reference_id":%q,"payment_status":"unpaid","status":"open"}`,
			id, id, form.Get("client_reference_id"))

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/v1/checkout/sessions/"):
		id := strings.TrimPrefix(r.URL.Path, "/v1/checkout/sessions/")

		f.mu.Lock()
		s, ok := f.sessions[id]
		f.mu.Unlock()

		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"error":{"type":"invalid_request_error","message":"No such checkout.session"}}`)
			return
		}

		_, _ = fmt.Fprintf(w, `{"id":%q,"object":"checkout.session","client_reference_id":%q,"payment_status":%q,"status":%q}`,
			id, s.ClientReferenceID, s.PaymentStatus, s.Status)

	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":{"type":"invalid_request_error","message":"Unrecognized request URL"}}`)
	}
}
