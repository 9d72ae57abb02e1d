package web

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/reuniteapp/reunite/internal/api"
	"github.com/reuniteapp/reunite/internal/session"
	"github.com/reuniteapp/reunite/internal/web/platform/sessioncookie"
	"github.com/reuniteapp/reunite/internal/web/routepath"
)

type fakeAPI struct {
	allReports   []api.Report
	allErr       error
	myReports    []api.Report
	myErr        error
	searchName   string
	searchLoc    string
	searchOut    []api.Report
	report       api.Report
	getErr       error
	loginCreds   api.Credentials
	loginErr     error
	adminCreds   api.Credentials
	adminErr     error
	registerErr    error
	registerCalled bool
	submitToken    string
	submitBody   []byte
	submitType   string
	receipt      api.ReportReceipt
	submitErr    error
	statusID     string
	statusValue  api.ReportStatus
	statusErr    error
	uploadBody   []byte
	uploadType   string
	uploadOut    api.UploadReceipt
	unidentified []api.UnidentifiedPerson
}

func (f *fakeAPI) Register(_ context.Context, _ api.RegisterInput) error {
	f.registerCalled = true
	return f.registerErr
}

func (f *fakeAPI) Login(_ context.Context, _, _ string) (api.Credentials, error) {
	return f.loginCreds, f.loginErr
}

func (f *fakeAPI) AdminLogin(_ context.Context, _, _ string) (api.Credentials, error) {
	return f.adminCreds, f.adminErr
}

func (f *fakeAPI) AllReports(context.Context) ([]api.Report, error) {
	return f.allReports, f.allErr
}

func (f *fakeAPI) MyReports(_ context.Context, _ string) ([]api.Report, error) {
	return f.myReports, f.myErr
}

func (f *fakeAPI) GetReport(_ context.Context, _ string) (api.Report, error) {
	return f.report, f.getErr
}

func (f *fakeAPI) Search(_ context.Context, name, location string) ([]api.Report, error) {
	f.searchName = name
	f.searchLoc = location
	return f.searchOut, nil
}

func (f *fakeAPI) ReportMissingPerson(_ context.Context, token string, form io.Reader, contentType string) (api.ReportReceipt, error) {
	f.submitToken = token
	f.submitBody, _ = io.ReadAll(form)
	f.submitType = contentType
	return f.receipt, f.submitErr
}

func (f *fakeAPI) UpdateReportStatus(_ context.Context, _, id string, status api.ReportStatus) error {
	f.statusID = id
	f.statusValue = status
	return f.statusErr
}

func (f *fakeAPI) UploadUnidentified(_ context.Context, _ string, form io.Reader, contentType string) (api.UploadReceipt, error) {
	f.uploadBody, _ = io.ReadAll(form)
	f.uploadType = contentType
	return f.uploadOut, nil
}

func (f *fakeAPI) ListUnidentified(_ context.Context, _ string) ([]api.UnidentifiedPerson, error) {
	return f.unidentified, nil
}

type fixture struct {
	handler  http.Handler
	apiFake  *fakeAPI
	sessions *session.MemoryStore
	cookies  *sessioncookie.Codec
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	codec, err := sessioncookie.NewCodec(bytes.Repeat([]byte("s"), 32))
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	apiFake := &fakeAPI{}
	sessions := session.NewMemoryStore()
	nextID := 0
	handler, err := NewHandler(Config{
		Auth:     apiFake,
		Reports:  apiFake,
		Admin:    apiFake,
		Sessions: sessions,
		Cookies:  codec,
		Logger:   log.New(io.Discard, "", 0),
		NewSessionID: func() string {
			nextID++
			return fmt.Sprintf("sess-%d", nextID)
		},
	})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	return &fixture{handler: handler, apiFake: apiFake, sessions: sessions, cookies: codec}
}

// seedSession stores a session and returns the signed cookie a browser
// would replay.
func (f *fixture) seedSession(t *testing.T, sess session.Session) *http.Cookie {
	t.Helper()
	if err := f.sessions.Put(context.Background(), sess); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := f.cookies.Write(rec, req, sess.ID); err != nil {
		t.Fatalf("write cookie: %v", err)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessioncookie.Name {
			return c
		}
	}
	t.Fatal("session cookie not written")
	return nil
}

func memberSession() session.Session {
	sess := session.New("member-1")
	sess.SetAuth("token-123", api.User{ID: "u1", Name: "Dana", Email: "dana@example.com"})
	return sess
}

func adminSession() session.Session {
	sess := session.New("admin-1")
	sess.SetAuth("token-admin", api.User{ID: "a1", Name: "Root", IsAdmin: true})
	return sess
}

func TestHomeShowsApprovedReportsAndStats(t *testing.T) {
	f := newFixture(t)
	f.apiFake.allReports = []api.Report{
		{ID: "1", Name: "Alice Example", Status: api.StatusApproved},
		{ID: "2", Name: "Bob Example", Status: api.StatusPending},
		{ID: "3", Name: "Carol Example", Status: api.StatusResolved},
	}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Alice Example") {
		t.Fatalf("approved report missing:\n%s", body)
	}
	if strings.Contains(body, "Bob Example") {
		t.Fatalf("pending report leaked into listing:\n%s", body)
	}
	for _, stat := range []string{"<strong>3</strong>", "<strong>1</strong>"} {
		if !strings.Contains(body, stat) {
			t.Fatalf("stat %s missing:\n%s", stat, body)
		}
	}
}

func TestHomeDegradesWhenAPIUnavailable(t *testing.T) {
	f := newFixture(t)
	f.apiFake.allErr = io.ErrUnexpectedEOF

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want degraded 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "temporarily unavailable") {
		t.Fatalf("degraded banner missing:\n%s", rec.Body.String())
	}
}

func TestSearchFeedsQueryToBothFilters(t *testing.T) {
	f := newFixture(t)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?q=Springfield", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if f.apiFake.searchName != "Springfield" || f.apiFake.searchLoc != "Springfield" {
		t.Fatalf("search args = (%q, %q)", f.apiFake.searchName, f.apiFake.searchLoc)
	}
}

func TestLoginStoresTokenAndProfileTogether(t *testing.T) {
	f := newFixture(t)
	f.apiFake.loginCreds = api.Credentials{
		Token: "bearer-1",
		User:  api.User{ID: "u1", Name: "Dana", Email: "dana@example.com"},
	}

	form := url.Values{"email": {"dana@example.com"}, "password": {"hunter2"}}
	req := httptest.NewRequest(http.MethodPost, routepath.Login, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want redirect", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != routepath.Dashboard {
		t.Fatalf("redirect = %q", loc)
	}

	var cookieValue string
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessioncookie.Name {
			cookieValue = c.Value
		}
	}
	if cookieValue == "" {
		t.Fatal("session cookie not set on login")
	}

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: cookieValue})
	stored, ok := currentSessionForTest(f, req2)
	if !ok {
		t.Fatal("session not stored")
	}
	if stored.Token != "bearer-1" {
		t.Fatalf("token = %q", stored.Token)
	}
	if stored.User == nil || stored.User.Name != "Dana" {
		t.Fatalf("user = %+v", stored.User)
	}
}

// currentSessionForTest resolves a stored session through the real cookie
// path, the same way handlers do.
func currentSessionForTest(f *fixture, r *http.Request) (session.Session, bool) {
	id, ok := f.cookies.Read(r)
	if !ok {
		return session.Session{}, false
	}
	sess, err := f.sessions.Get(context.Background(), id)
	return sess, err == nil
}

func TestLoginFailureShowsServerMessage(t *testing.T) {
	f := newFixture(t)
	f.apiFake.loginErr = &api.Error{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}

	form := url.Values{"email": {"dana@example.com"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, routepath.Login, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want form rerender", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Invalid credentials") {
		t.Fatalf("server message missing:\n%s", body)
	}
	if !strings.Contains(body, `value="dana@example.com"`) {
		t.Fatalf("email not echoed back:\n%s", body)
	}
	if strings.Contains(body, "wrong") {
		t.Fatalf("password leaked into response:\n%s", body)
	}
}

func TestRegisterRejectsPasswordMismatch(t *testing.T) {
	f := newFixture(t)
	form := url.Values{
		"name":             {"Dana"},
		"email":            {"dana@example.com"},
		"password":         {"hunter2"},
		"confirm_password": {"hunter3"},
	}
	req := httptest.NewRequest(http.MethodPost, routepath.Register, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), "Passwords do not match") {
		t.Fatalf("mismatch message missing:\n%s", rec.Body.String())
	}
	if f.apiFake.registerCalled {
		t.Fatal("mismatched passwords reached the API")
	}
}

func TestDashboardRequiresLogin(t *testing.T) {
	f := newFixture(t)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, routepath.Dashboard, nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != routepath.Login {
		t.Fatalf("redirect = %q, want login", loc)
	}
}

func TestAdminRejectsNonAdmin(t *testing.T) {
	f := newFixture(t)
	cookie := f.seedSession(t, memberSession())

	req := httptest.NewRequest(http.MethodGet, routepath.Admin, nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != routepath.Home {
		t.Fatalf("redirect = %q, want home", loc)
	}
}

func TestLogoutKeepsThemePreference(t *testing.T) {
	f := newFixture(t)
	sess := memberSession()
	sess.Theme = session.ThemeDark
	cookie := f.seedSession(t, sess)

	req := httptest.NewRequest(http.MethodPost, routepath.Logout, nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	stored, err := f.sessions.Get(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if stored.IsLoggedIn() {
		t.Fatal("auth not cleared on logout")
	}
	if stored.Theme != session.ThemeDark {
		t.Fatalf("theme = %q, want dark preserved", stored.Theme)
	}
}

func TestExpiredTokenClearsAuthAndRedirects(t *testing.T) {
	f := newFixture(t)
	f.apiFake.myErr = &api.Error{StatusCode: http.StatusUnauthorized, Message: "Token expired"}
	sess := memberSession()
	cookie := f.seedSession(t, sess)

	req := httptest.NewRequest(http.MethodGet, routepath.Dashboard, nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != routepath.Login {
		t.Fatalf("redirect = %q, want login", loc)
	}
	stored, err := f.sessions.Get(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if stored.IsLoggedIn() {
		t.Fatal("expired auth not cleared")
	}
}

func TestReportSubmitForwardsMultipart(t *testing.T) {
	f := newFixture(t)
	cookie := f.seedSession(t, memberSession())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fields := map[string]string{
		"name":               "Jane Doe",
		"age":                "34",
		"gender":             "female",
		"last_seen_location": "Springfield",
		"last_seen_date":     "2026-08-01",
		"description":        "Last seen downtown.",
		"contact_details":    "555-0100",
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	part, err := mw.CreateFormFile("images", "photo.jpg")
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	if _, err := part.Write([]byte("jpegbytes")); err != nil {
		t.Fatalf("write file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, routepath.ReportNew, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, body:\n%s", rec.Code, rec.Body.String())
	}
	if f.apiFake.submitToken != "token-123" {
		t.Fatalf("forwarded token = %q", f.apiFake.submitToken)
	}

	// the forwarded body must parse as multipart under its own boundary
	mediaType, params, err := mime.ParseMediaType(f.apiFake.submitType)
	if err != nil || mediaType != "multipart/form-data" {
		t.Fatalf("forwarded content type = %q (%v)", f.apiFake.submitType, err)
	}
	reader := multipart.NewReader(bytes.NewReader(f.apiFake.submitBody), params["boundary"])
	parsed, err := reader.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("parse forwarded form: %v", err)
	}
	if got := parsed.Value["name"]; len(got) != 1 || got[0] != "Jane Doe" {
		t.Fatalf("forwarded name = %v", got)
	}
	if files := parsed.File["images"]; len(files) != 1 || files[0].Filename != "photo.jpg" {
		t.Fatalf("forwarded files = %v", parsed.File["images"])
	}
}

func TestReportSubmitRejectsNonNumericAge(t *testing.T) {
	f := newFixture(t)
	cookie := f.seedSession(t, memberSession())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range map[string]string{
		"name":               "Jane Doe",
		"age":                "thirty",
		"last_seen_location": "Springfield",
		"last_seen_date":     "2026-08-01",
		"contact_details":    "555-0100",
	} {
		mw.WriteField(k, v)
	}
	part, _ := mw.CreateFormFile("images", "photo.jpg")
	part.Write([]byte("jpegbytes"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, routepath.ReportNew, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Age must be a number.") {
		t.Fatalf("age message missing:\n%s", rec.Body.String())
	}
}

func TestAdminStatusUpdate(t *testing.T) {
	f := newFixture(t)
	cookie := f.seedSession(t, adminSession())

	form := url.Values{"status": {"approved"}}
	req := httptest.NewRequest(http.MethodPost, routepath.AdminStatusPrefix+"r42", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, body:\n%s", rec.Code, rec.Body.String())
	}
	if f.apiFake.statusID != "r42" || f.apiFake.statusValue != api.StatusApproved {
		t.Fatalf("update = (%q, %q)", f.apiFake.statusID, f.apiFake.statusValue)
	}
}

func TestAdminStatusRejectsUnknownValue(t *testing.T) {
	f := newFixture(t)
	cookie := f.seedSession(t, adminSession())

	form := url.Values{"status": {"vanished"}}
	req := httptest.NewRequest(http.MethodPost, routepath.AdminStatusPrefix+"r42", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if f.apiFake.statusID != "" {
		t.Fatal("invalid status reached the API")
	}
}

func TestThemeToggleCreatesSessionForAnonymousVisitor(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, routepath.Theme, nil)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	var cookieValue string
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessioncookie.Name {
			cookieValue = c.Value
		}
	}
	if cookieValue == "" {
		t.Fatal("no session cookie issued")
	}
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: cookieValue})
	stored, ok := currentSessionForTest(f, req2)
	if !ok {
		t.Fatal("session not persisted")
	}
	if stored.Theme != session.ThemeDark {
		t.Fatalf("theme = %q, want dark after toggle", stored.Theme)
	}
}

func TestReportDetailNotFound(t *testing.T) {
	f := newFixture(t)
	f.apiFake.getErr = &api.Error{StatusCode: http.StatusNotFound, Message: "Report not found"}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/report/missing-id", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Report not found") {
		t.Fatalf("message missing:\n%s", rec.Body.String())
	}
}
