package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"felizeducation/internal/content"
	"felizeducation/internal/database"
	"felizeducation/internal/models"
	"felizeducation/internal/repository"
	"felizeducation/internal/security"
	"felizeducation/internal/service"
)

type testApp struct {
	mux        *http.ServeMux
	middleware *Middleware
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	kv := database.NewMemoryKV()
	users := repository.NewUserRepository(kv)
	sessions := repository.NewSessionRepository(kv)
	transactions := repository.NewTransactionRepository(kv)

	profiles := service.NewProfileService(users, sessions, nil)
	billing := service.NewBillingService(users, sessions, transactions)
	resolver := content.NewResolver(nil, 0, nil)

	middleware := NewMiddleware("test-secret", time.Hour, security.NewRateLimiter(100, time.Minute))
	authHandler := NewAuthHandler(profiles, middleware)
	lessonHandler := NewLessonHandler(resolver, profiles, nil, t.TempDir())
	progressHandler := NewProgressHandler(profiles)
	billingHandler := NewBillingHandler(billing)
	adminHandler := NewAdminHandler(billing)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/me", middleware.RequireAuth(authHandler.Me))
	mux.HandleFunc("GET /api/letters", lessonHandler.Letters)
	mux.HandleFunc("POST /api/lessons/generate", middleware.RequireAuth(lessonHandler.GenerateLesson))
	mux.HandleFunc("POST /api/tutor", middleware.RequireAuth(lessonHandler.TutorHelp))
	mux.HandleFunc("POST /api/progress", middleware.RequireAuth(progressHandler.UpdateProgress))
	mux.HandleFunc("POST /api/letters/mastered", middleware.RequireAuth(progressHandler.MarkLetterMastered))
	mux.HandleFunc("GET /api/recommendation", progressHandler.Recommendation)
	mux.HandleFunc("POST /api/billing/activate", middleware.RequireAuth(billingHandler.ActivatePremium))
	mux.HandleFunc("POST /api/billing/cancel", middleware.RequireAuth(billingHandler.CancelPremium))
	mux.HandleFunc("GET /api/admin/users", middleware.RequireAdmin(adminHandler.Users))
	mux.HandleFunc("GET /api/admin/kpis", middleware.RequireAdmin(adminHandler.KPIs))

	return &testApp{mux: mux, middleware: middleware}
}

func (a *testApp) request(t *testing.T, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.mux.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) registerAndSignIn(t *testing.T, email string, age int) []*http.Cookie {
	t.Helper()
	body := `{"email":"` + email + `","password":"secret123","childName":"Luna","age":` + strconv.Itoa(age) + `}`
	rec := a.request(t, "POST", "/api/auth/register", body, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", rec.Code, rec.Body.String())
	}
	return rec.Result().Cookies()
}

func decodeProfile(t *testing.T, rec *httptest.ResponseRecorder) models.UserProfile {
	t.Helper()
	var p models.UserProfile
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("failed to decode profile: %v", err)
	}
	return p
}

func TestRegisterLoginMe(t *testing.T) {
	app := newTestApp(t)

	cookies := app.registerAndSignIn(t, "pai@example.com", 7)
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	rec := app.request(t, "GET", "/api/me", "", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("me returned %d: %s", rec.Code, rec.Body.String())
	}
	p := decodeProfile(t, rec)
	if p.Email != "pai@example.com" {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

func TestMeWithoutSession(t *testing.T) {
	app := newTestApp(t)
	rec := app.request(t, "GET", "/api/me", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRegisterDuplicateConflict(t *testing.T) {
	app := newTestApp(t)
	app.registerAndSignIn(t, "pai@example.com", 7)

	body := `{"email":"pai@example.com","password":"secret123","childName":"Theo","age":6}`
	rec := app.request(t, "POST", "/api/auth/register", body, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)
	app.registerAndSignIn(t, "pai@example.com", 7)

	rec := app.request(t, "POST", "/api/auth/login", `{"email":"pai@example.com","password":"wrong1"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminBackdoorSession(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, "POST", "/api/auth/login", `{"email":"admin@example.com","password":"admin"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin login returned %d: %s", rec.Code, rec.Body.String())
	}
	cookies := rec.Result().Cookies()

	rec = app.request(t, "GET", "/api/admin/kpis", "", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin kpis returned %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request(t, "GET", "/api/me", "", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin me returned %d", rec.Code)
	}
	p := decodeProfile(t, rec)
	if !p.IsAdmin || !p.IsPremium {
		t.Fatalf("expected ephemeral admin profile, got %+v", p)
	}
}

func TestAdminRoutesForbiddenForParents(t *testing.T) {
	app := newTestApp(t)
	cookies := app.registerAndSignIn(t, "pai@example.com", 7)

	rec := app.request(t, "GET", "/api/admin/users", "", cookies)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestGenerateLessonEndpoint(t *testing.T) {
	app := newTestApp(t)
	cookies := app.registerAndSignIn(t, "pai@example.com", 7)

	rec := app.request(t, "POST", "/api/lessons/generate", `{"subject":"GRAMMAR","topic":"Letra B"}`, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("generate returned %d: %s", rec.Code, rec.Body.String())
	}

	var lesson models.Lesson
	if err := json.Unmarshal(rec.Body.Bytes(), &lesson); err != nil {
		t.Fatal(err)
	}
	if lesson.ID != "letter_B" || len(lesson.Questions) != 3 {
		t.Fatalf("expected the letter B lesson, got %+v", lesson)
	}
}

func TestGenerateLessonUnknownSubject(t *testing.T) {
	app := newTestApp(t)
	cookies := app.registerAndSignIn(t, "pai@example.com", 7)

	rec := app.request(t, "POST", "/api/lessons/generate", `{"subject":"ALCHEMY"}`, cookies)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTutorEndpointOffline(t *testing.T) {
	app := newTestApp(t)
	cookies := app.registerAndSignIn(t, "pai@example.com", 7)

	rec := app.request(t, "POST", "/api/tutor", `{"question":"Quanto é 2+2?","age":6}`, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("tutor returned %d", rec.Code)
	}
	var resp tutorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Hint == "" {
		t.Fatal("expected a hint even without a provider")
	}
}

func TestProgressAndMasteryEndpoints(t *testing.T) {
	app := newTestApp(t)
	cookies := app.registerAndSignIn(t, "pai@example.com", 7)

	rec := app.request(t, "POST", "/api/progress", `{"xpEarned":1000}`, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("progress returned %d: %s", rec.Code, rec.Body.String())
	}
	p := decodeProfile(t, rec)
	if p.Level != 2 {
		t.Fatalf("1000 XP should reach level 2, got %d", p.Level)
	}

	rec = app.request(t, "POST", "/api/letters/mastered", `{"letter":"b"}`, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("mastery returned %d: %s", rec.Code, rec.Body.String())
	}
	p = decodeProfile(t, rec)
	if !p.HasMastered("B") {
		t.Fatalf("lowercase input should be normalized, got %v", p.MasteredLetters)
	}

	rec = app.request(t, "POST", "/api/letters/mastered", `{"letter":"ç"}`, cookies)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown letter, got %d", rec.Code)
	}
}

func TestNegativeXPRejected(t *testing.T) {
	app := newTestApp(t)
	cookies := app.registerAndSignIn(t, "pai@example.com", 7)

	rec := app.request(t, "POST", "/api/progress", `{"xpEarned":-5}`, cookies)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBillingEndpoints(t *testing.T) {
	app := newTestApp(t)
	cookies := app.registerAndSignIn(t, "pai@example.com", 7)

	rec := app.request(t, "POST", "/api/billing/activate", `{"plan":"yearly"}`, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("activate returned %d: %s", rec.Code, rec.Body.String())
	}
	p := decodeProfile(t, rec)
	if !p.IsPremium || p.SubscriptionPlan != models.PlanYearly {
		t.Fatalf("unexpected profile after activation: %+v", p)
	}

	rec = app.request(t, "POST", "/api/billing/cancel", "", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("cancel returned %d: %s", rec.Code, rec.Body.String())
	}
	p = decodeProfile(t, rec)
	if p.IsPremium {
		t.Fatal("expected free tier after cancel")
	}
	if len(p.UnlockedSubjects) != len(models.AllSubjects()) {
		t.Fatal("cancel must keep unlocked subjects")
	}
}

func TestRecommendationEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, "GET", "/api/recommendation?age=8", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("recommendation returned %d", rec.Code)
	}
	var path service.LearningPath
	if err := json.Unmarshal(rec.Body.Bytes(), &path); err != nil {
		t.Fatal(err)
	}
	if path.RecommendedStart != models.SubjectLogic {
		t.Fatalf("age 8 should recommend logic, got %s", path.RecommendedStart)
	}

	rec = app.request(t, "GET", "/api/recommendation", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing age should 400, got %d", rec.Code)
	}
}

func TestLettersEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, "GET", "/api/letters", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("letters returned %d", rec.Code)
	}
	var letters []content.LetterData
	if err := json.Unmarshal(rec.Body.Bytes(), &letters); err != nil {
		t.Fatal(err)
	}
	if len(letters) != 26 {
		t.Fatalf("expected 26 letters, got %d", len(letters))
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newTestApp(t)
	cookies := app.registerAndSignIn(t, "pai@example.com", 7)

	rec := app.request(t, "POST", "/api/auth/logout", "", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout returned %d", rec.Code)
	}

	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected the session cookie to be expired")
	}
}

func TestRateLimitOnAuth(t *testing.T) {
	kv := database.NewMemoryKV()
	users := repository.NewUserRepository(kv)
	sessions := repository.NewSessionRepository(kv)
	profiles := service.NewProfileService(users, sessions, nil)

	middleware := NewMiddleware("test-secret", time.Hour, security.NewRateLimiter(2, time.Minute))
	authHandler := NewAuthHandler(profiles, middleware)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", middleware.RateLimit(authHandler.Login))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"x@example.com","password":"nope12"}`))
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i, rec.Code)
		}
	}

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"x@example.com","password":"nope12"}`))
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after the limit, got %d", rec.Code)
	}
}
