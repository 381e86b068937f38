package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-career-guide/internal/adapter"
	"github.com/MKhiriev/go-career-guide/internal/config"
	"github.com/MKhiriev/go-career-guide/internal/logger"
	"github.com/MKhiriev/go-career-guide/internal/service"
	"github.com/MKhiriev/go-career-guide/internal/utils"
	"github.com/MKhiriev/go-career-guide/models"
	"github.com/golang-jwt/jwt/v5"
)

// ---- Fake: AuthService ----

type fakeAuthService struct {
	registerFn func(ctx context.Context, req models.RegistrationRequest) (models.Identity, error)
	resolveFn  func(ctx context.Context, attempt models.CredentialAttempt) (models.Identity, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegistrationRequest) (models.Identity, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Resolve(ctx context.Context, attempt models.CredentialAttempt) (models.Identity, error) {
	return f.resolveFn(ctx, attempt)
}

// ---- Fake: SessionService ----

const (
	testToken  = "good-token"
	testUserID = "user-1"
)

var testExpiresAt = time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)

// fakeSessionService accepts only testToken unless validateFn is set.
type fakeSessionService struct {
	issueFn    func(ctx context.Context, userID string) (models.Token, error)
	validateFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeSessionService) Issue(ctx context.Context, userID string) (models.Token, error) {
	if f.issueFn != nil {
		return f.issueFn(ctx, userID)
	}
	return models.Token{
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID, ExpiresAt: jwt.NewNumericDate(testExpiresAt)},
		SignedString:     "issued-for-" + userID,
		UserID:           userID,
	}, nil
}

func (f *fakeSessionService) Validate(ctx context.Context, tokenString string) (models.Token, error) {
	if f.validateFn != nil {
		return f.validateFn(ctx, tokenString)
	}
	if tokenString != testToken {
		return models.Token{}, utils.ErrTokenInvalid
	}
	return models.Token{UserID: testUserID}, nil
}

// ---- Fake: ProfileService ----

type fakeProfileService struct {
	getProfileFn  func(ctx context.Context, userID string) (models.Profile, error)
	applyUpdateFn func(ctx context.Context, update models.ProfileUpdate) (models.User, error)
}

func (f *fakeProfileService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	return f.getProfileFn(ctx, userID)
}

func (f *fakeProfileService) ApplyProfileUpdate(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	return f.applyUpdateFn(ctx, update)
}

// ---- Fake: AdvisorService ----

type fakeAdvisorService struct {
	jobsFn      func(ctx context.Context, userID string) (models.JobsResult, error)
	resourcesFn func(ctx context.Context, userID string) (models.ResourcesResult, error)
	skillsFn    func(ctx context.Context, userID string) (models.SkillAnalysis, error)
	resumeFn    func(ctx context.Context, userID string) (models.ResumeResult, error)
}

func (f *fakeAdvisorService) RecommendJobs(ctx context.Context, userID string) (models.JobsResult, error) {
	return f.jobsFn(ctx, userID)
}

func (f *fakeAdvisorService) RecommendResources(ctx context.Context, userID string) (models.ResourcesResult, error) {
	return f.resourcesFn(ctx, userID)
}

func (f *fakeAdvisorService) AnalyzeSkills(ctx context.Context, userID string) (models.SkillAnalysis, error) {
	return f.skillsFn(ctx, userID)
}

func (f *fakeAdvisorService) BuildResume(ctx context.Context, userID string) (models.ResumeResult, error) {
	return f.resumeFn(ctx, userID)
}

// ---- Fake: AppInfoService ----

type fakeAppInfoService struct {
	version string
	build   models.AppBuildInfo
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string { return f.version }

func (f *fakeAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo { return f.build }

// ---- Fake: IdentityProvider ----

type fakeIdentityProvider struct {
	exchangeFn func(ctx context.Context, code string) (models.FederatedIdentity, error)
}

func (f *fakeIdentityProvider) AuthCodeURL(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (f *fakeIdentityProvider) Exchange(ctx context.Context, code string) (models.FederatedIdentity, error) {
	return f.exchangeFn(ctx, code)
}

// ---- Helpers ----

func testServerConfig() config.Server {
	return config.Server{HTTPAddress: "localhost:8080", RequestTimeout: 5 * time.Second}
}

func newTestHandler(svcs *service.Services, provider adapter.IdentityProvider) *Handler {
	if svcs.SessionService == nil {
		svcs.SessionService = &fakeSessionService{}
	}
	return NewHandler(svcs, provider, testServerConfig(), logger.Nop())
}

// serve sends a request through the full router, authorized with testToken
// when authorized is true.
func serve(t *testing.T, h *Handler, method, target, body string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

func newAuthorizedRequest(method, target, authorization string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", authorization)
	return req
}

func serveRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
