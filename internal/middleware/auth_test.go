package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reviewmap_backend/internal/api/cookies"
	"reviewmap_backend/internal/model"
	"reviewmap_backend/internal/service/auth"
	"reviewmap_backend/pkg/token"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type fakeAuthService struct {
	result *model.AuthResult
	err    error

	gotAccess  string
	gotRefresh string
}

func (f *fakeAuthService) Authenticate(_ context.Context, accessToken, refreshToken string) (*model.AuthResult, error) {
	f.gotAccess = accessToken
	f.gotRefresh = refreshToken
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeAuthService) Register(context.Context, *model.User) (*model.User, error) {
	return nil, nil
}
func (f *fakeAuthService) Login(context.Context, string, string) (*model.AuthData, error) {
	return nil, nil
}
func (f *fakeAuthService) Refresh(context.Context, string) (string, error) { return "", nil }
func (f *fakeAuthService) Logout(context.Context, string) error            { return nil }
func (f *fakeAuthService) ReapExpiredSessions(context.Context) (int64, error) {
	return 0, nil
}

func protected(t *testing.T, serv *fakeAuthService) (http.Handler, *int) {
	t.Helper()
	var seenUserID int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		if !ok {
			t.Fatalf("userID missing from request context")
		}
		seenUserID = id
		w.WriteHeader(http.StatusOK)
	})
	return RequireAuth(serv)(next), &seenUserID
}

func TestRequireAuth_Bearer(t *testing.T) {
	t.Parallel()

	serv := &fakeAuthService{result: &model.AuthResult{UserID: 42}}
	handler, seenUserID := protected(t, serv)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-access-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200", rec.Code)
	}
	if *seenUserID != 42 {
		t.Fatalf("userID: got %d want 42", *seenUserID)
	}
	if serv.gotAccess != "some-access-token" {
		t.Fatalf("access token not passed through: %q", serv.gotAccess)
	}
}

// Cookie с access токеном не считается учетными данными: access
// принимается только из заголовка Authorization
func TestRequireAuth_AccessCookieIgnored(t *testing.T) {
	t.Parallel()

	serv := &fakeAuthService{result: &model.AuthResult{UserID: 7}}
	handler, _ := protected(t, serv)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookies.AccessTokenName, Value: "cookie-access"})
	req.AddCookie(&http.Cookie{Name: cookies.RefreshTokenName, Value: "refresh-cookie"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if serv.gotAccess != "" {
		t.Fatalf("access cookie passed as credential: %q", serv.gotAccess)
	}
	if serv.gotRefresh != "refresh-cookie" {
		t.Fatalf("refresh cookie not passed through: %q", serv.gotRefresh)
	}
}

// Аутентификация по refresh-пути выставляет клиенту свежий access cookie
func TestRequireAuth_RefreshSetsCookie(t *testing.T) {
	t.Parallel()

	serv := &fakeAuthService{result: &model.AuthResult{UserID: 7, NewAccessToken: "fresh-access"}}
	handler, _ := protected(t, serv)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookies.RefreshTokenName, Value: "refresh-cookie"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200", rec.Code)
	}
	if serv.gotRefresh != "refresh-cookie" {
		t.Fatalf("refresh cookie not passed through: %q", serv.gotRefresh)
	}

	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookies.AccessTokenName && c.Value == "fresh-access" {
			found = true
		}
	}
	if !found {
		t.Fatalf("fresh access cookie not set on response")
	}
}

func TestRequireAuth_Unauthorized(t *testing.T) {
	t.Parallel()

	serv := &fakeAuthService{err: model.ErrUnauthorized}
	handler, _ := protected(t, serv)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want 401", rec.Code)
	}
}

type staticTxManager struct{}

func (staticTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (staticTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type staticUserRepo struct{}

func (staticUserRepo) CreateUser(context.Context, *model.User) (int, error) { return 0, nil }
func (staticUserRepo) GetUserByEmail(context.Context, string) (*model.User, error) {
	return nil, model.ErrNotFound
}
func (staticUserRepo) GetUserByID(context.Context, int) (*model.User, error) {
	return nil, model.ErrNotFound
}
func (staticUserRepo) ListUsers(context.Context) ([]model.User, error) { return nil, nil }
func (staticUserRepo) DeleteUser(context.Context, int) error           { return nil }

type staticSessionRepo struct {
	sessions map[string]*model.Session
}

func (f *staticSessionRepo) CreateSession(_ context.Context, s *model.Session) error {
	f.sessions[s.Token] = s
	return nil
}

func (f *staticSessionRepo) GetSessionByToken(_ context.Context, tok string) (*model.Session, error) {
	s, ok := f.sessions[tok]
	if !ok {
		return nil, model.ErrNotFound
	}
	return s, nil
}

func (f *staticSessionRepo) DeleteSessionsByToken(_ context.Context, tok string) error {
	delete(f.sessions, tok)
	return nil
}

func (f *staticSessionRepo) DeleteExpiredSessions(context.Context, time.Time) (int64, error) {
	return 0, nil
}

type staticJWTConfig struct{}

func (staticJWTConfig) AccessTokenSecretKey() []byte  { return []byte("access-secret") }
func (staticJWTConfig) RefreshTokenSecretKey() []byte { return []byte("refresh-secret") }

// Браузер с протухшим access cookie и живой сессией обязан получить
// тихий refresh, а не 401: протухший cookie не учетные данные
func TestRequireAuth_ExpiredAccessCookieSilentRefresh(t *testing.T) {
	t.Parallel()

	sessionRepo := &staticSessionRepo{sessions: make(map[string]*model.Session)}
	authServ := auth.NewAuthService(staticUserRepo{}, sessionRepo, staticTxManager{}, staticJWTConfig{})

	staleExpiry := time.Now().Add(-time.Minute)
	staleAccess, err := token.GenerateAccessToken(7, staticJWTConfig{}.AccessTokenSecretKey(), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}
	refreshToken, err := token.GenerateRefreshToken(7, staticJWTConfig{}.RefreshTokenSecretKey(), auth.RefreshTokenTTL)
	if err != nil {
		t.Fatalf("GenerateRefreshToken error: %v", err)
	}
	sessionRepo.sessions[refreshToken] = &model.Session{
		ID: "s1", UserID: 7, Token: refreshToken, ExpiresAt: time.Now().Add(auth.RefreshTokenTTL),
	}

	var seenUserID int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAuth(authServ)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookies.AccessTokenName, Value: staleAccess})
	req.AddCookie(&http.Cookie{Name: cookies.RefreshTokenName, Value: refreshToken})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200 (silent refresh)", rec.Code)
	}
	if seenUserID != 7 {
		t.Fatalf("userID: got %d want 7", seenUserID)
	}

	var fresh *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookies.AccessTokenName {
			fresh = c
		}
	}
	if fresh == nil || fresh.Value == "" {
		t.Fatalf("fresh access cookie not set on response")
	}

	claims, err := token.Verify(fresh.Value, staticJWTConfig{}.AccessTokenSecretKey())
	if err != nil {
		t.Fatalf("minted access token invalid: %v", err)
	}
	if claims.UserID != 7 {
		t.Fatalf("minted token userID: got %d want 7", claims.UserID)
	}
	// Срок нового токена строго позже срока протухшего
	if !claims.ExpiresAt.After(staleExpiry) {
		t.Fatalf("minted token expiry %v not after stale expiry %v", claims.ExpiresAt, staleExpiry)
	}
}

// Недоступность хранилища не маскируется под отказ в доступе
func TestRequireAuth_StorageErrorIs500(t *testing.T) {
	t.Parallel()

	serv := &fakeAuthService{err: errors.New("connection refused")}
	handler, _ := protected(t, serv)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d want 500", rec.Code)
	}
}
