package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tech-share/domain"
	"tech-share/mocks"
	"tech-share/utils/security"
)

const testCookieName = "tech_share_session"

func newAuthHandler(ctrl *gomock.Controller) (*AuthHandler, *mocks.MockAuthUsecase) {
	usecase := mocks.NewMockAuthUsecase(ctrl)
	throttle := security.NewLoginThrottle(discardLogger())
	return NewAuthHandler(usecase, throttle, testCookieName, discardLogger()), usecase
}

func sampleSession(token string) *domain.Session {
	return &domain.Session{
		ID:             uuid.New(),
		UserID:         1,
		Token:          token,
		CreatedAt:      time.Now(),
		ExpiresAt:      time.Now().Add(24 * time.Hour),
		LastActivityAt: time.Now(),
	}
}

func sampleUser() *domain.User {
	return &domain.User{
		ID:    1,
		Name:  "Alice",
		Email: "alice@example.com",
		Roles: []domain.UserRole{domain.UserRoleEditor},
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, usecase := newAuthHandler(ctrl)

	usecase.EXPECT().
		Login(gomock.Any(), "alice@example.com", "secret").
		Return(sampleSession("tok123"), sampleUser(), nil)

	body := `{"email":"alice@example.com","password":"secret"}`
	c, rec := newEchoContext(t, http.MethodPost, "/v1/auth/login", body)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.UserID)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, []string{"editor"}, resp.Roles)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookieName, cookies[0].Name)
	assert.Equal(t, "tok123", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, usecase := newAuthHandler(ctrl)

	usecase.EXPECT().
		Login(gomock.Any(), "alice@example.com", "wrong").
		Return(nil, nil, domain.ErrInvalidCredentials)

	body := `{"email":"alice@example.com","password":"wrong"}`
	c, rec := newEchoContext(t, http.MethodPost, "/v1/auth/login", body)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_Login_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "missing email", body: `{"password":"secret"}`, wantField: "email"},
		{name: "malformed email", body: `{"email":"not-an-email","password":"secret"}`, wantField: "email"},
		{name: "missing password", body: `{"email":"alice@example.com"}`, wantField: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler, _ := newAuthHandler(ctrl)

			c, rec := newEchoContext(t, http.MethodPost, "/v1/auth/login", tt.body)

			require.NoError(t, handler.Login(c))
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var resp ValidationErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp.Errors, tt.wantField)
		})
	}
}

func TestAuthHandler_Login_ThrottledAfterRepeatedFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, usecase := newAuthHandler(ctrl)

	usecase.EXPECT().
		Login(gomock.Any(), "alice@example.com", "wrong").
		Return(nil, nil, domain.ErrInvalidCredentials).
		Times(5)

	body := `{"email":"alice@example.com","password":"wrong"}`
	for i := 0; i < 5; i++ {
		c, rec := newEchoContext(t, http.MethodPost, "/v1/auth/login", body)
		require.NoError(t, handler.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	// Sixth attempt is rejected before credentials are even checked.
	c, rec := newEchoContext(t, http.MethodPost, "/v1/auth/login", body)
	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, usecase := newAuthHandler(ctrl)

	usecase.EXPECT().Logout(gomock.Any(), "tok123").Return(nil)

	c, rec := newEchoContext(t, http.MethodPost, "/v1/auth/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: testCookieName, Value: "tok123"})

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthHandler_Logout_WithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, usecase := newAuthHandler(ctrl)

	usecase.EXPECT().Logout(gomock.Any(), "").Return(nil)

	c, rec := newEchoContext(t, http.MethodPost, "/v1/auth/logout", "")

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _ := newAuthHandler(ctrl)

	c, rec := newEchoContext(t, http.MethodGet, "/v1/auth/me", "")
	c.SetRequest(c.Request().WithContext(domain.SetUserContext(c.Request().Context(), &domain.UserContext{
		UserID:    7,
		Email:     "bob@example.com",
		Name:      "Bob",
		Roles:     []domain.UserRole{domain.UserRoleAdmin},
		ExpiresAt: time.Now().Add(time.Hour),
	})))

	require.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.UserID)
	assert.Equal(t, []string{"admin"}, resp.Roles)
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _ := newAuthHandler(ctrl)

	c, rec := newEchoContext(t, http.MethodGet, "/v1/auth/me", "")

	require.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
