package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/auth/usecases"
	"helpdesk/internal/interfaces/http/handlers/testutil"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/errors"
)

type mockLoginUC struct {
	result *usecases.LoginResult
	err    error
	cmd    usecases.LoginCommand
}

func (m *mockLoginUC) Execute(_ context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockRefreshUC struct {
	result *usecases.RefreshSessionResult
	err    error
	cmd    usecases.RefreshSessionCommand
}

func (m *mockRefreshUC) Execute(_ context.Context, cmd usecases.RefreshSessionCommand) (*usecases.RefreshSessionResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

func newTestAuthHandler(loginUC usecases.LoginExecutor, refreshUC usecases.RefreshSessionExecutor) *AuthHandler {
	return NewAuthHandler(loginUC, refreshUC,
		config.CookieConfig{Path: "/", SameSite: "Lax"},
		config.JWTConfig{AccessExpMinutes: 15, RefreshExpDays: 7})
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockUC := &mockLoginUC{
		result: &usecases.LoginResult{
			AccountID:         2,
			Username:          "kboateng",
			DisplayName:       "Kofi Boateng",
			DisplayDepartment: "I.T. Dept",
			AccessToken:       "access-token",
			RefreshToken:      "refresh-token",
			ExpiresIn:         900,
		},
	}
	handler := newTestAuthHandler(mockUC, &mockRefreshUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/login", LoginRequest{
		Username: "kboateng",
		Password: "long-enough-pass",
	})
	handler.Login(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "kboateng", mockUC.cmd.Username)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.True(t, resp.Success)

	var body LoginResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Equal(t, uint(2), body.AccountID)
	assert.Equal(t, "I.T. Dept", body.DisplayDepartment)
	assert.Equal(t, int64(900), body.ExpiresIn)

	cookies := w.Result().Cookies()
	names := make(map[string]string, len(cookies))
	for _, ck := range cookies {
		names[ck.Name] = ck.Value
		assert.True(t, ck.HttpOnly)
	}
	assert.Equal(t, "access-token", names["access_token"])
	assert.Equal(t, "refresh-token", names["refresh_token"])
}

func TestAuthHandler_Login_Rejected(t *testing.T) {
	mockUC := &mockLoginUC{err: errors.NewUnauthorizedError("invalid username or password")}
	handler := newTestAuthHandler(mockUC, &mockRefreshUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/login", LoginRequest{
		Username: "kboateng",
		Password: "wrong",
	})
	handler.Login(c)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid username or password", resp.Error.Message)
}

func TestAuthHandler_Login_MissingCredentials(t *testing.T) {
	handler := newTestAuthHandler(&mockLoginUC{}, &mockRefreshUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/login", LoginRequest{Username: "kboateng"})
	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Refresh_RotatesCookies(t *testing.T) {
	mockUC := &mockRefreshUC{
		result: &usecases.RefreshSessionResult{
			AccessToken:  "rotated-access-token",
			RefreshToken: "rotated-refresh-token",
			ExpiresIn:    900,
		},
	}
	handler := newTestAuthHandler(&mockLoginUC{}, mockUC)

	c, w := testutil.NewTestContext(http.MethodPost, "/refresh", nil)
	c.Request.AddCookie(&http.Cookie{Name: "refresh_token", Value: "current-refresh-token"})
	handler.Refresh(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "current-refresh-token", mockUC.cmd.RefreshToken)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.True(t, resp.Success)

	var body struct {
		ExpiresIn int64 `json:"expires_in"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Equal(t, int64(900), body.ExpiresIn)

	names := make(map[string]string)
	for _, ck := range w.Result().Cookies() {
		names[ck.Name] = ck.Value
		assert.True(t, ck.HttpOnly)
	}
	assert.Equal(t, "rotated-access-token", names["access_token"])
	assert.Equal(t, "rotated-refresh-token", names["refresh_token"])
}

func TestAuthHandler_Refresh_MissingCookie(t *testing.T) {
	handler := newTestAuthHandler(&mockLoginUC{}, &mockRefreshUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/refresh", nil)
	handler.Refresh(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Refresh_RejectedClearsCookies(t *testing.T) {
	mockUC := &mockRefreshUC{err: errors.NewUnauthorizedError("invalid or expired session")}
	handler := newTestAuthHandler(&mockLoginUC{}, mockUC)

	c, w := testutil.NewTestContext(http.MethodPost, "/refresh", nil)
	c.Request.AddCookie(&http.Cookie{Name: "refresh_token", Value: "stale-token"})
	handler.Refresh(c)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	for _, ck := range w.Result().Cookies() {
		assert.Empty(t, ck.Value)
		assert.Negative(t, ck.MaxAge)
	}
}

func TestAuthHandler_Logout_ClearsCookies(t *testing.T) {
	handler := newTestAuthHandler(&mockLoginUC{}, &mockRefreshUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/logout", nil)
	handler.Logout(c)

	require.Equal(t, http.StatusOK, w.Code)
	for _, ck := range w.Result().Cookies() {
		assert.Empty(t, ck.Value)
		assert.Negative(t, ck.MaxAge)
	}
}
