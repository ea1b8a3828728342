//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"appointment-booking/internal/pkg/cookie"
	"appointment-booking/tests/common/authtest"
	"appointment-booking/tests/common/dbtest"
	"appointment-booking/tests/common/httptest"
	"appointment-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func (s *AuthSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestRegister() {
	s.Run("Normal case: registering a patient account", func() {
		t := s.T()

		reqBody := map[string]any{
			"email":    "newpatient@example.com",
			"password": "password123",
			"role":     "user",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// The new account can log in right away.
		token := authtest.LoginUser(t, s.Router, "newpatient@example.com", "password123")
		require.NotEmpty(t, token)
	})

	s.Run("Normal case: provider registration creates the provider profile", func() {
		t := s.T()

		reqBody := map[string]any{
			"email":         "newdoctor@example.com",
			"password":      "password123",
			"role":          "provider",
			"provider_name": "Dr. New",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var count int
		err := s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM providers p JOIN users u ON u.id = p.user_id WHERE u.email = $1",
			"newdoctor@example.com").Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	s.Run("Error case: duplicate email returns 409", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "taken@example.com", "user")

		reqBody := map[string]any{
			"email":    "taken@example.com",
			"password": "password123",
			"role":     "user",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: login sets token cookies", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "login@example.com", "user")

		reqBody := map[string]any{
			"email":    "login@example.com",
			"password": "password123",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		refresh := httptest.ExtractCookie(w, cookie.RefreshTokenCookieName)
		require.NotNil(t, access)
		require.NotNil(t, refresh)
		require.True(t, access.HttpOnly)
		require.True(t, refresh.HttpOnly)
	})

	s.Run("Error case: wrong password returns 401", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "wrongpass@example.com", "user")

		reqBody := map[string]any{
			"email":    "wrongpass@example.com",
			"password": "not-the-password",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Error case: unknown email returns 401", func() {
		t := s.T()

		reqBody := map[string]any{
			"email":    "nobody@example.com",
			"password": "password123",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *AuthSuite) TestRefresh() {
	s.Run("Normal case: refresh rotates the token pair", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "refresh@example.com", "user")

		reqBody := map[string]any{
			"email":    "refresh@example.com",
			"password": "password123",
		}
		loginRec := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
		require.Equal(t, http.StatusOK, loginRec.Code)

		cookies := httptest.ExtractCookies(loginRec)
		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.NotEmpty(t, body["access_token"])
	})

	s.Run("Error case: refresh without a cookie returns 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *AuthSuite) TestMe() {
	s.Run("Normal case: returns the authenticated account", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "whoami@example.com", "user")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Equal(t, "whoami@example.com", body["email"])
	})

	s.Run("Error case: missing token returns 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}
