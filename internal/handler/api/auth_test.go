//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"appointment-booking/internal/handler/api"
	resdto "appointment-booking/internal/handler/dto/response"
	"appointment-booking/internal/pkg/config"
	"appointment-booking/internal/pkg/cookie"
	"appointment-booking/internal/usecase/commands"
	"appointment-booking/tests/common/builder"
	"appointment-booking/tests/common/httptest"
	"appointment-booking/tests/common/testutil"
	commandsmock "appointment-booking/tests/mock/commands"
	queriesmock "appointment-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockAuth    *commandsmock.MockAuthCommands
	mockQueries *queriesmock.MockUserQueries
	handler     *api.AuthHandler

	authedUserID uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(
		s.mockAuth,
		s.mockQueries,
		config.CookieConfig{SameSite: "Lax"},
		config.JWTConfig{AccessDuration: 15 * time.Minute, RefreshDuration: 168 * time.Hour},
	)

	s.authedUserID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.authedUserID)
		c.Next()
	}

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", authMiddleware, s.handler.Logout)
	s.router.GET("/auth/me", authMiddleware, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"

	reqBody := map[string]any{
		"email":    "patient@example.com",
		"password": "password1234",
		"role":     "user",
	}
	returnView := builder.NewUserBuilder().WithEmail("patient@example.com").BuildReadModel()

	s.Run("success: returns 201 Created with the new account", func() {
		s.mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RegisterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("patient@example.com", response.User.Email)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil)},
			{name: "short password", mutate: testutil.Field("password", "short")},
			{name: "missing field: role (required)", mutate: testutil.Field("role", nil)},
			{name: "unknown role", mutate: testutil.Field("role", "superuser")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: duplicate email gets 409", func() {
		s.mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrEmailAlreadyExists).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already registered")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := map[string]any{
		"email":    "patient@example.com",
		"password": "password1234",
	}
	returnView := builder.NewUserBuilder().WithEmail("patient@example.com").BuildReadModel()
	pair := &commands.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}

	s.Run("success: returns tokens and sets cookies", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), "patient@example.com", "password1234").
			Return(returnView, pair, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("access-token", response.AccessToken)
		s.Equal("patient@example.com", response.User.Email)

		refreshCookie := httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName)
		s.Require().NotNil(refreshCookie)
		s.Equal("refresh-token", refreshCookie.Value)
		s.True(refreshCookie.HttpOnly)
	})

	s.Run("error: bad credentials get 401", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), "patient@example.com", "password1234").
			Return(nil, nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: missing password gets 400", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("password", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"

	pair := &commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
	refreshCookie := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "old-refresh"}}

	s.Run("success: rotates the token pair", func() {
		s.mockAuth.EXPECT().RefreshToken(gomock.Any(), "old-refresh").
			Return(pair, nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, refreshCookie, "")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("new-access", response["access_token"])

		rotated := httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName)
		s.Require().NotNil(rotated)
		s.Equal("new-refresh", rotated.Value)
	})

	s.Run("error: missing cookie gets 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("error: rejected token gets 401", func() {
		s.mockAuth.EXPECT().RefreshToken(gomock.Any(), "old-refresh").
			Return(nil, commands.ErrInvalidRefresh).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, refreshCookie, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired refresh token")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: clears cookies and returns 204", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)

		cleared := httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName)
		s.Require().NotNil(cleared)
		s.Empty(cleared.Value)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the authenticated account", func() {
		returnView := builder.NewUserBuilder().BuildReadModel()
		returnView.ID = s.authedUserID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.authedUserID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.authedUserID.String(), response["id"])
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
