package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"melodybase/internal/responses"
	"melodybase/internal/services"
	"melodybase/internal/utils"
)

type GoogleAuthHandler struct {
	googleAuthService *services.GoogleAuthService
	googleOauthConfig *oauth2.Config
}

func NewGoogleAuthHandler(googleAuthService *services.GoogleAuthService, oauthConfig *oauth2.Config) *GoogleAuthHandler {
	return &GoogleAuthHandler{
		googleAuthService: googleAuthService,
		googleOauthConfig: oauthConfig,
	}
}

func (h *GoogleAuthHandler) Login(c *gin.Context) {
	oauthState, err := utils.GenerateStateOauthCookie()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to generate state")
		return
	}
	c.SetCookie("oauth_state", oauthState, 3600, "/", "", false, true)

	authURL := h.googleOauthConfig.AuthCodeURL(oauthState)

	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// Callback finishes the OAuth flow: the state cookie guards against CSRF,
// the code is exchanged for a Google token, and the matched or newly
// created user gets a session.
func (h *GoogleAuthHandler) Callback(c *gin.Context) {
	queryState := c.Query("state")
	if queryState == "" {
		responses.Fail(c, http.StatusBadRequest, nil, "Missing state parameter")
		return
	}

	cookieState, err := c.Cookie("oauth_state")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Missing state cookie")
		return
	}

	if queryState != cookieState {
		responses.Fail(c, http.StatusForbidden, nil, "State mismatch - possible CSRF attack")
		return
	}

	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		responses.Fail(c, http.StatusBadRequest, nil, "Missing code")
		return
	}

	token, err := h.googleOauthConfig.Exchange(c.Request.Context(), code)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Token exchange failed")
		return
	}

	accessToken, refreshToken, err := h.googleAuthService.Callback(c.Request.Context(), token)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to login")
		return
	}

	c.SetCookie(RefreshTokenCookieName, refreshToken, RefreshTokenMaxAge, "/", "", true, true)

	res := gin.H{
		"access_token": accessToken,
	}

	responses.Success(c, http.StatusOK, res, "User Login Successfully!")
}
