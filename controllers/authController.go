package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmuiruri/duka-api/middlewares"
	"github.com/jmuiruri/duka-api/models"
	"github.com/jmuiruri/duka-api/services"
	"github.com/jmuiruri/duka-api/utils"
)

const (
	// Standard response messages
	msgInvalidInput        = "invalid input"
	msgInvalidCredentials  = "invalid email or password"
	msgInternalServerError = "Internal server error"
	msgImageNotFound       = "image not found"
	msgInvalidProductID    = "invalid product id"
	msgUnknownProduct      = "product does not exist"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

type AuthController struct {
	auth          *services.AuthService
	sessionSecret string
	sessionTTL    time.Duration
}

func NewAuthController(auth *services.AuthService, sessionSecret string, sessionTTL time.Duration) *AuthController {
	return &AuthController{auth: auth, sessionSecret: sessionSecret, sessionTTL: sessionTTL}
}

func (a *AuthController) establishSession(ctx *gin.Context, user models.User) error {
	token, err := utils.CreateSessionToken(user, a.sessionSecret, a.sessionTTL)
	if err != nil {
		return err
	}
	ctx.SetCookie(middlewares.SessionCookie, token, int(a.sessionTTL.Seconds()), "/", "", false, true)
	return nil
}

// ShowRegisterForm describes the registration form for the client.
func (a *AuthController) ShowRegisterForm(ctx *gin.Context) {
	_, loggedIn := middlewares.CurrentUser(ctx)
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"fields":   []string{"email", "password", "name"},
		"loggedIn": loggedIn,
	})
}

// Register creates an account and logs the new user straight in. A taken
// email sends the browser to the login flow with no session established.
func (a *AuthController) Register(ctx *gin.Context) {
	var data models.RegisterData
	if err := ctx.ShouldBind(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := a.auth.Register(ctx.Request.Context(), data.Email, data.Password, data.Name)
	if errors.Is(err, services.ErrDuplicateIdentity) {
		ctx.Redirect(http.StatusSeeOther, "/login")
		return
	}
	if err != nil {
		log.Println("Registration error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := a.establishSession(ctx, *user); err != nil {
		log.Println("Session token error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/")
}

func (a *AuthController) ShowLoginForm(ctx *gin.Context) {
	_, loggedIn := middlewares.CurrentUser(ctx)
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"fields":   []string{"email", "password"},
		"loggedIn": loggedIn,
	})
}

// Login authenticates and establishes a session. Every failure looks the
// same to the client.
func (a *AuthController) Login(ctx *gin.Context) {
	var data models.LoginData
	if err := ctx.ShouldBind(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := a.auth.Login(ctx.Request.Context(), data.Email, data.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}
	if err != nil {
		log.Println("Login error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := a.establishSession(ctx, *user); err != nil {
		log.Println("Session token error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session cookie. A logout with no session is a no-op,
// not an error.
func (a *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	ctx.Redirect(http.StatusSeeOther, "/")
}
