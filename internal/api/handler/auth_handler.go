package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/exam-api/internal/core/domain"
	"github.com/99minutos/exam-api/internal/core/ports"
)

const (
	msgCredentialsRequired = "Username and password are required"
	msgUserExists          = "User already exists"
	msgInvalidCredentials  = "Invalid username or password"
	msgRegistered          = "User registered successfully"
	msgInvalidPayload      = "Invalid request payload"
	msgPasswordTooLong     = "Password must be at most 72 bytes"
)

type AuthHandler struct {
	authService ports.AuthService
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Username and password"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	if err := h.authService.Register(c.Request().Context(), req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			return echo.NewHTTPError(http.StatusConflict, msgUserExists)
		case errors.Is(err, domain.ErrPasswordTooLong):
			return echo.NewHTTPError(http.StatusBadRequest, msgPasswordTooLong)
		case errors.Is(err, domain.ErrInvalidInput):
			return echo.NewHTTPError(http.StatusBadRequest, msgCredentialsRequired)
		}
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Msg: msgRegistered})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Username and password"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return echo.NewHTTPError(http.StatusUnauthorized, msgInvalidCredentials)
		case errors.Is(err, domain.ErrInvalidInput):
			return echo.NewHTTPError(http.StatusBadRequest, msgCredentialsRequired)
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{AccessToken: token})
}

func bindCredentials(c echo.Context) (*credentialsRequest, error) {
	var req credentialsRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, msgInvalidPayload)
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, msgCredentialsRequired)
	}
	return &req, nil
}
