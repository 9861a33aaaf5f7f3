package handler

import (
	"net/http"
	"time"

	"scriptmarket/internal/dto"
	"scriptmarket/internal/middleware"
	"scriptmarket/internal/service"

	"github.com/labstack/echo/v4"
)

type CookieOptions struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	authService service.AuthService
	cookie      CookieOptions
}

func NewAuthHandler(authService service.AuthService, cookie CookieOptions) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookie:      cookie,
	}
}

func (h *AuthHandler) setSession(c echo.Context, value string, expires time.Time) {
	cookie := &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		cookie.MaxAge = -1
	}
	c.SetCookie(cookie)
}

func (h *AuthHandler) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SignupRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}

	res, err := h.authService.Signup(ctx, &req)
	if err != nil {
		return toHTTPError(err)
	}

	h.setSession(c, res.Token, res.ExpiresAt)
	return c.JSON(http.StatusCreated, res)
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}

	res, err := h.authService.Login(ctx, &req)
	if err != nil {
		return toHTTPError(err)
	}

	h.setSession(c, res.Token, res.ExpiresAt)
	return c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.setSession(c, "", time.Unix(0, 0))
	return c.JSON(http.StatusOK, &dto.SuccessResponse{Success: true})
}

func (h *AuthHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	me, err := h.authService.Me(ctx, middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, me)
}

func (h *AuthHandler) UpdateMe(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}

	me, err := h.authService.UpdateProfile(ctx, middleware.UserID(c), &req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, me)
}
