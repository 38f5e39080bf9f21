package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"smartlend/internal/adapter/middleware"
	"smartlend/internal/usecase/auth"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	uc     *auth.Usecase
	secret string
}

func NewAuthHandler(uc *auth.Usecase, secret string) *AuthHandler {
	return &AuthHandler{uc: uc, secret: secret}
}

type registerReq struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Register(c.Request().Context(), auth.RegisterInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	u, err := h.uc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return writeDomainError(c, err)
	}
	token, err := middleware.GenerateToken(u.ID, u.Role, h.secret, tokenTTL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to issue token"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"access_token": token,
		"role":         u.Role,
	})
}
