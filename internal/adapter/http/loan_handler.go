package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"smartlend/internal/adapter/middleware"
	"smartlend/internal/storage"
	loanUC "smartlend/internal/usecase/loan"
)

type LoanHandler struct {
	uc    *loanUC.Usecase
	files *storage.Store
}

func NewLoanHandler(uc *loanUC.Usecase, files *storage.Store) *LoanHandler {
	return &LoanHandler{uc: uc, files: files}
}

type submitReq struct {
	FullName  string  `form:"fullname" validate:"required"`
	DOB       string  `form:"dob" validate:"required"`
	Address   string  `form:"address" validate:"required"`
	Email     string  `form:"email" validate:"required,email"`
	Amount    float64 `form:"amount" validate:"required,gt=0,dec2"`
	Duration  int     `form:"duration" validate:"required,gt=0"`
	Period    string  `form:"period" validate:"required,period"`
	Objective string  `form:"objective" validate:"required"`
	RIB       string  `form:"rib" validate:"required,rib"`
}

// Submit accepts the multipart application form plus the identity
// document. The whole operation fails before any row is written when a
// field or the upload is invalid.
func (h *LoanHandler) Submit(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}

	req := submitReq{
		FullName:  c.FormValue("fullname"),
		DOB:       c.FormValue("dob"),
		Address:   c.FormValue("address"),
		Email:     c.FormValue("email"),
		Period:    c.FormValue("period"),
		Objective: c.FormValue("objective"),
		RIB:       c.FormValue("rib"),
	}
	if v, err := strconv.ParseFloat(c.FormValue("amount"), 64); err == nil {
		req.Amount = v
	}
	if v, err := strconv.Atoi(c.FormValue("duration")); err == nil {
		req.Duration = v
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	fh, err := c.FormFile("identity")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "identity document is required"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable identity document"})
	}
	defer src.Close()

	dto, err := h.uc.Submit(c.Request().Context(), loanUC.SubmitInput{
		Actor:            actor,
		FullName:         req.FullName,
		DOB:              req.DOB,
		Address:          req.Address,
		Email:            req.Email,
		Amount:           req.Amount,
		Duration:         req.Duration,
		Period:           req.Period,
		Objective:        req.Objective,
		RIB:              req.RIB,
		IdentityFilename: fh.Filename,
		Identity:         src,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) List(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	out, err := h.uc.List(c.Request().Context(), actor)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Get(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), actor, id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) DownloadContract(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan id"})
	}
	name, err := h.uc.ContractFile(c.Request().Context(), actor, id)
	if err != nil {
		return writeDomainError(c, err)
	}
	path, err := h.files.Path(name)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Attachment(path, name)
}

func (h *LoanHandler) DownloadIdentity(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan id"})
	}
	name, err := h.uc.IdentityFile(c.Request().Context(), actor, id)
	if err != nil {
		return writeDomainError(c, err)
	}
	path, err := h.files.Path(name)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Attachment(path, name)
}

func parseID(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
