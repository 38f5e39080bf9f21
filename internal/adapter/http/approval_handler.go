package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"smartlend/internal/adapter/middleware"
	"smartlend/internal/domain/loan"
	"smartlend/internal/usecase/approval"
)

type ApprovalHandler struct{ uc *approval.Usecase }

func NewApprovalHandler(uc *approval.Usecase) *ApprovalHandler {
	return &ApprovalHandler{uc: uc}
}

type changeStatusReq struct {
	Status string `json:"status" validate:"required"`
}

type changeStatusResp struct {
	ID           uint64      `json:"id"`
	Status       loan.Status `json:"status"`
	ContractFile *string     `json:"contract_file,omitempty"`
	Warning      string      `json:"warning,omitempty"`
}

// ChangeStatus drives an application to approved or rejected. A mail
// delivery failure after a successful approval is reported as a warning
// on a 200, never as an operation failure.
func (h *ApprovalHandler) ChangeStatus(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan id"})
	}

	var req changeStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	res, err := h.uc.ChangeStatus(c.Request().Context(), approval.ChangeStatusInput{
		LoanID:    id,
		NewStatus: loan.Status(req.Status),
		Actor:     actor,
	})
	if err != nil {
		return writeDomainError(c, err)
	}

	resp := changeStatusResp{
		ID:           res.Loan.ID,
		Status:       res.Loan.Status,
		ContractFile: res.Loan.ContractFile,
	}
	if res.NotificationTried && !res.NotificationSent {
		resp.Warning = "application approved but the notification email could not be delivered"
	}
	return c.JSON(http.StatusOK, resp)
}
