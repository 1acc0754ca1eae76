package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/autoshowroom/backend/internal/logging"
	"github.com/autoshowroom/backend/internal/service"
	"github.com/autoshowroom/backend/internal/transport"
)

type ContactHTTP struct {
	Svc *service.ContactService
}

func (h *ContactHTTP) SubmitContact(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "contact.submit")

	var req transport.ContactRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("submit_contact_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("submit_contact_failed", "status", 400, "reason", "missing fields", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contact, err := h.Svc.Submit(ctx, req)
	if err != nil {
		l.Error("submit_contact_failed", "status", 500, "reason", "cannot add contact to db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "server error while sending contact request")
	}

	l.Info("submit_contact_success", "contact_id", contact.ID)
	return c.JSON(http.StatusCreated, transport.MessageResponse{
		Success: true,
		Message: "contact request sent, we will get back to you soon",
	})
}
