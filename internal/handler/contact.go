package handler

import (
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/model/contact"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	Handler
	contactService *service.ContactService
}

func NewContactHandler(s *server.Server, contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		Handler:        NewHandler(s),
		contactService: contactService,
	}
}

func (h *ContactHandler) ListContacts(c echo.Context, req *contact.ListContactsQuery) (model.Envelope, error) {
	contacts, err := h.contactService.ListContacts(c, req)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(contacts), nil
}

func (h *ContactHandler) GetContact(c echo.Context, req *model.IDPayload) (model.Envelope, error) {
	ct, err := h.contactService.GetContact(c, req.ID)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(ct), nil
}

// SubmitContact stores a contact form message. It is public.
func (h *ContactHandler) SubmitContact(c echo.Context, req *contact.SubmitContactPayload) (model.Envelope, error) {
	ct, err := h.contactService.SubmitContact(c, req)
	if err != nil {
		return model.Envelope{}, err
	}

	env := model.Created("Contact", ct.ID, ct)
	env.Message = "Contact message sent successfully"
	return env, nil
}

func (h *ContactHandler) UpdateContactStatus(c echo.Context, req *contact.UpdateStatusPayload) (model.Envelope, error) {
	ct, err := h.contactService.UpdateContactStatus(c, req)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.Updated("Contact status", ct), nil
}

func (h *ContactHandler) DeleteContact(c echo.Context, req *model.IDPayload) (model.Envelope, error) {
	if err := h.contactService.DeleteContact(c, req.ID); err != nil {
		return model.Envelope{}, err
	}
	return model.Deleted("Contact"), nil
}

func (h *ContactHandler) ContactStats(c echo.Context, _ *model.NoPayload) (model.Envelope, error) {
	stats, err := h.contactService.ContactStats(c)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(stats), nil
}
