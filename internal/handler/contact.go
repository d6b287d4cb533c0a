// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/tkddzwirzyno/website/internal/pb"
	"github.com/tkddzwirzyno/website/internal/seo"
)

// contactData carries the form state back into the contact template.
type contactData struct {
	Sent    bool
	Error   string
	Name    string
	Email   string
	Phone   string
	Message string
}

// Contact renders the contact page. ?success=true is the post-redirect
// confirmation flag.
func (h *FrontendHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "contact", http.StatusOK,
		seo.Page{Title: "Kontakt", Path: "/kontakt"},
		contactData{Sent: r.URL.Query().Get("success") == "true"})
}

// SendMessage handles the contact form POST. The backend write is the
// durability-critical step: its failure is a 500. The notification email
// is dispatched after the fact and never affects the response. Success
// redirects with 303 so the browser re-requests /kontakt as a GET.
func (h *FrontendHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "Nieprawidłowe dane formularza.")
		return
	}

	msg := pb.ContactMessage{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		Message: r.PostFormValue("message"),
	}

	if msg.Email == "" || msg.Message == "" {
		h.renderPage(w, r, "contact", http.StatusBadRequest,
			seo.Page{Title: "Kontakt", Path: "/kontakt", NoIndex: true},
			contactData{
				Error:   "Adres e-mail i treść wiadomości są wymagane.",
				Name:    msg.Name,
				Email:   msg.Email,
				Phone:   msg.Phone,
				Message: msg.Message,
			})
		return
	}

	if err := h.client.Create(r.Context(), pb.CollectionMessages, msg); err != nil {
		h.logger.Error("contact message create failed", "error", err)
		h.renderError(w, r, http.StatusInternalServerError, "Nie udało się wysłać wiadomości.")
		return
	}

	h.mailer.Notify(msg)

	http.Redirect(w, r, "/kontakt?success=true", http.StatusSeeOther)
}
