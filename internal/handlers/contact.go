// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Validation limits for contact-form fields.
const (
	maxContactNameLen    = 200
	maxContactSubjectLen = 300
	maxContactMessageLen = 10_000
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (req *contactRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" {
		return "Name is required"
	}
	if utf8.RuneCountInString(req.Name) > maxContactNameLen {
		return "Name is too long"
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return "A valid email address is required"
	}
	if utf8.RuneCountInString(req.Subject) > maxContactSubjectLen {
		return "Subject is too long"
	}
	if req.Message == "" {
		return "Message is required"
	}
	if utf8.RuneCountInString(req.Message) > maxContactMessageLen {
		return "Message is too long"
	}
	return ""
}

// Contact accepts a contact-form submission and forwards it to the studio
// inbox via Resend. A delivery failure surfaces as 502 so the visitor can
// retry.
func (h *Content) Contact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg, "")
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = "New inquiry from " + req.Name
	}

	body := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\n%s",
		req.Name, req.Email, req.Phone, req.Message)

	if err := h.mail.Send(r.Context(), h.cfg.ContactEmail, req.Email, subject, body); err != nil {
		writeError(w, http.StatusBadGateway, "Failed to send message. Please try again later", "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Message sent"})
}
