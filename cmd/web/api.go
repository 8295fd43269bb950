package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"fabricpro.io/fabric-web/internal/chat"
	"fabricpro.io/fabric-web/internal/contact"
)

const maxAPIBody = 64 << 10

type chatRequest struct {
	Message   string         `json:"message"`
	SessionID string         `json:"sessionId"`
	History   []chat.Message `json:"history"`
}

type chatResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"sessionId"`
}

// chatHandler proxies one chat-widget message to the automation webhook. The
// visitor always gets a reply; webhook trouble surfaces as the canned text.
func (a *app) chatHandler(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeJSONError(w, http.StatusBadRequest, "message is required")
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		req.SessionID = chat.NewSessionID()
	}

	reply := a.chat.Send(r.Context(), req.SessionID, req.Message, req.History)
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply, SessionID: req.SessionID})
}

type contactRequest struct {
	ID string `json:"id"`
	contact.Inquiry
}

type contactResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// contactSubmitHandler finalizes a quote request. With an id it submits the
// existing draft; without one it creates the inquiry already submitted.
func (a *app) contactSubmitHandler(w http.ResponseWriter, r *http.Request) {
	a.saveInquiry(w, r, contact.StatusSubmitted)
}

// contactDraftHandler saves partial form progress, creating the draft on
// first save and updating it by id afterwards.
func (a *app) contactDraftHandler(w http.ResponseWriter, r *http.Request) {
	a.saveInquiry(w, r, contact.StatusDraft)
}

func (a *app) saveInquiry(w http.ResponseWriter, r *http.Request, status string) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Inquiry.Status = status

	var (
		saved contact.Saved
		err   error
	)
	if strings.TrimSpace(req.ID) != "" {
		saved, err = a.contact.Update(r.Context(), req.ID, req.Inquiry)
	} else {
		saved, err = a.contact.Create(r.Context(), req.Inquiry)
	}
	if err != nil {
		if errors.Is(err, contact.ErrMissingID) || errors.Is(err, contact.ErrIncomplete) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		a.log.Error("inquiry save failed", zap.String("status", status), zap.Error(err))
		writeJSONError(w, http.StatusBadGateway, "could not save your inquiry, please try again")
		return
	}
	writeJSON(w, http.StatusOK, contactResponse{ID: saved.ID, Status: saved.Status})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxAPIBody))
	return dec.Decode(v)
}

type apiEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(apiEnvelope{Success: true, Data: data})
}

func writeJSONError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(apiEnvelope{Success: false, Error: msg})
}
