package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/otpnet/otpnet/crypto"
	"github.com/otpnet/otpnet/metrics"
	"github.com/otpnet/otpnet/protocol"
)

// ProtocolHandler serves the protocol core over HTTP.
type ProtocolHandler struct {
	proto *protocol.Protocol
	log   *slog.Logger
}

// NewProtocolHandler wraps a protocol instance for HTTP exposure.
func NewProtocolHandler(proto *protocol.Protocol, log *slog.Logger) *ProtocolHandler {
	return &ProtocolHandler{proto: proto, log: log}
}

// RegisterRoutes registers the protocol API with the router.
func (h *ProtocolHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/send", h.send)
	r.Post("/api/receive", h.receive)
	r.Get("/api/status", h.status)
}

func (h *ProtocolHandler) send(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	req, err := protocol.DecodeMessage[SendRequest](r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to parse request: %v", err), http.StatusBadRequest)
		return
	}

	sender, err := protocol.ParseParty(req.Sender)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	message, err := DecodeValue(req.Message)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.proto.Send(sender, message)
	if err != nil {
		metrics.SendErrorsTotal.Inc()
		h.writeSendError(w, sender, err)
		return
	}

	metrics.SendsTotal.Inc()
	writeJSON(w, &SendResponse{
		Ciphertext: EncodeValue(res.Ciphertext),
		PadIndex:   res.PadIndex,
	})
}

// writeSendError maps the core's failure kinds onto HTTP statuses. Secrecy
// violations and out-of-range draws report 409 because the pad is burned
// and retrying the identical request cannot succeed.
func (h *ProtocolHandler) writeSendError(w http.ResponseWriter, sender protocol.Party, err error) {
	switch {
	case errors.Is(err, protocol.ErrExhaustedAllocation):
		metrics.ExhaustionsTotal.Inc()
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, protocol.ErrSecrecyViolation):
		metrics.ViolationsTotal.Inc()
		h.log.Warn("send rejected", "sender", sender.String(), "err", err)
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, protocol.ErrIndexOutOfRange):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, crypto.ErrWidthMismatch):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *ProtocolHandler) receive(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	req, err := protocol.DecodeMessage[ReceiveRequest](r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to parse request: %v", err), http.StatusBadRequest)
		return
	}

	ciphertext, err := DecodeValue(req.Ciphertext)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	message, err := h.proto.Receive(ciphertext, req.PadIndex)
	if err != nil {
		metrics.ReceiveErrorsTotal.Inc()
		switch {
		case errors.Is(err, protocol.ErrIndexOutOfRange):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, crypto.ErrWidthMismatch):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	metrics.ReceivesTotal.Inc()
	writeJSON(w, &ReceiveResponse{Message: EncodeValue(message)})
}

func (h *ProtocolHandler) status(w http.ResponseWriter, r *http.Request) {
	cfg := h.proto.Config()
	resp := &StatusResponse{
		PadCount: cfg.PadCount,
		PadBits:  cfg.PadBits,
		MaxGap:   cfg.MaxGap,
	}
	for _, party := range protocol.Parties() {
		resp.Parties = append(resp.Parties, PartyStatus{
			Party:     party.String(),
			Remaining: h.proto.Remaining(party),
			LastUsed:  h.proto.LastUsed(party),
		})
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}
