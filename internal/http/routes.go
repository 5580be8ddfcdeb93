package httpapp

import (
	"net/http"

	"github.com/cesargomez89/saavnsource/internal/domain"
	"github.com/cesargomez89/saavnsource/internal/http/dto"
)

const sourceDisabled = "JioSaavn source is disabled."

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// LoadTracks classifies the identifier and runs the matching source operation.
func (h *Handler) LoadTracks(w http.ResponseWriter, r *http.Request) {
	req := dto.LoadTracksRequestFromQuery(r.URL.Query())
	if errs := req.Validate(); len(errs) > 0 {
		h.writeValidation(w, r, errs)
		return
	}

	res := h.Manager.LoadTracks(r.Context(), req.Identifier)
	h.requestLogger(r).Debug("Loaded", "identifier", req.Identifier, "load_type", res.LoadType())
	h.writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	req := dto.LoadTracksRequestFromQuery(r.URL.Query())
	if errs := req.Validate(); len(errs) > 0 {
		h.writeValidation(w, r, errs)
		return
	}

	c, ok := h.Manager.GetProvider().Check(req.Identifier)
	h.writeJSON(w, r, http.StatusOK, dto.NewCheckResponse(c, ok))
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	req := dto.SearchRequestFromQuery(r.URL.Query())
	if errs := req.Validate(); len(errs) > 0 {
		h.writeValidation(w, r, errs)
		return
	}

	if !h.SourceEnabled {
		h.writeJSON(w, r, http.StatusOK, domain.EmptyResult{})
		return
	}

	res := h.Manager.GetProvider().Search(r.Context(), req.Query)
	h.writeJSON(w, r, http.StatusOK, res)
}

// Stream resolves a playable URL. An exception is a normal outcome and is
// returned with status 200.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	req := dto.StreamRequestFromQuery(r.URL.Query())
	if errs := req.Validate(); len(errs) > 0 {
		h.writeValidation(w, r, errs)
		return
	}

	if !h.SourceEnabled {
		h.writeJSON(w, r, http.StatusOK, domain.NewStreamException(domain.Fault(sourceDisabled, "Disabled")))
		return
	}

	res := h.Manager.GetProvider().RetrieveStream(r.Context(), req.Identifier, req.Title)
	h.writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) DecodeTrack(w http.ResponseWriter, r *http.Request) {
	req := dto.DecodeTrackRequestFromQuery(r.URL.Query())
	if errs := req.Validate(); len(errs) > 0 {
		h.writeValidation(w, r, errs)
		return
	}

	info, err := h.Decoder.Decode(req.EncodedTrack)
	if err != nil {
		h.requestLogger(r).Debug("Failed to decode track", "error", err)
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	h.writeJSON(w, r, http.StatusOK, dto.NewDecodedTrack(req.EncodedTrack, info))
}
