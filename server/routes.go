package server

import (
	"encoding/json"
	"net/http"

	"github.com/matryer/way"
	"github.com/zucenko/portals/content"
	"github.com/zucenko/portals/model"
)

const (
	URI_HEALTH  = "/healthz"
	URI_STATE   = "/state"
	URI_PORTALS = "/portals"
	URI_CONTENT = "/content/:portal"
	URI_METRICS = "/metrics"
	URI_WS      = "/ws"
)

func (b *Bridge) routes() {
	b.router = way.NewRouter()
	b.router.HandleFunc("GET", URI_HEALTH, b.handleHealth)
	b.router.HandleFunc("GET", URI_STATE, b.handleState)
	b.router.HandleFunc("GET", URI_PORTALS, b.handlePortals)
	b.router.HandleFunc("GET", URI_CONTENT, b.handleContent)
	b.router.HandleFunc("GET", URI_METRICS, b.handleMetrics)
	b.router.HandleFunc("GET", URI_WS, b.HandleWS())
}

func (b *Bridge) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}

func (b *Bridge) handleState(w http.ResponseWriter, r *http.Request) {
	b.writeJSON(w, http.StatusOK, b.Snapshot())
}

func (b *Bridge) handlePortals(w http.ResponseWriter, r *http.Request) {
	b.writeJSON(w, http.StatusOK, model.NewPortalInfos(b.library.Portals))
}

func (b *Bridge) handleContent(w http.ResponseWriter, r *http.Request) {
	id := way.Param(r.Context(), "portal")
	page, code := b.lookupPage(id)
	if code != CONTENT_READY {
		http.Error(w, http.StatusText(code.ToHttp()), code.ToHttp())
		return
	}
	kind, _ := content.ParseKind(id)
	b.writeJSON(w, code.ToHttp(), model.NewPage(kind, page))
}

func (b *Bridge) lookupPage(id string) (content.Page, ResponseCode) {
	kind, err := content.ParseKind(id)
	if err != nil || !kind.Valid() {
		return nil, CONTENT_INVALID
	}
	page := b.library.Page(kind)
	if page == nil {
		return nil, CONTENT_NOT_FOUND
	}
	return page, CONTENT_READY
}

func (b *Bridge) handleMetrics(w http.ResponseWriter, r *http.Request) {
	b.writeJSON(w, http.StatusOK, b.Metrics.Snapshot())
}

func (b *Bridge) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		b.logger.WithError(err).Warn("write response")
	}
}
