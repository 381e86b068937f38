package http

import (
	"net/http"
)

// Build metadata headers of GET /version.
const (
	buildVersionHeader = "X-Build-Version"
	buildDateHeader    = "X-Build-Date"
	buildCommitHeader  = "X-Build-Commit"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())
	build := h.services.AppInfoService.GetBuildInfo(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set(buildVersionHeader, build.BuildVersion())
	w.Header().Set(buildDateHeader, build.BuildDate())
	w.Header().Set(buildCommitHeader, build.BuildCommit())
	w.Write([]byte(serverVersion))
}
