package http

import (
	nethttp "net/http"

	"gridiron-sim/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/seasons/latest", handler.LatestSeason)
	mux.HandleFunc("/standings", handler.Standings)
	mux.HandleFunc("/mvp", handler.MVPs)
	mux.HandleFunc("/careers", handler.Careers)
	mux.HandleFunc("/careers/", handler.CareerByID)
	if admin != nil {
		mux.HandleFunc("/admin/refresh", admin.RefreshSeason)
	}
	return mux
}
