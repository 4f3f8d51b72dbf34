package router

import (
	"net/http"
	"wordquest/app/controllers"
	"wordquest/app/middleware"
)

func New(pages *controllers.PageController, admin *controllers.AdminController, api *controllers.APIController, gate *middleware.SessionGate) http.Handler {
	mux := http.NewServeMux()

	// public pages
	mux.HandleFunc("GET /{$}", pages.Home)
	mux.HandleFunc("/signup", pages.Signup)
	mux.HandleFunc("/login", pages.Login)
	mux.HandleFunc("GET /logout", pages.Logout)

	// session-gated pages and admin mutations
	mux.Handle("GET /dashboard", gate.RequireUser(http.HandlerFunc(pages.Dashboard)))
	mux.Handle("GET /admin", gate.RequireUser(http.HandlerFunc(admin.Panel)))
	mux.Handle("POST /admin/word/add", gate.RequireUser(http.HandlerFunc(admin.AddWord)))
	mux.Handle("GET /admin/word/delete/{id}", gate.RequireUser(http.HandlerFunc(admin.DeleteWord)))
	mux.Handle("GET /admin/user/delete/{id}", gate.RequireUser(http.HandlerFunc(admin.DeleteUser)))

	// game APIs
	mux.HandleFunc("GET /api/words", api.GetWords)
	mux.HandleFunc("GET /api/leaderboard", api.GetLeaderboard)
	mux.HandleFunc("POST /api/leaderboard", api.PostScore)

	return mux
}
