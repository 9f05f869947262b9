package router

import (
	"net/http"

	"csvvault/app/controllers"
	"csvvault/app/middleware"
)

func NewRouter(httpCtrl *controllers.HTTPController, authCtrl *controllers.AuthController, fileCtrl *controllers.FileController, adminCtrl *controllers.AdminController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("GET /ping", httpCtrl.Ping)
	mux.HandleFunc("POST /register", authCtrl.Register)
	mux.HandleFunc("POST /login", authCtrl.Login)

	// authenticated file CRUD
	mux.Handle("POST /files", mw.RequireAuth(http.HandlerFunc(fileCtrl.Upload)))
	mux.Handle("GET /files", mw.RequireAuth(http.HandlerFunc(fileCtrl.List)))
	mux.Handle("GET /files/{id}", mw.RequireAuth(http.HandlerFunc(fileCtrl.Get)))
	mux.Handle("GET /files/{id}/download", mw.RequireAuth(http.HandlerFunc(fileCtrl.Download)))
	mux.Handle("PUT /files/{id}", mw.RequireAuth(http.HandlerFunc(fileCtrl.Rename)))
	mux.Handle("DELETE /files/{id}", mw.RequireAuth(http.HandlerFunc(fileCtrl.Delete)))

	// admin-only user management
	mux.Handle("POST /admin/users", mw.RequireAdmin(http.HandlerFunc(adminCtrl.CreateUser)))
	mux.Handle("GET /admin/users", mw.RequireAdmin(http.HandlerFunc(adminCtrl.ListUsers)))
	mux.Handle("PUT /admin/users/{id}/active", mw.RequireAdmin(http.HandlerFunc(adminCtrl.SetActive)))
	mux.Handle("DELETE /admin/users/{id}", mw.RequireAdmin(http.HandlerFunc(adminCtrl.DeleteUser)))

	return mux
}
