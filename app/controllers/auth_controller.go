package controllers

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"csvvault/app/dto"
	jwtutil "csvvault/app/jwt"
	"csvvault/app/middleware"
	"csvvault/app/services"
)

type AuthController struct {
	Users    *services.UserService
	Signer   *jwtutil.Signer
	LoginTTL time.Duration
	Throttle *middleware.LoginThrottle
}

func NewAuthController(users *services.UserService, signer *jwtutil.Signer, loginTTL time.Duration, throttle *middleware.LoginThrottle) *AuthController {
	return &AuthController{Users: users, Signer: signer, LoginTTL: loginTTL, Throttle: throttle}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing credentials")
		return
	}
	u, err := c.Users.Register(req.Username, req.Password)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.UserFromModel(u))
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing credentials")
		return
	}
	if !c.Throttle.Allow(r.Context(), req.Username, clientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "too many login attempts")
		return
	}
	u, err := c.Users.ValidateCredentials(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		serviceError(w, err)
		return
	}
	token, err := c.Signer.Issue(u.Username, c.LoginTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "token error")
		return
	}
	writeJSON(w, http.StatusOK, dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
