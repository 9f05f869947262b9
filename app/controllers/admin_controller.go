package controllers

import (
	"encoding/json"
	"net/http"

	"csvvault/app/dto"
	"csvvault/app/models"
	"csvvault/app/services"
)

type AdminController struct{ Users *services.UserService }

func NewAdminController(users *services.UserService) *AdminController {
	return &AdminController{Users: users}
}

func (c *AdminController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing credentials")
		return
	}
	if req.Role != "" && req.Role != models.RoleUser && req.Role != models.RoleAdmin {
		writeError(w, http.StatusBadRequest, "invalid role")
		return
	}
	u, err := c.Users.CreateUser(req.Username, req.Password, req.Role)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.UserFromModel(u))
}

func (c *AdminController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.ListAll()
	if err != nil {
		serviceError(w, err)
		return
	}
	out := make([]dto.User, 0, len(users))
	for i := range users {
		out = append(out, dto.UserFromModel(&users[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *AdminController) SetActive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var req dto.SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := c.Users.SetActive(id, req.IsActive); err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"detail": "user updated"})
}

func (c *AdminController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if err := c.Users.Delete(id); err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"detail": "user deleted"})
}
