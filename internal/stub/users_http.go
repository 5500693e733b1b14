package stub

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"invprime/internal/api"
	"invprime/internal/utils"
)

type userHTTP struct {
	store *Store
}

func newUserHTTP(s *Store) *userHTTP {
	return &userHTTP{store: s}
}

// POST /api/users/login/
func (h *userHTTP) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in api.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		u := h.store.findUserByEmail(strings.TrimSpace(in.Email))
		if u == nil || !utils.CheckPassword(u.passwordHash, in.Password) {
			utils.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		utils.JSON(w, http.StatusOK, api.LoginResponse{
			Message:     "Login successful",
			UserID:      u.ID,
			Role:        u.Role,
			RedirectURL: "/dashboard",
		})
	}
}

// POST /api/users/register/
func (h *userHTTP) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in api.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		in.Email = strings.TrimSpace(in.Email)
		in.Name = strings.TrimSpace(in.Name)
		if in.Email == "" || in.Name == "" || len(in.Password) < 6 {
			utils.Error(w, http.StatusBadRequest, "name, email and a password of 6+ characters are required")
			return
		}
		if h.store.findUserByEmail(in.Email) != nil {
			utils.Error(w, http.StatusBadRequest, "email already registered")
			return
		}
		role := strings.ToUpper(strings.TrimSpace(in.Role))
		if role == "" {
			role = "EMPLOYEE"
		}
		hash, err := utils.HashPassword(in.Password)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		u := h.store.addUser(api.User{
			Name:             in.Name,
			Email:            in.Email,
			Role:             role,
			Designation:      in.Designation,
			EmploymentStatus: in.EmploymentStatus,
			JoinDate:         in.JoinDate,
		}, hash)
		utils.JSON(w, http.StatusCreated, api.RegisterResponse{
			Message: "User registered",
			ID:      u.ID,
			Role:    u.Role,
		})
	}
}

// GET /api/users/getUsers/
func (h *userHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.store.mu.Lock()
		users := make([]api.User, 0, len(h.store.users))
		for i := 1; i < h.store.nextUser; i++ {
			if u, ok := h.store.users[i]; ok {
				users = append(users, u.User)
			}
		}
		h.store.mu.Unlock()
		utils.JSON(w, http.StatusOK, api.UsersResponse{Users: users})
	}
}

// PUT /api/users/update/
func (h *userHTTP) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in api.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		h.store.mu.Lock()
		u, ok := h.store.users[in.ID]
		if ok {
			if in.Name != "" {
				u.Name = in.Name
			}
			if in.Role != "" {
				u.Role = strings.ToUpper(in.Role)
			}
			if in.Designation != "" {
				u.Designation = in.Designation
			}
			if in.EmploymentStatus != "" {
				u.EmploymentStatus = in.EmploymentStatus
			}
			if in.JoinDate != "" {
				u.JoinDate = in.JoinDate
			}
		}
		h.store.mu.Unlock()
		if !ok {
			utils.Error(w, http.StatusNotFound, "user not found")
			return
		}
		utils.JSON(w, http.StatusOK, api.MessageResponse{Message: "User updated"})
	}
}

// DELETE /api/users/delete/
func (h *userHTTP) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			ID int `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		h.store.mu.Lock()
		_, ok := h.store.users[in.ID]
		delete(h.store.users, in.ID)
		h.store.mu.Unlock()
		if !ok {
			utils.Error(w, http.StatusNotFound, "user not found")
			return
		}
		utils.JSON(w, http.StatusOK, api.MessageResponse{Message: "User deleted"})
	}
}

// GET /api/users/roles/
func (h *userHTTP) ListRoles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.store.mu.Lock()
		roles := make([]api.Role, 0, len(h.store.roles))
		for i := 1; i < h.store.nextRole; i++ {
			if role, ok := h.store.roles[i]; ok {
				roles = append(roles, *role)
			}
		}
		h.store.mu.Unlock()
		utils.JSON(w, http.StatusOK, roles)
	}
}

// POST /api/users/roles/add/ (and /api/users/roles/)
func (h *userHTTP) CreateRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		in.Name = strings.ToUpper(strings.TrimSpace(in.Name))
		if in.Name == "" {
			utils.Error(w, http.StatusBadRequest, "name is required")
			return
		}
		existedBefore := false
		h.store.mu.Lock()
		for _, role := range h.store.roles {
			if strings.EqualFold(role.Name, in.Name) {
				existedBefore = true
				break
			}
		}
		h.store.mu.Unlock()
		role := h.store.addRole(in.Name)
		utils.JSON(w, http.StatusCreated, api.CreateRoleResponse{
			ID:      role.ID,
			Name:    role.Name,
			Created: !existedBefore,
		})
	}
}

// PATCH /api/users/roles/{roleID}/active/
func (h *userHTTP) SetRoleActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "roleID"))
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid role id")
			return
		}
		var in struct {
			IsActive bool `json:"is_active"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		h.store.mu.Lock()
		role, ok := h.store.roles[id]
		if ok {
			role.IsActive = in.IsActive
		}
		var out api.Role
		if ok {
			out = *role
		}
		h.store.mu.Unlock()
		if !ok {
			utils.Error(w, http.StatusNotFound, "role not found")
			return
		}
		utils.JSON(w, http.StatusOK, out)
	}
}
