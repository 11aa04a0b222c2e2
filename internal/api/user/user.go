package user

import (
	"log"
	"net/http"
	"strconv"

	"reviewmap_backend/internal/api/apierr"
	dto "reviewmap_backend/internal/api/dto/user"
	"reviewmap_backend/internal/converter"
	"reviewmap_backend/internal/middleware"
	"reviewmap_backend/internal/service"
	"reviewmap_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.UserService
}

type Handler struct {
	serv service.UserService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Profile возвращает профиль залогиненного пользователя
// вместе с его отзывами
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile, err := h.serv.Profile(r.Context(), userID)
	if err != nil {
		log.Println("Profile error:", err)
		resp.WriteErrorResponse(w, apierr.Status(err), "failed to fetch profile")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProfileResponse(profile))
}

// GetAll возвращает всех пользователей с их отзывами
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.serv.ListUsers(r.Context())
	if err != nil {
		log.Println("GetAll users error:", err)
		resp.WriteErrorResponse(w, apierr.Status(err), "failed to fetch users")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProfileResponses(profiles))
}

// GetByID возвращает пользователя по ID
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id")
		return
	}

	profile, err := h.serv.UserByID(r.Context(), id)
	if err != nil {
		log.Println("GetByID user error:", err)
		resp.WriteErrorResponse(w, apierr.Status(err), "user not found")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProfileResponse(profile))
}

// Delete удаляет пользователя, его сессии и отзывы
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.serv.DeleteUser(r.Context(), id)
	if err != nil {
		log.Println("Delete user error:", err)
		resp.WriteErrorResponse(w, apierr.Status(err), "failed to delete user")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.DeleteUserResponse{
		Message: "User deleted successfully",
		User:    converter.ToUserResponse(*user),
	})
}
