package auth

import (
	"log"
	"net/http"

	"reviewmap_backend/internal/api/apierr"
	"reviewmap_backend/internal/api/cookies"
	dto "reviewmap_backend/internal/api/dto/auth"
	"reviewmap_backend/internal/converter"
	"reviewmap_backend/internal/service"
	"reviewmap_backend/pkg/req"
	"reviewmap_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.AuthService
}

type Handler struct {
	serv service.AuthService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Register создаёт пользователя. Токены при регистрации не выдаются,
// клиент выполняет отдельный логин
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid request")
		return
	}

	if requestBody.Email == "" || requestBody.Name == "" || requestBody.Password == "" {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "All fields are required")
		return
	}

	user, err := h.serv.Register(
		r.Context(),
		converter.RegisterRequestToUserModel(&requestBody),
	)
	if err != nil {
		log.Println("Register error:", err)
		resp.WriteErrorResponse(w, apierr.Status(err), "register failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, dto.RegisterResponse{
		Message: "User registered successfully",
		User:    converter.ToUserResponse(user.Public()),
	})
}

// Login проверяет учетные данные, открывает сессию и выставляет
// cookie с access и refresh токенами
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid request")
		return
	}

	if requestBody.Email == "" || requestBody.Password == "" {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Email, requestBody.Password)
	if err != nil {
		log.Println("Login error:", err)
		resp.WriteErrorResponse(w, apierr.Status(err), "invalid credentials")
		return
	}

	cookies.SetAccessToken(w, data.AccessToken)
	cookies.SetRefreshToken(w, data.RefreshToken)

	resp.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		ID:    data.User.ID,
		Email: data.User.Email,
		Name:  data.User.Name,
		Token: data.AccessToken,
	})
}

// Refresh выпускает новый access токен по refresh cookie.
// Запись сессии при этом не создается
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(cookies.RefreshTokenName)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusUnauthorized, "no refresh token provided")
		return
	}

	newAccessToken, err := h.serv.Refresh(r.Context(), c.Value)
	if err != nil {
		log.Println("Refresh error:", err)
		resp.WriteErrorResponse(w, apierr.Status(err), "refresh failed")
		return
	}

	cookies.SetAccessToken(w, newAccessToken)

	resp.WriteJSONResponse(w, http.StatusOK, dto.RefreshResponse{
		Message: "Token refreshed successfully",
		Token:   newAccessToken,
	})
}

// Logout удаляет запись сессии по refresh cookie и чистит оба cookie.
// Уже выданный access токен остается валидным до своего истечения
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(cookies.RefreshTokenName)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "refresh token is required to log out")
		return
	}

	if err := h.serv.Logout(r.Context(), c.Value); err != nil {
		log.Println("Logout error:", err)
		resp.WriteErrorResponse(w, http.StatusInternalServerError, "logout failed")
		return
	}

	cookies.ClearAccessToken(w)
	cookies.ClearRefreshToken(w)

	resp.WriteJSONResponse(w, http.StatusOK, dto.LogoutResponse{
		Message: "Logged out successfully",
	})
}
