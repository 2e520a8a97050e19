package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"docushare-server/internal/apperr"
	"docushare-server/internal/model/requestresponse"
	"docushare-server/internal/ports"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService}
}

// Signup godoc
// @Summary Регистрация нового пользователя
// @Description Создаёт пользователя. Email уникален, пароль не возвращается.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.SignupRequest true "Тело запроса"
// @Success 201 {object} requestresponse.SignupResponse
// @Failure 400 {object} requestresponse.MessageResponse
// @Failure 409 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/users/signup [post]
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	user, err := h.UserService.Signup(r.Context(), req.Username, req.Email, req.Mobile, req.Password)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, apperr.ErrValidation):
			sendErrorResponse(w, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, apperr.ErrConflict):
			sendErrorResponse(w, http.StatusConflict, "Email already exists")
		default:
			sendErrorResponse(w, http.StatusInternalServerError, "Server error during signup")
		}
		return
	}

	resp := requestresponse.SignupResponse{
		Message: "User registered successfully",
		User: requestresponse.UserData{
			Username: user.Username,
			Email:    user.Email,
			Mobile:   user.Mobile,
		},
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// Login godoc
// @Summary Вход по email и паролю
// @Description Пароль сравнивается открытым текстом с сохранённым.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.LoginResponse
// @Failure 400 {object} requestresponse.MessageResponse
// @Failure 401 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Router /api/users/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, apperr.ErrValidation):
			sendErrorResponse(w, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, apperr.ErrNotFound):
			sendErrorResponse(w, http.StatusNotFound, "User not found")
		case errors.Is(err, apperr.ErrUnauthorized):
			sendErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			sendErrorResponse(w, http.StatusInternalServerError, "Server error during login")
		}
		return
	}

	resp := requestresponse.LoginResponse{
		Message: "Login successful",
		User: requestresponse.UserData{
			Username: user.Username,
			Email:    user.Email,
		},
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// GetProfile godoc
// @Summary Получение профиля пользователя
// @Description Возвращает данные пользователя без пароля.
// @Tags Users
// @Produce json
// @Param email path string true "Email пользователя"
// @Success 200 {object} requestresponse.ProfileResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/users/{email} [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	email := chi.URLParam(r, "email")

	user, err := h.UserService.GetProfile(r.Context(), email)
	if err != nil {
		log.Println(err)
		if errors.Is(err, apperr.ErrNotFound) {
			sendErrorResponse(w, http.StatusNotFound, "User not found")
			return
		}
		sendErrorResponse(w, http.StatusInternalServerError, "Failed to get user data")
		return
	}

	resp := requestresponse.ProfileResponse{
		User: requestresponse.UserData{
			Username: user.Username,
			Email:    user.Email,
			Mobile:   user.Mobile,
		},
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// UpdateProfile godoc
// @Summary Обновление профиля
// @Description Частично обновляет изменяемые поля username и mobile. Email неизменяем.
// @Tags Users
// @Accept json
// @Produce json
// @Param email path string true "Email пользователя"
// @Param body body requestresponse.UpdateProfileRequest true "Тело запроса"
// @Success 200 {object} requestresponse.ProfileResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/users/{email} [put]
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	email := chi.URLParam(r, "email")

	var req requestresponse.UpdateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	user, err := h.UserService.UpdateProfile(r.Context(), email, req.Username, req.Mobile)
	if err != nil {
		log.Println(err)
		if errors.Is(err, apperr.ErrNotFound) {
			sendErrorResponse(w, http.StatusNotFound, "User not found")
			return
		}
		sendErrorResponse(w, http.StatusInternalServerError, "Error updating profile.")
		return
	}

	resp := requestresponse.ProfileResponse{
		User: requestresponse.UserData{
			Username: user.Username,
			Email:    user.Email,
			Mobile:   user.Mobile,
		},
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// decodeJSON обрабатывает декодирование JSON и возвращает ответ об ошибке, если декодирование не удалось.
func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return err
	}
	return nil
}

// sendErrorResponse отправляет JSON-ошибку вида {"message": "..."}
func sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(requestresponse.MessageResponse{
		Message: message,
	})
}
