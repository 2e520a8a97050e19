package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"docushare-server/internal/apperr"
	"docushare-server/internal/model/requestresponse"
	"docushare-server/internal/ports"
	"docushare-server/internal/util"

	"github.com/go-chi/chi/v5"
)

// maxUploadSize : жёсткий предел размера одной загрузки (10 MiB).
// Превышение отклоняется до записи в хранилище, файл не усекается.
const maxUploadSize = 10 << 20

type FileHandler struct {
	ports.FileService
}

func NewFileHandler(fileService ports.FileService) *FileHandler {
	return &FileHandler{fileService}
}

// uploadForm : разобранные поля multipart-запроса загрузки
type uploadForm struct {
	username string
	password string
	name     string
	mimeType string
	data     []byte
}

// parseUploadForm : читает multipart-форму с полями username, file и
// необязательным password. Возвращает false, если форма не разобрана
// (ответ уже записан).
func parseUploadForm(w http.ResponseWriter, r *http.Request) (*uploadForm, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		util.HandleError(w, "Invalid upload request", http.StatusBadRequest)
		return nil, false
	}

	form := &uploadForm{
		username: r.FormValue("username"),
		password: r.FormValue("password"),
	}

	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()

		data, readErr := io.ReadAll(file)
		if readErr != nil {
			util.HandleError(w, "Invalid upload request", http.StatusBadRequest)
			return nil, false
		}
		form.data = data
		form.name = header.Filename
		form.mimeType = header.Header.Get("Content-Type")
	}

	return form, true
}

// Upload godoc
// @Summary Загрузка файла
// @Description Принимает multipart-форму с username и file, возвращает ссылку на просмотр.
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "Имя владельца"
// @Param file formData file true "Файл"
// @Param password formData string false "Пароль общего доступа (опционально)"
// @Success 200 {object} requestresponse.UploadResponse
// @Failure 400 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/upload [post]
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	form, ok := parseUploadForm(w, r)
	if !ok {
		return
	}

	record, err := h.FileService.Upload(r.Context(), form.username, form.name, form.mimeType, form.data, form.password)
	if err != nil {
		log.Println(err)
		if errors.Is(err, apperr.ErrValidation) {
			util.HandleError(w, "Username and file required", http.StatusBadRequest)
			return
		}
		util.HandleError(w, "DB error", http.StatusInternalServerError)
		return
	}

	resp := requestresponse.UploadResponse{
		Message:  "File uploaded successfully",
		Filename: record.StorageKey,
		ViewURL:  "/api/files/view/" + record.StorageKey,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// UploadShare godoc
// @Summary Загрузка файла со ссылкой защищённого доступа
// @Description То же, что /api/upload, но возвращает ссылку protected-access.
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "Имя владельца"
// @Param file formData file true "Файл"
// @Param password formData string false "Пароль общего доступа (опционально)"
// @Success 200 {object} requestresponse.UploadShareResponse
// @Failure 400 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/files/upload [post]
func (h *FileHandler) UploadShare(w http.ResponseWriter, r *http.Request) {
	form, ok := parseUploadForm(w, r)
	if !ok {
		return
	}

	record, err := h.FileService.Upload(r.Context(), form.username, form.name, form.mimeType, form.data, form.password)
	if err != nil {
		log.Println(err)
		if errors.Is(err, apperr.ErrValidation) {
			util.HandleError(w, "Username & file required", http.StatusBadRequest)
			return
		}
		util.HandleError(w, "DB error", http.StatusInternalServerError)
		return
	}

	resp := requestresponse.UploadShareResponse{
		Message:  "File uploaded successfully",
		Filename: record.StorageKey,
		URL:      "/api/files/protected-access/" + record.StorageKey,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// ListFiles godoc
// @Summary Список файлов владельца
// @Tags Files
// @Produce json
// @Param username path string true "Имя владельца"
// @Success 200 {object} requestresponse.ListFilesResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/files/{username} [get]
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	// сегмент пути делит позицию с маршрутом удаления, поэтому параметр
	// зарегистрирован как filename, хотя содержит имя владельца
	username := chi.URLParam(r, "filename")

	records, err := h.FileService.ListByOwner(r.Context(), username)
	if err != nil {
		log.Println(err)
		util.HandleError(w, "Error retrieving files", http.StatusInternalServerError)
		return
	}

	resp := requestresponse.ListFilesResponse{Files: records}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// DeleteFile godoc
// @Summary Удаление файла
// @Description Удаляет запись о файле; содержимое удаляется по возможности.
// @Tags Files
// @Produce json
// @Param filename path string true "Ключ хранения"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/files/{filename} [delete]
func (h *FileHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	storageKey := chi.URLParam(r, "filename")

	if err := h.FileService.Delete(r.Context(), storageKey); err != nil {
		log.Println(err)
		if errors.Is(err, apperr.ErrNotFound) {
			util.HandleError(w, "File not found", http.StatusNotFound)
			return
		}
		util.HandleError(w, "Delete failed", http.StatusInternalServerError)
		return
	}

	resp := requestresponse.MessageResponse{Message: "File deleted successfully"}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// FileInfo godoc
// @Summary Нужен ли пароль для получения файла
// @Tags Files
// @Produce json
// @Param filename path string true "Ключ хранения"
// @Success 200 {object} requestresponse.FileInfoResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/files/info/{filename} [get]
func (h *FileHandler) FileInfo(w http.ResponseWriter, r *http.Request) {
	storageKey := chi.URLParam(r, "filename")

	requiresPassword, err := h.FileService.Info(r.Context(), storageKey)
	if err != nil {
		log.Println(err)
		if errors.Is(err, apperr.ErrNotFound) {
			util.HandleError(w, "File not found", http.StatusNotFound)
			return
		}
		util.HandleError(w, "Error fetching file info", http.StatusInternalServerError)
		return
	}

	resp := requestresponse.FileInfoResponse{RequiresPassword: requiresPassword}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// SetSharePassword godoc
// @Summary Установка или снятие пароля общего доступа
// @Description Пустой пароль снимает защиту.
// @Tags Files
// @Accept json
// @Produce json
// @Param filename path string true "Ключ хранения"
// @Param body body requestresponse.SharePasswordRequest true "Тело запроса"
// @Success 200 {object} requestresponse.ShareResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/files/share/{filename} [post]
func (h *FileHandler) SetSharePassword(w http.ResponseWriter, r *http.Request) {
	storageKey := chi.URLParam(r, "filename")

	var req requestresponse.SharePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.FileService.SetSharePassword(r.Context(), storageKey, req.Password); err != nil {
		log.Println(err)
		if errors.Is(err, apperr.ErrNotFound) {
			util.HandleError(w, "File not found", http.StatusNotFound)
			return
		}
		util.HandleError(w, "Error setting share password", http.StatusInternalServerError)
		return
	}

	message := "Password removed"
	if req.Password != "" {
		message = "Password protection enabled"
	}

	resp := requestresponse.ShareResponse{
		Message:   message,
		ShareLink: "/shared/" + storageKey,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// ProtectedAccess godoc
// @Summary Защищённое получение файла (пароль в теле запроса)
// @Tags Files
// @Accept json
// @Produce octet-stream
// @Param filename path string true "Ключ хранения"
// @Param body body requestresponse.ProtectedAccessRequest false "Пароль общего доступа"
// @Success 200 {file} binary
// @Failure 401 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/files/protected-access/{filename} [post]
func (h *FileHandler) ProtectedAccess(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.ProtectedAccessRequest
	// отсутствующее или нечитаемое тело равно пустому паролю
	_ = json.NewDecoder(r.Body).Decode(&req)

	h.serveProtected(w, r, req.Password)
}

// ProtectedAccessQuery godoc
// @Summary Защищённое получение файла (пароль в query-параметре)
// @Tags Files
// @Produce octet-stream
// @Param filename path string true "Ключ хранения"
// @Param password query string false "Пароль общего доступа"
// @Success 200 {file} binary
// @Failure 401 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/files/protected-access/{filename} [get]
func (h *FileHandler) ProtectedAccessQuery(w http.ResponseWriter, r *http.Request) {
	h.serveProtected(w, r, r.URL.Query().Get("password"))
}

func (h *FileHandler) serveProtected(w http.ResponseWriter, r *http.Request, password string) {
	storageKey := chi.URLParam(r, "filename")

	data, mimeType, err := h.FileService.Retrieve(r.Context(), storageKey, password)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, apperr.ErrUnauthorized):
			util.HandleError(w, "Incorrect password", http.StatusUnauthorized)
		case errors.Is(err, apperr.ErrContentMissing):
			// запись есть, содержимого в хранилище нет
			util.HandleError(w, "File missing", http.StatusNotFound)
		case errors.Is(err, apperr.ErrNotFound):
			util.HandleError(w, "File not found", http.StatusNotFound)
		default:
			util.HandleError(w, "Error accessing protected file", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", mimeType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ViewFile godoc
// @Summary Безусловная отдача файла
// @Description Отдаёт содержимое без проверки пароля общего доступа.
// Этот маршрут намеренно обходит защиту protected-access: файл с
// установленным паролем по нему всё равно читается.
// @Tags Files
// @Produce octet-stream
// @Param filename path string true "Ключ хранения"
// @Success 200 {file} binary
// @Failure 404 {object} requestresponse.MessageResponse
// @Router /api/files/view/{filename} [get]
func (h *FileHandler) ViewFile(w http.ResponseWriter, r *http.Request) {
	storageKey := chi.URLParam(r, "filename")

	data, mimeType, err := h.FileService.View(r.Context(), storageKey)
	if err != nil {
		log.Println(err)
		if errors.Is(err, apperr.ErrNotFound) {
			util.HandleError(w, "File not found", http.StatusNotFound)
			return
		}
		util.HandleError(w, "Error accessing file", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mimeType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
