package requestresponse

import "docushare-server/internal/model"

// UploadResponse : успешный ответ загрузки через /api/upload
type UploadResponse struct {
	Message  string `json:"message" example:"File uploaded successfully"`
	Filename string `json:"filename" example:"1724830000000-photo.jpg"`
	ViewURL  string `json:"viewURL" example:"/api/files/view/1724830000000-photo.jpg"`
}

// UploadShareResponse : успешный ответ загрузки через /api/files/upload
type UploadShareResponse struct {
	Message  string `json:"message" example:"File uploaded successfully"`
	Filename string `json:"filename" example:"1724830000000-photo.jpg"`
	URL      string `json:"url" example:"/api/files/protected-access/1724830000000-photo.jpg"`
}

// ListFilesResponse : все файлы одного владельца
type ListFilesResponse struct {
	Files []model.FileRecord `json:"files"`
}

// FileInfoResponse : нужен ли пароль для получения файла
type FileInfoResponse struct {
	RequiresPassword bool `json:"requiresPassword" example:"true"`
}

// SharePasswordRequest : тело запроса установки пароля общего доступа.
// Пустой пароль снимает защиту.
type SharePasswordRequest struct {
	Password string `json:"password" example:"s3cret"`
}

// ShareResponse : ответ установки пароля общего доступа
type ShareResponse struct {
	Message   string `json:"message" example:"Password protection enabled"`
	ShareLink string `json:"shareLink" example:"/shared/1724830000000-photo.jpg"`
}

// ProtectedAccessRequest : тело POST-запроса защищённого доступа
type ProtectedAccessRequest struct {
	Password string `json:"password" example:"s3cret"`
}

// MessageResponse : общий ответ с одним полем message.
// Ошибки API возвращаются в этом же формате через util.HandleError.
type MessageResponse struct {
	Message string `json:"message" example:"File deleted successfully"`
}
