package model

import "time"

// FileRecord : метаданные загруженного файла.
// StorageKey одновременно является именем файла в хранилище
// и первичным ключом записи.
type FileRecord struct {
	StorageKey    string    `db:"storage_key" json:"filename"`
	Owner         string    `db:"owner" json:"username"`
	OriginalName  string    `db:"original_name" json:"originalname"`
	MimeType      string    `db:"mime_type" json:"mimetype"`
	SizeBytes     int64     `db:"size_bytes" json:"size"`
	UploadedAt    time.Time `db:"uploaded_at" json:"uploaded_at"`
	SharePassword string    `db:"share_password" json:"sharePassword"`
}

// Protected : true, если на файл установлен пароль общего доступа.
// Проверка повторяет исходную семантику "!!sharePassword": пробельная
// строка тоже считается установленным паролем.
func (f *FileRecord) Protected() bool {
	return f.SharePassword != ""
}
