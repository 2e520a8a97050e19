package service

import (
	"strings"

	"docushare-server/internal/model"
)

// AuthorizeShareAccess : чистая функция правила доступа к файлу.
// Доступ разрешён, если пароль общего доступа не установлен (пустая или
// пробельная строка) либо предъявленный пароль посимвольно совпадает с
// сохранённым. Никакой нормализации предъявленного пароля нет:
// отсутствующий пароль равен пустой строке и совпадает только с пустым
// сохранённым значением. Сравнение намеренно выполняется открытым текстом,
// без хэширования, чтобы сохранить совместимость с уже сохранёнными данными.
func AuthorizeShareAccess(record *model.FileRecord, supplied string) bool {
	if strings.TrimSpace(record.SharePassword) == "" {
		return true
	}
	return supplied == record.SharePassword
}
