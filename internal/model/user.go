package model

import "time"

// User : учётная запись. Email неизменяем после регистрации и служит
// внешним идентификатором; UUID используется только как ключ в БД.
// Пароль хранится открытым текстом и никогда не сериализуется в ответы.
type User struct {
	UUID      string    `db:"uuid" json:"-"`
	Username  string    `db:"username" json:"username"`
	Email     string    `db:"email" json:"email"`
	Mobile    string    `db:"mobile" json:"mobile"`
	Password  string    `db:"password" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}
