package api

import "time"

// PasswordChangedSentinel тело запроса смены пароля от клиента.
// Сам пароль на сервер не передается, сервер только фиксирует факт смены.
const PasswordChangedSentinel = "updated"

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Email     string `json:"email"`     // email, он же логин
	Password  string `json:"password"`  // учетные данные для сервера
	FirstName string `json:"firstName"` // имя
	LastName  string `json:"lastName"`  // фамилия
	Role      string `json:"role"`      // refugee, instructor, employer, admin
}

// User представляет пользователя в ответах сервера
type User struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ID        string    `json:"id"` // UUID пользователя
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Location  string    `json:"location,omitempty"`
}

// UserData содержимое data для регистрации и обновления профиля
type UserData struct {
	User User `json:"user"`
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginData содержимое data успешного входа
type LoginData struct {
	ExpiresAt time.Time `json:"expiresAt"` // время истечения access token
	Token     string    `json:"token"`     // JWT access token
	User      User      `json:"user"`
}

// ProfileUpdateRequest частичное обновление профиля, nil поля не меняются
type ProfileUpdateRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Location  *string `json:"location,omitempty"`
}

// PasswordRequest уведомление о смене пароля
type PasswordRequest struct {
	Password string `json:"password"`
}
