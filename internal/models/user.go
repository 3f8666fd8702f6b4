package models

import "time"

// Role роль пользователя на портале
type Role string

const (
	RoleRefugee    Role = "refugee"
	RoleInstructor Role = "instructor"
	RoleEmployer   Role = "employer"
	RoleAdmin      Role = "admin"
)

// DefaultRole назначается при регистрации без явной роли
const DefaultRole = RoleRefugee

// Valid сообщает, является ли роль одной из известных
func (r Role) Valid() bool {
	switch r {
	case RoleRefugee, RoleInstructor, RoleEmployer, RoleAdmin:
		return true
	default:
		return false
	}
}

// SyncStatus состояние синхронизации локальной записи с сервером
type SyncStatus string

const (
	SyncStatusPending SyncStatus = "pending"
	SyncStatusSynced  SyncStatus = "synced"
)

// User представляет локальную учетную запись на устройстве
type User struct {
	CreatedAt        time.Time  `json:"createdAt"`              // время создания
	UpdatedAt        time.Time  `json:"updatedAt"`              // время последнего изменения
	ServerID         string     `json:"serverId,omitempty"`     // идентификатор на сервере, появляется после синхронизации
	Email            string     `json:"email"`                  // уникальный email
	Username         string     `json:"username"`               // совпадает с email
	FirstName        string     `json:"firstName"`              // имя
	LastName         string     `json:"lastName"`               // фамилия
	Role             Role       `json:"role"`                   // роль
	PasswordHash     string     `json:"passwordHash,omitempty"` // argon2id хеш пароля
	ServerSecret     string     `json:"serverSecret,omitempty"` // учетные данные устройства для входа на сервер
	Phone            string     `json:"phone,omitempty"`
	Bio              string     `json:"bio,omitempty"`
	Location         string     `json:"location,omitempty"`
	SyncStatus       SyncStatus `json:"syncStatus"` // pending до подтверждения сервером
	ID               uint64     `json:"id"`         // локальный autoincrement
	IsActive         bool       `json:"isActive"`
	IsOfflineCreated bool       `json:"isOfflineCreated"`
}

// Sanitized возвращает копию пользователя без секретов
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.PasswordHash = ""
	c.ServerSecret = ""
	return &c
}

// FullName возвращает имя и фамилию через пробел
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// ProfileUpdate частичное обновление профиля, nil поля не меняются
type ProfileUpdate struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Location  *string `json:"location,omitempty"`
}

// Empty сообщает, что обновление не содержит ни одного поля
func (p ProfileUpdate) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Phone == nil && p.Bio == nil && p.Location == nil
}

// Apply применяет непустые поля к пользователю
func (p ProfileUpdate) Apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
}
