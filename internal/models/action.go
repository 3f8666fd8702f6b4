package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ActionType тип отложенной мутации
type ActionType string

const (
	ActionRegister       ActionType = "register"
	ActionUpdateProfile  ActionType = "updateProfile"
	ActionChangePassword ActionType = "changePassword"
	ActionUpdateProgress ActionType = "updateProgress"
)

// ActionStatus состояние записи в очереди
type ActionStatus string

const (
	ActionStatusPending   ActionStatus = "pending"
	ActionStatusProcessed ActionStatus = "processed"
)

// Action мутация, которая должна дойти до сервера.
// Набор вариантов закрыт: RegisterAction, UpdateProfileAction,
// ChangePasswordAction, ProgressAction.
type Action interface {
	Type() ActionType
	// TargetUser локальный ID пользователя, к которому относится действие
	TargetUser() uint64
	isAction()
}

// RegisterAction регистрация, созданная локально.
// Пароль пользователя сюда не попадает, для сервера используется ServerSecret.
type RegisterAction struct {
	Timestamp    time.Time `json:"timestamp"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Role         Role      `json:"role"`
	ServerSecret string    `json:"serverSecret"`
	UserID       uint64    `json:"userId"`
}

// UpdateProfileAction изменение профиля
type UpdateProfileAction struct {
	Timestamp time.Time     `json:"timestamp"`
	Updates   ProfileUpdate `json:"updates"`
	UserID    uint64        `json:"userId"`
}

// ChangePasswordAction уведомление о смене пароля, сам пароль не передается
type ChangePasswordAction struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    uint64    `json:"userId"`
}

// ProgressAction отметка о прохождении элемента курса
type ProgressAction struct {
	Timestamp   time.Time `json:"timestamp"`
	CourseID    string    `json:"courseId"`
	ModuleID    string    `json:"moduleId"`
	ContentType string    `json:"contentType"`
	ItemIndex   int       `json:"itemIndex"`
	UserID      uint64    `json:"userId"`
}

func (RegisterAction) Type() ActionType       { return ActionRegister }
func (UpdateProfileAction) Type() ActionType  { return ActionUpdateProfile }
func (ChangePasswordAction) Type() ActionType { return ActionChangePassword }
func (ProgressAction) Type() ActionType       { return ActionUpdateProgress }

func (a RegisterAction) TargetUser() uint64       { return a.UserID }
func (a UpdateProfileAction) TargetUser() uint64  { return a.UserID }
func (a ChangePasswordAction) TargetUser() uint64 { return a.UserID }
func (a ProgressAction) TargetUser() uint64       { return a.UserID }

func (RegisterAction) isAction()       {}
func (UpdateProfileAction) isAction()  {}
func (ChangePasswordAction) isAction() {}
func (ProgressAction) isAction()       {}

// ItemID идентификатор элемента вида contentType-itemIndex
func (a ProgressAction) ItemID() string {
	return ItemID(a.ContentType, a.ItemIndex)
}

// PendingAction запись очереди отложенных действий
type PendingAction struct {
	CreatedAt  time.Time
	Action     Action
	SyncStatus ActionStatus
	ID         uint64
}

// pendingActionEnvelope формат хранения: тип + сырые данные варианта
type pendingActionEnvelope struct {
	CreatedAt  time.Time       `json:"createdAt"`
	Type       ActionType      `json:"type"`
	SyncStatus ActionStatus    `json:"syncStatus"`
	Data       json.RawMessage `json:"data"`
	ID         uint64          `json:"id"`
	UserID     uint64          `json:"userId"`
}

// MarshalJSON кодирует действие в конверт {type, data}
func (p PendingAction) MarshalJSON() ([]byte, error) {
	if p.Action == nil {
		return nil, fmt.Errorf("pending action %d has no payload", p.ID)
	}
	data, err := json.Marshal(p.Action)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", p.Action.Type(), err)
	}
	return json.Marshal(pendingActionEnvelope{
		ID:         p.ID,
		Type:       p.Action.Type(),
		UserID:     p.Action.TargetUser(),
		Data:       data,
		CreatedAt:  p.CreatedAt,
		SyncStatus: p.SyncStatus,
	})
}

// UnmarshalJSON восстанавливает конкретный вариант по полю type
func (p *PendingAction) UnmarshalJSON(b []byte) error {
	var env pendingActionEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}

	action, err := decodeAction(env.Type, env.Data)
	if err != nil {
		return err
	}

	p.ID = env.ID
	p.CreatedAt = env.CreatedAt
	p.SyncStatus = env.SyncStatus
	p.Action = action
	return nil
}

func decodeAction(t ActionType, data []byte) (Action, error) {
	switch t {
	case ActionRegister:
		var a RegisterAction
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("failed to decode %s action: %w", t, err)
		}
		return a, nil
	case ActionUpdateProfile:
		var a UpdateProfileAction
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("failed to decode %s action: %w", t, err)
		}
		return a, nil
	case ActionChangePassword:
		var a ChangePasswordAction
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("failed to decode %s action: %w", t, err)
		}
		return a, nil
	case ActionUpdateProgress:
		var a ProgressAction
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("failed to decode %s action: %w", t, err)
		}
		return a, nil
	default:
		return nil, fmt.Errorf("unknown action type %q", t)
	}
}
