// Package events доставляет уведомления между компонентами клиента.
package events

import (
	"sync"

	"github.com/iudanet/learnsync/internal/models"
)

// Event событие клиента. Набор типов закрыт, подписчики различают их через type switch.
type Event interface {
	isEvent()
}

// UserRegistered пользователь создан локально
type UserRegistered struct {
	User *models.User
}

// UserLoggedIn выполнен вход
type UserLoggedIn struct {
	User *models.User
}

// UserLoggedOut сессия завершена явно или по истечении срока
type UserLoggedOut struct {
	Expired bool
}

// ProfileUpdated профиль изменен локально
type ProfileUpdated struct {
	User *models.User
}

// PasswordChanged пароль изменен локально
type PasswordChanged struct {
	UserID uint64
}

// SyncCompleted проход синхронизации завершен
type SyncCompleted struct {
	Processed int
	Failed    int
	Deferred  int
	Remaining int
}

// SyncFailed проход синхронизации прерван
type SyncFailed struct {
	Err error
}

// ConnectivityChanged изменилось состояние сети
type ConnectivityChanged struct {
	Online bool
}

func (UserRegistered) isEvent()      {}
func (UserLoggedIn) isEvent()        {}
func (UserLoggedOut) isEvent()       {}
func (ProfileUpdated) isEvent()      {}
func (PasswordChanged) isEvent()     {}
func (SyncCompleted) isEvent()       {}
func (SyncFailed) isEvent()          {}
func (ConnectivityChanged) isEvent() {}

// Bus синхронная шина событий. Обработчики вызываются в горутине Publish
// в порядке подписки.
type Bus struct {
	handlers map[uint64]func(Event)
	order    []uint64
	next     uint64
	mu       sync.RWMutex
}

// NewBus создает пустую шину
func NewBus() *Bus {
	return &Bus{handlers: make(map[uint64]func(Event))}
}

// Subscribe регистрирует обработчик и возвращает функцию отписки
func (b *Bus) Subscribe(fn func(Event)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	id := b.next
	b.handlers[id] = fn
	b.order = append(b.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.handlers, id)
			for i, v := range b.order {
				if v == id {
					b.order = append(b.order[:i], b.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Publish доставляет событие всем подписчикам.
// nil шина допустима и ничего не делает.
func (b *Bus) Publish(e Event) {
	if b == nil {
		return
	}

	b.mu.RLock()
	handlers := make([]func(Event), 0, len(b.order))
	for _, id := range b.order {
		handlers = append(handlers, b.handlers[id])
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}
