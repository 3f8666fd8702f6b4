package models

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/iudanet/learnsync/internal/crdt"
)

// ItemID строит идентификатор элемента модуля: "video-0", "quiz-1"
func ItemID(contentType string, itemIndex int) string {
	return contentType + "-" + strconv.Itoa(itemIndex)
}

// CompletionKey ключ завершения, который отправляется на сервер
func CompletionKey(moduleID, contentType string, itemIndex int) string {
	return moduleID + "-" + ItemID(contentType, itemIndex)
}

// Course кешированная копия курса. Содержимое хранится как есть,
// клиенту нужен только идентификатор.
type Course struct {
	CachedAt time.Time       `json:"cachedAt"`
	ID       string          `json:"id"`
	Title    string          `json:"title,omitempty"`
	Raw      json.RawMessage `json:"raw"`
}

// ModuleProgress прогресс по одному модулю
type ModuleProgress struct {
	UpdatedAt      time.Time `json:"updatedAt"`
	CompletedItems crdt.GSet `json:"completedItems"`
}

// CourseProgress прогресс пользователя по курсу
type CourseProgress struct {
	UpdatedAt       time.Time                  `json:"updatedAt"`
	ModulesProgress map[string]*ModuleProgress `json:"modulesProgress"`
	CourseID        string                     `json:"courseId"`
}

// NewCourseProgress создает пустой прогресс
func NewCourseProgress(courseID string) *CourseProgress {
	return &CourseProgress{
		CourseID:        courseID,
		ModulesProgress: make(map[string]*ModuleProgress),
	}
}

// Module возвращает прогресс модуля, создавая его при необходимости
func (p *CourseProgress) Module(moduleID string) *ModuleProgress {
	if p.ModulesProgress == nil {
		p.ModulesProgress = make(map[string]*ModuleProgress)
	}
	m, ok := p.ModulesProgress[moduleID]
	if !ok {
		m = &ModuleProgress{CompletedItems: crdt.NewGSet()}
		p.ModulesProgress[moduleID] = m
	}
	if m.CompletedItems == nil {
		m.CompletedItems = crdt.NewGSet()
	}
	return m
}

// Complete добавляет элемент в завершенные. Возвращает false, если он уже был.
func (p *CourseProgress) Complete(moduleID, itemID string, at time.Time) bool {
	m := p.Module(moduleID)
	if !m.CompletedItems.Add(itemID) {
		return false
	}
	m.UpdatedAt = at
	p.UpdatedAt = at
	return true
}

// Merge объединяет прогресс other с текущим. Завершенные элементы
// только добавляются, ничего не удаляется.
func (p *CourseProgress) Merge(other *CourseProgress) {
	if other == nil {
		return
	}
	for moduleID, om := range other.ModulesProgress {
		if om == nil {
			continue
		}
		m := p.Module(moduleID)
		m.CompletedItems.Merge(om.CompletedItems)
		if om.UpdatedAt.After(m.UpdatedAt) {
			m.UpdatedAt = om.UpdatedAt
		}
	}
	if other.UpdatedAt.After(p.UpdatedAt) {
		p.UpdatedAt = other.UpdatedAt
	}
}
