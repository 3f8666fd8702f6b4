package crdt

import (
	"encoding/json"
	"slices"
)

// GSet представляет Grow-only Set CRDT.
// Элементы только добавляются, слияние - объединение множеств,
// поэтому порядок и повторы слияний не влияют на результат.
// Не потокобезопасен: владелец отвечает за синхронизацию.
type GSet map[string]struct{}

// NewGSet создает множество из переданных элементов
func NewGSet(items ...string) GSet {
	s := make(GSet, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Add добавляет элемент. Возвращает true, если элемента не было.
func (s GSet) Add(item string) bool {
	if _, ok := s[item]; ok {
		return false
	}
	s[item] = struct{}{}
	return true
}

// Contains проверяет наличие элемента
func (s GSet) Contains(item string) bool {
	_, ok := s[item]
	return ok
}

// Merge добавляет в s все элементы other
func (s GSet) Merge(other GSet) {
	for item := range other {
		s[item] = struct{}{}
	}
}

// Items возвращает элементы в отсортированном порядке
func (s GSet) Items() []string {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	slices.Sort(items)
	return items
}

// Len количество элементов
func (s GSet) Len() int {
	return len(s)
}

// MarshalJSON кодирует множество как отсортированный массив строк
func (s GSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Items())
}

// UnmarshalJSON принимает массив строк, повторы схлопываются
func (s *GSet) UnmarshalJSON(b []byte) error {
	var items []string
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	*s = NewGSet(items...)
	return nil
}
