package presence

import (
	"sync"
)

// Provider — реестр живых подключений пользователей.
// Хранится только в памяти процесса и наполняется заново при переподключении клиентов.
type Provider interface {
	Add(userID, connID string)
	Remove(userID, connID string)
	Connections(userID string) []string
	IsOnline(userID string) bool
}

var Instance Provider

func Init() {
	Instance = NewRegistry()
}

func NewRegistry() Provider {
	return &impl{
		conns: map[string]map[string]struct{}{},
	}
}

type impl struct {
	mu    sync.RWMutex
	conns map[string]map[string]struct{} //map[userID]set of connID
}

func (i *impl) Add(userID, connID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	set, ok := i.conns[userID]
	if !ok {
		set = map[string]struct{}{}
		i.conns[userID] = set
	}
	set[connID] = struct{}{}
}

func (i *impl) Remove(userID, connID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	set, ok := i.conns[userID]
	if !ok {
		return
	}
	delete(set, connID)
	if len(set) == 0 {
		delete(i.conns, userID)
	}
}

func (i *impl) Connections(userID string) []string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	set, ok := i.conns[userID]
	if !ok {
		return nil
	}
	list := make([]string, 0, len(set))
	for connID := range set {
		list = append(list, connID)
	}
	return list
}

func (i *impl) IsOnline(userID string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	_, ok := i.conns[userID]
	return ok
}
