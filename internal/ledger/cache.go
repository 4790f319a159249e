package ledger

import (
	"sync"
	"time"

	"credit-calculator/internal/db"
)

type cachedUser struct {
	user      *db.User
	expiresAt time.Time
}

type cachedOperation struct {
	operation *db.Operation
	expiresAt time.Time
}

// LookupCache - короткоживущий кеш результатов резолва пользователя и операции.
// Балансы меняются каждым запросом, поэтому координатор сбрасывает кеш
// в начале каждого мутирующего запроса. Кеш - только оптимизация:
// корректность от него не зависит.
type LookupCache struct {
	mu         sync.Mutex
	ttl        time.Duration
	users      map[string]cachedUser
	operations map[int64]cachedOperation
}

// NewLookupCache создает кеш с заданным временем жизни записей
func NewLookupCache(ttl time.Duration) *LookupCache {
	return &LookupCache{
		ttl:        ttl,
		users:      make(map[string]cachedUser),
		operations: make(map[int64]cachedOperation),
	}
}

// GetUser возвращает закешированного пользователя по имени
func (c *LookupCache) GetUser(username string) (*db.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.users[username]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(c.users, username)
		return nil, false
	}
	return entry.user, true
}

// SetUser кеширует пользователя
func (c *LookupCache) SetUser(user *db.User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.users[user.Username] = cachedUser{
		user:      user,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// GetOperation возвращает закешированную операцию каталога по ID
func (c *LookupCache) GetOperation(id int64) (*db.Operation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.operations[id]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(c.operations, id)
		return nil, false
	}
	return entry.operation, true
}

// SetOperation кеширует операцию каталога
func (c *LookupCache) SetOperation(operation *db.Operation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.operations[operation.ID] = cachedOperation{
		operation: operation,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Invalidate сбрасывает кеш целиком
func (c *LookupCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.users = make(map[string]cachedUser)
	c.operations = make(map[int64]cachedOperation)
}
