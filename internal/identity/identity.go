package identity

import (
	"sync"
	"time"

	"github.com/cleanninja/clean_ninja_api/internal/model"
)

// Context tracks who is currently signed in. Login/logout flip the
// authenticated flag; Current returns nothing while logged out.
type Context struct {
	mu            sync.RWMutex
	authenticated bool
	current       model.UserSnapshot
	joinedAt      time.Time

	now func() time.Time
}

func New() *Context {
	return &Context{now: time.Now}
}

func (c *Context) Login(id, displayName string) model.UserSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.authenticated = true
	c.current = model.UserSnapshot{ID: id, DisplayName: displayName}
	if c.joinedAt.IsZero() {
		c.joinedAt = c.now()
	}
	return c.current
}

func (c *Context) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.authenticated = false
	c.current = model.UserSnapshot{}
}

// Current returns the signed-in identity, or false when unauthenticated.
func (c *Context) Current() (model.UserSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.authenticated {
		return model.UserSnapshot{}, false
	}
	return c.current, true
}

func (c *Context) JoinedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.joinedAt
}
