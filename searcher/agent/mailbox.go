package agent

import (
	"isolation/game"
	"sync"
)

// Mailbox keeps the last announced action. An agent writes to it while the
// caller reads it after the time limit.
type Mailbox struct {
	sync.Mutex
	last  game.Action
	count int
}

func NewMailbox() *Mailbox {
	return &Mailbox{}
}

func (m *Mailbox) Announce(action game.Action) {
	m.Lock()
	defer m.Unlock()

	m.last = action
	m.count++
}

func (m *Mailbox) Last() (game.Action, bool) {
	m.Lock()
	defer m.Unlock()

	return m.last, m.count > 0
}

func (m *Mailbox) Count() int {
	m.Lock()
	defer m.Unlock()

	return m.count
}
