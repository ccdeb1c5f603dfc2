package book

import "isolation/game"

// Book maps early-game states to a recommended action. A nil *Book is an
// empty book.
type Book struct {
	entries map[game.State]game.Action
}

func New() *Book {
	return &Book{entries: make(map[game.State]game.Action)}
}

func (b *Book) Get(state game.State) (game.Action, bool) {
	if b == nil {
		return nil, false
	}
	action, ok := b.entries[state]
	return action, ok
}

func (b *Book) Set(state game.State, action game.Action) {
	b.entries[state] = action
}

func (b *Book) Len() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}

// Each calls fn for every entry in unspecified order
func (b *Book) Each(fn func(state game.State, action game.Action)) {
	if b == nil {
		return
	}
	for state, action := range b.entries {
		fn(state, action)
	}
}

// Store persists an opening book between the offline build and live play.
type Store interface {
	Load() (*Book, error)
	Save(*Book) error
}

// MemoryStore keeps a copy of the last saved book.
type MemoryStore struct {
	book *Book
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{book: New()}
}

func (m *MemoryStore) Load() (*Book, error) {
	return copyOf(m.book), nil
}

func (m *MemoryStore) Save(b *Book) error {
	m.book = copyOf(b)
	return nil
}

func copyOf(b *Book) *Book {
	c := New()
	b.Each(c.Set)
	return c
}
