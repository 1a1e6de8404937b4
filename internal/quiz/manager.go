package quiz

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"quizhub/internal/models"
)

// Manager holds live sessions in memory. Sessions are ephemeral: a restart
// loses them, which matches the "reload loses the quiz" contract.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func newSessionID() string {
	return fmt.Sprintf("session_%d_%d", time.Now().UnixNano(), rand.Intn(100000))
}

// Start builds a session from the given questions and registers it.
func (m *Manager) Start(questions []models.Question, category, difficulty string) (*Session, error) {
	session, err := NewSession(questions)
	if err != nil {
		return nil, err
	}
	session.ID = newSessionID()
	session.Category = category
	session.Difficulty = difficulty

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()
	return session, nil
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	return session, ok
}

// Answer submits an option for the session's current question.
func (m *Manager) Answer(id string, selected int) (*Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, false, models.ErrNotFound
	}
	correct, err := session.SubmitAnswer(selected)
	if err != nil {
		return nil, false, err
	}
	return session, correct, nil
}
