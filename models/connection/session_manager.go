package connection

import (
	"context"
	"encoding/base64"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/saeidalz13/battlesquares/internal/error"
)

const defaultCleanupInterval = time.Minute * 20

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	CleanupPeriodically(ctx context.Context)

	FindSession(sessionId string) (*Session, error)
	TerminateSession(sessionId string)
	WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error
	ReadFromSessionConn(session *Session) (int, []byte, error)
	Count() int
}

type DecideSessionManager struct {
	cleanupInterval time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

var _ SessionManager = (*DecideSessionManager)(nil)

func NewDecideSessionManager() *DecideSessionManager {
	initMapSize := 10

	return &DecideSessionManager{
		sessions:        make(map[string]*Session, initMapSize),
		cleanupInterval: defaultCleanupInterval,
	}
}

func (dsm *DecideSessionManager) WithCleanupInterval(interval time.Duration) *DecideSessionManager {
	dsm.cleanupInterval = interval
	return dsm
}

// Session ids are URL compatible so clients can pass them as query params.
func (dsm *DecideSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	session := NewSession(sessionId, conn)

	dsm.mu.Lock()
	dsm.sessions[sessionId] = session
	dsm.mu.Unlock()

	return session
}

func (dsm *DecideSessionManager) FindSession(sessionId string) (*Session, error) {
	dsm.mu.RLock()
	defer dsm.mu.RUnlock()

	session, prs := dsm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}

	if session == nil {
		return nil, cerr.ErrSessionIsNil(sessionId)
	}

	return session, nil
}

func (dsm *DecideSessionManager) TerminateSession(sessionId string) {
	dsm.mu.Lock()
	delete(dsm.sessions, sessionId)
	dsm.mu.Unlock()
}

func (dsm *DecideSessionManager) Count() int {
	dsm.mu.RLock()
	defer dsm.mu.RUnlock()
	return len(dsm.sessions)
}

// To ensure that there is no dangling connections, sessions with a
// lifetime longer than the cleanup interval are closed and removed.
func (dsm *DecideSessionManager) CleanupPeriodically(ctx context.Context) {
	ticker := time.NewTicker(dsm.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			dsm.cleanup()
		}
	}
}

func (dsm *DecideSessionManager) cleanup() {
	dsm.mu.Lock()
	defer dsm.mu.Unlock()

	for id, session := range dsm.sessions {
		if time.Since(session.createdAt) > dsm.cleanupInterval {
			if session.conn != nil {
				_ = session.conn.Close()
			}
			delete(dsm.sessions, id)
			log.Printf("removed stale session: %s", id)
		}
	}
}

func (dsm *DecideSessionManager) WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error {
	return session.writeToConnWithRetry(msg, msgType)
}

func (dsm *DecideSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	messageType, payload, err := session.conn.ReadMessage()
	if err != nil {
		return -1, []byte{}, NewConnErr(session.handleReadFromConnErr(err)).AddDesc(err.Error())
	}
	return messageType, payload, nil
}
