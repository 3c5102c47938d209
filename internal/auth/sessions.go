package auth

import (
	"net/http"

	"github.com/KarlovS28/uchettest/internal/config"

	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-contrib/sessions/memstore"
	"gorm.io/gorm"
)

// Session keys. The session carries only the user id; the principal is
// reloaded from storage on every request.
const (
	SessionName      = "session"
	sessionKeyUserID = "userId"
)

// NewSessionStore builds a session store persisted in the given database.
// Expired sessions are cleaned up periodically by the store itself.
func NewSessionStore(cfg *config.Config, db *gorm.DB) sessions.Store {
	store := gormsessions.NewStore(db, true, []byte(cfg.SessionSecret))
	applyOptions(store, cfg)
	return store
}

// NewMemorySessionStore builds an in-process session store for the memory
// storage driver. Sessions do not survive a restart.
func NewMemorySessionStore(cfg *config.Config) sessions.Store {
	store := memstore.NewStore([]byte(cfg.SessionSecret))
	applyOptions(store, cfg)
	return store
}

func applyOptions(store sessions.Store, cfg *config.Config) {
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.SessionMaxAgeSec,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

// SaveSessionUser records the authenticated user id in the session.
func SaveSessionUser(session sessions.Session, userID uint) error {
	session.Set(sessionKeyUserID, userID)
	return session.Save()
}

// ClearSession drops the session and expires its cookie.
func ClearSession(session sessions.Session) error {
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}

// SessionUserID extracts the stored user id, if any.
func SessionUserID(session sessions.Session) (uint, bool) {
	value := session.Get(sessionKeyUserID)
	if value == nil {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
