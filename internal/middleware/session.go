package middleware

import (
	"encoding/gob"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const SessionName = "soiladvisor"

const (
	keyUserID      = "user_id"
	keyUsername    = "username"
	keyResultToken = "result_token"
)

// Flash is one flash message with its display category (success, danger,
// warning, info).
type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

// AddFlash queues a flash message on the session.
func AddFlash(store sessions.Store, c *gin.Context, category, message string) {
	sess, _ := store.Get(c.Request, SessionName)
	sess.AddFlash(Flash{Category: category, Message: message})
	_ = sess.Save(c.Request, c.Writer)
}

// TakeFlashes drains and returns any queued flash messages.
func TakeFlashes(store sessions.Store, c *gin.Context) []Flash {
	sess, _ := store.Get(c.Request, SessionName)
	raw := sess.Flashes()
	if len(raw) > 0 {
		_ = sess.Save(c.Request, c.Writer)
	}
	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if fl, ok := f.(Flash); ok {
			flashes = append(flashes, fl)
		}
	}
	return flashes
}

// SetUser records the authenticated identity on the session.
func SetUser(store sessions.Store, c *gin.Context, id uint, username string) error {
	sess, _ := store.Get(c.Request, SessionName)
	sess.Values[keyUserID] = id
	sess.Values[keyUsername] = username
	return sess.Save(c.Request, c.Writer)
}

// ClearUser removes the identity and any pending result token.
func ClearUser(store sessions.Store, c *gin.Context) error {
	sess, _ := store.Get(c.Request, SessionName)
	delete(sess.Values, keyUserID)
	delete(sess.Values, keyUsername)
	delete(sess.Values, keyResultToken)
	return sess.Save(c.Request, c.Writer)
}

// CurrentUser returns the session identity, if any.
func CurrentUser(store sessions.Store, c *gin.Context) (uint, string, bool) {
	sess, _ := store.Get(c.Request, SessionName)
	id, ok := sess.Values[keyUserID].(uint)
	if !ok {
		return 0, "", false
	}
	username, _ := sess.Values[keyUsername].(string)
	return id, username, true
}

// SetResultToken points the session at its latest result payload.
func SetResultToken(store sessions.Store, c *gin.Context, token string) error {
	sess, _ := store.Get(c.Request, SessionName)
	sess.Values[keyResultToken] = token
	return sess.Save(c.Request, c.Writer)
}

// ResultToken returns the session's pending result token, if any.
func ResultToken(store sessions.Store, c *gin.Context) (string, bool) {
	sess, _ := store.Get(c.Request, SessionName)
	token, ok := sess.Values[keyResultToken].(string)
	return token, ok && token != ""
}
