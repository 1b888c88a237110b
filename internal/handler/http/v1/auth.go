package v1

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"golang.org/x/time/rate"
)

const (
	sessionCookieName = "sessionid"
	sessionKey        = "session"
	visitorTTL        = 10 * time.Minute
)

// SessionAuthMiddleware - middleware для аутентификации по cookie сессии
func (h *Handler) SessionAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(sessionCookieName)
		session, err := h.accounts.Authenticate(c.Request.Context(), token)
		if err != nil {
			h.respondError(c, h.log(c, "SessionAuthMiddleware"), err)
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

func sessionFrom(c *gin.Context) *models.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*models.Session)
	return s
}

// currentUserID возвращает id пользователя сессии; вызывается только за SessionAuthMiddleware
func currentUserID(c *gin.Context) int64 {
	if s := sessionFrom(c); s != nil {
		return s.UserID
	}
	return 0
}

func (h *Handler) setSessionCookie(c *gin.Context, session *models.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, session.Token, int(h.cfg.SessionTTL.Seconds()), "/", "", h.cfg.SessionCookieSecure, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", h.cfg.SessionCookieSecure, true)
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter хранит token bucket на каждый IP клиента
type ipRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

func newIPRateLimiter(rps, burst int) *ipRateLimiter {
	if rps < 1 {
		rps = 1
	}
	if burst < 1 {
		burst = 1
	}
	return &ipRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	// устаревшие записи удаляются при каждом вызове
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > visitorTTL {
			delete(l.visitors, key)
		}
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// LoginRateLimitMiddleware ограничивает частоту попыток входа с одного IP
func (h *Handler) LoginRateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !h.loginLimiter.allow(ip) {
			h.log(c, "LoginRateLimitMiddleware").WithField("ip", ip).Warn("Rate limit exceeded")
			writeError(c, http.StatusTooManyRequests, codeTooManyRequests, "Request was throttled.", nil)
			return
		}
		c.Next()
	}
}
