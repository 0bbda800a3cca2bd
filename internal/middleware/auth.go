package middleware

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"digibayt/internal/domain/models"
	libjwt "digibayt/internal/lib/jwt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// IdentityKey is the echo context key the guard stores the verified token
// claims under.
const IdentityKey = "identity"

const (
	loginPath = "/login"
	adminRoot = "/admin"
	siteRoot  = "/"
)

// Guard decides allow/redirect for the admin path prefixes before any
// handler runs: a valid, non-expired session token with an admin-panel role
// is required; the superadmin subtree additionally requires the superadmin
// role. Browser requests are redirected, API requests get 401/403 JSON.
type Guard struct {
	secret string
}

func NewGuard(secret string) *Guard {
	return &Guard{secret: secret}
}

// RequireRole gates a route group on role membership.
func (g *Guard) RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			meta, err := g.identity(c)
			if err != nil {
				return g.unauthenticated(c)
			}

			if meta.ExpiresAt != 0 && time.Now().Unix() > meta.ExpiresAt {
				return g.unauthenticated(c)
			}

			if !hasRole(meta.Role, roles) {
				return g.forbidden(c, meta.Role)
			}

			c.Set(IdentityKey, meta)
			return next(c)
		}
	}
}

// Identity returns the verified claims for the current request, or nil when
// the guard did not run (public routes) or the optional token is absent.
func Identity(c echo.Context) *models.TokenMeta {
	meta, _ := c.Get(IdentityKey).(*models.TokenMeta)
	return meta
}

// Optional verifies a token when one is present but never rejects the
// request. Public read endpoints use it so an admin session can opt in to
// drafts.
func (g *Guard) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if meta, err := g.identity(c); err == nil {
			if meta.ExpiresAt == 0 || time.Now().Unix() <= meta.ExpiresAt {
				c.Set(IdentityKey, meta)
			}
		}
		return next(c)
	}
}

func (g *Guard) identity(c echo.Context) (*models.TokenMeta, error) {
	token := bearerToken(c)
	if token == "" {
		token = sessionToken(c)
	}
	if token == "" {
		return nil, libjwt.ErrInvalidToken
	}

	return libjwt.ParseToken(token, g.secret)
}

func (g *Guard) unauthenticated(c echo.Context) error {
	if wantsHTML(c) {
		callback := url.QueryEscape(c.Request().RequestURI)
		return c.Redirect(http.StatusFound, loginPath+"?callback="+callback)
	}
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
}

func (g *Guard) forbidden(c echo.Context, role models.Role) error {
	if wantsHTML(c) {
		// a valid admin-panel session short of superadmin lands on the
		// admin root, anything else on the site root
		if role.Valid() {
			return c.Redirect(http.StatusFound, adminRoot)
		}
		return c.Redirect(http.StatusFound, siteRoot)
	}
	return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient role"})
}

func bearerToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

func sessionToken(c echo.Context) string {
	sess, err := session.Get("session", c)
	if err != nil {
		return ""
	}
	token, _ := sess.Values["access_token"].(string)
	return token
}

func wantsHTML(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}

func hasRole(role models.Role, allowed []models.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
