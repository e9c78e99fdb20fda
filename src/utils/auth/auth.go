// Package auth verifies API clients' bearer tokens
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/warp-contracts/syncstate/src/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/jwa"
	"github.com/lestrrat-go/jwx/jwt"
)

type Role string

const (
	RoleIndexer Role = "indexer"

	// Private claim naming the client's role
	RoleClaim = "role"

	roleKey = "auth_role"
)

var (
	ErrMissingToken   = errors.New("missing bearer token")
	ErrInvalidToken   = errors.New("invalid token")
	ErrMissingSecret  = errors.New("secret key not configured")
	ErrRoleNotAllowed = errors.New("role not allowed")
)

// Verifies HS256 signed JWT tokens issued to API clients
type Verifier struct {
	secretKey      []byte
	acceptableSkew time.Duration
	onUnauthorized func()
	onForbidden    func()
}

func NewVerifier(secretKey string) *Verifier {
	return &Verifier{secretKey: []byte(secretKey)}
}

func (self *Verifier) WithAcceptableSkew(v time.Duration) *Verifier {
	self.acceptableSkew = v
	return self
}

// Hooks called upon rejected requests, used for monitoring
func (self *Verifier) WithOnReject(onUnauthorized, onForbidden func()) *Verifier {
	self.onUnauthorized = onUnauthorized
	self.onForbidden = onForbidden
	return self
}

// Parses the token and returns the role of its owner.
// Tokens without the role claim belong to the indexer.
func (self *Verifier) Verify(token string) (role Role, err error) {
	if len(self.secretKey) == 0 {
		return "", ErrMissingSecret
	}

	parsed, err := jwt.Parse([]byte(token),
		jwt.WithVerify(jwa.HS256, self.secretKey),
		jwt.WithValidate(true),
		jwt.WithAcceptableSkew(self.acceptableSkew),
	)
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}

	claim, ok := parsed.Get(RoleClaim)
	if !ok {
		return RoleIndexer, nil
	}

	value, ok := claim.(string)
	if !ok {
		return "", ErrInvalidToken
	}

	return Role(value), nil
}

func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}

// Middleware rejecting requests that don't carry a valid token for the given role
func (self *Verifier) Require(role Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c)
		if err != nil {
			self.reject(self.onUnauthorized)
			logger.LOGE(c, err, http.StatusUnauthorized).Info("Request without token")
			return
		}

		actual, err := self.Verify(token)
		if err != nil {
			self.reject(self.onUnauthorized)
			logger.LOGE(c, ErrInvalidToken, http.StatusUnauthorized).WithError(err).Info("Failed to verify token")
			return
		}

		if actual != role {
			self.reject(self.onForbidden)
			logger.LOGE(c, ErrRoleNotAllowed, http.StatusForbidden).WithField("role", actual).Info("Role not allowed")
			return
		}

		c.Set(roleKey, actual)
		c.Next()
	}
}

func (self *Verifier) reject(hook func()) {
	if hook != nil {
		hook()
	}
}

// Role of the authenticated client, empty if the request didn't pass through Require
func GetRole(c *gin.Context) Role {
	role, _ := c.Get(roleKey)
	r, _ := role.(Role)
	return r
}
