package handlers

import (
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"symposium-portal/config"
	"symposium-portal/errors"
)

const (
	maxLoginAttempts = 3
	lockWindow       = 10 * time.Minute
	tokenLifetime    = 8 * time.Hour
)

// Failed attempts are tracked per client address. Three strikes lock
// the gate for the lock window; a successful login clears the slate.
type loginAttempts struct {
	mu          sync.Mutex
	failures    map[string]int
	lockedUntil map[string]time.Time
}

var attempts = &loginAttempts{
	failures:    make(map[string]int),
	lockedUntil: make(map[string]time.Time),
}

func (a *loginAttempts) isLocked(ip string, now time.Time) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	until, ok := a.lockedUntil[ip]
	if !ok {
		return false
	}
	if now.After(until) {
		delete(a.lockedUntil, ip)
		delete(a.failures, ip)
		return false
	}
	return true
}

func (a *loginAttempts) fail(ip string, now time.Time) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.failures[ip]++
	if a.failures[ip] >= maxLoginAttempts {
		a.lockedUntil[ip] = now.Add(lockWindow)
	}
	return a.failures[ip]
}

func (a *loginAttempts) reset(ip string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.failures, ip)
	delete(a.lockedUntil, ip)
}

func isPasswordHashCorrect(dbHash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(dbHash), []byte(pass))
	return err == nil
}

// AdminLogin checks the admin password against the bcrypt hash from the
// environment and issues a short-lived token for the /admin group.
func AdminLogin(c *fiber.Ctx) error {
	type Credentials struct {
		Password string `json:"password"`
	}

	var creds = new(Credentials)
	if err := c.BodyParser(&creds); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("cannot parse credentials: %v", err))
	}

	ip := c.IP()
	now := time.Now()

	if attempts.isLocked(ip, now) {
		return errors.RaiseLockedError(c, "admin login is locked after repeated failures, try again later")
	}

	passwordHash, enverr := config.GetSecret(config.AdminPasswordKey)
	if enverr != nil {
		logrus.Error(enverr)
		return errors.RaiseConfigurationError(c, "admin password is not configured")
	}

	if !isPasswordHashCorrect(passwordHash, creds.Password) {
		count := attempts.fail(ip, now)
		logrus.WithField("ip", ip).Warnf("failed admin login attempt %d", count)
		if count >= maxLoginAttempts {
			return errors.RaiseLockedError(c, "too many attempts, admin login is locked")
		}
		return errors.RaisePermissionsError(c, "invalid password")
	}

	attempts.reset(ip)

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["role"] = "admin"
	claims["exp"] = now.Add(tokenLifetime).Unix()

	sign, enverr := config.GetSecret(config.SignKey)
	if enverr != nil {
		logrus.Error(enverr)
		return errors.RaiseConfigurationError(c, "token signing key is not configured")
	}

	t, err := token.SignedString([]byte(sign))
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("cannot sign token: %v", err))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Success login", "data": t})
}

func isAdminRole(c *fiber.Ctx) bool {
	token, ok := c.Locals("identity").(*jwt.Token)
	if !ok {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return role == "admin"
}
