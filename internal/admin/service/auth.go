package service

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"advanx_funnel_backend/platform/apperr"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenType = "access"

// dummyHash keeps the bcrypt cost on the failure path so a wrong email
// takes as long as a wrong password.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

const loginFailedMessage = "invalid credentials"

// Login checks the configured admin credential and issues an access
// token. The failure message never tells which field was wrong.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	emailOK := strings.EqualFold(strings.TrimSpace(email), s.cfg.GetAdminEmail())

	var passwordOK bool
	if hash := s.cfg.GetAdminPasswordHash(); hash != "" {
		target := []byte(hash)
		if !emailOK {
			target = dummyHash
		}
		passwordOK = bcrypt.CompareHashAndPassword(target, []byte(password)) == nil
	} else {
		// Plaintext fallback for local development only.
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.GetAdminPassword())) == 1
	}

	if !emailOK || !passwordOK {
		s.log.AuthEvent("admin_login", email, false, "credential mismatch")
		s.met.AdminLogins.WithLabelValues("failure").Inc()
		return "", apperr.Unauthorized(loginFailedMessage)
	}

	token, err := s.signAccessToken(s.cfg.GetAdminEmail())
	if err != nil {
		s.log.AuthEvent("admin_login", email, false, "token signing failed")
		s.met.AdminLogins.WithLabelValues("failure").Inc()
		return "", apperr.Wrap(apperr.KindInternal, "could not issue token", err)
	}

	s.log.AuthEvent("admin_login", email, true, "")
	s.met.AdminLogins.WithLabelValues("success").Inc()
	return token, nil
}

// AccessTokenTTL returns the configured token lifetime.
func (s *Service) AccessTokenTTL() time.Duration {
	return s.cfg.GetAccessTokenTTL()
}

func (s *Service) signAccessToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  email,
		"type": accessTokenType,
		"exp":  now.Add(s.cfg.GetAccessTokenTTL()).Unix(),
		"iat":  now.Unix(),
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenObj.SignedString([]byte(s.cfg.GetJWTAccessSecret()))
}
