package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alshawwaf/dev-hub/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	UserCtxKey = &contextKey{"User"}
)

type contextKey struct {
	name string
}

// AuthUser is the authenticated caller extracted from a bearer token.
type AuthUser struct {
	ID      int64
	Email   string
	IsAdmin bool
}

// TokenIssuer signs and verifies the HS256 bearer tokens handed out by login.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

type userClaims struct {
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

func (t *TokenIssuer) Issue(user domain.User) (string, error) {
	now := time.Now()
	claims := userClaims{
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenIssuer) Verify(tokenStr string) (AuthUser, error) {
	claims := &userClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return AuthUser{}, err
	}
	if !token.Valid {
		return AuthUser{}, fmt.Errorf("invalid token")
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return AuthUser{}, fmt.Errorf("invalid subject: %w", err)
	}
	return AuthUser{ID: userID, Email: claims.Email, IsAdmin: claims.IsAdmin}, nil
}

func (s *server) bearerTokenVerifier(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorizationHeader := r.Header.Get("Authorization")
		tokenStr, ok := strings.CutPrefix(authorizationHeader, "Bearer ")
		if !ok || tokenStr == "" {
			errorResponse(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		user, err := s.tokens.Verify(tokenStr)
		if err != nil {
			errorResponse(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		ctx := NewUserContext(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *server) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok || !user.IsAdmin {
			errorResponse(w, http.StatusForbidden, "Admin privileges required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func NewUserContext(ctx context.Context, user AuthUser) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

func UserFromContext(ctx context.Context) (AuthUser, bool) {
	user, ok := ctx.Value(UserCtxKey).(AuthUser)
	return user, ok
}
