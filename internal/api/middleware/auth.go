// Package middleware HTTP middleware сервиса
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
)

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "недействительный токен"

	tokenLeeway = 5 * time.Second
)

var (
	// ErrMissingToken возвращается, когда заголовок Authorization отсутствует
	ErrMissingToken = errors.New("middleware: missing bearer token")

	// ErrInvalidToken возвращается при невалидном токене или claims
	ErrInvalidToken = errors.New("middleware: invalid token")
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	tenantIDKey contextKey = "tenant_id"
	roleKey     contextKey = "role"
)

// Claims claims сессионного токена
type Claims struct {
	TenantID string `json:"tenant_id"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Session данные пользователя из токена
type Session struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	Role     domain.UserRole
}

// Auth проверка HMAC JWT в заголовке Authorization: Bearer <token>
type Auth struct {
	secret []byte
	issuer string
	logger Logger
}

// NewAuth создает middleware аутентификации
// issuer может быть пустым - тогда iss не проверяется
func NewAuth(secret, issuer string, logger Logger) *Auth {
	return &Auth{
		secret: []byte(secret),
		issuer: issuer,
		logger: logger,
	}
}

// Required пропускает только запросы с валидным токеном
func (a *Auth) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := a.authenticate(r)
		if err != nil {
			a.logger.Warn("%s %s - Unauthorized: %v", r.Method, r.URL.Path, err)
			if errors.Is(err, ErrMissingToken) {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// Optional добавляет сессию в контекст, если токен передан
// Невалидный токен отклоняется, отсутствующий - нет
func (a *Auth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := a.authenticate(r)
		if errors.Is(err, ErrMissingToken) {
			next.ServeHTTP(w, r)
			return
		}
		if err != nil {
			a.logger.Warn("%s %s - Unauthorized: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

func (a *Auth) authenticate(r *http.Request) (*Session, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return nil, ErrMissingToken
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, ErrInvalidToken
	}

	return a.Parse(parts[1])
}

// Parse проверяет подпись и claims токена
func (a *Auth) Parse(tokenStr string) (*Session, error) {
	opts := []jwt.ParserOption{
		jwt.WithLeeway(tokenLeeway),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, errors.New("sub must be a uuid"))
	}

	tenantID, err := uuid.Parse(claims.TenantID)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, errors.New("tenant_id must be a uuid"))
	}

	role := domain.UserRole(strings.ToUpper(claims.Role))
	if claims.Role != "" && !role.IsValid() {
		return nil, errors.Join(ErrInvalidToken, errors.New("unknown role"))
	}

	return &Session{UserID: userID, TenantID: tenantID, Role: role}, nil
}

// SignToken выпускает токен сессии (для локальной разработки и тестов)
func SignToken(secret, issuer string, session Session, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		TenantID: session.TenantID.String(),
		Role:     string(session.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.UserID.String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// WithSession добавляет сессию в контекст
func WithSession(ctx context.Context, s *Session) context.Context {
	ctx = context.WithValue(ctx, userIDKey, s.UserID)
	ctx = context.WithValue(ctx, tenantIDKey, s.TenantID)
	return context.WithValue(ctx, roleKey, s.Role)
}

// GetUserID получает ID пользователя из контекста
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// GetTenantID получает ID тенанта сессии из контекста
func GetTenantID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(tenantIDKey).(uuid.UUID)
	return id, ok
}

// GetRole получает роль пользователя из контекста
func GetRole(ctx context.Context) (domain.UserRole, bool) {
	role, ok := ctx.Value(roleKey).(domain.UserRole)
	return role, ok
}
