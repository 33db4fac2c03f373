package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"growlink/internal/config"
)

type Middleware func(http.Handler) http.Handler

// Claims - личность запроса, извлеченная из JWT
type Claims struct {
	ID       string
	UserName string
	Role     string
}

type contextKey struct{}

var claimsKey = contextKey{}

// ClaimsFromContext достает личность, положенную AuthMiddleware
func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(Claims)
	return claims, ok
}

// ContextWithClaims используется в тестах хендлеров
func ContextWithClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// publicRule - правило пропуска аутентификации: маршрут публичен, если
// метод входит в список (пустой список = любой метод) и путь подходит
// под шаблон
type publicRule struct {
	methods []string
	pattern *regexp.Regexp
}

func (r publicRule) matches(req *http.Request) bool {
	if len(r.methods) > 0 {
		found := false
		for _, m := range r.methods {
			if req.Method == m {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return r.pattern.MatchString(req.URL.Path)
}

// Упорядоченный список публичных маршрутов. Все остальное требует токен.
// GET /events/{id}/registrations в списке намеренно отсутствует
var publicRules = []publicRule{
	{nil, regexp.MustCompile(`^/auth/.*`)},
	{[]string{http.MethodGet}, regexp.MustCompile(`^/events/?$`)},
	{[]string{http.MethodGet}, regexp.MustCompile(`^/events/[^/]+$`)},
	{[]string{http.MethodGet}, regexp.MustCompile(`^/events/[^/]+/comments$`)},
	{[]string{http.MethodGet}, regexp.MustCompile(`^/events/[^/]+/reviews$`)},
	{[]string{http.MethodGet}, regexp.MustCompile(`^/threads/?$`)},
	{[]string{http.MethodGet}, regexp.MustCompile(`^/threads/[^/]+$`)},
	{[]string{http.MethodGet}, regexp.MustCompile(`^/templates/?$`)},
	{[]string{http.MethodGet}, regexp.MustCompile(`^/templates/[^/]+$`)},
	{nil, regexp.MustCompile(`^/uploads/.*`)},
	{[]string{http.MethodGet}, regexp.MustCompile(`^/$`)},
	{[]string{http.MethodGet}, regexp.MustCompile(`^/health$`)},
}

// writeError - локальный помощник, чтобы не тянуть пакет handler
func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// AuthMiddleware проверяет JWT и кладет Claims в контекст запроса.
// Публичные маршруты из publicRules проходят без токена
func AuthMiddleware(cfg *config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, rule := range publicRules {
				if rule.matches(r) {
					next.ServeHTTP(w, r)
					return
				}
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, "Требуется аутентификация", http.StatusUnauthorized)
				return
			}

			// Формат "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeError(w, "Неверный формат токена", http.StatusUnauthorized)
				return
			}

			tokenString := parts[1]

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
				}
				return []byte(cfg.JWTSecretKey), nil
			})

			if err != nil || !token.Valid {
				writeError(w, "Недействительный или просроченный токен", http.StatusUnauthorized)
				return
			}

			mapClaims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				writeError(w, "Неверные claims токена", http.StatusUnauthorized)
				return
			}

			id, ok1 := mapClaims["id"].(string)
			userName, ok2 := mapClaims["user_name"].(string)
			role, ok3 := mapClaims["role"].(string)
			if !ok1 || !ok2 || !ok3 {
				writeError(w, "Неверные данные в токене", http.StatusUnauthorized)
				return
			}

			claims := Claims{
				ID:       id,
				UserName: userName,
				Role:     role,
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
		})
	}
}

// RequireRole пускает дальше только перечисленные роли
func RequireRole(allowedRoles ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeError(w, "Требуется аутентификация", http.StatusUnauthorized)
				return
			}

			allowed := false
			for _, role := range allowedRoles {
				if claims.Role == role {
					allowed = true
					break
				}
			}

			if !allowed {
				writeError(w, "Доступ запрещен", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s %s", r.Method, r.RequestURI, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
