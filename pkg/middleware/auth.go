package middleware

import (
	"net/http"
	"strings"

	"airline-ticketing/internal/data/entity"
	"airline-ticketing/internal/data/repository"
	"airline-ticketing/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the UUID session token from the Authorization header
func AuthSession(sessionRepo repository.SessionRepository, accountRepo repository.AccountRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session",
					zap.String("token", token),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session", zap.String("token", token))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			account, err := accountRepo.FindByID(r.Context(), session.AccountID)
			if err != nil {
				logger.Error("Failed to load session account",
					zap.Error(err),
					zap.String("account_id", session.AccountID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if account == nil {
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetAccountContext(r.Context(), session.AccountID, string(account.Role))
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin requires the ADMIN role, must run after AuthSession
func Admin(accountRepo repository.AccountRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accountID, ok := utils.GetAccountIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			account, err := accountRepo.FindByID(r.Context(), accountID)
			if err != nil {
				logger.Error("Admin check: failed to get account",
					zap.Error(err), zap.String("account_id", accountID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if account == nil || account.Role != entity.RoleAdmin {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("account_id", accountID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
