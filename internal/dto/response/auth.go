package response

import (
	"time"

	"airline-ticketing/internal/data/entity"
)

type AuthResponse struct {
	AccountID string             `json:"account_id"`
	Email     string             `json:"email"`
	Role      entity.AccountRole `json:"role"`
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expires_at"`
}

func AuthToResponse(account *entity.Account, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		AccountID: account.ID.String(),
		Email:     account.Email,
		Role:      account.Role,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
