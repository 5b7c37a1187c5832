package http

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrms-labs/payroll-backend-go/internal/domain/auth"
	"github.com/hrms-labs/payroll-backend-go/internal/pkg/actor"
)

// actorFromContext builds the acting user from the verified JWT claims.
// Payslips generated through the API carry this user's name as generated_by.
func actorFromContext(ctx context.Context) (actor.User, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return actor.User{}, auth.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	fullName, _ := claims["full_name"].(string)
	if userID == "" {
		return actor.User{}, auth.ErrInvalidToken
	}

	return actor.User{ID: userID, Name: fullName}, nil
}
