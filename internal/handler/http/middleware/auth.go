package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplecore/hrms-backend-go/internal/domain/auth"
	"github.com/peoplecore/hrms-backend-go/internal/domain/user"
	"github.com/peoplecore/hrms-backend-go/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// PrincipalFromContext extracts the acting user from the verified
// token claims. The employee_id claim is empty for users without a
// linked employee profile.
func PrincipalFromContext(ctx context.Context) user.Principal {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.Principal{}
	}

	var p user.Principal
	if v, ok := claims["user_id"].(string); ok {
		p.UserID = v
	}
	if v, ok := claims["employee_id"].(string); ok {
		p.EmployeeID = v
	}
	return p
}
