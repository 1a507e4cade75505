package auth

import (
	"errors"

	"bookclient/internal/entity"

	"github.com/golang-jwt/jwt/v5"
)

// adminGroup is the provider-side group whose members get the admin role.
const adminGroup = "Admins"

var ErrInvalidToken = errors.New("invalid token")

// Claims are the identity-provider claims this client consumes: the subject
// and the group-membership list, plus profile attributes for display.
type Claims struct {
	Sub    string   `json:"sub"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Groups []string `json:"groups"`
	jwt.RegisteredClaims
}

// DecodeToken decodes a provider-issued token without verifying its
// signature. Verification belongs to the provider and the backend; the
// client only reads identity attributes out of the payload.
func DecodeToken(tokenStr string) (*entity.User, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenStr, claims); err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Sub == "" {
		return nil, ErrInvalidToken
	}

	role := entity.RoleUser
	for _, g := range claims.Groups {
		if g == adminGroup {
			role = entity.RoleAdmin
			break
		}
	}

	user := &entity.User{
		ID:    claims.Sub,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  role,
	}
	if claims.IssuedAt != nil {
		user.CreatedAt = claims.IssuedAt.Time
	}
	return user, nil
}
