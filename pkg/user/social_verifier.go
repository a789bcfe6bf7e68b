package user

import (
	"context"
	"strings"

	"HomeChef-Backend/domain"

	"google.golang.org/api/idtoken"
)

type (
	// SocialVerifier checks a provider-issued token and returns the verified email.
	SocialVerifier interface {
		Verify(ctx context.Context, token string) (string, error)
	}

	googleVerifier struct {
		audience string
	}
)

func NewGoogleVerifier(clientID string) SocialVerifier {
	return &googleVerifier{
		audience: clientID,
	}
}

func (g *googleVerifier) Verify(ctx context.Context, token string) (string, error) {
	if g.audience == "" {
		return "", domain.ErrSocialLoginDisabled
	}

	payload, err := idtoken.Validate(ctx, token, g.audience)
	if err != nil {
		return "", domain.ErrSocialTokenInvalid
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		return "", domain.ErrSocialTokenInvalid
	}
	return strings.ToLower(email), nil
}
