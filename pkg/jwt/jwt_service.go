package jwt

import (
	"errors"
	"fmt"
	"time"

	"HomeChef-Backend/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type (
	JWTService interface {
		GenerateTokenUser(userID string, role string) (Token, error)
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetUserIDByToken(token string) (string, string, error)
		GetClaimsByToken(token string) (*UserClaims, error)
		TTL() time.Duration
	}

	UserClaims struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
		jwt.RegisteredClaims
	}

	Token struct {
		Value     string
		ID        string
		ExpiresAt time.Time
	}

	jwtService struct {
		secretKey string
		issuer    string
		ttl       time.Duration
	}
)

func NewJWTService(secretKey string, ttl time.Duration) JWTService {
	if ttl <= 0 {
		ttl = 120 * time.Minute
	}
	return &jwtService{
		secretKey: secretKey,
		issuer:    "HOMECHEF",
		ttl:       ttl,
	}
}

func (j *jwtService) TTL() time.Duration {
	return j.ttl
}

func (j *jwtService) GenerateTokenUser(userID string, role string) (Token, error) {
	now := time.Now()
	expiresAt := now.Add(j.ttl)
	claims := UserClaims{
		userID,
		role,
		jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return Token{}, err
	}
	return Token{Value: signed, ID: claims.ID, ExpiresAt: expiresAt}, nil
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &UserClaims{}, j.parseToken)
}

func (j *jwtService) GetClaimsByToken(token string) (*UserClaims, error) {
	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*UserClaims)
	if !ok || claims.UserID == "" || claims.ID == "" {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

func (j *jwtService) GetUserIDByToken(token string) (string, string, error) {
	claims, err := j.GetClaimsByToken(token)
	if err != nil {
		return "", "", err
	}
	return claims.UserID, claims.Role, nil
}
