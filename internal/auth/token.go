package auth

import (
	"time"

	"github.com/GoArmGo/SalesTrack/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Claims — структура утверждений: стандартные утверждения плюс
// subject (имя пользователя) в Subject из RegisteredClaims.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenIssuer выпускает и проверяет подписанные токены доступа (HS256).
// Секрет и срок жизни задаются конфигурацией процесса один раз при старте.
type TokenIssuer struct {
	secretKey []byte
	ttl       time.Duration
}

func NewTokenIssuer(secretKey []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secretKey: secretKey, ttl: ttl}
}

// Issue возвращает подписанный токен с subject и абсолютным сроком
// истечения now + ttl.
func (i *TokenIssuer) Issue(subject string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.ttl)),
		},
	})

	tokenString, err := token.SignedString(i.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Decode проверяет подпись и срок жизни токена и возвращает subject.
// Любая проблема (подпись, формат, истечение) — domain.ErrInvalidToken.
func (i *TokenIssuer) Decode(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secretKey, nil
	})
	if err != nil {
		return "", domain.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}

	return claims.Subject, nil
}
