package promotoken

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken возвращается при некорректном или неподписанном токене
	ErrInvalidToken = errors.New("promotoken: invalid token")

	// ErrTokenExpired возвращается, когда срок действия токена истек
	ErrTokenExpired = errors.New("promotoken: token expired")
)

// Claims полезная нагрузка промо-токена
// Токен подписывается сервисом на шаге валидации промокода и предъявляется
// клиентом на шагах review и confirm вместо серверного session state
type Claims struct {
	PromotionID int64  `json:"promotionId"`
	Code        string `json:"code"`
	jwt.RegisteredClaims
}

// Signer выпускает и проверяет подписанные промо-токены (HS256)
type Signer struct {
	secret []byte
	ttl    time.Duration
}

// NewSigner создает новый Signer
func NewSigner(secret string, ttl time.Duration) *Signer {
	return &Signer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue выпускает токен для промоакции
func (s *Signer) Issue(promotionID int64, code string, now time.Time) (string, error) {
	claims := Claims{
		PromotionID: promotionID,
		Code:        code,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: sign: %v", ErrInvalidToken, err)
	}

	return signed, nil
}

// Parse проверяет подпись и срок действия токена и возвращает claims
func (s *Signer) Parse(tokenString string) (*Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return &claims, nil
}
