package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidSession = errors.New("invalid session token")

// SessionClaims is the payload of the session cookie.
type SessionClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// SessionCodec signs and verifies session tokens with a server secret.
type SessionCodec struct {
	secret []byte
	now    func() time.Time
}

func NewSessionCodec(secret string) *SessionCodec {
	return &SessionCodec{secret: []byte(secret), now: time.Now}
}

// Issue returns a signed token carrying userID.
func (s *SessionCodec) Issue(userID uint) (string, error) {
	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(s.now()),
		},
	}

	// Use HS256 signing method (symmetric key)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies tokenStr and returns the user id it carries.
func (s *SessionCodec) Parse(tokenStr string) (uint, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, ErrInvalidSession
	}
	if claims.UserID == 0 {
		return 0, ErrInvalidSession
	}
	return claims.UserID, nil
}
