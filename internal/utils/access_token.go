package utils

import (
	"errors"
	"time"

	"github.com/square/go-jose/v3"
	"github.com/square/go-jose/v3/jwt"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// AccessTokenClaims bind a user id and email for the lifetime of one
// credential.
type AccessTokenClaims struct {
	UserId int64  `json:"user_id"`
	Email  string `json:"email"`
}

type AccessTokenUtil struct {
	secret     []byte
	expiration time.Duration
}

func NewAccessTokenUtil(secret string, expiration time.Duration) *AccessTokenUtil {
	return &AccessTokenUtil{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// EncodeToken issues an HS256-signed JWT carrying the user id and email.
func (a *AccessTokenUtil) EncodeToken(userId int64, email string) (string, error) {
	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: jose.HS256, Key: a.secret}, (&jose.SignerOptions{}).WithType("JWT"))
	if err != nil {
		return "", err
	}

	now := time.Now()
	registered := jwt.Claims{
		IssuedAt: jwt.NewNumericDate(now),
		Expiry:   jwt.NewNumericDate(now.Add(a.expiration)),
	}
	custom := AccessTokenClaims{
		UserId: userId,
		Email:  email,
	}

	return jwt.Signed(signer).Claims(registered).Claims(custom).CompactSerialize()
}

// DecodeToken verifies the signature and expiry and returns the claims.
func (a *AccessTokenUtil) DecodeToken(token string) (*AccessTokenClaims, error) {
	parsed, err := jwt.ParseSigned(token)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	var registered jwt.Claims
	var custom AccessTokenClaims
	if err := parsed.Claims(a.secret, &registered, &custom); err != nil {
		return nil, ErrTokenInvalid
	}

	if err := registered.Validate(jwt.Expected{Time: time.Now()}); err != nil {
		if errors.Is(err, jwt.ErrExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	return &custom, nil
}
