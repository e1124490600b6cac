package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskmanager/config"
	"taskmanager/internal/domain/service"
	"taskmanager/internal/errors"
)

// DefaultTokenTTL is used when Issue is called with a non-positive lifetime.
const DefaultTokenTTL = 15 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// The signing key is read once from secretKey.access.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	svc, err := newJWTService(cfg.SecretKey.Access, time.Now)
	if err != nil {
		return nil, err
	}

	return svc, nil
}

func newJWTService(secret string, now func() time.Time) (*jwtService, error) {
	if secret == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		secret: []byte(secret),
		now:    now,
	}, nil
}

// Issue signs the caller's claims together with iat and exp.
func (s *jwtService) Issue(claims service.Claims, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	now := s.now()
	mapClaims := make(jwt.MapClaims, len(claims)+2)
	for key, value := range claims {
		mapClaims[key] = value
	}
	mapClaims["iat"] = now.Unix()
	mapClaims["exp"] = now.Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Verify parses the token, checks the HS256 signature and the exp claim, and returns the claims.
func (s *jwtService) Verify(token string) (service.Claims, error) {
	mapClaims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, mapClaims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrapf(service.ErrInvalidToken, "verify token: %v", err)
	}
	if !parsed.Valid {
		return nil, errors.WithStack(service.ErrInvalidToken)
	}

	return service.Claims(mapClaims), nil
}
