package auth

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers malformed, badly signed and expired tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrMissingSubject means the token decoded fine but carries no subject claim.
	ErrMissingSubject = errors.New("token has no subject")
)

// Claims is the fixed claim set embedded in every issued token. Only these
// extra claims are ever populated, so there is no dynamic map.
type Claims struct {
	CompanyID   string `json:"companyID,omitempty"`
	SubjectType string `json:"subjectType,omitempty"`
	SubjectName string `json:"subjectName,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates stateless signed tokens.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenService builds a token service for the given shared secret and
// signing algorithm name (HS256 when the name is unknown).
func NewTokenService(secret, algorithm string, ttl time.Duration) *TokenService {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	return &TokenService{secret: []byte(secret), method: method, ttl: ttl}
}

// Issue signs a token for the subject, valid for the configured lifetime.
func (s *TokenService) Issue(subjectID uint, companyID int, subjectName string) (string, error) {
	now := time.Now()
	claims := Claims{
		CompanyID:   strconv.Itoa(companyID),
		SubjectType: "0", // user
		SubjectName: subjectName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(subjectID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// Validate checks signature and expiry and returns the subject id.
func (s *TokenService) Validate(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return 0, ErrMissingSubject
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return 0, ErrMissingSubject
	}
	return uint(id), nil
}

// ExtractToken pulls the token out of an Authorization header value. The
// standard bearer scheme is tried first; failing that the raw header value is
// taken verbatim, for clients that send the token without a prefix.
func ExtractToken(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return strings.TrimSpace(header)
}
