package auth

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/hr-management/internal"
	userDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
)

// Service is the main auth service with dependencies
type Service struct {
	repo       RepositoryAPI
	tokenGen   TokenGeneratorAPI
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, tokenGen TokenGeneratorAPI, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		tokenGen:   tokenGen,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a new account with a hashed password. Role defaults to
// user when the request does not name one.
func (s *Service) Register(dto RegisterDTO) (*Profile, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	role := dto.Role
	if role == "" {
		role = string(RoleUser)
	}

	u := &userDatamodel.User{
		Name:         dto.Name,
		Surname:      dto.Surname,
		Email:        dto.Email,
		PasswordHash: string(hash),
		Role:         role,
		StartDate:    time.Now(),
	}

	if err := s.repo.Create(u); err != nil {
		s.logger.Error("register failed", "error", err, "email", dto.Email)
		return nil, err
	}

	s.logger.Info("user registered", "user_id", u.ID, "role", u.Role)

	profile := publicProfile(u)
	return &profile, nil
}

// Authenticate validates credentials and returns the signed token alongside
// the public profile. Unknown email and wrong password are reported as
// distinct failures, matching the existing API contract; the repository maps
// missing rows to the unknown-user sentinel, so storage faults pass through
// unchanged.
func (s *Service) Authenticate(dto LoginDTO) (*LoginResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		s.logger.Warn("login failed: could not load user", "email", dto.Email, "error", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		s.logger.Warn("login failed: bad password", "user_id", u.ID)
		return nil, internal.ErrBadCredentials
	}

	identity := &Identity{ID: u.ID, Email: u.Email, Role: Role(u.Role)}
	token, err := s.tokenGen.GenerateAccessToken(identity)
	if err != nil {
		return nil, internal.NewInternalError("failed to sign token", err)
	}

	s.logger.Info("login succeeded", "user_id", u.ID)

	return &LoginResult{Token: token, Profile: publicProfile(u)}, nil
}

// ValidateAccessToken validates access token and returns claims
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGen.ValidateToken(tokenString)
}

// ResolveIdentity looks the token subject up in the store. A verified token
// whose subject no longer exists is still an authentication failure; the
// repository reports that as the unknown-user sentinel, while storage faults
// keep their own status.
func (s *Service) ResolveIdentity(userID int64) (*Identity, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return &Identity{ID: u.ID, Email: u.Email, Role: Role(u.Role)}, nil
}

// JWTTokenGenerator signs and verifies HS256 identity assertions.
type JWTTokenGenerator struct {
	Secret []byte
	TTL    time.Duration
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	return &JWTTokenGenerator{
		Secret: []byte(secret),
		TTL:    ttl,
	}
}

// GenerateAccessToken creates a new signed token for the identity.
func (j *JWTTokenGenerator) GenerateAccessToken(id *Identity) (string, error) {
	expiresAt := time.Now().Add(j.TTL)

	claims := &Claims{
		UserID: id.ID,
		Email:  id.Email,
		Role:   string(id.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   strconv.FormatInt(id.ID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.Secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken validates a JWT token and returns claims
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})
	if err != nil {
		return nil, internal.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, internal.ErrInvalidToken
	}

	return claims, nil
}
