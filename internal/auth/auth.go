package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	userDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
)

// Role is the access level attached to every account. There are only two;
// anything else in a token or request body is rejected.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Identity is the verified subject attached to the request context after the
// bearer token has been checked and the user resolved against the store.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Profile is the public projection of an account. It is the only user shape
// that ever leaves the service; the password hash stays behind.
type Profile struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Surname string  `json:"surname"`
	Email   string  `json:"email"`
	Role    Role    `json:"role"`
	Photo   *string `json:"photo,omitempty"`
}

// LoginResult pairs the signed token with the public profile, matching the
// login response contract.
type LoginResult struct {
	Token   string  `json:"token"`
	Profile Profile `json:"user"`
}

// Claims represents JWT token claims
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type ServiceAPI interface {
	Register(dto RegisterDTO) (*Profile, error)
	Authenticate(dto LoginDTO) (*LoginResult, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ResolveIdentity(userID int64) (*Identity, error)
}

type RepositoryAPI interface {
	GetByEmail(email string) (*userDatamodel.User, error)
	GetByID(userID int64) (*userDatamodel.User, error)
	Create(u *userDatamodel.User) error
}

type TokenGeneratorAPI interface {
	GenerateAccessToken(id *Identity) (token string, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

type ctxKey string

const ContextUserKey ctxKey = "identity"

// IdentityFromContext returns the verified identity the auth middleware put
// on the request context, if any.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(ContextUserKey).(*Identity)
	return id, ok
}

func ContextWithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ContextUserKey, id)
}

func publicProfile(u *userDatamodel.User) Profile {
	return Profile{
		ID:      u.ID,
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
		Role:    Role(u.Role),
		Photo:   u.Photo,
	}
}

// DefaultAccessTokenTTL mirrors the fixed one hour validity window of the
// issued identity assertion.
const DefaultAccessTokenTTL = time.Hour
