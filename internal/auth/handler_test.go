package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-management/internal"
)

type stubAuthService struct {
	claims      *Claims
	claimsErr   error
	identity    *Identity
	identityErr error
}

func (s *stubAuthService) Register(dto RegisterDTO) (*Profile, error) { return nil, nil }

func (s *stubAuthService) Authenticate(dto LoginDTO) (*LoginResult, error) { return nil, nil }

func (s *stubAuthService) ValidateAccessToken(string) (*Claims, error) {
	return s.claims, s.claimsErr
}

func (s *stubAuthService) ResolveIdentity(int64) (*Identity, error) {
	return s.identity, s.identityErr
}

var _ = Describe("AuthMiddleware", func() {
	var (
		service *stubAuthService
		handler *Handler
		seen    *Identity
		next    http.Handler
	)

	BeforeEach(func() {
		service = &stubAuthService{
			claims:   &Claims{UserID: 1},
			identity: &Identity{ID: 1, Email: "maria@example.com", Role: RoleUser},
		}
		handler = NewHandler(service)
		seen = nil
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = IdentityFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})
	})

	serve := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/attendance/today", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		rr := httptest.NewRecorder()
		handler.AuthMiddleware(next).ServeHTTP(rr, req)
		return rr
	}

	It("rejects a request without a bearer token", func() {
		rr := serve("")
		Expect(rr.Code).To(Equal(http.StatusUnauthorized))
		Expect(rr.Body.String()).To(ContainSubstring("MISSING_TOKEN"))
	})

	It("rejects an invalid token", func() {
		service.claimsErr = internal.ErrInvalidToken
		rr := serve("Bearer bad-token")
		Expect(rr.Code).To(Equal(http.StatusUnauthorized))
		Expect(rr.Body.String()).To(ContainSubstring("INVALID_TOKEN"))
	})

	It("rejects a token whose subject no longer exists", func() {
		service.identityErr = internal.ErrUserNotFound
		rr := serve("Bearer valid-token")
		Expect(rr.Code).To(Equal(http.StatusUnauthorized))
		Expect(rr.Body.String()).To(ContainSubstring("USER_NOT_FOUND"))
	})

	It("reports a storage fault during resolution as a 500", func() {
		service.identityErr = internal.NewInternalError("failed to load user by id", errors.New("connection refused"))
		rr := serve("Bearer valid-token")
		Expect(rr.Code).To(Equal(http.StatusInternalServerError))
	})

	It("attaches the resolved identity to the request context", func() {
		rr := serve("Bearer valid-token")
		Expect(rr.Code).To(Equal(http.StatusOK))
		Expect(seen).NotTo(BeNil())
		Expect(seen.Email).To(Equal("maria@example.com"))
	})
})
