package auth

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RoleAuthorization", func() {
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	serve := func(mw func(http.Handler) http.Handler, identity *Identity) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if identity != nil {
			req = req.WithContext(ContextWithIdentity(req.Context(), identity))
		}
		rr := httptest.NewRecorder()
		mw(okHandler).ServeHTTP(rr, req)
		return rr
	}

	var ra *RoleAuthorization

	BeforeEach(func() {
		ra = NewRoleAuthorization(testLogger)
	})

	It("returns 401 when no identity is on the context", func() {
		rr := serve(ra.RequireUser(), nil)
		Expect(rr.Code).To(Equal(http.StatusUnauthorized))
		Expect(rr.Body.String()).To(ContainSubstring("MISSING_TOKEN"))
	})

	It("returns 403 when the role is not in the allowed set", func() {
		rr := serve(ra.RequireUser(), &Identity{ID: 1, Role: RoleAdmin})
		Expect(rr.Code).To(Equal(http.StatusForbidden))
		Expect(rr.Body.String()).To(ContainSubstring("FORBIDDEN_ROLE"))
	})

	It("admits a matching role", func() {
		rr := serve(ra.RequireAdmin(), &Identity{ID: 1, Role: RoleAdmin})
		Expect(rr.Code).To(Equal(http.StatusOK))
	})

	It("admits both roles through RequireAny", func() {
		Expect(serve(ra.RequireAny(), &Identity{ID: 1, Role: RoleUser}).Code).To(Equal(http.StatusOK))
		Expect(serve(ra.RequireAny(), &Identity{ID: 2, Role: RoleAdmin}).Code).To(Equal(http.StatusOK))
	})
})
