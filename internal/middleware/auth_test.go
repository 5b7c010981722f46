package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mottasimsadi/food-share-server/internal/auth"
)

type stubVerifier struct {
	subject *auth.Subject
	err     error
	calls   int
}

func (s *stubVerifier) Verify(ctx context.Context, idToken string) (*auth.Subject, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.subject, nil
}

func protectedRouter(v auth.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(v), func(c *gin.Context) {
		subject := SubjectFrom(c)
		if subject == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "no subject in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": subject.Email})
	})
	return r
}

func TestRequireAuthMissingHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"prefix without space", "Bearertoken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &stubVerifier{}
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			protectedRouter(v).ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
			if v.calls != 0 {
				t.Errorf("verifier called %d times, want 0", v.calls)
			}
		})
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	v := &stubVerifier{err: errors.New("token expired")}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	protectedRouter(v).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if v.calls != 1 {
		t.Errorf("verifier called %d times, want 1", v.calls)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	v := &stubVerifier{subject: &auth.Subject{UID: "u1", Email: "donor@example.com"}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	protectedRouter(v).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body != `{"email":"donor@example.com"}` {
		t.Errorf("body = %s", body)
	}
}

func TestSubjectFromWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if subject := SubjectFrom(c); subject != nil {
		t.Errorf("SubjectFrom = %#v, want nil", subject)
	}
}

func TestTimeoutSetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Timeout(5 * time.Second))
	var hasDeadline bool
	r.GET("/", func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if !hasDeadline {
		t.Error("request context has no deadline")
	}
}
