package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ai-interviewer/internal/config"
)

const testSecret = "test-secret-key-for-jwt-signing-minimum-32-bytes"

func testService(hours int) *Service {
	return NewService(&config.JWTConfig{Secret: testSecret, ExpirationHours: hours})
}

func TestIssueAndVerify(t *testing.T) {
	svc := testService(24)
	interviewID := uuid.New()

	token, err := svc.Issue(interviewID, "+15551234567")
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, interviewID, claims.InterviewID)
	assert.Equal(t, "+15551234567", claims.Phone)
}

func TestIssue_TokensAreInterviewScoped(t *testing.T) {
	svc := testService(24)
	id1, id2 := uuid.New(), uuid.New()

	token1, err := svc.Issue(id1, "")
	require.NoError(t, err)
	token2, err := svc.Issue(id2, "")
	require.NoError(t, err)
	assert.NotEqual(t, token1, token2)

	claims, err := svc.Verify(token1)
	require.NoError(t, err)
	assert.Equal(t, id1, claims.InterviewID)
}

func TestVerify_Rejections(t *testing.T) {
	svc := testService(24)

	t.Run("empty", func(t *testing.T) {
		_, err := svc.Verify("")
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := svc.Verify("not.a.jwt")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewService(&config.JWTConfig{
			Secret:          "a-completely-different-secret-also-32-bytes!!",
			ExpirationHours: 24,
		})
		token, err := other.Issue(uuid.New(), "")
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &Claims{
			InterviewID: uuid.New(),
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = svc.Verify(token)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expired")
	})

	t.Run("alg none", func(t *testing.T) {
		claims := &Claims{
			InterviewID: uuid.New(),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.Error(t, err)
	})
}

func TestMiddleware_ValidToken(t *testing.T) {
	svc := testService(24)
	interviewID := uuid.New()
	token, err := svc.Issue(interviewID, "+15551234567")
	require.NoError(t, err)

	var got *Claims
	handler := svc.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/interviews/"+interviewID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, interviewID, got.InterviewID)
}

func TestMiddleware_CaseInsensitiveBearer(t *testing.T) {
	svc := testService(24)
	token, err := svc.Issue(uuid.New(), "")
	require.NoError(t, err)

	handler := svc.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	for _, prefix := range []string{"Bearer", "bearer", "BEARER"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", prefix+" "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "prefix %q", prefix)
	}
}

func TestMiddleware_Rejections(t *testing.T) {
	svc := testService(24)
	handler := svc.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler should not run")
	}))

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"no bearer prefix", "Token abc"},
		{"bare token", "abc"},
		{"bearer without token", "Bearer"},
		{"garbage token", "Bearer garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := FromContext(req.Context())
	assert.False(t, ok)
}
