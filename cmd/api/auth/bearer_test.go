package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestBearerToken(t *testing.T) {
	testCases := []struct {
		header  string
		want    string
		wantErr error
	}{
		{header: "", wantErr: ErrNoAuthorization},
		{header: "Basic dXNlcjpwYXNz", wantErr: ErrNotBearer},
		{header: "Bearer", wantErr: ErrNotBearer},
		{header: "Bearer    ", wantErr: ErrEmptyBearerToken},
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer  padded ", want: "padded"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if testCase.header != "" {
				req.Header.Set("Authorization", testCase.header)
			}

			got, err := BearerToken(req)
			if !errors.Is(err, testCase.wantErr) {
				t.Fatalf("err = %v, want %v", err, testCase.wantErr)
			}
			if got != testCase.want {
				t.Fatalf("token = %q, want %q", got, testCase.want)
			}
		})
	}
}

func TestAbortWithUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/messages", nil)

	AbortWithUnauthorized(c)

	if !c.IsAborted() {
		t.Fatal("context not aborted")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if want := `{"success":false,"message":"Unauthorized"}`; rec.Body.String() != want {
		t.Fatalf("body = %s, want %s", rec.Body.String(), want)
	}
}
