package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBodyLimit(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "under limit", body: "1234"},
		{name: "at limit", body: "12345678"},
		{name: "over limit", body: "123456789", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var readErr error
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, readErr = io.ReadAll(r.Body)
			})

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			BodyLimit(8)(handler).ServeHTTP(httptest.NewRecorder(), req)

			if !tt.wantErr {
				if readErr != nil {
					t.Fatalf("unexpected error: %v", readErr)
				}
				return
			}
			var mbe *http.MaxBytesError
			if !errors.As(readErr, &mbe) {
				t.Fatalf("expected *http.MaxBytesError, got %v", readErr)
			}
			if mbe.Limit != 8 {
				t.Errorf("expected limit 8, got %d", mbe.Limit)
			}
		})
	}
}
