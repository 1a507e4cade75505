package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityClient_SignIn(t *testing.T) {
	t.Run("returns the issued token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/login", r.URL.Path)

			var f SignInForm
			require.NoError(t, json.NewDecoder(r.Body).Decode(&f))
			assert.Equal(t, "a@example.com", f.Email)

			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    map[string]string{"token": "tok-123"},
			})
		}))
		defer srv.Close()

		token, err := NewIdentityClient(srv.URL).SignIn(context.Background(), SignInForm{
			Email:    "a@example.com",
			Password: "hunter2",
		})
		require.NoError(t, err)
		assert.Equal(t, "tok-123", token)
	})

	t.Run("missing fields never reach the wire", func(t *testing.T) {
		requests := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
		}))
		defer srv.Close()

		_, err := NewIdentityClient(srv.URL).SignIn(context.Background(), SignInForm{Email: "a@example.com"})
		require.Error(t, err)
		assert.Equal(t, 0, requests)
	})

	t.Run("provider rejection surfaces as an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		_, err := NewIdentityClient(srv.URL).SignIn(context.Background(), SignInForm{
			Email:    "a@example.com",
			Password: "wrong",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to sign in")
	})
}

func TestIdentityClient_ConfirmSignUp(t *testing.T) {
	t.Run("submits the verification code", func(t *testing.T) {
		var got ConfirmSignUpForm
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/confirm", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		err := NewIdentityClient(srv.URL).ConfirmSignUp(context.Background(), ConfirmSignUpForm{
			Email: "a@example.com",
			Code:  "123456",
		})
		require.NoError(t, err)
		assert.Equal(t, "123456", got.Code)
	})

	t.Run("requires a code", func(t *testing.T) {
		err := NewIdentityClient("http://unused").ConfirmSignUp(context.Background(), ConfirmSignUpForm{
			Email: "a@example.com",
		})
		require.Error(t, err)
	})
}
