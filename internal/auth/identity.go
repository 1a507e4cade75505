package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"bookclient/internal/form"
)

// IdentityClient talks to the hosted identity provider's token endpoints.
// The provider owns credentials and verification; this client only submits
// forms and carries the issued token home.
type IdentityClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewIdentityClient(baseURL string) *IdentityClient {
	return &IdentityClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

type SignInForm struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ConfirmSignUpForm struct {
	Email string `json:"email" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

// SignIn exchanges credentials for a session token.
func (c *IdentityClient) SignIn(ctx context.Context, f SignInForm) (string, error) {
	if violations := form.ValidateStruct(f); violations != nil {
		return "", errors.New(violations[0].Message)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := c.post(ctx, "/auth/login", f, &out); err != nil {
		return "", fmt.Errorf("failed to sign in: %w", err)
	}
	if out.Token == "" {
		return "", errors.New("failed to sign in: empty token")
	}
	return out.Token, nil
}

// ConfirmSignUp submits the emailed verification code for a new account.
func (c *IdentityClient) ConfirmSignUp(ctx context.Context, f ConfirmSignUpForm) error {
	if violations := form.ValidateStruct(f); violations != nil {
		return errors.New(violations[0].Message)
	}
	if err := c.post(ctx, "/auth/confirm", f, nil); err != nil {
		return fmt.Errorf("failed to confirm sign-up: %w", err)
	}
	return nil
}

func (c *IdentityClient) post(ctx context.Context, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}

	// The provider wraps its payload in the same envelope as the backend.
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return err
	}
	return json.Unmarshal(env.Data, out)
}
