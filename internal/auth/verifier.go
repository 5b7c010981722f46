// Package auth wraps the Firebase identity provider. Token validation is
// delegated entirely to Firebase; this package only extracts the claims the
// server cares about.
package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Subject is the verified identity behind a bearer token.
type Subject struct {
	UID    string
	Email  string
	Claims map[string]interface{}
}

// TokenVerifier turns a raw ID token into a verified Subject. Every provider
// failure (expired, malformed, bad signature, revoked) surfaces as a single
// opaque error; callers must not try to tell them apart.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*Subject, error)
}

// FirebaseVerifier is the production TokenVerifier, backed by the Firebase
// Admin SDK and a service-account credential file.
type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier initializes the Firebase app from the given
// service-account file and keeps its auth client for the process lifetime.
func NewFirebaseVerifier(ctx context.Context, credentialsFile string) (*FirebaseVerifier, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth client: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*Subject, error) {
	tok, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("verify id token: %w", err)
	}
	email, _ := tok.Claims["email"].(string)
	return &Subject{UID: tok.UID, Email: email, Claims: tok.Claims}, nil
}
