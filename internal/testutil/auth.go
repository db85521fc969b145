package testutil

import (
	"crypto/rsa"
	"testing"

	"github.com/clinician-ai/portal-service/internal/auth"
)

// CreateTestVerifier creates a verifier that accepts locally signed tokens.
// It returns the verifier and the private key to sign test tokens.
func CreateTestVerifier(t *testing.T) (*auth.Verifier, *rsa.PrivateKey) {
	t.Helper()

	privateKey, publicKey := GenerateTestKeyPair(t)

	testJWKS := auth.NewTestJWKS(publicKey)

	cfg := auth.Config{
		Issuer: "https://test-auth.clinician-ai.app/realms/test",
	}

	return auth.NewVerifier(cfg, testJWKS), privateKey
}
