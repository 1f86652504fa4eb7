package signature

import (
	"crypto/ed25519"
	"encoding/base64"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/custodia-tech/wallet-service/internal/logger"
)

// Verifier checks ed25519 ownership proofs for external wallet links.
// The public key is base58-encoded (32 bytes), the signature base64-encoded
// (64 bytes), and the message is verified over its exact UTF-8 bytes.
type Verifier struct {
	bypass bool
}

// NewVerifier creates a Verifier. bypass skips all verification and is meant
// for non-production environments only; enabling it is logged loudly.
func NewVerifier(bypass bool) *Verifier {
	if bypass {
		logger.Log.Warnw("SIGNATURE VERIFICATION DISABLED: all external wallet links will be accepted without proof of ownership")
	}
	return &Verifier{bypass: bypass}
}

// Verify reports whether signature is a valid ed25519 signature of message
// under publicKey. Any decode error or length mismatch yields false; it
// never panics on untrusted input.
func (v *Verifier) Verify(publicKey, signature, message string) bool {
	if v.bypass {
		logger.Log.Warnw("signature verification bypassed", "public_key", publicKey)
		return true
	}

	if strings.TrimSpace(publicKey) == "" ||
		strings.TrimSpace(signature) == "" ||
		strings.TrimSpace(message) == "" {
		return false
	}

	pubKeyBytes, err := base58.Decode(publicKey)
	if err != nil || len(pubKeyBytes) != ed25519.PublicKeySize {
		return false
	}

	sigBytes, err := base64.StdEncoding.DecodeString(signature)
	if err != nil || len(sigBytes) != ed25519.SignatureSize {
		return false
	}

	return ed25519.Verify(ed25519.PublicKey(pubKeyBytes), []byte(message), sigBytes)
}
