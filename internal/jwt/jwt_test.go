package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndGetClaims(t *testing.T) {
	ctx := context.Background()
	j := New("secret", time.Minute)
	userID := uuid.New()

	token, err := j.Generate(ctx, userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)

	assert.NoError(t, j.Validate(ctx, token))
}

func TestGetClaimsErrors(t *testing.T) {
	ctx := context.Background()
	j := New("secret", time.Minute)

	// Tampered / garbage token
	_, err := j.GetClaims(ctx, "not-a-token")
	assert.Error(t, err)

	// Token signed with a different secret
	other := New("other-secret", time.Minute)
	token, err := other.Generate(ctx, uuid.New())
	assert.NoError(t, err)
	_, err = j.GetClaims(ctx, token)
	assert.Error(t, err)

	// Expired token
	expired := New("secret", -time.Minute)
	token, err = expired.Generate(ctx, uuid.New())
	assert.NoError(t, err)
	_, err = j.GetClaims(ctx, token)
	assert.Error(t, err)
}

func TestGetTokenFromRequest(t *testing.T) {
	ctx := context.Background()
	j := New("secret", time.Minute)

	r, _ := http.NewRequest(http.MethodGet, "/", nil)
	_, err := j.GetTokenFromRequest(ctx, r)
	assert.Error(t, err)

	r.Header.Set("Authorization", "Basic abc")
	_, err = j.GetTokenFromRequest(ctx, r)
	assert.Error(t, err)

	r.Header.Set("Authorization", "Bearer my-token")
	token, err := j.GetTokenFromRequest(ctx, r)
	assert.NoError(t, err)
	assert.Equal(t, "my-token", token)
}
