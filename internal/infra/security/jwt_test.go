package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	domuser "example.com/supplement-store/internal/domain/user"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", 7*24*time.Hour)
	u := &domuser.User{
		ID:      primitive.NewObjectID(),
		Email:   "test@example.com",
		IsAdmin: true,
	}

	token, err := svc.GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, u.ID.Hex(), claims.UserID)
	require.Equal(t, u.Email, claims.Email)
	require.True(t, claims.IsAdmin)
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)
	token, err := svc.GenerateToken(&domuser.User{ID: primitive.NewObjectID()})
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	require.Error(t, err)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	token, err := NewJWTService("secret-a", time.Hour).
		GenerateToken(&domuser.User{ID: primitive.NewObjectID()})
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", time.Hour).ParseToken(token)
	require.Error(t, err)
}

func TestJWTService_TokensCarryUniqueID(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	u := &domuser.User{ID: primitive.NewObjectID()}

	a, err := svc.GenerateToken(u)
	require.NoError(t, err)
	b, err := svc.GenerateToken(u)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestBcryptService_HashAndCompare(t *testing.T) {
	svc := NewBcryptService(4)

	hash, err := svc.Hash("password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", hash)

	require.NoError(t, svc.Compare(hash, "password123"))
	require.Error(t, svc.Compare(hash, "wrong-password"))
}
