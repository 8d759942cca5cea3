package storage

import (
	"context"
	"testing"

	"github.com/GoArmGo/SalesTrack/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestUserStorage_CreateAndGet(t *testing.T) {
	s := NewUserStorage(newTestSqlx(t), testLogger())
	ctx := context.Background()

	user := &domain.User{Username: "alice", Email: "alice@example.com", Password: "hash"}
	require.NoError(t, s.CreateUser(ctx, user))
	require.NotZero(t, user.ID)

	got, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, user.ID, got.ID)
	require.Equal(t, "alice@example.com", got.Email)
	require.Equal(t, "hash", got.Password)
}

func TestUserStorage_GetUnknownReturnsNil(t *testing.T) {
	s := NewUserStorage(newTestSqlx(t), testLogger())

	got, err := s.GetUserByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestUserStorage_ListUsers(t *testing.T) {
	s := NewUserStorage(newTestSqlx(t), testLogger())
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, &domain.User{Username: "alice", Email: "a@example.com", Password: "h1"}))
	require.NoError(t, s.CreateUser(ctx, &domain.User{Username: "bob", Email: "b@example.com", Password: "h2"}))

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "alice", users[0].Username)
	require.Equal(t, "bob", users[1].Username)
}
