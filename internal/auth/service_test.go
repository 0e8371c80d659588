package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var (
	testUsername     = "testuser"
	testPassword     = "testpass"
	testPasswordHash = "$2a$14$6Gmhg85si2etd3K9oB8nYu1cxfbrdmhkg6wI6OXsa88IF4L2r/L9i" // testpass
	testAdmin        = &Admin{
		Username:     testUsername,
		PasswordHash: testPasswordHash,
	}
	testCredentials = Credentials{
		Username: testUsername,
		Password: testPassword,
	}
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

func TestAuthService_Login(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	authService := NewAuthService(testAdmin, time.Hour, db)
	require.NotNil(t, authService)

	testToken := "test_token"
	authService.RandStringFunc = func(s int) (string, error) {
		return testToken, nil
	}

	now := time.Now()
	sessionKey := sessionKeyPrefix + testToken
	mock.ExpectSet(sessionKey, now.Unix(), 0).SetVal(fmt.Sprintf("%d", now.Unix()))
	mock.ExpectSAdd(tokensSetKey, testToken).SetVal(1)

	token, err := authService.Login(context.Background(), testCredentials, now)
	require.NoError(t, err)
	require.Equal(t, testToken, token)

	token, err = authService.Login(context.Background(), Credentials{
		Username: testUsername,
		Password: "invalid_pass",
	}, now)
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.Empty(t, token)

	token, err = authService.Login(context.Background(), Credentials{
		Username: "who-dis",
		Password: testPassword,
	}, now)
	assert.ErrorIs(t, err, ErrWrongUsername)
	assert.Empty(t, token)
}

func TestAuthService_Logout(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	authService := NewAuthService(testAdmin, time.Hour, db)

	now := time.Now()
	testToken := "test_token"
	sessionKey := sessionKeyPrefix + testToken

	mock.ExpectGet(sessionKey).SetVal(fmt.Sprintf("%d", now.Unix()))
	mock.ExpectSet(sessionKey, 0, 0).SetVal("0")
	mock.ExpectSRem(tokensSetKey, testToken).SetVal(1)

	loggedOut, err := authService.Logout(context.Background(), testToken)
	require.NoError(t, err)
	assert.True(t, loggedOut)
}

func TestLoginChecker_IsLogged(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	loginChecker := NewLoginChecker(time.Hour, db)
	require.NotNil(t, loginChecker)

	ctx := context.Background()

	mock.ExpectGet(sessionKeyPrefix + "invalid token").RedisNil()
	isLogged, err := loginChecker.IsLogged(ctx, "invalid token")
	require.Error(t, err)
	assert.False(t, isLogged)

	testToken := "test-token"
	sessionKey := sessionKeyPrefix + testToken

	now := time.Now()
	mock.ExpectGet(sessionKey).SetVal(fmt.Sprintf("%d", now.Unix()))
	isLogged, err = loginChecker.IsLogged(ctx, testToken)
	require.NoError(t, err)
	assert.True(t, isLogged)

	// expired session
	then := now.Add(-2 * time.Hour)
	mock.ExpectGet(sessionKey).SetVal(fmt.Sprintf("%d", then.Unix()))
	isLogged, err = loginChecker.IsLogged(ctx, testToken)
	require.NoError(t, err)
	assert.False(t, isLogged)
}
