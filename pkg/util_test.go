package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomString(t *testing.T) {
	s1, err := GenerateRandomString(35)
	require.NoError(t, err)
	require.NotEmpty(t, s1)

	s2, err := GenerateRandomString(35)
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)
}

func TestNewItemID(t *testing.T) {
	id1, err := NewItemID()
	require.NoError(t, err)
	require.Len(t, id1, 24)

	id2, err := NewItemID()
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
}

func TestUserIDFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/journal", nil)
	_, err := UserIDFromRequest(req)
	require.ErrorIs(t, err, ErrNoUserID)

	req.Header.Set(UserIDHeader, "not-a-number")
	_, err = UserIDFromRequest(req)
	require.ErrorIs(t, err, ErrNoUserID)

	req.Header.Set(UserIDHeader, "-5")
	_, err = UserIDFromRequest(req)
	require.ErrorIs(t, err, ErrNoUserID)

	req.Header.Set(UserIDHeader, "42")
	id, err := UserIDFromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}
