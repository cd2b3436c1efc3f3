package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestIssueAndVerify(t *testing.T) {
	now := time.Now()
	tok, err := Issue(testSecret, "adm-1", now)
	require.NoError(t, err)

	adminID, err := Verify(testSecret, tok, now.Add(time.Hour+59*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "adm-1", adminID)
}

func TestVerifyExpired(t *testing.T) {
	now := time.Now()
	tok, err := Issue(testSecret, "adm-1", now)
	require.NoError(t, err)

	_, err = Verify(testSecret, tok, now.Add(2*time.Hour+time.Minute))
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	tok, err := Issue(testSecret, "adm-1", time.Now())
	require.NoError(t, err)

	_, err = Verify([]byte("ffffffffffffffffffffffffffffffff"), tok, time.Now())
	assert.Error(t, err)
}

func TestVerifyGarbage(t *testing.T) {
	_, err := Verify(testSecret, "v2.local.not-a-real-token", time.Now())
	assert.Error(t, err)
}
