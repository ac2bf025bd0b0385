package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokens(now time.Time) *Tokens {
	return &Tokens{
		Secret:    []byte("test-secret"),
		AccessTTL: 15 * time.Minute,
		Now:       func() time.Time { return now },
	}
}

func TestIssueParseRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	tk := testTokens(now)
	u := User{ID: "user-1", Email: "budi@example.com", Role: "staff"}

	raw, err := tk.IssueAccess(u)
	require.NoError(t, err)

	claims, err := tk.ParseAccess(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "budi@example.com", claims.Email)
	assert.Equal(t, "staff", claims.Role)
}

func TestParseExpired(t *testing.T) {
	issued := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	tk := testTokens(issued)
	raw, err := tk.IssueAccess(User{ID: "user-1"})
	require.NoError(t, err)

	// 16 menit kemudian, TTL 15 menit
	tk.Now = func() time.Time { return issued.Add(16 * time.Minute) }
	_, err = tk.ParseAccess(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseWrongSecret(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	raw, err := testTokens(now).IssueAccess(User{ID: "user-1"})
	require.NoError(t, err)

	other := testTokens(now)
	other.Secret = []byte("secret-lain")
	_, err = other.ParseAccess(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	tk := testTokens(time.Now())
	_, err := tk.ParseAccess("bukan.jwt.valid")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashCheck(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hash)
	assert.True(t, CheckPassword(hash, "rahasia123"))
	assert.False(t, CheckPassword(hash, "salah"))
}

func TestRegisterInputValidate(t *testing.T) {
	valid := func() RegisterInput {
		return RegisterInput{Username: "budi_99", Email: "budi@example.com", Password: "rahasia"}
	}

	in := valid()
	in.Normalize()
	require.NoError(t, in.Validate())

	in = valid()
	in.Username = "ab"
	assert.ErrorIs(t, in.Validate(), ErrInvalidUser)

	in = valid()
	in.Username = "budi santoso"
	assert.ErrorIs(t, in.Validate(), ErrInvalidUser)

	in = valid()
	in.Email = "bukan-email"
	assert.ErrorIs(t, in.Validate(), ErrInvalidUser)

	in = valid()
	in.Password = "12345"
	assert.ErrorIs(t, in.Validate(), ErrInvalidUser)
}

func TestRegisterInputNormalize(t *testing.T) {
	in := RegisterInput{Username: " budi ", Email: " Budi@Example.COM "}
	in.Normalize()
	assert.Equal(t, "budi", in.Username)
	assert.Equal(t, "budi@example.com", in.Email)
}
