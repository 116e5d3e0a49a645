package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignToken("64f1b2c3d4e5f60718293a4b")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1b2c3d4e5f60718293a4b", claims.UserID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := SignToken("64f1b2c3d4e5f60718293a4b")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestGravatarURL(t *testing.T) {
	url := GravatarURL("John@Example.com ")

	assert.Contains(t, url, "https://www.gravatar.com/avatar/")
	assert.Contains(t, url, "s=200")
	// case and surrounding space must not change the hash
	assert.Equal(t, GravatarURL("john@example.com"), url)
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty stays empty", "", ""},
		{"bare host gets https", "example.com", "https://example.com"},
		{"http upgraded", "http://example.com/a", "https://example.com/a"},
		{"https unchanged", "https://example.com", "https://example.com"},
		{"whitespace trimmed", "  example.com  ", "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeURL(tt.in))
		})
	}
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{" HTML", " CSS", " JavaScript"}, SplitSkills("HTML, CSS,JavaScript"))
	assert.Equal(t, []string{" Go"}, SplitSkills("  Go  "))
}
