package folio_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/folio/pkg/foliosdk"
	"github.com/stretchr/testify/require"
)

// TestSessionLifecycle covers register, login, verify, password change and logout.
func TestSessionLifecycle(t *testing.T) {
	baseURL, cleanup := setupFolioContainer(t)
	defer cleanup()

	client := foliosdk.NewSDKClient(baseURL)
	ctx := t.Context()

	registered := registerUser(t, client, "Alice@Example.com", "alice")
	require.Equal(t, "alice@example.com", registered.User.Email)

	t.Run("duplicate registration", func(t *testing.T) {
		_, err := client.Register(ctx, foliosdk.RegisterRequest{
			Email:       "alice@example.com",
			Password:    userPassword,
			DisplayName: "Alice Again",
			Username:    "alice_again",
		})
		assertStatus(t, err, http.StatusConflict, "email reuse")

		_, err = client.Register(ctx, foliosdk.RegisterRequest{
			Email:       "other@example.com",
			Password:    userPassword,
			DisplayName: "Other",
			Username:    "ALICE",
		})
		assertStatus(t, err, http.StatusConflict, "username reuse ignores case")
	})

	session, err := client.Login(ctx, "alice", userPassword)
	require.NoError(t, err)
	require.NotNil(t, session.User.LastLogin)

	v, err := session.Verify(ctx)
	require.NoError(t, err)
	require.True(t, v.Authenticated)
	require.Equal(t, "USER", v.User.Role)

	require.NoError(t, session.ChangePassword(ctx, userPassword, "Brand-New-Password-1"))

	_, err = client.Login(ctx, "alice", userPassword)
	assertStatus(t, err, http.StatusUnauthorized, "old password")

	_, err = client.Login(ctx, "alice@example.com", "Brand-New-Password-1")
	require.NoError(t, err)

	// Logout is stateless: the cookie is cleared, the token runs to expiry
	token := session.Token()
	require.NoError(t, session.Logout(ctx))
	v, err = client.VerifySession(ctx, token)
	require.NoError(t, err)
	require.True(t, v.Authenticated)
}

// TestLoginLockout verifies five failures inside the window lock the client IP out.
func TestLoginLockout(t *testing.T) {
	baseURL, cleanup := setupFolioContainer(t)
	defer cleanup()

	client := foliosdk.NewSDKClient(baseURL)
	ctx := t.Context()
	registerUser(t, client, "bob@example.com", "bob")

	for i := range 5 {
		_, err := client.Login(ctx, "bob", "wrong-password")
		assertStatus(t, err, http.StatusUnauthorized, "wrong password")

		apiErr := &foliosdk.APIError{}
		require.ErrorAs(t, err, &apiErr)
		require.NotNil(t, apiErr.AttemptsRemaining)
		require.Equal(t, 4-i, *apiErr.AttemptsRemaining)
	}

	// Even the right password is refused while locked out
	_, err := client.Login(ctx, "bob", userPassword)
	assertStatus(t, err, http.StatusTooManyRequests, "locked out")

	apiErr := &foliosdk.APIError{}
	require.ErrorAs(t, err, &apiErr)
	require.NotNil(t, apiErr.RetryAfter)
	require.Greater(t, *apiErr.RetryAfter, 0)
	require.LessOrEqual(t, *apiErr.RetryAfter, 900)

	// Unknown accounts are locked out the same way
	_, err = client.Login(ctx, "nobody@example.com", userPassword)
	assertStatus(t, err, http.StatusTooManyRequests, "locked out, unknown user")
}
