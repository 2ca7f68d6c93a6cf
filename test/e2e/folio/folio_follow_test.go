package folio_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/folio/pkg/foliosdk"
	"github.com/stretchr/testify/require"
)

// TestProfilesAndFollows covers profile edits and the follow graph.
func TestProfilesAndFollows(t *testing.T) {
	baseURL, cleanup := setupFolioContainer(t)
	defer cleanup()

	client := foliosdk.NewSDKClient(baseURL)
	ctx := t.Context()

	carol := registerUser(t, client, "carol@example.com", "carol")
	registerUser(t, client, "dave@example.com", "dave")

	bio := "Photographer"
	profile, err := carol.UpdateProfile(ctx, foliosdk.ProfileUpdateRequest{Bio: &bio})
	require.NoError(t, err)
	require.Equal(t, "Photographer", profile.Bio)
	require.Equal(t, "carol", profile.DisplayName)

	fetched, err := client.GetProfile(ctx, "carol")
	require.NoError(t, err)
	require.Equal(t, "Photographer", fetched.Bio)

	_, err = client.GetProfile(ctx, "nobody")
	assertStatus(t, err, http.StatusNotFound, "missing profile")

	require.NoError(t, carol.Follow(ctx, "dave@example.com"))
	assertStatus(t, carol.Follow(ctx, "dave@example.com"), http.StatusConflict, "duplicate follow")
	assertStatus(t, carol.Follow(ctx, "carol@example.com"), http.StatusBadRequest, "self follow")
	assertStatus(t, carol.Follow(ctx, "ghost@example.com"), http.StatusNotFound, "unknown target")

	following, err := carol.IsFollowing(ctx, "dave@example.com")
	require.NoError(t, err)
	require.True(t, following)

	followers, err := client.Followers(ctx, "dave@example.com")
	require.NoError(t, err)
	require.Len(t, followers, 1)
	require.Equal(t, "carol@example.com", followers[0].Email)

	dave, err := client.GetProfile(ctx, "dave")
	require.NoError(t, err)
	require.Equal(t, 1, dave.Followers)

	require.NoError(t, carol.Unfollow(ctx, "dave@example.com"))
	assertStatus(t, carol.Unfollow(ctx, "dave@example.com"), http.StatusNotFound, "not following")

	dave, err = client.GetProfile(ctx, "dave")
	require.NoError(t, err)
	require.Zero(t, dave.Followers)
}
