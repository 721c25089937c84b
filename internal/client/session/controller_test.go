package session

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"healthchat/internal/client/credentials"
	"healthchat/internal/client/models"
	"healthchat/internal/logging"
)

// fakeAuthAPI lets each test script the server side of an operation and
// observe which calls were made.
type fakeAuthAPI struct {
	creds *credentials.Store

	loginResp    *models.AuthResponse
	loginErr     error
	registerResp *models.AuthResponse
	registerErr  error
	profileResp  *models.User
	profileErr   error
	logoutErr    error

	profileCalls int
	logoutCalls  int

	onLogin func()
}

func (f *fakeAuthAPI) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if f.onLogin != nil {
		f.onLogin()
	}
	return f.loginResp, f.loginErr
}

func (f *fakeAuthAPI) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	return f.registerResp, f.registerErr
}

func (f *fakeAuthAPI) Profile(ctx context.Context) (*models.User, error) {
	f.profileCalls++
	return f.profileResp, f.profileErr
}

func (f *fakeAuthAPI) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	return f.profileResp, f.profileErr
}

func (f *fakeAuthAPI) Logout(ctx context.Context) error {
	f.logoutCalls++
	f.creds.RemoveToken(ctx)
	f.creds.RemoveUser(ctx)
	return f.logoutErr
}

func (f *fakeAuthAPI) IsAuthenticated(ctx context.Context) bool { return false }

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func newFixture(t *testing.T) (*Controller, *fakeAuthAPI, *credentials.Store) {
	t.Helper()
	store := credentials.NewStore(credentials.NewSQLiteBackend(setupDB(t)), logging.NewNopLogger())
	authAPI := &fakeAuthAPI{creds: store}
	return NewController(authAPI, store, logging.NewNopLogger()), authAPI, store
}

func testUser() *models.User {
	return &models.User{
		ID:        1,
		Email:     "jane@example.com",
		Username:  "jane",
		IsActive:  true,
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func authResponse() *models.AuthResponse {
	return &models.AuthResponse{AccessToken: "tok-1", TokenType: "bearer", User: *testUser()}
}

func TestController_InitialState(t *testing.T) {
	c, _, _ := newFixture(t)

	st := c.State()
	assert.Nil(t, st.User)
	assert.False(t, st.Authenticated)
	assert.True(t, st.Loading)
}

func TestRestore_NoToken(t *testing.T) {
	c, authAPI, _ := newFixture(t)
	c.Restore(context.Background())

	st := c.State()
	assert.Nil(t, st.User)
	assert.False(t, st.Authenticated)
	assert.False(t, st.Loading)
	assert.Equal(t, 0, authAPI.profileCalls)
}

func TestRestore_TokenAndCachedUser(t *testing.T) {
	c, authAPI, store := newFixture(t)
	ctx := context.Background()

	store.SetToken(ctx, "tok-1")
	store.SetUser(ctx, testUser())

	c.Restore(ctx)

	st := c.State()
	assert.True(t, st.Authenticated)
	assert.Equal(t, testUser(), st.User)
	assert.False(t, st.Loading)
	// cached user short-circuits the profile fetch
	assert.Equal(t, 0, authAPI.profileCalls)
}

func TestRestore_TokenWithoutCacheFetchesProfile(t *testing.T) {
	c, authAPI, store := newFixture(t)
	ctx := context.Background()

	store.SetToken(ctx, "tok-1")
	authAPI.profileResp = testUser()

	c.Restore(ctx)

	st := c.State()
	assert.True(t, st.Authenticated)
	assert.Equal(t, testUser(), st.User)
	assert.Equal(t, 1, authAPI.profileCalls)
	// fetched user is written back to the cache
	assert.Equal(t, testUser(), store.GetUser(ctx))
}

func TestRestore_RejectedTokenClearsCredentials(t *testing.T) {
	c, authAPI, store := newFixture(t)
	ctx := context.Background()

	store.SetToken(ctx, "tok-stale")
	authAPI.profileErr = errors.New("Failed to get profile")

	c.Restore(ctx)

	st := c.State()
	assert.False(t, st.Authenticated)
	assert.Nil(t, st.User)
	assert.Equal(t, 1, authAPI.logoutCalls)
	assert.Equal(t, "", store.GetToken(ctx))
}

func TestRestore_RunsOnce(t *testing.T) {
	c, authAPI, store := newFixture(t)
	ctx := context.Background()

	c.Restore(ctx)
	require.False(t, c.State().Authenticated)

	// a token appearing later must not change the outcome of a second call
	store.SetToken(ctx, "tok-1")
	store.SetUser(ctx, testUser())
	c.Restore(ctx)

	assert.False(t, c.State().Authenticated)
	assert.Equal(t, 0, authAPI.profileCalls)
}

func TestLogin_Success(t *testing.T) {
	c, authAPI, store := newFixture(t)
	ctx := context.Background()
	authAPI.loginResp = authResponse()

	require.NoError(t, c.Login(ctx, models.LoginRequest{Email: "jane@example.com", Password: "pw"}))

	st := c.State()
	assert.True(t, st.Authenticated)
	assert.Equal(t, testUser(), st.User)
	assert.False(t, st.Loading)
	assert.Equal(t, "tok-1", store.GetToken(ctx))
	assert.Equal(t, testUser(), store.GetUser(ctx))
}

func TestLogin_FailureLeavesStateUntouched(t *testing.T) {
	c, authAPI, store := newFixture(t)
	ctx := context.Background()
	authAPI.loginErr = errors.New("Invalid credentials")

	err := c.Login(ctx, models.LoginRequest{})
	require.EqualError(t, err, "Invalid credentials")

	st := c.State()
	assert.False(t, st.Authenticated)
	assert.Nil(t, st.User)
	assert.False(t, st.Loading)
	assert.Equal(t, "", store.GetToken(ctx))
}

func TestLogin_LoadingDuringOperation(t *testing.T) {
	c, authAPI, _ := newFixture(t)
	authAPI.loginResp = authResponse()

	var midOp State
	authAPI.onLogin = func() { midOp = c.State() }

	require.NoError(t, c.Login(context.Background(), models.LoginRequest{}))
	assert.True(t, midOp.Loading)
	assert.False(t, c.State().Loading)
}

func TestRegister_Success(t *testing.T) {
	c, authAPI, store := newFixture(t)
	ctx := context.Background()
	authAPI.registerResp = authResponse()

	require.NoError(t, c.Register(ctx, models.RegisterRequest{Email: "jane@example.com"}))

	st := c.State()
	assert.True(t, st.Authenticated)
	assert.Equal(t, "tok-1", store.GetToken(ctx))
}

func TestRegister_Failure(t *testing.T) {
	c, authAPI, _ := newFixture(t)
	authAPI.registerErr = errors.New("Registration failed")

	err := c.Register(context.Background(), models.RegisterRequest{})
	require.EqualError(t, err, "Registration failed")
	assert.False(t, c.State().Authenticated)
}

func TestLogout_ClearsSessionAndCredentials(t *testing.T) {
	c, authAPI, store := newFixture(t)
	ctx := context.Background()
	authAPI.loginResp = authResponse()
	require.NoError(t, c.Login(ctx, models.LoginRequest{}))

	require.NoError(t, c.Logout(ctx))

	st := c.State()
	assert.False(t, st.Authenticated)
	assert.Nil(t, st.User)
	assert.Equal(t, "", store.GetToken(ctx))
	assert.Nil(t, store.GetUser(ctx))
}

func TestLogout_EndsUnauthenticatedEvenOnError(t *testing.T) {
	c, authAPI, _ := newFixture(t)
	ctx := context.Background()
	authAPI.loginResp = authResponse()
	require.NoError(t, c.Login(ctx, models.LoginRequest{}))

	authAPI.logoutErr = errors.New("storage fault")
	err := c.Logout(ctx)
	require.EqualError(t, err, "storage fault")
	assert.False(t, c.State().Authenticated)
}

func TestUpdateProfile_Success(t *testing.T) {
	c, authAPI, store := newFixture(t)
	ctx := context.Background()
	authAPI.loginResp = authResponse()
	require.NoError(t, c.Login(ctx, models.LoginRequest{}))

	updated := testUser()
	updated.FullName = "Jane Doe"
	updated.Age = 31
	authAPI.profileResp = updated

	fullName := "Jane Doe"
	age := 31
	require.NoError(t, c.UpdateProfile(ctx, models.ProfileUpdate{FullName: &fullName, Age: &age}))

	st := c.State()
	assert.True(t, st.Authenticated)
	assert.Equal(t, updated, st.User)
	assert.Equal(t, updated, store.GetUser(ctx))
}

func TestUpdateProfile_FailureKeepsCurrentUser(t *testing.T) {
	c, authAPI, store := newFixture(t)
	ctx := context.Background()
	authAPI.loginResp = authResponse()
	require.NoError(t, c.Login(ctx, models.LoginRequest{}))

	authAPI.profileErr = errors.New("Failed to update profile")
	err := c.UpdateProfile(ctx, models.ProfileUpdate{})
	require.EqualError(t, err, "Failed to update profile")

	st := c.State()
	assert.True(t, st.Authenticated)
	assert.Equal(t, testUser(), st.User)
	assert.Equal(t, testUser(), store.GetUser(ctx))
}
