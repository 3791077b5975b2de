package http_test

import (
	"bytes"
	"context"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	assayhttp "github.com/introprep/assay/internal/assay/http"
	"github.com/introprep/assay/internal/assay/service"
	"github.com/introprep/assay/internal/assay/store/drivers/sqlite"
	"github.com/introprep/assay/pkg/assaysdk"
	"github.com/introprep/assay/pkg/cryptox"
	"github.com/introprep/assay/pkg/jwtx"
	"github.com/introprep/assay/pkg/slogx"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cryptox.SetPepperPath(t.TempDir() + "/pepper")

	st, err := sqlite.NewStore("file:" + t.TempDir() + "/assay_test.db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "assay-test"})
	require.NoError(t, err)

	router := assayhttp.NewRouter(km.KeySet, km.Verifier, "assay-test", "test", st, slogx.New(slogx.Config{Service: "assay", Env: "test", Level: "error"}))
	router.AuthService = &service.AuthService{
		Store:     st,
		Signer:    km.Signer,
		Issuer:    "assay-test",
		AccessTTL: time.Hour,
	}
	router.RecordService = &service.RecordService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func signUpAndLogin(t *testing.T, c *assaysdk.Client, userID string) string {
	t.Helper()
	ctx := context.Background()

	_, err := c.SignUp(ctx, assaysdk.SignUpRequest{
		UserID:      userID,
		Password:    "correct horse battery",
		DisplayName: "Test User",
	})
	require.NoError(t, err)

	login, err := c.Login(ctx, userID, "correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)
	return login.Token
}

func TestSignUpLoginAndDuplicate(t *testing.T) {
	srv := newTestServer(t)
	c := assaysdk.NewClient(srv.URL)
	ctx := context.Background()

	resp, err := c.SignUp(ctx, assaysdk.SignUpRequest{
		UserID:      "alice@example.com",
		Password:    "correct horse battery",
		DisplayName: "Alice",
	})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", resp.UserID)
	require.Equal(t, "Alice", resp.DisplayName)

	// A second signup with the same ID must not overwrite the credential.
	_, err = c.SignUp(ctx, assaysdk.SignUpRequest{
		UserID:      "alice@example.com",
		Password:    "a different password",
		DisplayName: "Mallory",
	})
	var apiErr *assaysdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, stdhttp.StatusConflict, apiErr.StatusCode)
	require.Equal(t, assaysdk.ErrorCodeDuplicateID, apiErr.Code)

	// The original password still works.
	login, err := c.Login(ctx, "alice@example.com", "correct horse battery")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", login.UserID)
	require.Equal(t, "Alice", login.DisplayName)
	require.NotEmpty(t, login.Token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	srv := newTestServer(t)
	c := assaysdk.NewClient(srv.URL)
	ctx := context.Background()

	_, err := c.SignUp(ctx, assaysdk.SignUpRequest{
		UserID:      "bob@example.com",
		Password:    "correct horse battery",
		DisplayName: "Bob",
	})
	require.NoError(t, err)

	wrongPassword := rawLogin(t, srv.URL, `{"user_id":"bob@example.com","password":"nope"}`)
	unknownUser := rawLogin(t, srv.URL, `{"user_id":"nobody@example.com","password":"nope"}`)

	require.Equal(t, stdhttp.StatusUnauthorized, wrongPassword.status)
	require.Equal(t, stdhttp.StatusUnauthorized, unknownUser.status)
	require.Equal(t, wrongPassword.body, unknownUser.body,
		"wrong password and unknown user must produce identical responses")
}

type rawResponse struct {
	status int
	body   string
}

func rawLogin(t *testing.T, baseURL, payload string) rawResponse {
	t.Helper()

	resp, err := stdhttp.Post(baseURL+"/v1/login", "application/json", bytes.NewBufferString(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return rawResponse{status: resp.StatusCode, body: string(body)}
}

func TestSaveListAndDetail(t *testing.T) {
	srv := newTestServer(t)
	c := assaysdk.NewClient(srv.URL)
	ctx := context.Background()
	token := signUpAndLogin(t, c, "carol@example.com")

	saved, err := c.SaveAssay(ctx, token, assaysdk.SaveAssayRequest{
		Title: "Backend screening",
		Score: 82.5,
		Job:   "backend",
		State: "done",
		QAPairs: []assaysdk.QuestionAnswer{
			{Question: "Tell me about yourself", Answer: "I build services."},
			{Question: "Biggest weakness?", Answer: "Scope creep."},
		},
		EvaluationDetails: []map[string]any{
			{"criterion": "clarity", "score": float64(9)},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, saved.RecordID)
	require.Equal(t, "carol@example.com", saved.UserID)
	require.Equal(t, "Excellent (80+)", saved.Grade)

	list, err := c.ListAssays(ctx, token)
	require.NoError(t, err)
	require.Len(t, list.Records, 1)
	require.Equal(t, saved.RecordID, list.Records[0].RecordID)

	detail, err := c.AssayDetail(ctx, token, saved.RecordID)
	require.NoError(t, err)
	require.Equal(t, saved.Title, detail.Title)
	require.Equal(t, saved.QAPairs, detail.QAPairs)
	require.Equal(t, saved.EvaluationDetails, detail.EvaluationDetails)
	require.Equal(t, saved.CreatedAt, detail.CreatedAt)
}

func TestDetailIsOwnerScoped(t *testing.T) {
	srv := newTestServer(t)
	c := assaysdk.NewClient(srv.URL)
	ctx := context.Background()

	ownerToken := signUpAndLogin(t, c, "dave@example.com")
	otherToken := signUpAndLogin(t, c, "erin@example.com")

	saved, err := c.SaveAssay(ctx, ownerToken, assaysdk.SaveAssayRequest{
		Title: "Private record",
		Score: 55,
		Job:   "data",
		State: "done",
		QAPairs: []assaysdk.QuestionAnswer{
			{Question: "Q", Answer: "A"},
		},
	})
	require.NoError(t, err)

	// Another user sees the same 404 as for a record that does not exist.
	_, err = c.AssayDetail(ctx, otherToken, saved.RecordID)
	var foreignErr *assaysdk.APIError
	require.ErrorAs(t, err, &foreignErr)
	require.Equal(t, stdhttp.StatusNotFound, foreignErr.StatusCode)

	_, err = c.AssayDetail(ctx, ownerToken, saved.RecordID+1000)
	var missingErr *assaysdk.APIError
	require.ErrorAs(t, err, &missingErr)
	require.Equal(t, stdhttp.StatusNotFound, missingErr.StatusCode)
	require.Equal(t, foreignErr.Code, missingErr.Code)
}

func TestRecordEndpointsRequireAuth(t *testing.T) {
	srv := newTestServer(t)
	c := assaysdk.NewClient(srv.URL)
	ctx := context.Background()

	_, err := c.ListAssays(ctx, "")
	var apiErr *assaysdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, stdhttp.StatusUnauthorized, apiErr.StatusCode)

	_, err = c.ListAssays(ctx, "not-a-token")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, stdhttp.StatusUnauthorized, apiErr.StatusCode)
}

func TestHealthAndJWKS(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/livez", "/readyz", "/.well-known/jwks.json"} {
		resp, err := stdhttp.Get(srv.URL + path)
		require.NoError(t, err)
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode, path)
		resp.Body.Close()
	}
}
