package actionid

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSONBody(t *testing.T, r *http.Request, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(r.Body).Decode(v))
}

func newTestClient(baseURL string) (*Client, *[]time.Duration) {
	client := NewClient(baseURL, "testcid", "test-api-key", 3, 300*time.Millisecond, 5*time.Second)
	var slept []time.Duration
	client.sleep = func(d time.Duration) {
		slept = append(slept, d)
	}
	return client, &slept
}

func validateReq() *ValidateRequest {
	return &ValidateRequest{Csid: "c1", Uid: "a@x.com", Action: "login", Enrollment: false}
}

func TestValidate_Success(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/validate", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("apikey"))
		decodeJSONBody(t, r, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"verifiedAction":true,"ivScore":92,"indicators":{"iv_liveness":true}}`))
	}))
	defer server.Close()

	client, slept := newTestClient(server.URL)
	verdict, err := client.Validate(context.Background(), validateReq())

	require.NoError(t, err)
	assert.True(t, verdict.VerifiedAction)
	require.NotNil(t, verdict.IvScore)
	assert.Equal(t, float64(92), *verdict.IvScore)
	assert.Equal(t, true, verdict.Indicators["iv_liveness"])
	assert.Empty(t, *slept)

	assert.Equal(t, "testcid", gotBody["cid"])
	assert.Equal(t, "c1", gotBody["csid"])
	assert.Equal(t, "a@x.com", gotBody["uid"])
	assert.Equal(t, "login", gotBody["action"])
	assert.Equal(t, false, gotBody["enrollment"])
}

func TestValidate_NegativeVerdictIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"verifiedAction":false,"indicators":{"iv_liveness":false}}`))
	}))
	defer server.Close()

	client, _ := newTestClient(server.URL)
	verdict, err := client.Validate(context.Background(), validateReq())

	require.NoError(t, err)
	assert.False(t, verdict.VerifiedAction)
}

func TestValidate_RetriesTransientThenSucceeds(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"verifiedAction":true}`))
	}))
	defer server.Close()

	client, slept := newTestClient(server.URL)
	verdict, err := client.Validate(context.Background(), validateReq())

	require.NoError(t, err)
	assert.True(t, verdict.VerifiedAction)
	assert.Equal(t, 3, attempts)
	// Backoff curve: base, then base*2.
	assert.Equal(t, []time.Duration{300 * time.Millisecond, 600 * time.Millisecond}, *slept)
}

func TestValidate_ExhaustsRetryBudget(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, slept := newTestClient(server.URL)
	verdict, err := client.Validate(context.Background(), validateReq())

	assert.Nil(t, verdict)
	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusServiceUnavailable, provErr.Status)
	assert.Equal(t, 3, attempts)
	assert.Len(t, *slept, 2)
}

func TestValidate_Retries429(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"verifiedAction":true}`))
	}))
	defer server.Close()

	client, _ := newTestClient(server.URL)
	verdict, err := client.Validate(context.Background(), validateReq())

	require.NoError(t, err)
	assert.True(t, verdict.VerifiedAction)
	assert.Equal(t, 2, attempts)
}

func TestValidate_FatalClientError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"bad api key"}`))
	}))
	defer server.Close()

	client, slept := newTestClient(server.URL)
	_, err := client.Validate(context.Background(), validateReq())

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusForbidden, provErr.Status)
	assert.Equal(t, 1, attempts, "4xx must not be retried")
	assert.Empty(t, *slept)
}

func TestValidate_NonJSONBody(t *testing.T) {
	t.Run("with 5xx is transient", func(t *testing.T) {
		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			if attempts == 1 {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte("<html>gateway error</html>"))
				return
			}
			w.Write([]byte(`{"verifiedAction":true}`))
		}))
		defer server.Close()

		client, _ := newTestClient(server.URL)
		verdict, err := client.Validate(context.Background(), validateReq())
		require.NoError(t, err)
		assert.True(t, verdict.VerifiedAction)
		assert.Equal(t, 2, attempts)
	})

	t.Run("with 200 is fatal", func(t *testing.T) {
		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.Write([]byte("not json at all"))
		}))
		defer server.Close()

		client, _ := newTestClient(server.URL)
		_, err := client.Validate(context.Background(), validateReq())
		var provErr *ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, 1, attempts)
	})
}

func TestValidate_NetworkErrorRetried(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens anymore

	client, slept := newTestClient(server.URL)
	_, err := client.Validate(context.Background(), validateReq())

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, 0, provErr.Status)
	assert.Len(t, *slept, 2)
}
