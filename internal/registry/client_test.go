package registry

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLedger struct {
	mu         sync.Mutex
	credits    []string
	activities []string
}

func (f *fakeLedger) ConsumeCredit(_ context.Context, subject, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.credits = append(f.credits, subject)
	return nil
}

func (f *fakeLedger) AddActivity(_ context.Context, _ uuid.UUID, kind, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activities = append(f.activities, kind)
	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc, ledger Ledger) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(Config{
		BaseURL:       srv.URL,
		APIKey:        "test-key-0042",
		ClientID:      "back-investigacion-vehiculos/test",
		Timeout:       5 * time.Second,
		RatePerMinute: 100,
	}, ledger, nil)
	require.NoError(t, err)
	return c
}

func vehicleJSON(plate string) string {
	return fmt.Sprintf(`{"status":"success","data":{"plate":%q,"make":"TOYOTA","model":"YARIS","year":2020,"owner_rut":"12345678-5","owner_name":"JUAN PEREZ SOTO"}}`, plate)
}

func TestLookupPlateSuccess(t *testing.T) {
	var gotPath, gotKey, gotUA string
	ledger := &fakeLedger{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-Key")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, vehicleJSON("ABCD12"))
	}, ledger)

	rec, err := c.LookupPlate(context.Background(), "ABCD12", nil)
	require.NoError(t, err)
	assert.Equal(t, "/vehiculos/ABCD12", gotPath)
	assert.Equal(t, "test-key-0042", gotKey)
	assert.Equal(t, "back-investigacion-vehiculos/test", gotUA)
	assert.Equal(t, "ABCD12", rec.Plate)
	require.NotNil(t, rec.Make)
	assert.Equal(t, "TOYOTA", *rec.Make)
	require.NotNil(t, rec.Year)
	assert.Equal(t, 2020, *rec.Year)
	assert.Equal(t, []string{"ABCD12"}, ledger.credits)
}

func TestLookupRUTPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, vehicleJSON("ABCD12"))
	}, &fakeLedger{})

	_, err := c.LookupRUT(context.Background(), "12345678-5", nil)
	require.NoError(t, err)
	assert.Equal(t, "/personas/12345678-5", gotPath)
}

func TestLookupStatusMapping(t *testing.T) {
	cases := []struct {
		name        string
		status      int
		contentType string
		body        string
		want        error
	}{
		{"not found", http.StatusNotFound, "application/json", `{"status":"error"}`, ErrNotFound},
		{"throttled", http.StatusTooManyRequests, "application/json", `{"status":"error"}`, ErrRateLimited},
		{"unauthorized", http.StatusUnauthorized, "application/json", `{"status":"error"}`, ErrAuthFailed},
		{"forbidden", http.StatusForbidden, "application/json", `{"status":"error"}`, ErrAuthFailed},
		{"bad gateway", http.StatusBadGateway, "application/json", `{"status":"error"}`, ErrUpstream},
		// an HTML body wins over the status: this is the edge blocking us,
		// not a real miss
		{"html block page", http.StatusNotFound, "text/html; charset=utf-8", "<html>Access denied</html>", ErrUpstream},
		{"html throttle page", http.StatusTooManyRequests, "text/html", "<html>Too many requests</html>", ErrUpstream},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", tc.contentType)
				w.WriteHeader(tc.status)
				fmt.Fprint(w, tc.body)
			}, &fakeLedger{})
			_, err := c.LookupPlate(context.Background(), "ABCD12", nil)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLookupRejectsNonJSONBody(t *testing.T) {
	// an HTML block page from the edge must surface as upstream failure
	// even with a 200 status
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, "<html><body>Access denied</body></html>")
	}, &fakeLedger{})

	_, err := c.LookupPlate(context.Background(), "ABCD12", nil)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestLookupRejectsInvalidPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// plate missing: schema violation
		fmt.Fprint(w, `{"status":"success","data":{"make":"TOYOTA"}}`)
	}, &fakeLedger{})

	_, err := c.LookupPlate(context.Background(), "ABCD12", nil)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestLookupBillsEvenOnMiss(t *testing.T) {
	ledger := &fakeLedger{}
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"status":"error"}`)
	}, ledger)

	_, err := c.LookupPlate(context.Background(), "ZZZZ99", nil)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []string{"ZZZZ99"}, ledger.credits)
}

func TestLookupRecordsCaseActivity(t *testing.T) {
	ledger := &fakeLedger{}
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, vehicleJSON("ABCD12"))
	}, ledger)

	caseID := uuid.New()
	_, err := c.LookupPlate(context.Background(), "ABCD12", &caseID)
	require.NoError(t, err)
	assert.Equal(t, []string{"REGISTRY_LOOKUP"}, ledger.activities)
}

func TestLocalRateCeiling(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, vehicleJSON("ABCD12"))
	}))
	t.Cleanup(srv.Close)

	c, err := New(Config{
		BaseURL:       srv.URL,
		APIKey:        "test-key-0042",
		ClientID:      "back-investigacion-vehiculos/test",
		RatePerMinute: 1,
	}, nil, nil)
	require.NoError(t, err)

	_, err = c.LookupPlate(context.Background(), "ABCD12", nil)
	require.NoError(t, err)
	_, err = c.LookupPlate(context.Background(), "ABCD12", nil)
	assert.ErrorIs(t, err, ErrRateLimited)
	// the second call never left the process
	assert.Equal(t, 1, hits)
}

func TestMinuteLimiterWindowReset(t *testing.T) {
	l := newMinuteLimiter(2)
	base := time.Now()
	assert.True(t, l.Allow(base))
	assert.True(t, l.Allow(base.Add(time.Second)))
	assert.False(t, l.Allow(base.Add(2*time.Second)))
	// new window
	assert.True(t, l.Allow(base.Add(61*time.Second)))
}
