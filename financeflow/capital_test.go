package financeflow

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapitalInvitationFlow(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == epCapitalInvitations:
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "g1", body["groupId"])
			assert.Equal(t, "friend@example.com", body["email"])
			_ = json.NewEncoder(w).Encode(map[string]any{
				"invitation": map[string]any{"id": "inv1", "groupId": "g1", "email": "friend@example.com"},
			})
		case r.Method == http.MethodPost && r.URL.Path == epCapitalInvitation("inv1", "accept"):
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodPost && r.URL.Path == epCapitalInvitation("inv2", "decline"):
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}, WithToken("tok"))

	ctx := context.Background()

	inv, err := client.InviteToCapitalGroup(ctx, "g1", "friend@example.com")
	require.NoError(t, err)
	assert.Equal(t, "inv1", inv.ID)

	require.NoError(t, client.AcceptCapitalInvitation(ctx, "inv1"))
	require.NoError(t, client.DeclineCapitalInvitation(ctx, "inv2"))
}

func TestGetReportPaths(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]any{
			"report": map[string]any{"year": 2026, "month": 3},
		})
	}, WithToken("tok"))

	ctx := context.Background()

	_, err := client.GetYearReport(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, "/reports/2026", gotPath)

	report, err := client.GetMonthReport(ctx, 2026, 3)
	require.NoError(t, err)
	assert.Equal(t, "/reports/2026/3", gotPath)
	assert.Equal(t, 2026, report.Year)

	_, err = client.GetMonthReport(ctx, 2026, 13)
	require.Error(t, err)
}

func TestCreateCheckoutSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, epCheckoutSession, r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"session": map[string]any{"id": "cs_1", "url": "https://pay.example.com/cs_1"},
		})
	}, WithToken("tok"))

	session, err := client.CreateCheckoutSession(context.Background(), "premium-monthly")
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/cs_1", session.URL)
}
