package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	session := NewSession(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, session.Init())

	c, err := New(server.URL, session)
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func TestServerErrorBodyIsSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
	}))
	defer server.Close()

	c := newTestClient(t, server)
	_, err := c.LoginVerticalLead(context.Background(), "lead1", "wrong")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestUndecodableErrorBodyFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>oops</html>"))
	}))
	defer server.Close()

	c := newTestClient(t, server)
	_, err := c.Members(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Request failed with status 500", apiErr.Message)
}

func TestUnreachableServerIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := newTestClient(t, server)
	_, err := c.Members(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Network error occurred", apiErr.Message)
	assert.Zero(t, apiErr.StatusCode)
}

func TestLoginPersistsProfileAndCookie(t *testing.T) {
	var sawCookie bool
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/verticalleads/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "jwt", Value: "token123", Path: "/", HttpOnly: true})
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Login successful",
			"user": Profile{
				UserID:   "u1",
				Role:     "vertical_lead",
				Name:     "Lead One",
				RollNo:   "lead1",
				Vertical: "Tech",
			},
		})
	})
	mux.HandleFunc("GET /verticalleads/members/", func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("jwt"); err == nil && cookie.Value == "token123" {
			sawCookie = true
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"message": "ok", "count": 0, "members": []struct{}{}})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(t, server)
	profile, err := c.LoginVerticalLead(context.Background(), "lead1", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Tech", profile.Vertical)
	assert.True(t, c.Session().LoggedIn())

	_, err = c.Members(context.Background())
	require.NoError(t, err)
	assert.True(t, sawCookie, "session cookie should ride along on subsequent requests")

	// A fresh store hydrates the persisted profile from disk.
	rehydrated := NewSession(c.Session().path)
	require.NoError(t, rehydrated.Init())
	require.True(t, rehydrated.LoggedIn())
	assert.Equal(t, "lead1", rehydrated.Profile().RollNo)
}

func TestLogoutClearsSessionEvenOnServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/verticalleads/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Login successful",
			"user":    Profile{UserID: "u1", Role: "vertical_lead", RollNo: "lead1"},
		})
	})
	mux.HandleFunc("POST /auth/verticalleads/logout", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid or expired session"})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(t, server)
	_, err := c.LoginVerticalLead(context.Background(), "lead1", "secret")
	require.NoError(t, err)

	err = c.Logout(context.Background())
	assert.Error(t, err)
	assert.False(t, c.Session().LoggedIn())
}

func TestFetchAllAttendanceAggregates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /verticalleads/meetings/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message": "ok",
			"count":   2,
			"meetings": []map[string]interface{}{
				{"id": "m1", "meeting_name": "Weekly Sync", "date": "2026-01-05T00:00:00Z", "vertical": "Tech", "created_by": "lead1"},
				{"id": "m2", "meeting_name": "Planning", "date": "2026-01-12T00:00:00Z", "vertical": "Tech", "created_by": "lead1"},
			},
		})
	})
	rosters := map[string][]map[string]interface{}{
		"m1": {
			{"roll_no": "r1", "name": "Alice", "department": "CSE", "year": 2, "vertical": "Tech", "is_attended": true},
			{"roll_no": "r2", "name": "Bob", "department": "ECE", "year": 3, "vertical": "Tech", "is_attended": false},
		},
		"m2": {
			{"roll_no": "r1", "name": "Alice", "department": "CSE", "year": 2, "vertical": "Tech", "is_attended": true},
			{"roll_no": "r2", "name": "Bob", "department": "ECE", "year": 3, "vertical": "Tech", "is_attended": nil},
		},
	}
	mux.HandleFunc("GET /verticalleads/meetings/{id}/members-attendance", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message": "ok",
			"meeting": map[string]interface{}{"id": id, "meeting_name": "x", "date": "2026-01-05T00:00:00Z", "vertical": "Tech", "created_by": "lead1"},
			"count":   len(rosters[id]),
			"members": rosters[id],
		})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(t, server)
	rows, err := c.FetchAllAttendance(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Ranked descending: Alice 2/2, Bob 0/2.
	assert.Equal(t, "r1", rows[0].RollNo)
	assert.Equal(t, 2, rows[0].Attended)
	assert.Equal(t, 2, rows[0].Total)
	assert.Equal(t, "100.0", rows[0].Percentage.String())

	assert.Equal(t, "r2", rows[1].RollNo)
	assert.Equal(t, 0, rows[1].Attended)
	assert.Equal(t, "0.0", rows[1].Percentage.String())
}

func TestFetchAllAttendanceAbortsOnFailedRoster(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /verticalleads/meetings/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message": "ok",
			"count":   2,
			"meetings": []map[string]interface{}{
				{"id": "m1", "meeting_name": "A", "date": "2026-01-05T00:00:00Z", "vertical": "Tech", "created_by": "lead1"},
				{"id": "m2", "meeting_name": "B", "date": "2026-01-12T00:00:00Z", "vertical": "Tech", "created_by": "lead1"},
			},
		})
	})
	mux.HandleFunc("GET /verticalleads/meetings/m1/members-attendance", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message": "ok",
			"meeting": map[string]interface{}{"id": "m1", "meeting_name": "A", "date": "2026-01-05T00:00:00Z", "vertical": "Tech", "created_by": "lead1"},
			"count":   1,
			"members": []map[string]interface{}{
				{"roll_no": "r1", "name": "Alice", "department": "CSE", "year": 2, "vertical": "Tech", "is_attended": true},
			},
		})
	})
	mux.HandleFunc("GET /verticalleads/meetings/m2/members-attendance", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Meeting not found"})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(t, server)
	rows, err := c.FetchAllAttendance(context.Background())

	// Partial sums are discarded, not returned.
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Meeting not found", apiErr.Message)
	assert.Nil(t, rows)
}

func TestDownloadAttendanceReport(t *testing.T) {
	const csvBody = "Roll No,Name\nr1,Alice\n"

	t.Run("success streams csv and names the file", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/globaladmin/attendance-report", r.URL.Path)
			assert.Equal(t, "60", r.URL.Query().Get("threshold"))
			w.Header().Set("Content-Type", "text/csv")
			w.Header().Set("Content-Disposition", `attachment; filename="attendance-report-2026-08-28.csv"`)
			w.Write([]byte(csvBody))
		}))
		defer server.Close()

		c := newTestClient(t, server)
		threshold := 60

		var buf bytes.Buffer
		name, err := c.DownloadAttendanceReport(context.Background(), &buf, &threshold)
		require.NoError(t, err)
		assert.Equal(t, "attendance-report-2026-08-28.csv", name)
		assert.Equal(t, csvBody, buf.String())
	})

	t.Run("error body on a binary request decodes back to json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "Global admin access required"})
		}))
		defer server.Close()

		c := newTestClient(t, server)
		var buf bytes.Buffer
		_, err := c.DownloadAttendanceReport(context.Background(), &buf, nil)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Global admin access required", apiErr.Message)
		assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
		assert.Zero(t, buf.Len())
	})

	t.Run("negative threshold disables the filter", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "none", r.URL.Query().Get("threshold"))
			w.Write([]byte(csvBody))
		}))
		defer server.Close()

		c := newTestClient(t, server)
		everyone := -1
		var buf bytes.Buffer
		_, err := c.DownloadAttendanceReport(context.Background(), &buf, &everyone)
		require.NoError(t, err)
	})
}

func TestSaveMembersTemplate(t *testing.T) {
	server := httptest.NewServer(http.NewServeMux())
	defer server.Close()
	c := newTestClient(t, server)

	path := filepath.Join(t.TempDir(), "template.xlsx")
	require.NoError(t, c.SaveMembersTemplate(path))
	assert.FileExists(t, path)
}
