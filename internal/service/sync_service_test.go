package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yonko_backend/internal/config"
	"yonko_backend/internal/model"

	"github.com/stretchr/testify/require"
)

func TestSyncServiceDisabledWithoutBaseURL(t *testing.T) {
	s := NewSyncService(config.SyncConfig{})
	require.False(t, s.Enabled())

	// 关闭状态下推送是空操作，不会 panic
	s.PushAsync(&model.Roadmap{UserCode: "user0001aaaabbbb", UniversityID: "mit"})

	var nilSvc *SyncService
	nilSvc.PushAsync(&model.Roadmap{UserCode: "user0001aaaabbbb"})
}

func TestSyncServicePushAsync(t *testing.T) {
	type received struct {
		method string
		path   string
		rm     model.Roadmap
		err    error
	}
	got := make(chan received, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var rm model.Roadmap
		err := json.NewDecoder(r.Body).Decode(&rm)
		got <- received{method: r.Method, path: r.URL.Path, rm: rm, err: err}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewSyncService(config.SyncConfig{BaseURL: srv.URL + "/", TimeoutSeconds: 2})
	require.True(t, s.Enabled())

	s.PushAsync(&model.Roadmap{
		UserCode:     "user0001aaaabbbb",
		UniversityID: "mit",
		CountryCode:  "US",
		Requirements: model.BoolMap{"minimum_gpa": true},
	})

	select {
	case r := <-got:
		require.NoError(t, r.err)
		require.Equal(t, http.MethodPut, r.method)
		require.Equal(t, "/roadmap/user0001aaaabbbb", r.path)
		require.Equal(t, "mit", r.rm.UniversityID)
		require.True(t, r.rm.Requirements["minimum_gpa"])
	case <-time.After(3 * time.Second):
		t.Fatal("remote endpoint never received the push")
	}
}

func TestSyncServiceReconfigure(t *testing.T) {
	s := NewSyncService(config.SyncConfig{BaseURL: "http://backup.internal"})
	require.True(t, s.Enabled())

	s.Reconfigure(config.SyncConfig{})
	require.False(t, s.Enabled())

	s.Reconfigure(config.SyncConfig{BaseURL: "http://backup.internal", TimeoutSeconds: 5})
	require.True(t, s.Enabled())
	require.Equal(t, 5*time.Second, s.snapshot().Timeout())
}

func TestSyncConfigTimeoutDefault(t *testing.T) {
	require.Equal(t, 3*time.Second, config.SyncConfig{}.Timeout())
	require.Equal(t, 10*time.Second, config.SyncConfig{TimeoutSeconds: 10}.Timeout())
}
