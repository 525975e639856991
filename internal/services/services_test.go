package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rudresh.dev/internal/config"
	"rudresh.dev/internal/models"
)

type upstream struct {
	github   http.HandlerFunc
	leetcode http.HandlerFunc
}

// newTestServices starts a fake GitHub/LeetCode upstream and wires services to it
func newTestServices(t *testing.T, up upstream) (*ProjectService, *StatsService, *config.Store) {
	t.Helper()

	mux := http.NewServeMux()
	if up.github != nil {
		mux.HandleFunc("/gh/", up.github)
	}
	if up.leetcode != nil {
		mux.HandleFunc("/lc/", up.leetcode)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := config.DefaultConfig()
	cfg.Upstream.GitHubAPI = srv.URL + "/gh"
	cfg.Upstream.LeetCodeAPI = srv.URL + "/lc"
	store := config.NewStore(cfg)

	f := NewFetcher()
	return NewProjectService(f, store, zap.NewNop()), NewStatsService(f, store, zap.NewNop()), store
}

func TestProjectServiceRequest(t *testing.T) {
	var gotPath, gotQuery, gotAccept string
	ps, _, _ := newTestServices(t, upstream{github: func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery, gotAccept = r.URL.Path, r.URL.RawQuery, r.Header.Get("Accept")
		_, _ = w.Write([]byte(`[]`))
	}})

	ps.Load(context.Background())

	assert.Equal(t, "/gh/users/Rudh1830/repos", gotPath)
	assert.Equal(t, "sort=stars&per_page=100", gotQuery)
	assert.Equal(t, "application/vnd.github+json", gotAccept)
}

func TestProjectServiceLive(t *testing.T) {
	ps, _, _ := newTestServices(t, upstream{github: func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":900,"name":"Real-Time-News-Data-Streaming-Pipeline-Using-Snowflake-and-Docker","stargazers_count":11}]`))
	}})

	got := ps.Load(context.Background())

	assert.Equal(t, models.SourceLive, got.Source)
	assert.Equal(t, "Real-Time-News-Data-Streaming-Pipeline-Using-Snowflake-and-Docker", got.Projects[0].Name)
	assert.Equal(t, []int64{900, 1, 2, 3, 4}, projectIDs(got.Projects))
}

func TestProjectServiceRateLimited(t *testing.T) {
	ps, _, _ := newTestServices(t, upstream{github: func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"API rate limit exceeded"}`, http.StatusForbidden)
	}})

	got := ps.Load(context.Background())

	assert.Equal(t, models.SourceRateLimited, got.Source)
	if diff := cmp.Diff(FallbackProjects(), got.Projects); diff != "" {
		t.Errorf("projects mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectServiceNetworkFailure(t *testing.T) {
	ps, _, store := newTestServices(t, upstream{})
	dead := httptest.NewServer(http.NotFoundHandler())
	dead.Close()
	cfg := *store.Current()
	cfg.Upstream.GitHubAPI = dead.URL
	store.Set(&cfg)

	got := ps.Load(context.Background())

	assert.Equal(t, models.SourceUpstreamError, got.Source)
	assert.Equal(t, FallbackProjects(), got.Projects)
}

func TestProjectServiceGetByID(t *testing.T) {
	ps, _, _ := newTestServices(t, upstream{github: func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}})

	p, err := ps.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "AI-Text-to-Image-Generator", p.Name)

	_, err = ps.GetByID(context.Background(), 42)
	assert.Error(t, err)
}

func TestStatsServiceLoad(t *testing.T) {
	var gotPath string
	_, ss, _ := newTestServices(t, upstream{leetcode: func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"status":"success","totalSolved":120,"easySolved":80,"mediumSolved":30,"hardSolved":10,"ranking":50000}`))
	}})

	stats := ss.Load(context.Background())

	assert.Equal(t, "/lc/Rudresh_M_R", gotPath)
	require.NotNil(t, stats)
	assert.Equal(t, 120, stats.TotalSolved)
	assert.Equal(t, 50000, stats.Ranking)
}

func TestStatsServiceFailure(t *testing.T) {
	_, ss, _ := newTestServices(t, upstream{leetcode: func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}})

	assert.Nil(t, ss.Load(context.Background()))
}

func TestPortfolioSnapshot(t *testing.T) {
	ps, ss, store := newTestServices(t, upstream{
		github: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		},
		leetcode: func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"success","totalSolved":3,"easySolved":3}`))
		},
	})

	snap, err := NewPortfolioService(store, ps, ss).Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Rudresh M R", snap.Profile.Name)
	assert.Equal(t, models.SourceRateLimited, snap.Projects.Source)
	require.NotNil(t, snap.Stats)
	assert.Equal(t, 3, snap.Stats.TotalSolved)
}

func TestPortfolioSnapshotCancelled(t *testing.T) {
	ps, ss, store := newTestServices(t, upstream{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPortfolioService(store, ps, ss).Snapshot(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestContactSubmit(t *testing.T) {
	cs := NewContactService(zap.NewNop())

	id, err := cs.Submit(models.ContactMessage{Name: " Ada ", Email: "ada@example.com", Message: "Hello"})
	require.NoError(t, err)
	assert.Len(t, id, 36)

	_, err = cs.Submit(models.ContactMessage{Name: "Ada", Email: "   ", Message: "Hello"})
	assert.ErrorIs(t, err, ErrIncompleteMessage)
}

func TestUpstreamTimeoutFollowsReload(t *testing.T) {
	slow := func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}
	ps, ss, store := newTestServices(t, upstream{github: slow, leetcode: slow})

	cfg := *store.Current()
	cfg.Upstream.Timeout = 50 * time.Millisecond
	store.Set(&cfg)

	start := time.Now()
	assert.Equal(t, models.SourceUpstreamError, ps.Load(context.Background()).Source)
	assert.Nil(t, ss.Load(context.Background()))
	assert.Less(t, time.Since(start), 2*time.Second)
}
