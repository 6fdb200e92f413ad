package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/makro/pkg/domain"
	"github.com/umputun/makro/pkg/narrative"
	"github.com/umputun/makro/pkg/temporal"
)

// clusterView is a cluster with its consensus level
type clusterView struct {
	domain.Cluster
	Consensus domain.ConsensusLevel `json:"consensus"`
}

// loadContent loads the content snapshot or renders the failure
func (s *Server) loadContent(w http.ResponseWriter, r *http.Request) ([]domain.ContentItem, bool) {
	items, err := s.db.LoadContent(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to load content: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return nil, false
	}
	return items, true
}

// loadSnapshot loads content and sources or renders the failure
func (s *Server) loadSnapshot(w http.ResponseWriter, r *http.Request) ([]domain.ContentItem, []domain.Source, bool) {
	items, ok := s.loadContent(w, r)
	if !ok {
		return nil, nil, false
	}
	sources, err := s.db.LoadSources(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to load sources: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return nil, nil, false
	}
	return items, sources, true
}

func (s *Server) clustersHandler(w http.ResponseWriter, r *http.Request) {
	items, ok := s.loadContent(w, r)
	if !ok {
		return
	}
	clusters, err := narrative.ClusterParallel(r.Context(), items, s.config.GetFullConfig().Analysis.Workers)
	if err != nil {
		lgr.Printf("[WARN] clustering interrupted: %v", err)
		renderError(w, r, err, http.StatusServiceUnavailable)
		return
	}
	res := make([]clusterView, 0, len(clusters))
	for _, c := range clusters {
		res = append(res, clusterView{Cluster: c, Consensus: narrative.ClassifyConsensus(c)})
	}
	renderJSON(w, r, http.StatusOK, res)
}

func (s *Server) cardsHandler(w http.ResponseWriter, r *http.Request) {
	items, sources, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}
	renderJSON(w, r, http.StatusOK, narrative.BuildCards(items, sources))
}

func (s *Server) evolutionHandler(w http.ResponseWriter, r *http.Request) {
	items, sources, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}
	renderJSON(w, r, http.StatusOK, narrative.TrackEvolution(items, r.PathValue("theme"), sources, s.now().UTC()))
}

func (s *Server) timelineHandler(w http.ResponseWriter, r *http.Request) {
	items, ok := s.loadContent(w, r)
	if !ok {
		return
	}
	renderJSON(w, r, http.StatusOK, temporal.SentimentOverTime(items))
}

func (s *Server) moodHandler(w http.ResponseWriter, r *http.Request) {
	items, ok := s.loadContent(w, r)
	if !ok {
		return
	}
	renderJSON(w, r, http.StatusOK, temporal.MarketMood(items))
}

func (s *Server) themeMentionsHandler(w http.ResponseWriter, r *http.Request) {
	s.mentions(w, r, temporal.MostMentionedThemes)
}

func (s *Server) tickerMentionsHandler(w http.ResponseWriter, r *http.Request) {
	s.mentions(w, r, temporal.MostMentionedTickers)
}

func (s *Server) mentions(w http.ResponseWriter, r *http.Request, rank func([]domain.ContentItem, int) []domain.Mention) {
	limit := s.config.GetFullConfig().Analysis.MentionLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			renderError(w, r, fmt.Errorf("invalid limit %q", v), http.StatusBadRequest)
			return
		}
		limit = n
	}
	items, ok := s.loadContent(w, r)
	if !ok {
		return
	}
	renderJSON(w, r, http.StatusOK, rank(items, limit))
}

// conflictsHandler scans all pairs of stored items for opposite views
func (s *Server) conflictsHandler(w http.ResponseWriter, r *http.Request) {
	items, ok := s.loadContent(w, r)
	if !ok {
		return
	}
	conflicts, err := temporal.ScanConflicts(r.Context(), items, s.config.GetFullConfig().Analysis.Workers)
	if err != nil {
		lgr.Printf("[WARN] conflict scan interrupted: %v", err)
		renderError(w, r, err, http.StatusServiceUnavailable)
		return
	}
	renderJSON(w, r, http.StatusOK, conflicts)
}

func (s *Server) shiftsHandler(w http.ResponseWriter, r *http.Request) {
	threshold := s.config.GetFullConfig().Analysis.ShiftThreshold
	if v := r.URL.Query().Get("threshold"); v != "" {
		th, err := strconv.ParseFloat(v, 64)
		if err != nil || th < 0 || th > 1 {
			renderError(w, r, fmt.Errorf("invalid threshold %q", v), http.StatusBadRequest)
			return
		}
		threshold = th
	}
	items, ok := s.loadContent(w, r)
	if !ok {
		return
	}
	renderJSON(w, r, http.StatusOK, temporal.DetectNarrativeShifts(items, threshold))
}

// changesHandler compares content since a date, given directly or as a day/week/month window
func (s *Server) changesHandler(w http.ResponseWriter, r *http.Request) {
	since, ok, err := timeParam(r, "since")
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if !ok {
		window := r.URL.Query().Get("window")
		if window == "" {
			window = "week"
		}
		if since, ok = temporal.WindowStart(window, s.now().UTC()); !ok {
			renderError(w, r, fmt.Errorf("invalid window %q", window), http.StatusBadRequest)
			return
		}
	}
	items, ok := s.loadContent(w, r)
	if !ok {
		return
	}
	renderJSON(w, r, http.StatusOK, temporal.ChangesSince(items, since))
}

func (s *Server) graphHandler(w http.ResponseWriter, r *http.Request) {
	items, sources, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}
	renderJSON(w, r, http.StatusOK, narrative.BuildGraph(items, sources))
}

func (s *Server) perspectiveHandler(w http.ResponseWriter, r *http.Request) {
	sourceID := r.PathValue("sourceID")
	if _, err := s.db.GetSource(r.Context(), sourceID); err != nil {
		renderStoreError(w, r, err, "source")
		return
	}
	items, sources, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}
	renderJSON(w, r, http.StatusOK, narrative.SourcePerspective(items, sourceID, sources))
}

func (s *Server) accuracyHandler(w http.ResponseWriter, r *http.Request) {
	items, sources, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}
	records, err := s.db.LoadTrackRecords(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to load track records: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, narrative.SourceAccuracy(items, sources, records))
}

func (s *Server) invalidationsHandler(w http.ResponseWriter, r *http.Request) {
	items, ok := s.loadContent(w, r)
	if !ok {
		return
	}
	renderJSON(w, r, http.StatusOK, narrative.CheckInvalidations(items, nil))
}

func (s *Server) assetAggregateHandler(w http.ResponseWriter, r *http.Request) {
	s.aggregate(w, r, temporal.AggregateByAsset)
}

func (s *Server) themeAggregateHandler(w http.ResponseWriter, r *http.Request) {
	s.aggregate(w, r, temporal.AggregateByTheme)
}

func (s *Server) aggregate(w http.ResponseWriter, r *http.Request, agg func([]domain.ContentItem, string) domain.SentimentAggregate) {
	name := r.PathValue("name")
	if name == "" {
		renderError(w, r, errors.New("name is required"), http.StatusBadRequest)
		return
	}
	items, ok := s.loadContent(w, r)
	if !ok {
		return
	}
	renderJSON(w, r, http.StatusOK, agg(items, name))
}
