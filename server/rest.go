package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/makro/pkg/alert"
	"github.com/umputun/makro/pkg/analysis"
	"github.com/umputun/makro/pkg/domain"
	"github.com/umputun/makro/pkg/narrative"
)

// statusHandler returns server status with content counters
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := s.db.CountContent(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to count content: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	sources, err := s.db.LoadSources(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to load sources: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    s.now().UTC(),
		"content": count,
		"sources": len(sources),
	}
	if last, err := s.db.GetSetting(ctx, domain.SettingLastFeedUpdate); err == nil && last != "" {
		status["lastFeedUpdate"] = last
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listContentHandler returns all content in stored order
func (s *Server) listContentHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.db.LoadContent(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to load content: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, items)
}

// createContentHandler analyzes and stores a content item, responding with the item and conflicts it raised
func (s *Server) createContentHandler(w http.ResponseWriter, r *http.Request) {
	var item domain.ContentItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	normalizeContent(&item)
	if err := validateContent(item); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	res, err := s.ingester.Add(r.Context(), item)
	if err != nil {
		lgr.Printf("[ERROR] failed to add content: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, res)
}

// getContentHandler returns a single content item
func (s *Server) getContentHandler(w http.ResponseWriter, r *http.Request) {
	item, err := s.db.GetContent(r.Context(), r.PathValue("id"))
	if err != nil {
		renderStoreError(w, r, err, "content")
		return
	}
	renderJSON(w, r, http.StatusOK, item)
}

// deleteContentHandler removes a content item with its track record
func (s *Server) deleteContentHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.db.DeleteContent(r.Context(), r.PathValue("id")); err != nil {
		renderStoreError(w, r, err, "content")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// outcomeHandler records how a logged call played out
func (s *Server) outcomeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var req struct {
		Outcome domain.Outcome `json:"outcome"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if !narrative.ValidOutcome(req.Outcome) {
		renderError(w, r, fmt.Errorf("invalid outcome %q", req.Outcome), http.StatusBadRequest)
		return
	}
	if _, err := s.db.GetContent(ctx, id); err != nil {
		renderStoreError(w, r, err, "content")
		return
	}

	rec := domain.TrackRecord{ContentID: id, Outcome: req.Outcome, UpdatedAt: s.now().UTC()}
	if err := s.db.SetOutcome(ctx, id, rec.Outcome, rec.UpdatedAt); err != nil {
		lgr.Printf("[ERROR] failed to set outcome for %s: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, rec)
}

// listSourcesHandler returns all sources
func (s *Server) listSourcesHandler(w http.ResponseWriter, r *http.Request) {
	sources, err := s.db.LoadSources(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to load sources: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, sources)
}

// createSourceHandler stores a new source, generating its ID when missing
func (s *Server) createSourceHandler(w http.ResponseWriter, r *http.Request) {
	var src domain.Source
	if err := json.NewDecoder(r.Body).Decode(&src); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	src.Name = strings.TrimSpace(src.Name)
	if src.Name == "" {
		renderError(w, r, errors.New("source name is required"), http.StatusBadRequest)
		return
	}
	switch src.Type {
	case "":
		src.Type = domain.SourceOther
	case domain.SourceMacro, domain.SourceQuant, domain.SourceFundamental, domain.SourceInstitution, domain.SourceOther:
	default:
		renderError(w, r, fmt.Errorf("invalid source type %q", src.Type), http.StatusBadRequest)
		return
	}
	if src.ID == "" {
		src.ID = uuid.New().String()
	}

	if err := s.db.CreateSource(r.Context(), src); err != nil {
		lgr.Printf("[ERROR] failed to create source: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, src)
}

// analyzeHandler runs the analyzer over submitted text without storing anything
func (s *Server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, analysis.Analyze(req.Text))
}

// alertsHandler returns shift and invalidation alerts not dismissed yet
func (s *Server) alertsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := s.db.LoadContent(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to load content: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	dismissed, err := s.db.GetList(ctx, domain.SettingDismissedAlerts)
	if err != nil {
		lgr.Printf("[ERROR] failed to load dismissed alerts: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	alerts := alert.Build(items, alert.Params{
		ShiftThreshold: s.config.GetFullConfig().Analysis.ShiftThreshold,
		Dismissed:      dismissed,
		Now:            s.now().UTC(),
	})
	renderJSON(w, r, http.StatusOK, alerts)
}

// dismissAlertHandler hides an alert from further responses
func (s *Server) dismissAlertHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	dismissed, err := s.db.GetList(ctx, domain.SettingDismissedAlerts)
	if err != nil {
		lgr.Printf("[ERROR] failed to load dismissed alerts: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if err := s.db.SetList(ctx, domain.SettingDismissedAlerts, alert.Dismiss(dismissed, id)); err != nil {
		lgr.Printf("[ERROR] failed to dismiss alert %s: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listFeedsHandler returns polled feeds with their fetch status
func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	if s.scheduler == nil {
		renderJSON(w, r, http.StatusOK, []domain.Feed{})
		return
	}
	feeds, err := s.scheduler.Feeds(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get feeds: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, feeds)
}

// createFeedHandler stores a user feed, polled from the next update on
func (s *Server) createFeedHandler(w http.ResponseWriter, r *http.Request) {
	var f domain.Feed
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	f.URL = strings.TrimSpace(f.URL)
	if !strings.HasPrefix(f.URL, "http://") && !strings.HasPrefix(f.URL, "https://") {
		renderError(w, r, errors.New("feed url must be http or https"), http.StatusBadRequest)
		return
	}
	if f.Name == "" {
		f.Name = f.URL
	}
	f.ID = f.URL
	f.LastFetched, f.LastError, f.ErrorCount = nil, "", 0

	if err := s.db.AddFeed(r.Context(), f); err != nil {
		lgr.Printf("[ERROR] failed to add feed %s: %v", f.URL, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, f)
}

// deleteFeedHandler removes a user feed given by url query parameter
func (s *Server) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		renderError(w, r, errors.New("url is required"), http.StatusBadRequest)
		return
	}
	if err := s.db.DeleteFeed(r.Context(), url); err != nil {
		renderStoreError(w, r, err, "feed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// refreshFeedsHandler runs a feed update right away
func (s *Server) refreshFeedsHandler(w http.ResponseWriter, r *http.Request) {
	if s.scheduler == nil {
		renderError(w, r, errors.New("feed polling is disabled"), http.StatusServiceUnavailable)
		return
	}
	rep, err := s.scheduler.UpdateNow(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] feed refresh failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, rep)
}

var contentTypes = map[domain.ContentType]bool{
	domain.ContentArticle: true, domain.ContentLink: true, domain.ContentFile: true, domain.ContentTweet: true,
}

// normalizeContent maps unknown content type to article and unknown sentiment to absent
func normalizeContent(item *domain.ContentItem) {
	if !contentTypes[item.ContentType] {
		item.ContentType = domain.ContentArticle
	}
	switch item.Sentiment {
	case "", domain.SentimentPositive, domain.SentimentNegative, domain.SentimentNeutral:
	default:
		item.Sentiment = ""
	}
}

// validateContent checks enumerated fields of a submitted item
func validateContent(item domain.ContentItem) error {
	switch item.Timeframe {
	case domain.TimeframeUnknown, domain.TimeframeShortTerm, domain.TimeframeLongTerm:
	default:
		return fmt.Errorf("invalid timeframe %q", item.Timeframe)
	}
	switch item.Conviction {
	case domain.ConvictionNone, domain.ConvictionLow, domain.ConvictionMedium, domain.ConvictionHigh:
	default:
		return fmt.Errorf("invalid conviction %q", item.Conviction)
	}
	if item.SentimentConfidence < 0 || item.SentimentConfidence > 100 {
		return errors.New("sentiment confidence must be between 0 and 100")
	}
	if item.Date != "" {
		if _, ok := domain.ParseDate(item.Date); !ok {
			return fmt.Errorf("invalid date %q", item.Date)
		}
	}
	return nil
}

// timeParam parses an RFC3339 timestamp or ISO date query value
func timeParam(r *http.Request, name string) (time.Time, bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return time.Time{}, false, nil
	}
	t, ok := domain.ParseDate(v)
	if !ok {
		return time.Time{}, false, fmt.Errorf("invalid %s %q", name, v)
	}
	return t, true, nil
}
