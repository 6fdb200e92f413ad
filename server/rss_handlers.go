package server

import (
	"net/http"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/makro/pkg/domain"
	"github.com/umputun/makro/pkg/feed"
	"github.com/umputun/makro/pkg/narrative"
)

// rssHandler serves the narrative of a theme as RSS, an unknown theme gives an empty channel
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	theme := r.PathValue("theme")

	items, sources, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}

	card := domain.NarrativeCard{Theme: theme, Items: []domain.ContentItem{}, Consensus: "mixed", Thesis: "Narrative about " + theme}
	for _, c := range narrative.BuildCards(items, sources) {
		if c.Theme == theme {
			card = c
			break
		}
	}

	generator := feed.NewGenerator(s.config.GetFullConfig().Server.BaseURL)
	rss, err := generator.GenerateRSS(card, sources, s.now().UTC())
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lgr.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
