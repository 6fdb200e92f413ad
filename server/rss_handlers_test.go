package server

import (
	"encoding/xml"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/makro/server/mocks"
)

type testRSS struct {
	Channel struct {
		Title       string `xml:"title"`
		Description string `xml:"description"`
		Items       []struct {
			Title    string   `xml:"title"`
			GUID     string   `xml:"guid"`
			Author   string   `xml:"author"`
			Category []string `xml:"category"`
		} `xml:"item"`
	} `xml:"channel"`
}

func TestServer_RSSHandler(t *testing.T) {
	srv := testServer(t, narrativeDB(), &mocks.IngesterMock{}, nil)

	t.Run("known theme", func(t *testing.T) {
		w := do(srv, http.MethodGet, "/rss/Fed%20Policy", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/rss+xml; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), `<atom:link href="https://makro.example.com/rss/Fed%20Policy"`)

		var doc testRSS
		require.NoError(t, xml.Unmarshal(w.Body.Bytes(), &doc))
		assert.Equal(t, "Makro - Fed Policy", doc.Channel.Title)
		assert.Contains(t, doc.Channel.Description, "majority_positive (67%), 2 positive, 1 negative, 0 neutral")
		require.Len(t, doc.Channel.Items, 3)
		assert.Equal(t, "[positive] Cuts are coming", doc.Channel.Items[0].Title)
		assert.Equal(t, "c1", doc.Channel.Items[0].GUID)
		assert.Equal(t, "Macro Guy", doc.Channel.Items[0].Author)
		assert.Equal(t, "Desk Note", doc.Channel.Items[1].Author)
		assert.Equal(t, []string{"Fed Policy", "Inflation"}, doc.Channel.Items[2].Category)
	})

	t.Run("unknown theme", func(t *testing.T) {
		w := do(srv, http.MethodGet, "/rss/Housing", "")
		require.Equal(t, http.StatusOK, w.Code)

		var doc testRSS
		require.NoError(t, xml.Unmarshal(w.Body.Bytes(), &doc))
		assert.Equal(t, "Makro - Housing", doc.Channel.Title)
		assert.Equal(t, "Narrative about Housing: mixed (0%), 0 positive, 0 negative, 0 neutral", doc.Channel.Description)
		assert.Empty(t, doc.Channel.Items)
	})
}
