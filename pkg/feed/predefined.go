package feed

import "github.com/umputun/makro/pkg/domain"

// Predefined is the built-in list of macro-focused feeds
var Predefined = []domain.Feed{
	{ID: "fed", Name: "Federal Reserve Press Releases", URL: "https://www.federalreserve.gov/feeds/press_all.xml", Category: "Central Bank", Priority: "high"},
	{ID: "ecb", Name: "ECB Press Releases", URL: "https://www.ecb.europa.eu/rss/press.html", Category: "Central Bank", Priority: "high"},
	{ID: "boe", Name: "Bank of England", URL: "https://www.bankofengland.co.uk/rss/news", Category: "Central Bank", Priority: "high"},
	{ID: "reuters-business", Name: "Reuters Business", URL: "https://feeds.reuters.com/reuters/businessNews", Category: "Business", Priority: "high"},
	{ID: "reuters-markets", Name: "Reuters Markets", URL: "https://feeds.reuters.com/reuters/marketsNews", Category: "Markets", Priority: "medium"},
	{ID: "ft-markets", Name: "Financial Times Markets", URL: "https://www.ft.com/markets?format=rss", Category: "Markets", Priority: "high"},
	{ID: "wsj-markets", Name: "WSJ Markets", URL: "https://feeds.a.dj.com/rss/RSSMarketsMain.xml", Category: "Markets", Priority: "medium"},
	{ID: "bloomberg-economics", Name: "Bloomberg Economics", URL: "https://feeds.bloomberg.com/markets/news.rss", Category: "Economics", Priority: "high"},
	{ID: "marketwatch-economy", Name: "MarketWatch Economy", URL: "https://www.marketwatch.com/rss/topstories", Category: "Economy", Priority: "medium"},
	{ID: "cnbc-economy", Name: "CNBC Economy", URL: "https://www.cnbc.com/id/100003114/device/rss/rss.html", Category: "Economy", Priority: "medium"},
	{ID: "seeking-alpha", Name: "Seeking Alpha Macro", URL: "https://seekingalpha.com/feed.xml", Category: "Analysis", Priority: "medium"},
}

// Merge combines feed lists keeping the first feed for each url
func Merge(lists ...[]domain.Feed) []domain.Feed {
	res := []domain.Feed{}
	seen := map[string]bool{}
	for _, list := range lists {
		for _, f := range list {
			if f.URL == "" || seen[f.URL] {
				continue
			}
			seen[f.URL] = true
			res = append(res, f)
		}
	}
	return res
}
