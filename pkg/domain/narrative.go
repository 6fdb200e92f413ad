package domain

import "time"

// Cluster groups content items that tell a similar story
type Cluster struct {
	ID             string        `json:"id"`
	Items          []ContentItem `json:"items"`
	Themes         []string      `json:"themes"`
	Entities       []string      `json:"entities"`
	Sentiment      Sentiment     `json:"sentiment"`
	ConsensusRatio float64       `json:"consensusRatio"`
	IsContrarian   bool          `json:"isContrarian"`
}

// ConsensusLevel is the plurality-based agreement level of a cluster
type ConsensusLevel string

const (
	ConsensusStrong     ConsensusLevel = "consensus"
	ConsensusModerate   ConsensusLevel = "moderate"
	ConsensusContrarian ConsensusLevel = "contrarian"
	ConsensusUnknown    ConsensusLevel = "unknown"
)

// Voice is a single item backing or countering a narrative
type Voice struct {
	Source  string      `json:"source"`
	Content ContentItem `json:"content"`
	Date    time.Time   `json:"date"`
}

// NarrativeCard summarizes everything logged on a theme
type NarrativeCard struct {
	Theme            string        `json:"theme"`
	Items            []ContentItem `json:"items"`
	SupportingVoices []Voice       `json:"supportingVoices"`
	CounterArguments []Voice       `json:"counterArguments"`
	Thesis           string        `json:"thesis"`
	Consensus        string        `json:"consensus"`
	ConsensusPercent float64       `json:"consensusPercent"`
	Total            int           `json:"total"`
	Positive         int           `json:"positive"`
	Negative         int           `json:"negative"`
	Neutral          int           `json:"neutral"`
}

// Phase is a market-mood segment of a narrative's evolution
type Phase string

const (
	PhaseBullish Phase = "bullish"
	PhaseBearish Phase = "bearish"
	PhaseNeutral Phase = "neutral"
)

// PhaseSegment is a run of adjacent items sharing the same sentiment
type PhaseSegment struct {
	Phase     Phase         `json:"phase"`
	Sentiment Sentiment     `json:"sentiment"`
	StartDate time.Time     `json:"startDate"`
	EndDate   time.Time     `json:"endDate"`
	Items     []ContentItem `json:"items"`
}

// Inflection marks two adjacent items on a theme with differing sentiment
type Inflection struct {
	From    Sentiment   `json:"from"`
	To      Sentiment   `json:"to"`
	Date    time.Time   `json:"date"`
	Source  string      `json:"source"`
	Content ContentItem `json:"content"`
}

// EvolutionEntry holds either a phase segment or an inflection marker
type EvolutionEntry struct {
	Phase      *PhaseSegment `json:"phase,omitempty"`
	Inflection *Inflection   `json:"inflection,omitempty"`
}

// Evolution is the chronological story of a theme
type Evolution struct {
	Theme            string           `json:"theme"`
	Entries          []EvolutionEntry `json:"evolution"`
	TotalItems       int              `json:"totalItems"`
	CurrentSentiment Sentiment        `json:"currentSentiment"`
}

// ConflictType names what the conflicting items share
type ConflictType string

const (
	ConflictSentiment       ConflictType = "sentiment_conflict"
	ConflictTickerSentiment ConflictType = "ticker_sentiment_conflict"
)

// Conflict describes two items with opposite views on shared themes or tickers
type Conflict struct {
	Type              ConflictType `json:"type"`
	NewContentID      string       `json:"newContentId"`
	ExistingContentID string       `json:"existingContentId"`
	Themes            []string     `json:"themes,omitempty"`
	Tickers           []string     `json:"tickers,omitempty"`
	NewSentiment      Sentiment    `json:"newSentiment"`
	ExistingSentiment Sentiment    `json:"existingSentiment"`
	Severity          string       `json:"severity"`
}

// NarrativeShift reports a change in positive share between older and recent halves of a theme
type NarrativeShift struct {
	Theme           string    `json:"theme"`
	Shift           Sentiment `json:"shift"`
	Magnitude       float64   `json:"magnitude"`
	OlderSentiment  Sentiment `json:"olderSentiment"`
	RecentSentiment Sentiment `json:"recentSentiment"`
	OlderCount      int       `json:"olderCount"`
	RecentCount     int       `json:"recentCount"`
}

// SentimentCounts holds per-polarity counts
type SentimentCounts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// SentimentBucket aggregates sentiment for a single calendar day
type SentimentBucket struct {
	Date            string `json:"date"`
	Positive        int    `json:"positive"`
	Negative        int    `json:"negative"`
	Neutral         int    `json:"neutral"`
	Total           int    `json:"total"`
	PositivePercent int    `json:"positivePercent"`
	NegativePercent int    `json:"negativePercent"`
	NeutralPercent  int    `json:"neutralPercent"`
	NetSentiment    int    `json:"netSentiment"`
}

// Mention is a ranked theme or ticker with its frequency
type Mention struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Changes compares content on or after a date with content before it
type Changes struct {
	RecentContentCount int             `json:"recentContentCount"`
	OldContentCount    int             `json:"oldContentCount"`
	AddedThemes        []string        `json:"addedThemes"`
	RemovedThemes      []string        `json:"removedThemes"`
	SentimentShift     SentimentCounts `json:"sentimentShift"`
	RecentContent      []ContentItem   `json:"recentContent"`
}

// SentimentAggregate is the combined sentiment of items mentioning an asset or theme
type SentimentAggregate struct {
	Sentiment  Sentiment       `json:"sentiment"`
	Confidence int             `json:"confidence"`
	Count      int             `json:"count"`
	Breakdown  SentimentCounts `json:"breakdown"`
}

// Mood is the overall market mood derived from all content
type Mood struct {
	Mood            string  `json:"mood"`
	Total           int     `json:"total"`
	PositivePercent float64 `json:"positivePercent"`
	NegativePercent float64 `json:"negativePercent"`
	NeutralPercent  float64 `json:"neutralPercent"`
}

// SourcePerspective is everything a single source said, grouped by theme
type SourcePerspective struct {
	Source             Source                   `json:"source"`
	TotalContent       int                      `json:"totalContent"`
	Narratives         []ContentItem            `json:"narratives"`
	ByTheme            map[string][]ContentItem `json:"byTheme"`
	SentimentBreakdown SentimentCounts          `json:"sentimentBreakdown"`
}

// Invalidation records an item contradicted by another item on the same theme
type Invalidation struct {
	ContentID     string    `json:"contentId"`
	InvalidatedBy string    `json:"invalidatedBy"`
	Theme         string    `json:"theme"`
	Reason        string    `json:"reason"`
	Date          time.Time `json:"date"`
}

// GraphNode is a node of the knowledge graph
type GraphNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
	Group string `json:"group"`
}

// GraphLink connects two knowledge graph nodes
type GraphLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
}

// Graph links sources, content and entities
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Links []GraphLink `json:"links"`
}

// Alert is a notification about narrative changes
type Alert struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Severity string    `json:"severity"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	Theme    string    `json:"theme"`
	Date     time.Time `json:"date"`
}

// Outcome is how a logged call played out
type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
	OutcomePartial   Outcome = "partial"
	OutcomePending   Outcome = "pending"
)

// TrackRecord is the recorded outcome for a content item
type TrackRecord struct {
	ContentID string    `json:"contentId"`
	Outcome   Outcome   `json:"outcome"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SourceAccuracy is how often a source's resolved calls were correct
type SourceAccuracy struct {
	SourceID string  `json:"sourceId"`
	Name     string  `json:"name"`
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}
