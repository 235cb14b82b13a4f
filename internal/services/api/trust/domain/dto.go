// Package domain holds DTOs for trust http and service contracts
package domain

import (
	"strconv"
	"time"
	"unicode/utf8"

	"reviewtrust/internal/core/review"
)

// ReviewInput is one scraped review
type ReviewInput struct {
	Text       string `json:"text" example:"とても美味しかったです"`
	TextLength int    `json:"text_length" validate:"gte=0" example:"10"`
	DateText   string `json:"date_text" example:"3日前"`
	HasPhotos  bool   `json:"has_photos" example:"false"`
}

// DatasetInput is the extracted review statistics of one listing
// ratings keys are star values "1".."5"
type DatasetInput struct {
	Ratings       map[string]int `json:"ratings" validate:"dive,keys,oneof=1 2 3 4 5,endkeys,gte=0"`
	TotalReviews  int            `json:"total_reviews" validate:"gte=0" example:"128"`
	RecentReviews []ReviewInput  `json:"recent_reviews" validate:"max=50,dive"`
}

// SettingsInput overrides the service defaults for one call; nil fields keep the default
type SettingsInput struct {
	AnalysisMode              string `json:"analysis_mode,omitempty" validate:"omitempty,oneof=lenient standard strict" example:"standard"`
	MinimumReviewsForAnalysis *int   `json:"minimum_reviews_for_analysis,omitempty" validate:"omitempty,min=1,max=100000" example:"5"`
	ShowDetailedAnalysis      *bool  `json:"show_detailed_analysis,omitempty" example:"true"`
}

// AnalyzeInput is the analyze request body
type AnalyzeInput struct {
	PlaceID   string         `json:"place_id,omitempty" validate:"omitempty,placeid" example:"ChIJN1t_tDeuEmsRUsoyG83frY4"`
	PlaceName string         `json:"place_name,omitempty" validate:"max=512" example:"Sushi Dai"`
	URL       string         `json:"url,omitempty" validate:"omitempty,url,max=2048" example:"https://maps.example.com/place/ChIJN1t"`
	Dataset   DatasetInput   `json:"dataset"`
	Settings  *SettingsInput `json:"settings,omitempty"`
}

// AnalyzeOutput is the analyze response body
type AnalyzeOutput struct {
	AnalysisID string                `json:"analysis_id" example:"5b0d7a5e-0c6b-4a53-9f0e-1a0d8f1e0b11"`
	PlaceID    string                `json:"place_id,omitempty" example:"ChIJN1t_tDeuEmsRUsoyG83frY4"`
	AnalyzedAt time.Time             `json:"analyzed_at" example:"2026-10-01T12:00:00Z"`
	Persisted  bool                  `json:"persisted" example:"true"`
	Lang       string                `json:"lang,omitempty" example:"ja"`
	Result     review.AnalysisResult `json:"result"`
	Patterns   []review.Pattern      `json:"patterns,omitempty"`
}

// HistoryQuery selects stored analyses of one place
type HistoryQuery struct {
	PlaceID string `json:"place_id" validate:"required,placeid" example:"ChIJN1t_tDeuEmsRUsoyG83frY4"`
	Limit   int    `json:"limit,omitempty" validate:"omitempty,min=1,max=200" example:"20"`
}

// HistoryRow summarizes one stored analysis
type HistoryRow struct {
	AnalysisID       string    `json:"analysis_id" example:"5b0d7a5e-0c6b-4a53-9f0e-1a0d8f1e0b11"`
	PlaceID          string    `json:"place_id" example:"ChIJN1t_tDeuEmsRUsoyG83frY4"`
	Score            int       `json:"score" example:"72"`
	Level            string    `json:"level" example:"medium"`
	AnalysisMode     string    `json:"analysis_mode" example:"standard"`
	TotalReviews     int       `json:"total_reviews" example:"128"`
	PatternsDetected int       `json:"patterns_detected" example:"1"`
	CreatedAt        time.Time `json:"created_at" example:"2026-10-01T12:00:00Z"`
}

// HistoryOutput is the history response body, newest first
type HistoryOutput struct {
	PlaceID string       `json:"place_id" example:"ChIJN1t_tDeuEmsRUsoyG83frY4"`
	Items   []HistoryRow `json:"items"`
}

// DefaultsOutput reports the effective defaults of the analyze endpoint
type DefaultsOutput struct {
	Settings         review.Settings `json:"settings"`
	Profile          string          `json:"profile" example:"default"`
	AlgorithmVersion int             `json:"algorithm_version" example:"1"`
	HistoryLimit     int             `json:"history_limit" example:"20"`
	HistoryEnabled   bool            `json:"history_enabled" example:"true"`
	EventsEnabled    bool            `json:"events_enabled" example:"false"`
}

// Dataset converts the wire shape to the core dataset.
// Unknown star keys were rejected by validation; text_length 0 with text falls back to the rune count
func (in DatasetInput) Dataset() review.Dataset {
	ds := review.Dataset{
		Ratings:       make(map[int]int, len(in.Ratings)),
		TotalReviews:  in.TotalReviews,
		RecentReviews: make([]review.Review, 0, len(in.RecentReviews)),
	}
	for k, v := range in.Ratings {
		star, err := strconv.Atoi(k)
		if err != nil || star < 1 || star > 5 {
			continue
		}
		ds.Ratings[star] = v
	}
	for _, r := range in.RecentReviews {
		n := r.TextLength
		if n == 0 && r.Text != "" {
			n = utf8.RuneCountInString(r.Text)
		}
		ds.RecentReviews = append(ds.RecentReviews, review.Review{
			Text:       r.Text,
			TextLength: n,
			DateText:   r.DateText,
			HasPhotos:  r.HasPhotos,
		})
	}
	return ds
}

// Apply overlays the non-nil fields of in onto base and normalizes the result
func (in *SettingsInput) Apply(base review.Settings) review.Settings {
	s := base
	if in != nil {
		if in.AnalysisMode != "" {
			s.AnalysisMode = review.ParseMode(in.AnalysisMode)
		}
		if in.MinimumReviewsForAnalysis != nil {
			s.MinimumReviewsForAnalysis = *in.MinimumReviewsForAnalysis
		}
		if in.ShowDetailedAnalysis != nil {
			s.ShowDetailedAnalysis = *in.ShowDetailedAnalysis
		}
	}
	return s.Normalize()
}
