package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"influBack/internal/models"
)

const (
	recommendSystemPrompt = "You are an influencer marketing expert. Recommend influencers that match the product the brand wants to promote."
	insightSystemPrompt   = "You are an expert influencer marketing analyst. Analyze the influencer's data and provide a one-paragraph summary that is easy for brands to understand."

	insightCacheTTL = 24 * time.Hour
)

type InfluencerReader interface {
	GetInfluencerByID(ctx context.Context, id int) (models.Influencer, error)
}

type InsightService struct {
	Influencers InfluencerReader
	Client      ChatCompletionClient
	Model       string
	Cache       InsightCache // optional
}

func (s *InsightService) RecommendInfluencers(ctx context.Context, productDescription string) (string, error) {
	if strings.TrimSpace(productDescription) == "" {
		return "", fmt.Errorf("%w: product description is required", models.ErrInvalidInput)
	}
	resp, err := s.Client.Complete(ctx, ChatCompletionRequest{
		Model:       s.Model,
		Temperature: 0.7,
		Messages: []ChatMessageParam{
			{Role: "system", Content: recommendSystemPrompt},
			{Role: "user", Content: "Please recommend influencers that match the following product: " + productDescription},
		},
	})
	if err != nil {
		return "", fmt.Errorf("recommend influencers: %w", err)
	}
	return resp.Content, nil
}

func buildInsightPrompt(inf models.Influencer) string {
	return fmt.Sprintf(`Please analyze this influencer's activity data and summarize it in one paragraph.

Influencer Name: %s
Followers: %d
Main Categories: %s
Average Engagement Rate: %.1f%%
Active Platforms: %s
Average Rating: %.1f/5.0

Based on this data, please provide a concise summary of the influencer's strengths, target audience, and collaboration suitability.`,
		inf.ChannelName, inf.Followers, strings.Join(inf.Categories, ", "),
		inf.EngagementRate, strings.Join(inf.Platforms, ", "), inf.Rating)
}

// InfluencerInsight produces (and caches) a one-paragraph profile summary.
func (s *InsightService) InfluencerInsight(ctx context.Context, influencerID int) (string, error) {
	key := fmt.Sprintf("insight:influencer:%d", influencerID)
	if s.Cache != nil {
		if cached, ok := s.Cache.Get(ctx, key); ok {
			return cached, nil
		}
	}

	inf, err := s.Influencers.GetInfluencerByID(ctx, influencerID)
	if err != nil {
		return "", err
	}

	resp, err := s.Client.Complete(ctx, ChatCompletionRequest{
		Model:       s.Model,
		Temperature: 0.7,
		Messages: []ChatMessageParam{
			{Role: "system", Content: insightSystemPrompt},
			{Role: "user", Content: buildInsightPrompt(inf)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("influencer insight: %w", err)
	}

	if s.Cache != nil {
		s.Cache.Set(ctx, key, resp.Content, insightCacheTTL)
	}
	return resp.Content, nil
}
