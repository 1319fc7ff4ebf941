package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"influBack/internal/models"
)

type InfluencerRepository struct {
	DB *sql.DB
}

// list columns are stored comma-joined
func joinList(items []string) string {
	return strings.Join(items, ",")
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func (r *InfluencerRepository) CreateInfluencer(ctx context.Context, inf models.Influencer) (models.Influencer, error) {
	query := `
		INSERT INTO influencers (user_id, channel_name, followers, engagement_rate, categories, platforms, content_urls, rating, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		inf.UserID, inf.ChannelName, inf.Followers, inf.EngagementRate,
		joinList(inf.Categories), joinList(inf.Platforms), joinList(inf.ContentURLs), inf.Rating,
	)
	if err != nil {
		return models.Influencer{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Influencer{}, err
	}
	inf.ID = int(id)
	return inf, nil
}

func (r *InfluencerRepository) scanInfluencer(row *sql.Row) (models.Influencer, error) {
	var (
		inf                               models.Influencer
		categories, platforms, contentURL string
	)
	err := row.Scan(
		&inf.ID, &inf.UserID, &inf.ChannelName, &inf.Followers, &inf.EngagementRate,
		&categories, &platforms, &contentURL, &inf.Rating, &inf.CreatedAt, &inf.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Influencer{}, models.ErrInfluencerNotFound
	}
	if err != nil {
		return models.Influencer{}, err
	}
	inf.Categories = splitList(categories)
	inf.Platforms = splitList(platforms)
	inf.ContentURLs = splitList(contentURL)
	return inf, nil
}

const influencerColumns = `id, user_id, channel_name, followers, engagement_rate,
	COALESCE(categories, ''), COALESCE(platforms, ''), COALESCE(content_urls, ''),
	rating, created_at, updated_at`

func (r *InfluencerRepository) GetInfluencerByID(ctx context.Context, id int) (models.Influencer, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+influencerColumns+` FROM influencers WHERE id = ?`, id)
	return r.scanInfluencer(row)
}

func (r *InfluencerRepository) GetInfluencerByUserID(ctx context.Context, userID int) (models.Influencer, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+influencerColumns+` FROM influencers WHERE user_id = ?`, userID)
	return r.scanInfluencer(row)
}

func (r *InfluencerRepository) UpdateInfluencer(ctx context.Context, inf models.Influencer) error {
	query := `
		UPDATE influencers
		SET channel_name = ?, followers = ?, engagement_rate = ?, categories = ?, platforms = ?, content_urls = ?, updated_at = NOW()
		WHERE id = ?
	`
	_, err := r.DB.ExecContext(ctx, query,
		inf.ChannelName, inf.Followers, inf.EngagementRate,
		joinList(inf.Categories), joinList(inf.Platforms), joinList(inf.ContentURLs), inf.ID,
	)
	return err
}

func (r *InfluencerRepository) GetInfluencers(ctx context.Context, filter models.InfluencerFilter) ([]models.Influencer, error) {
	query := `SELECT ` + influencerColumns + ` FROM influencers WHERE 1=1`
	args := []interface{}{}

	if filter.Category != "" {
		query += ` AND FIND_IN_SET(?, categories) > 0`
		args = append(args, filter.Category)
	}
	if filter.Platform != "" {
		query += ` AND FIND_IN_SET(?, platforms) > 0`
		args = append(args, filter.Platform)
	}
	if filter.MinFollowers > 0 {
		query += ` AND followers >= ?`
		args = append(args, filter.MinFollowers)
	}
	query += ` ORDER BY followers DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	influencers := []models.Influencer{}
	for rows.Next() {
		var (
			inf                               models.Influencer
			categories, platforms, contentURL string
		)
		err := rows.Scan(
			&inf.ID, &inf.UserID, &inf.ChannelName, &inf.Followers, &inf.EngagementRate,
			&categories, &platforms, &contentURL, &inf.Rating, &inf.CreatedAt, &inf.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		inf.Categories = splitList(categories)
		inf.Platforms = splitList(platforms)
		inf.ContentURLs = splitList(contentURL)
		influencers = append(influencers, inf)
	}
	return influencers, rows.Err()
}

// RecalculateRating refreshes the aggregate rating from overall review scores.
func (r *InfluencerRepository) RecalculateRating(ctx context.Context, influencerID int) error {
	query := `
		UPDATE influencers
		SET rating = COALESCE((
			SELECT AVG(rv.overall_rating)
			FROM reviews rv
			JOIN campaign_history ch ON rv.campaign_id = ch.id
			WHERE ch.influencer_id = ?
		), 0), updated_at = NOW()
		WHERE id = ?
	`
	_, err := r.DB.ExecContext(ctx, query, influencerID, influencerID)
	return err
}
