package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"influBack/internal/models"
)

type CampaignRepository struct {
	DB *sql.DB
}

const campaignColumns = `id, brand_id, influencer_id, proposal_id, brand_name, start_date, end_date,
	budget, reach, engagement_rate, status, COALESCE(ai_report, ''), created_at, updated_at`

func (r *CampaignRepository) scanCampaign(row *sql.Row) (models.Campaign, error) {
	var c models.Campaign
	err := row.Scan(
		&c.ID, &c.BrandID, &c.InfluencerID, &c.ProposalID, &c.BrandName, &c.StartDate, &c.EndDate,
		&c.Budget, &c.Reach, &c.EngagementRate, &c.Status, &c.AIReport, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Campaign{}, models.ErrCampaignNotFound
	}
	if err != nil {
		return models.Campaign{}, err
	}
	return c, nil
}

func (r *CampaignRepository) GetCampaignByID(ctx context.Context, id int) (models.Campaign, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+campaignColumns+` FROM campaign_history WHERE id = ?`, id)
	return r.scanCampaign(row)
}

func (r *CampaignRepository) GetCampaignByProposalID(ctx context.Context, proposalID int) (models.Campaign, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+campaignColumns+` FROM campaign_history WHERE proposal_id = ?`, proposalID)
	return r.scanCampaign(row)
}

func (r *CampaignRepository) GetCampaignsForUser(ctx context.Context, userID int) ([]models.Campaign, error) {
	query := `
		SELECT ch.id, ch.brand_id, ch.influencer_id, ch.proposal_id, ch.brand_name, ch.start_date, ch.end_date,
		       ch.budget, ch.reach, ch.engagement_rate, ch.status, COALESCE(ch.ai_report, ''), ch.created_at, ch.updated_at
		FROM campaign_history ch
		JOIN brands b ON ch.brand_id = b.id
		JOIN influencers i ON ch.influencer_id = i.id
		WHERE b.user_id = ? OR i.user_id = ?
		ORDER BY ch.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []models.Campaign{}
	for rows.Next() {
		var c models.Campaign
		err := rows.Scan(
			&c.ID, &c.BrandID, &c.InfluencerID, &c.ProposalID, &c.BrandName, &c.StartDate, &c.EndDate,
			&c.Budget, &c.Reach, &c.EngagementRate, &c.Status, &c.AIReport, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *CampaignRepository) CompleteCampaign(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE campaign_history SET status = 'completed', updated_at = NOW()
		WHERE id = ? AND status = 'ongoing'
	`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrCampaignNotFound
	}
	return nil
}

func (r *CampaignRepository) UpdateMetrics(ctx context.Context, id, reach int, engagementRate float64) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE campaign_history SET reach = ?, engagement_rate = ?, updated_at = NOW() WHERE id = ?
	`, reach, engagementRate, id)
	return err
}

func (r *CampaignRepository) UpdateAIReport(ctx context.Context, id int, report string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE campaign_history SET ai_report = ?, updated_at = NOW() WHERE id = ?
	`, report, id)
	return err
}

// CloseExpired completes every ongoing campaign whose end date has passed.
// Used by the background closer in cmd.
func (r *CampaignRepository) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE campaign_history SET status = 'completed', updated_at = NOW()
		WHERE status = 'ongoing' AND end_date < ?
	`, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
