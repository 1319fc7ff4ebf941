package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"influBack/internal/models"
)

type ProposalRepository struct {
	DB *sql.DB
}

func (r *ProposalRepository) CreateProposal(ctx context.Context, p models.Proposal) (models.Proposal, error) {
	query := `
		INSERT INTO proposals (brand_id, influencer_id, campaign_name, budget, schedule, message, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, 'pending', NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		p.BrandID, p.InfluencerID, p.CampaignName, p.Budget, p.Schedule, p.Message,
	)
	if err != nil {
		return models.Proposal{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Proposal{}, err
	}
	p.ID = int(id)
	p.Status = models.ProposalPending
	return p, nil
}

func (r *ProposalRepository) GetProposalByID(ctx context.Context, id int) (models.Proposal, error) {
	var p models.Proposal
	query := `
		SELECT p.id, p.brand_id, p.influencer_id, p.campaign_name, p.budget, p.schedule,
		       COALESCE(p.message, ''), p.status, p.created_at, p.updated_at,
		       b.company_name, i.channel_name
		FROM proposals p
		JOIN brands b ON p.brand_id = b.id
		JOIN influencers i ON p.influencer_id = i.id
		WHERE p.id = ?
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.BrandID, &p.InfluencerID, &p.CampaignName, &p.Budget, &p.Schedule,
		&p.Message, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		&p.CompanyName, &p.ChannelName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Proposal{}, models.ErrProposalNotFound
	}
	if err != nil {
		return models.Proposal{}, err
	}
	return p, nil
}

// PartyUserIDs resolves the user accounts behind the proposal's brand and influencer.
func (r *ProposalRepository) PartyUserIDs(ctx context.Context, proposalID int) (brandUserID, influencerUserID int, err error) {
	query := `
		SELECT b.user_id, i.user_id
		FROM proposals p
		JOIN brands b ON p.brand_id = b.id
		JOIN influencers i ON p.influencer_id = i.id
		WHERE p.id = ?
	`
	err = r.DB.QueryRowContext(ctx, query, proposalID).Scan(&brandUserID, &influencerUserID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, models.ErrProposalNotFound
	}
	return brandUserID, influencerUserID, err
}

func (r *ProposalRepository) listProposals(ctx context.Context, where string, arg int) ([]models.Proposal, error) {
	query := `
		SELECT p.id, p.brand_id, p.influencer_id, p.campaign_name, p.budget, p.schedule,
		       COALESCE(p.message, ''), p.status, p.created_at, p.updated_at,
		       b.company_name, i.channel_name
		FROM proposals p
		JOIN brands b ON p.brand_id = b.id
		JOIN influencers i ON p.influencer_id = i.id
		WHERE ` + where + `
		ORDER BY p.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	proposals := []models.Proposal{}
	for rows.Next() {
		var p models.Proposal
		err := rows.Scan(
			&p.ID, &p.BrandID, &p.InfluencerID, &p.CampaignName, &p.Budget, &p.Schedule,
			&p.Message, &p.Status, &p.CreatedAt, &p.UpdatedAt,
			&p.CompanyName, &p.ChannelName,
		)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}
	return proposals, rows.Err()
}

func (r *ProposalRepository) GetProposalsByInfluencerID(ctx context.Context, influencerID int) ([]models.Proposal, error) {
	return r.listProposals(ctx, "p.influencer_id = ?", influencerID)
}

func (r *ProposalRepository) GetProposalsByBrandID(ctx context.Context, brandID int) ([]models.Proposal, error) {
	return r.listProposals(ctx, "p.brand_id = ?", brandID)
}

// RespondToProposal flips a pending proposal to accepted or rejected. The
// status update and the chat room insert happen in one transaction so an
// accepted proposal can never be left without its room. A proposal that is
// no longer pending is not touched.
func (r *ProposalRepository) RespondToProposal(ctx context.Context, proposalID int, status string) (room models.ChatRoom, err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.ChatRoom{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	result, err := tx.ExecContext(ctx, `
		UPDATE proposals SET status = ?, updated_at = NOW()
		WHERE id = ? AND status = 'pending'
	`, status, proposalID)
	if err != nil {
		return models.ChatRoom{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return models.ChatRoom{}, err
	}
	if affected == 0 {
		err = models.ErrProposalResolved
		return models.ChatRoom{}, err
	}

	if status != models.ProposalAccepted {
		return models.ChatRoom{}, nil
	}

	err = tx.QueryRowContext(ctx, `
		SELECT brand_id, influencer_id FROM proposals WHERE id = ?
	`, proposalID).Scan(&room.BrandID, &room.InfluencerID)
	if err != nil {
		return models.ChatRoom{}, err
	}
	room.ProposalID = proposalID

	res, err := tx.ExecContext(ctx, `
		INSERT INTO chat_rooms (brand_id, influencer_id, proposal_id, created_at)
		VALUES (?, ?, ?, NOW())
	`, room.BrandID, room.InfluencerID, proposalID)
	if err != nil {
		// proposal_id is unique, so a concurrent accept already made the room
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			err = models.ErrProposalResolved
		}
		return models.ChatRoom{}, err
	}
	roomID, err := res.LastInsertId()
	if err != nil {
		return models.ChatRoom{}, err
	}
	room.ID = int(roomID)
	return room, nil
}
