package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"influBack/internal/models"
)

type PaymentRepository struct {
	DB *sql.DB
}

// CreatePaymentWithCampaign records the simulated payment and activates the
// campaign in one transaction: either both rows exist afterwards or neither.
// contract_id is unique on payments, so paying twice fails cleanly.
func (r *PaymentRepository) CreatePaymentWithCampaign(ctx context.Context, payment models.Payment, campaign models.Campaign) (_ models.Payment, _ models.Campaign, err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Payment{}, models.Campaign{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO payments (contract_id, amount, status, created_at)
		VALUES (?, ?, 'paid', NOW())
	`, payment.ContractID, payment.Amount)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			err = models.ErrAlreadyPaid
		}
		return models.Payment{}, models.Campaign{}, err
	}
	paymentID, err := result.LastInsertId()
	if err != nil {
		return models.Payment{}, models.Campaign{}, err
	}
	payment.ID = int(paymentID)
	payment.Status = models.PaymentPaid

	result, err = tx.ExecContext(ctx, `
		INSERT INTO campaign_history (brand_id, influencer_id, proposal_id, brand_name, start_date, end_date, budget, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 'ongoing', NOW())
	`, campaign.BrandID, campaign.InfluencerID, campaign.ProposalID, campaign.BrandName,
		campaign.StartDate, campaign.EndDate, campaign.Budget)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			err = models.ErrAlreadyPaid
		}
		return models.Payment{}, models.Campaign{}, err
	}
	campaignID, err := result.LastInsertId()
	if err != nil {
		return models.Payment{}, models.Campaign{}, err
	}
	campaign.ID = int(campaignID)
	campaign.Status = models.CampaignOngoing
	return payment, campaign, nil
}

func (r *PaymentRepository) GetPaymentByContractID(ctx context.Context, contractID int) (models.Payment, error) {
	var p models.Payment
	query := `SELECT id, contract_id, amount, status, created_at, updated_at FROM payments WHERE contract_id = ?`
	err := r.DB.QueryRowContext(ctx, query, contractID).Scan(
		&p.ID, &p.ContractID, &p.Amount, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Payment{}, models.ErrPaymentNotFound
	}
	if err != nil {
		return models.Payment{}, err
	}
	return p, nil
}
