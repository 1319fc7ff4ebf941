package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"influBack/internal/models"
)

type ContractRepository struct {
	DB *sql.DB
}

const contractColumns = `id, proposal_id, content, signed_by_brand, signed_by_influencer, status, created_at, updated_at`

func (r *ContractRepository) scanContract(row *sql.Row) (models.Contract, error) {
	var c models.Contract
	err := row.Scan(
		&c.ID, &c.ProposalID, &c.Content, &c.SignedByBrand, &c.SignedByInfluencer,
		&c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contract{}, models.ErrContractNotFound
	}
	if err != nil {
		return models.Contract{}, err
	}
	return c, nil
}

func (r *ContractRepository) GetContractByID(ctx context.Context, id int) (models.Contract, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+contractColumns+` FROM contracts WHERE id = ?`, id)
	return r.scanContract(row)
}

func (r *ContractRepository) GetContractByProposalID(ctx context.Context, proposalID int) (models.Contract, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+contractColumns+` FROM contracts WHERE proposal_id = ?`, proposalID)
	return r.scanContract(row)
}

// CreateContract inserts the generated contract for a proposal. proposal_id is
// unique, so when two first visits race the loser rereads the winner's row.
func (r *ContractRepository) CreateContract(ctx context.Context, c models.Contract) (models.Contract, error) {
	query := `
		INSERT INTO contracts (proposal_id, content, status, created_at)
		VALUES (?, ?, 'pending', NOW())
	`
	result, err := r.DB.ExecContext(ctx, query, c.ProposalID, c.Content)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return r.GetContractByProposalID(ctx, c.ProposalID)
		}
		return models.Contract{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Contract{}, err
	}
	c.ID = int(id)
	c.Status = models.ContractPending
	return c, nil
}

// Sign sets the signature flag for the given role and evaluates the
// pending -> signed transition from the flags as stored, inside one
// transaction. Flags only ever go from false to true here.
func (r *ContractRepository) Sign(ctx context.Context, contractID int, role string) (c models.Contract, err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Contract{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	column := "signed_by_influencer"
	if role == models.RoleBrand {
		column = "signed_by_brand"
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE contracts SET `+column+` = TRUE, updated_at = NOW() WHERE id = ?
	`, contractID)
	if err != nil {
		return models.Contract{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return models.Contract{}, err
	}
	if affected == 0 {
		// MySQL reports 0 affected rows for a no-change update too, so
		// verify the row exists before giving up.
		var exists int
		scanErr := tx.QueryRowContext(ctx, `SELECT 1 FROM contracts WHERE id = ?`, contractID).Scan(&exists)
		if errors.Is(scanErr, sql.ErrNoRows) {
			err = models.ErrContractNotFound
			return models.Contract{}, err
		}
		if scanErr != nil {
			err = scanErr
			return models.Contract{}, err
		}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE contracts SET status = 'signed', updated_at = NOW()
		WHERE id = ? AND signed_by_brand = TRUE AND signed_by_influencer = TRUE
	`, contractID)
	if err != nil {
		return models.Contract{}, err
	}

	err = tx.QueryRowContext(ctx, `SELECT `+contractColumns+` FROM contracts WHERE id = ?`, contractID).Scan(
		&c.ID, &c.ProposalID, &c.Content, &c.SignedByBrand, &c.SignedByInfluencer,
		&c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return models.Contract{}, err
	}
	return c, nil
}
