package persistence

import (
	"context"
	"database/sql"
	"time"

	"pagecaster/domain/model"
	"pagecaster/domain/repository"
)

type PageCredentialRepositoryPostgres struct{ db *sql.DB }

func NewPageCredentialRepositoryPostgres(db *sql.DB) repository.IPageCredential {
	return &PageCredentialRepositoryPostgres{db: db}
}

func (r *PageCredentialRepositoryPostgres) Get(ctx context.Context, pageID string) (*model.PageCredential, error) {
	row := r.db.QueryRowContext(ctx, `SELECT page_id, page_name, access_token, owner_user_id, created_at, updated_at FROM page_credentials WHERE page_id=$1`, pageID)
	cred := &model.PageCredential{}
	if err := row.Scan(&cred.PageID, &cred.PageName, &cred.AccessToken, &cred.OwnerUserID, &cred.CreatedAt, &cred.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return cred, nil
}

func (r *PageCredentialRepositoryPostgres) Upsert(ctx context.Context, cred *model.PageCredential) error {
	now := time.Now().UTC()
	if cred.CreatedAt.IsZero() {
		cred.CreatedAt = now
	}
	cred.UpdatedAt = now
	q := `INSERT INTO page_credentials (page_id, page_name, access_token, owner_user_id, created_at, updated_at)
		  VALUES ($1,$2,$3,$4,$5,$6)
		  ON CONFLICT (page_id) DO UPDATE SET
			page_name=EXCLUDED.page_name,
			access_token=EXCLUDED.access_token,
			owner_user_id=EXCLUDED.owner_user_id,
			updated_at=EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, q, cred.PageID, cred.PageName, cred.AccessToken, cred.OwnerUserID, cred.CreatedAt, cred.UpdatedAt)
	return err
}

func (r *PageCredentialRepositoryPostgres) List(ctx context.Context, ownerUserID string) ([]*model.PageCredential, error) {
	q := `SELECT page_id, page_name, access_token, owner_user_id, created_at, updated_at FROM page_credentials`
	args := []interface{}{}
	if ownerUserID != "" {
		q += ` WHERE owner_user_id=$1`
		args = append(args, ownerUserID)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creds []*model.PageCredential
	for rows.Next() {
		cred := &model.PageCredential{}
		if err := rows.Scan(&cred.PageID, &cred.PageName, &cred.AccessToken, &cred.OwnerUserID, &cred.CreatedAt, &cred.UpdatedAt); err != nil {
			return nil, err
		}
		creds = append(creds, cred)
	}
	return creds, rows.Err()
}

func (r *PageCredentialRepositoryPostgres) Delete(ctx context.Context, pageID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM page_credentials WHERE page_id=$1`, pageID)
	return err
}
