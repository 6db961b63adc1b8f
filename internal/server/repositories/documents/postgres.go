package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/carteira/internal/common"
	"github.com/dmitrijs2005/carteira/internal/dbx"
	"github.com/dmitrijs2005/carteira/internal/server/models"
)

// linkColumns maps a document kind to its foreign-key column in the
// documents linkage table. The kind itself doubles as the table name.
var linkColumns = map[models.DocumentKind]string{
	models.KindCPF:             "cpf_id",
	models.KindRG:              "rg_id",
	models.KindCNH:             "cnh_id",
	models.KindVaccinationCard: "vaccination_card_id",
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert stores a new document row of doc.Kind and fills in its id.
func (r *PostgresRepository) Insert(ctx context.Context, doc *models.Document) (*models.Document, error) {

	var err error

	switch doc.Kind {
	case models.KindCPF, models.KindRG:
		query := fmt.Sprintf(
			`INSERT INTO %s (number, name, issued_by, issued_date)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id
			 `, doc.Kind)
		err = r.db.QueryRowContext(ctx, query,
			doc.Number, doc.Name, doc.IssuedBy, doc.IssuedDate).Scan(&doc.ID)

	case models.KindCNH:
		query :=
			`INSERT INTO cnh (number, name, uf, issued_by, issued_date, expiration_date, category)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id
			 `
		err = r.db.QueryRowContext(ctx, query,
			doc.Number, doc.Name, doc.UF, doc.IssuedBy, doc.IssuedDate, doc.ExpirationDate, doc.Category).Scan(&doc.ID)

	case models.KindVaccinationCard:
		query :=
			`INSERT INTO vaccination_card (number, name, birth_date, issued_date, expiration_date, gender)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id
			 `
		err = r.db.QueryRowContext(ctx, query,
			doc.Number, doc.Name, doc.BirthDate, doc.IssuedDate, doc.ExpirationDate, doc.Gender).Scan(&doc.ID)

	default:
		return nil, fmt.Errorf("unknown document kind: %q", doc.Kind)
	}

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return doc, nil
}

// LinkedID returns the id of the document currently linked for the given
// kind, or 0 when the user has no linkage row or the kind column is NULL.
func (r *PostgresRepository) LinkedID(ctx context.Context, userID int64, kind models.DocumentKind) (int64, error) {
	column, ok := linkColumns[kind]
	if !ok {
		return 0, fmt.Errorf("unknown document kind: %q", kind)
	}

	query := fmt.Sprintf(`SELECT %s FROM documents WHERE user_id = $1`, column)

	var id sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	if !id.Valid {
		return 0, nil
	}
	return id.Int64, nil
}

// UpsertLink points the user's linkage row at docID for the given kind,
// creating the row when it does not exist. The ON CONFLICT clause keyed by
// user_id makes concurrent first uploads converge on a single row.
func (r *PostgresRepository) UpsertLink(ctx context.Context, userID int64, kind models.DocumentKind, docID int64) error {
	column, ok := linkColumns[kind]
	if !ok {
		return fmt.Errorf("unknown document kind: %q", kind)
	}

	query := fmt.Sprintf(
		`INSERT INTO documents (user_id, %s)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET %s = EXCLUDED.%s
		 `, column, column, column)

	if _, err := r.db.ExecContext(ctx, query, userID, docID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Delete removes a superseded document row of the given kind.
func (r *PostgresRepository) Delete(ctx context.Context, kind models.DocumentKind, id int64) error {
	if _, ok := linkColumns[kind]; !ok {
		return fmt.Errorf("unknown document kind: %q", kind)
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, kind)

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get returns the linked document of the given kind, or common.ErrorNotFound
// when the user has no linkage row or that kind is unset.
func (r *PostgresRepository) Get(ctx context.Context, userID int64, kind models.DocumentKind) (*models.Document, error) {
	id, err := r.LinkedID(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, common.ErrorNotFound
	}
	return r.fetch(ctx, kind, id)
}

// GetSet returns all documents linked to the user. common.ErrorNotFound means
// the user has no linkage row at all.
func (r *PostgresRepository) GetSet(ctx context.Context, userID int64) (*models.DocumentSet, error) {
	query :=
		`SELECT cpf_id, rg_id, cnh_id, vaccination_card_id FROM documents
		 WHERE user_id = $1
		 `

	var cpfID, rgID, cnhID, vaccID sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&cpfID, &rgID, &cnhID, &vaccID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	set := &models.DocumentSet{}

	links := []struct {
		id   sql.NullInt64
		kind models.DocumentKind
		dst  **models.Document
	}{
		{cpfID, models.KindCPF, &set.CPF},
		{rgID, models.KindRG, &set.RG},
		{cnhID, models.KindCNH, &set.CNH},
		{vaccID, models.KindVaccinationCard, &set.VaccinationCard},
	}

	for _, l := range links {
		if !l.id.Valid {
			continue
		}
		doc, err := r.fetch(ctx, l.kind, l.id.Int64)
		if err != nil {
			return nil, err
		}
		*l.dst = doc
	}

	return set, nil
}

// fetch loads one document row by id from its kind table.
func (r *PostgresRepository) fetch(ctx context.Context, kind models.DocumentKind, id int64) (*models.Document, error) {

	doc := &models.Document{ID: id, Kind: kind}
	var err error

	switch kind {
	case models.KindCPF, models.KindRG:
		query := fmt.Sprintf(
			`SELECT number, name, issued_by, issued_date FROM %s WHERE id = $1`, kind)
		err = r.db.QueryRowContext(ctx, query, id).Scan(
			&doc.Number, &doc.Name, &doc.IssuedBy, &doc.IssuedDate)

	case models.KindCNH:
		query :=
			`SELECT number, name, uf, issued_by, issued_date, expiration_date, category FROM cnh WHERE id = $1`
		err = r.db.QueryRowContext(ctx, query, id).Scan(
			&doc.Number, &doc.Name, &doc.UF, &doc.IssuedBy, &doc.IssuedDate, &doc.ExpirationDate, &doc.Category)

	case models.KindVaccinationCard:
		query :=
			`SELECT number, name, birth_date, issued_date, expiration_date, gender FROM vaccination_card WHERE id = $1`
		err = r.db.QueryRowContext(ctx, query, id).Scan(
			&doc.Number, &doc.Name, &doc.BirthDate, &doc.IssuedDate, &doc.ExpirationDate, &doc.Gender)

	default:
		return nil, fmt.Errorf("unknown document kind: %q", kind)
	}

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return doc, nil
}
