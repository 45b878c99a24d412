package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/repository"
)

// PropositionRepository implements repository.Proposition for PostgreSQL
type PropositionRepository struct {
	db *pgxpool.Pool
}

var _ repository.Proposition = (*PropositionRepository)(nil)

// NewPropositionRepository creates a new PropositionRepository
func NewPropositionRepository(db *pgxpool.Pool) *PropositionRepository {
	return &PropositionRepository{db: db}
}

const propositionColumns = `id, number, year, election_date, title, summary, status, category, result`

func scanProposition(row pgx.Row) (domain.Proposition, error) {
	var p domain.Proposition
	err := row.Scan(&p.ID, &p.Number, &p.Year, &p.ElectionDate, &p.Title, &p.Summary,
		&p.Status, &p.Category, &p.Result)
	return p, err
}

// GetProposition returns a single proposition by its canonical ID
func (r *PropositionRepository) GetProposition(ctx context.Context, id string) (*domain.Proposition, error) {
	row := r.db.QueryRow(ctx, `SELECT `+propositionColumns+` FROM propositions WHERE id = $1`, id)
	p, err := scanProposition(row)
	if err != nil {
		return nil, translateError(err, ErrMsgFailedToGetProposition, domain.ErrPropositionNotFound)
	}
	return &p, nil
}

// ListPropositionsByYear returns the year's propositions ordered by ballot number
func (r *PropositionRepository) ListPropositionsByYear(ctx context.Context, year int) ([]domain.Proposition, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+propositionColumns+` FROM propositions WHERE year = $1 ORDER BY number`, year)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPropositions, err)
	}
	props, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Proposition, error) {
		return scanProposition(row)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPropositions, err)
	}
	return props, nil
}

// SaveProposition inserts or updates a proposition. Rows with a certified
// result are left untouched and the call fails with domain.ErrInvalidInput.
func (r *PropositionRepository) SaveProposition(ctx context.Context, p *domain.Proposition) error {
	if p.ID != domain.FormatPropositionID(p.Year, p.Number) {
		return fmt.Errorf("%w: %s: %q", domain.ErrInvalidID, ErrMsgPropositionIDMismatch, p.ID)
	}

	query := `
		INSERT INTO propositions (id, number, year, election_date, title, summary, status, category, result)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			election_date = EXCLUDED.election_date,
			title = EXCLUDED.title,
			summary = EXCLUDED.summary,
			status = EXCLUDED.status,
			category = EXCLUDED.category,
			result = EXCLUDED.result,
			updated_at = NOW()
		WHERE propositions.result IS NULL
	`
	tag, err := r.db.Exec(ctx, query, p.ID, p.Number, p.Year, p.ElectionDate, p.Title, p.Summary,
		p.Status, p.Category, p.Result)
	if err != nil {
		return translateError(err, ErrMsgFailedToSaveProposition, domain.ErrPropositionNotFound)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s: %s", domain.ErrInvalidInput, ErrMsgPropositionCertified, p.ID)
	}
	return nil
}

// GetFinance returns the campaign finance summary, or domain.ErrNoData
func (r *PropositionRepository) GetFinance(ctx context.Context, propositionID string) (*domain.Finance, error) {
	var (
		support, opposition string
		f                   = domain.Finance{PropositionID: propositionID}
	)
	err := r.db.QueryRow(ctx, `
		SELECT total_support::text, total_opposition::text, committees, top_donors, updated_at
		FROM proposition_finance WHERE proposition_id = $1`, propositionID).
		Scan(&support, &opposition, &f.Committees, &f.TopDonors, &f.UpdatedAt)
	if err != nil {
		return nil, translateError(err, ErrMsgFailedToGetFinance, domain.ErrNoData)
	}

	if f.TotalSupport, err = parseAmount(support); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFinance, err)
	}
	if f.TotalOpposition, err = parseAmount(opposition); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFinance, err)
	}
	return &f, nil
}

// SaveFinance replaces the finance summary for a proposition
func (r *PropositionRepository) SaveFinance(ctx context.Context, f *domain.Finance) error {
	committees := f.Committees
	if committees == nil {
		committees = []domain.Committee{}
	}
	donors := f.TopDonors
	if donors == nil {
		donors = []domain.Donor{}
	}
	updatedAt := f.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO proposition_finance (proposition_id, total_support, total_opposition, committees, top_donors, updated_at)
		VALUES ($1, $2::numeric, $3::numeric, $4, $5, $6)
		ON CONFLICT (proposition_id) DO UPDATE SET
			total_support = EXCLUDED.total_support,
			total_opposition = EXCLUDED.total_opposition,
			committees = EXCLUDED.committees,
			top_donors = EXCLUDED.top_donors,
			updated_at = EXCLUDED.updated_at
	`, f.PropositionID, f.TotalSupport.String(), f.TotalOpposition.String(), committees, donors, updatedAt)
	if err != nil {
		return translateError(err, ErrMsgFailedToSaveFinance, domain.ErrPropositionNotFound)
	}
	return nil
}

// GetBallotAnalysis returns the ballot label profile, or domain.ErrNoData
func (r *PropositionRepository) GetBallotAnalysis(ctx context.Context, propositionID string) (*domain.BallotAnalysis, error) {
	var b domain.BallotAnalysis
	err := r.db.QueryRow(ctx, `
		SELECT readability, complexity, sentiment, emphasis, word_count
		FROM ballot_analyses WHERE proposition_id = $1`, propositionID).
		Scan(&b.Readability, &b.Complexity, &b.Sentiment, &b.Emphasis, &b.WordCount)
	if err != nil {
		return nil, translateError(err, ErrMsgFailedToGetBallot, domain.ErrNoData)
	}
	return &b, nil
}

// SaveBallotAnalysis replaces the ballot label profile for a proposition
func (r *PropositionRepository) SaveBallotAnalysis(ctx context.Context, propositionID string, b *domain.BallotAnalysis) error {
	emphasis := b.Emphasis
	if emphasis == "" {
		emphasis = domain.EmphasisNeutral
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO ballot_analyses (proposition_id, readability, complexity, sentiment, emphasis, word_count)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (proposition_id) DO UPDATE SET
			readability = EXCLUDED.readability,
			complexity = EXCLUDED.complexity,
			sentiment = EXCLUDED.sentiment,
			emphasis = EXCLUDED.emphasis,
			word_count = EXCLUDED.word_count
	`, propositionID, b.Readability, b.Complexity, b.Sentiment, emphasis, b.WordCount)
	if err != nil {
		return translateError(err, ErrMsgFailedToSaveBallot, domain.ErrPropositionNotFound)
	}
	return nil
}

// GetEndorsements returns endorsements in insertion order, or domain.ErrNoData when there are none
func (r *PropositionRepository) GetEndorsements(ctx context.Context, propositionID string) ([]domain.Endorsement, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name, position, weight FROM endorsements
		WHERE proposition_id = $1 ORDER BY id`, propositionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEndorsements, err)
	}
	endorsements, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Endorsement, error) {
		var e domain.Endorsement
		err := row.Scan(&e.Name, &e.Position, &e.Weight)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEndorsements, err)
	}
	if len(endorsements) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoData, ErrMsgFailedToGetEndorsements)
	}
	return endorsements, nil
}

// ReplaceEndorsements deletes the existing list and copies in the new one in a single transaction
func (r *PropositionRepository) ReplaceEndorsements(ctx context.Context, propositionID string, endorsements []domain.Endorsement) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM propositions WHERE id = $1)`, propositionID).Scan(&exists); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetProposition, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrPropositionNotFound, propositionID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM endorsements WHERE proposition_id = $1`, propositionID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToClearEndorsements, err)
	}

	if len(endorsements) > 0 {
		_, err = tx.CopyFrom(ctx, pgx.Identifier{TableEndorsements}, endorsementColumns,
			pgx.CopyFromSlice(len(endorsements), func(i int) ([]any, error) {
				e := endorsements[i]
				return []any{propositionID, e.Name, string(e.Position), e.Weight}, nil
			}))
		if err != nil {
			return translateError(err, ErrMsgFailedToCopyEndorsements, domain.ErrPropositionNotFound)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

