package repo

import (
	"context"
	"database/sql"
	"time"
)

type ScenarioRow struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Hull      []byte    `json:"hull"`
	CreatedAt time.Time `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)

	SaveScenario(ctx context.Context, userID int, name string, hull []byte) (int, error)
	ListScenarios(ctx context.Context, userID int) ([]ScenarioRow, error)
	GetScenario(ctx context.Context, userID, id int) (ScenarioRow, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveScenario(ctx context.Context, userID int, name string, hull []byte) (int, error) {
	var id int
	query := "INSERT INTO scenarios (user_id, name, hull, created_at) VALUES ($1, $2, $3, now()) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, name, hull).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListScenarios(ctx context.Context, userID int) ([]ScenarioRow, error) {
	query := "SELECT id, name, hull, created_at FROM scenarios WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ScenarioRow
	for rows.Next() {
		var s ScenarioRow
		if err := rows.Scan(&s.ID, &s.Name, &s.Hull, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetScenario(ctx context.Context, userID, id int) (ScenarioRow, error) {
	var s ScenarioRow
	query := "SELECT id, name, hull, created_at FROM scenarios WHERE id=$1 AND user_id=$2"
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&s.ID, &s.Name, &s.Hull, &s.CreatedAt)
	return s, err
}
