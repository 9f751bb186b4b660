package repository

import (
	"context"
	"database/sql"
	"errors"

	"skill-pulse/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrRoleNotFound = errors.New("role not found")

type Role struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// RequiredSkillRow is one required-skill requirement as stored for a
// role or job, in declared position order. SkillName is empty when the
// referenced skill is missing from the catalog, which callers must
// treat as a configuration error rather than skip.
type RequiredSkillRow struct {
	SkillID    uuid.UUID
	SkillName  string
	MinimumSCI float64
	Importance int
	Position   int
}

type RoleRepository interface {
	ListRoles(ctx context.Context) ([]Role, error)
	GetByID(ctx context.Context, roleID uuid.UUID) (Role, error)
	FindRequiredSkills(ctx context.Context, roleID uuid.UUID) ([]RequiredSkillRow, error)
}

type PostgresRoleRepository struct {
	db database.DB
}

func NewPostgresRoleRepository(db database.DB) *PostgresRoleRepository {
	return &PostgresRoleRepository{db: db}
}

func (r *PostgresRoleRepository) ListRoles(ctx context.Context) ([]Role, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, COALESCE(description, '') FROM roles ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Role, 0)
	for rows.Next() {
		var role Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description); err != nil {
			return nil, err
		}
		out = append(out, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRoleRepository) GetByID(ctx context.Context, roleID uuid.UUID) (Role, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, COALESCE(description, '') FROM roles WHERE id = $1`, roleID)

	var role Role
	if err := row.Scan(&role.ID, &role.Name, &role.Description); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Role{}, ErrRoleNotFound
		}
		return Role{}, err
	}
	return role, nil
}

func (r *PostgresRoleRepository) FindRequiredSkills(ctx context.Context, roleID uuid.UUID) ([]RequiredSkillRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT rs.skill_id, COALESCE(s.name, ''), rs.minimum_sci, rs.importance, rs.position
		 FROM role_skills rs
		 LEFT JOIN skills s ON s.id = rs.skill_id
		 WHERE rs.role_id = $1
		 ORDER BY rs.position ASC`,
		roleID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequiredSkills(rows)
}

func collectRequiredSkills(rows database.Rows) ([]RequiredSkillRow, error) {
	out := make([]RequiredSkillRow, 0)
	for rows.Next() {
		var row RequiredSkillRow
		if err := rows.Scan(&row.SkillID, &row.SkillName, &row.MinimumSCI, &row.Importance, &row.Position); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
