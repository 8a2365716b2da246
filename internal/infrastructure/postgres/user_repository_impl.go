package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/repository"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// userRow mirrors the users table without the password hash.
type userRow struct {
	entity.Identity
	Role    string
	Program string
	Term    int
	Skills  string
}

func (r userRow) toEntity() (*entity.User, error) {
	p, ok := entity.NewProfile(entity.Role(r.Role), r.Program, r.Term, r.Skills)
	if !ok {
		return nil, fmt.Errorf("user %s has unknown role %q", r.ID, r.Role)
	}
	return &entity.User{Identity: r.Identity, Profile: p}, nil
}

func (r *userRow) targets() []any {
	return []any{&r.ID, &r.Email, &r.Name, &r.Role, &r.Program, &r.Term, &r.Skills, &r.CreatedAt}
}

const userColumns = `id, email, name, role, program, term, skills, created_at`

func profileColumns(u *entity.User) (program string, term int, skills string) {
	if cp, ok := u.Candidate(); ok {
		return cp.Program, cp.Term, cp.Skills
	}
	return "", 0, ""
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User, passwordHash string) error {
	program, term, skills := profileColumns(u)
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, name, role, program, term, skills)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, u.Email, passwordHash, u.Name, string(u.Role()), program, term, skills)

	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		if pgCode(err) == codeUniqueViolation {
			return repository.ErrEmailTaken
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var row userRow
	err := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id).Scan(row.targets()...)
	if err != nil {
		if err = lookupErr(err); err == repository.ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return row.toEntity()
}

func (r *UserRepository) GetCredentialByEmail(ctx context.Context, email string) (*entity.UserCredential, error) {
	var (
		row  userRow
		hash string
	)
	err := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`, password_hash
		FROM users
		WHERE email = $1
	`, email).Scan(append(row.targets(), &hash)...)
	if err != nil {
		if err = lookupErr(err); err == repository.ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	u, err := row.toEntity()
	if err != nil {
		return nil, err
	}
	return &entity.UserCredential{User: *u, PasswordHash: hash}, nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	users := make([]entity.User, 0)
	for rows.Next() {
		var row userRow
		if err := rows.Scan(row.targets()...); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		u, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return users, nil
}

var (
	_ repository.UserRepository = (*UserRepository)(nil)
	_ DBTX                      = (pgx.Tx)(nil)
)
