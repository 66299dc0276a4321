package postgres

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/coworking/internal/domain/errors"
	"github.com/polkiloo/coworking/internal/domain/model"
	"github.com/polkiloo/coworking/internal/domain/repository"
)

const (
	uniqueViolation     = "23505"
	invalidTextFormat   = "22P02"
	checkViolation      = "23514"
	healthCheckDeadline = 2 * time.Second
)

// pgxPool is the subset of *pgxpool.Pool the storage relies on.
type pgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

var _ repository.Factory = (*Storage)(nil)

type userRepository struct {
	storage *Storage
}

type bookingRepository struct {
	storage *Storage
}

// New connects to PostgreSQL and applies pending migrations.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	if err := runMigrations(ctx, dsn); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Info("database schema is up to date")

	return &Storage{pool: pool, logger: logger}, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Bookings() repository.BookingRepository {
	return &bookingRepository{storage: s}
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckDeadline)
	defer cancel()
	return s.pool.Ping(ctx)
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, email, passwordHash, name string) (*model.User, error) {
	const query = `INSERT INTO users (id, email, password_hash, name) VALUES ($1, $2, $3, $4) RETURNING created_at`
	u := model.User{ID: uuid.NewString(), Email: email, PasswordHash: passwordHash, Name: name}
	err := r.storage.pool.QueryRow(ctx, query, u.ID, email, passwordHash, name).Scan(&u.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == uniqueViolation {
			return nil, domainErrors.ErrDuplicateEmail
		}
		return nil, domainErrors.WrapStore("insert user", err)
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, password_hash, name, created_at FROM users WHERE email=$1`
	return r.getOne(ctx, "select user by email", query, email)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	const query = `SELECT id, email, password_hash, name, created_at FROM users WHERE id=$1`
	return r.getOne(ctx, "select user by id", query, id)
}

func (r *userRepository) getOne(ctx context.Context, op, query string, arg any) (*model.User, error) {
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgErrorCode(err) == invalidTextFormat {
			return nil, domainErrors.ErrNotFound
		}
		return nil, domainErrors.WrapStore(op, err)
	}
	return &u, nil
}

// --- BookingRepository implementation ---

func (r *bookingRepository) Create(ctx context.Context, b model.Booking) (*model.Booking, error) {
	const query = `INSERT INTO bookings (id, user_id, space_type, sub_type, start_date, end_date, total_amount)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING created_at`
	b.ID = uuid.NewString()
	err := r.storage.pool.QueryRow(ctx, query, b.ID, b.UserID, b.SpaceType, b.SubType, b.StartDate, b.EndDate, b.TotalAmount).Scan(&b.CreatedAt)
	if err != nil {
		switch pgErrorCode(err) {
		case invalidTextFormat, checkViolation:
			return nil, domainErrors.ErrInvalidInput
		}
		return nil, domainErrors.WrapStore("insert booking", err)
	}
	return &b, nil
}

// ListByUser runs a fresh query every time the sequence is ranged over.
func (r *bookingRepository) ListByUser(ctx context.Context, userID string) iter.Seq2[model.Booking, error] {
	const query = `SELECT id, user_id, space_type, sub_type, start_date, end_date, total_amount, created_at
                   FROM bookings WHERE user_id=$1 ORDER BY start_date, created_at`
	return func(yield func(model.Booking, error) bool) {
		rows, err := r.storage.pool.Query(ctx, query, userID)
		if err != nil {
			if pgErrorCode(err) == invalidTextFormat {
				return
			}
			yield(model.Booking{}, domainErrors.WrapStore("list bookings", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var b model.Booking
			if err := rows.Scan(&b.ID, &b.UserID, &b.SpaceType, &b.SubType, &b.StartDate, &b.EndDate, &b.TotalAmount, &b.CreatedAt); err != nil {
				yield(model.Booking{}, domainErrors.WrapStore("scan booking", err))
				return
			}
			if !yield(b, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			if pgErrorCode(err) == invalidTextFormat {
				return
			}
			yield(model.Booking{}, domainErrors.WrapStore("list bookings", err))
		}
	}
}
