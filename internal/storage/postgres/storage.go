package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/dormdine/dormdine/internal/domain/errors"
	"github.com/dormdine/dormdine/internal/domain/model"
	"github.com/dormdine/dormdine/internal/domain/repository"
)

// DBPool is the subset of pgxpool.Pool the storage relies on. Tests inject
// a pgxmock pool through it.
type DBPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   DBPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type mealRepository struct {
	storage *Storage
}

type reviewRepository struct {
	storage *Storage
}

type membershipRepository struct {
	storage *Storage
}

type cartRepository struct {
	storage *Storage
}

type paymentRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Meals() repository.MealRepository {
	return &mealRepository{storage: s}
}

func (s *Storage) Reviews() repository.ReviewRepository {
	return &reviewRepository{storage: s}
}

func (s *Storage) Memberships() repository.MembershipRepository {
	return &membershipRepository{storage: s}
}

func (s *Storage) Carts() repository.CartRepository {
	return &cartRepository{storage: s}
}

func (s *Storage) Payments() repository.PaymentRepository {
	return &paymentRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            role TEXT NOT NULL DEFAULT 'member',
            subscription_tier TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS meals (
            id SERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            category TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            rating DOUBLE PRECISION NOT NULL DEFAULT 0,
            likes BIGINT NOT NULL DEFAULT 0,
            image TEXT NOT NULL DEFAULT '',
            details TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS reviews (
            id SERIAL PRIMARY KEY,
            meal_id BIGINT NOT NULL REFERENCES meals(id),
            email TEXT NOT NULL,
            rating DOUBLE PRECISION NOT NULL,
            comment TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS memberships (
            id SERIAL PRIMARY KEY,
            tier TEXT UNIQUE NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            perks TEXT[] NOT NULL DEFAULT '{}'
        )`,
		`CREATE TABLE IF NOT EXISTS cart_items (
            id SERIAL PRIMARY KEY,
            email TEXT NOT NULL,
            meal_id BIGINT NOT NULL,
            title TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS payments (
            id SERIAL PRIMARY KEY,
            email TEXT NOT NULL,
            amount DOUBLE PRECISION NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS payment_items (
            payment_id BIGINT NOT NULL REFERENCES payments(id),
            cart_item_id BIGINT NOT NULL,
            PRIMARY KEY (payment_id, cart_item_id)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_cart_items_email ON cart_items(email, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_email ON payments(email, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, email string) (*model.User, error) {
	const query = `INSERT INTO users (email) VALUES ($1) RETURNING id, role, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Role, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Email = email
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, role, subscription_tier, created_at FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.Role, &u.SubscriptionTier, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id model.UserID) (*model.User, error) {
	const query = `SELECT id, email, role, subscription_tier, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, int64(id)).Scan(&u.ID, &u.Email, &u.Role, &u.SubscriptionTier, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	const query = `SELECT id, email, role, subscription_tier, created_at FROM users ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Role, &u.SubscriptionTier, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) PromoteToAdmin(ctx context.Context, id model.UserID) error {
	const query = `UPDATE users SET role='admin' WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) UpdateSubscription(ctx context.Context, email, tier string) error {
	const query = `UPDATE users SET subscription_tier=$1 WHERE email=$2`
	tag, err := r.storage.pool.Exec(ctx, query, tier, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- MealRepository implementation ---

func (r *mealRepository) Create(ctx context.Context, meal *model.Meal) (*model.Meal, error) {
	const query = `INSERT INTO meals (title, category, price, rating, image, details)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, likes, created_at`
	created := *meal
	err := r.storage.pool.QueryRow(ctx, query, meal.Title, meal.Category, meal.Price, meal.Rating, meal.Image, meal.Details).
		Scan(&created.ID, &created.Likes, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *mealRepository) GetByID(ctx context.Context, id model.MealID) (*model.Meal, error) {
	const query = `SELECT id, title, category, price, rating, likes, image, details, created_at FROM meals WHERE id=$1`
	var m model.Meal
	err := r.storage.pool.QueryRow(ctx, query, int64(id)).
		Scan(&m.ID, &m.Title, &m.Category, &m.Price, &m.Rating, &m.Likes, &m.Image, &m.Details, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *mealRepository) List(ctx context.Context) ([]model.Meal, error) {
	const query = `SELECT id, title, category, price, rating, likes, image, details, created_at
                   FROM meals ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Meal
	for rows.Next() {
		var m model.Meal
		if err := rows.Scan(&m.ID, &m.Title, &m.Category, &m.Price, &m.Rating, &m.Likes, &m.Image, &m.Details, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *mealRepository) Delete(ctx context.Context, id model.MealID) error {
	const query = `DELETE FROM meals WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *mealRepository) IncrementLikes(ctx context.Context, id model.MealID) (int64, error) {
	const query = `UPDATE meals SET likes = likes + 1 WHERE id=$1 RETURNING likes`
	var likes int64
	err := r.storage.pool.QueryRow(ctx, query, int64(id)).Scan(&likes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domainErrors.ErrNotFound
		}
		return 0, err
	}
	return likes, nil
}

// --- ReviewRepository implementation ---

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	const query = `INSERT INTO reviews (meal_id, email, rating, comment)
                   VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	created := *review
	err := r.storage.pool.QueryRow(ctx, query, int64(review.MealID), review.Email, review.Rating, review.Comment).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &created, nil
}

func (r *reviewRepository) List(ctx context.Context) ([]model.Review, error) {
	const query = `SELECT id, meal_id, email, rating, comment, created_at FROM reviews ORDER BY created_at DESC`
	return r.scanReviews(ctx, query)
}

func (r *reviewRepository) ListByMeal(ctx context.Context, mealID model.MealID) ([]model.Review, error) {
	const query = `SELECT id, meal_id, email, rating, comment, created_at
                   FROM reviews WHERE meal_id=$1 ORDER BY created_at DESC`
	return r.scanReviews(ctx, query, int64(mealID))
}

func (r *reviewRepository) scanReviews(ctx context.Context, query string, args ...any) ([]model.Review, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Review
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.MealID, &rv.Email, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- MembershipRepository implementation ---

func (r *membershipRepository) List(ctx context.Context) ([]model.Membership, error) {
	const query = `SELECT id, tier, price, perks FROM memberships ORDER BY price`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Membership
	for rows.Next() {
		var m model.Membership
		if err := rows.Scan(&m.ID, &m.Tier, &m.Price, &m.Perks); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *membershipRepository) GetByTier(ctx context.Context, tier string) (*model.Membership, error) {
	const query = `SELECT id, tier, price, perks FROM memberships WHERE tier=$1`
	var m model.Membership
	err := r.storage.pool.QueryRow(ctx, query, tier).Scan(&m.ID, &m.Tier, &m.Price, &m.Perks)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// --- CartRepository implementation ---

func (r *cartRepository) Add(ctx context.Context, item *model.CartItem) (*model.CartItem, error) {
	const query = `INSERT INTO cart_items (email, meal_id, title, price, status)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	created := *item
	if created.Status == "" {
		created.Status = model.CartItemStatusPending
	}
	err := r.storage.pool.QueryRow(ctx, query, item.Email, int64(item.MealID), item.Title, item.Price, created.Status).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *cartRepository) ListByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	const query = `SELECT id, email, meal_id, title, price, status, created_at
                   FROM cart_items WHERE email=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CartItem
	for rows.Next() {
		var item model.CartItem
		if err := rows.Scan(&item.ID, &item.Email, &item.MealID, &item.Title, &item.Price, &item.Status, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *cartRepository) Delete(ctx context.Context, email string, id model.CartItemID) error {
	const query = `DELETE FROM cart_items WHERE id=$1 AND email=$2`
	tag, err := r.storage.pool.Exec(ctx, query, int64(id), email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) DeleteOwned(ctx context.Context, email string, ids []model.CartItemID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	const query = `DELETE FROM cart_items WHERE email=$1 AND id = ANY($2)`
	tag, err := r.storage.pool.Exec(ctx, query, email, cartItemIDs(ids))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *cartRepository) ListSettledLeftovers(ctx context.Context, limit int) ([]model.CartItem, error) {
	const query = `SELECT ci.id, ci.email, ci.meal_id, ci.title, ci.price, ci.status, ci.created_at
                   FROM cart_items ci
                   JOIN payment_items pi ON pi.cart_item_id = ci.id
                   ORDER BY ci.created_at
                   LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CartItem
	for rows.Next() {
		var item model.CartItem
		if err := rows.Scan(&item.ID, &item.Email, &item.MealID, &item.Title, &item.Price, &item.Status, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- PaymentRepository implementation ---

func (r *paymentRepository) Insert(ctx context.Context, payment *model.Payment) (model.PaymentID, error) {
	var paymentID model.PaymentID
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertPayment = `INSERT INTO payments (email, amount) VALUES ($1, $2) RETURNING id`
		if err := tx.QueryRow(ctx, insertPayment, payment.Email, payment.Amount).Scan(&paymentID); err != nil {
			return err
		}

		const insertItem = `INSERT INTO payment_items (payment_id, cart_item_id) VALUES ($1, $2)`
		for _, itemID := range payment.CartItemIDs {
			if _, err := tx.Exec(ctx, insertItem, int64(paymentID), int64(itemID)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return paymentID, nil
}

func (r *paymentRepository) ListByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	const query = `SELECT p.id, p.email, p.amount, p.created_at,
                          COALESCE(ARRAY_AGG(pi.cart_item_id) FILTER (WHERE pi.cart_item_id IS NOT NULL), '{}')
                   FROM payments p
                   LEFT JOIN payment_items pi ON pi.payment_id = p.id
                   WHERE p.email=$1
                   GROUP BY p.id
                   ORDER BY p.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Payment
	for rows.Next() {
		var p model.Payment
		var itemIDs []int64
		if err := rows.Scan(&p.ID, &p.Email, &p.Amount, &p.CreatedAt, &itemIDs); err != nil {
			return nil, err
		}
		p.CartItemIDs = make([]model.CartItemID, 0, len(itemIDs))
		for _, id := range itemIDs {
			p.CartItemIDs = append(p.CartItemIDs, model.CartItemID(id))
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func cartItemIDs(ids []model.CartItemID) []int64 {
	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, int64(id))
	}
	return raw
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
