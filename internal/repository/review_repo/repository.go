package review_repo

import (
	"context"
	"errors"

	"reviewmap_backend/internal/model"
	"reviewmap_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "reviews"
	colID          = "id"
	colTitle       = "title"
	colContent     = "content"
	colContentHash = "content_hash"
	colRating      = "rating"
	colAddressID   = "address_id"
	colUserID      = "user_id"
	colCreatedAt   = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewReviewRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.ReviewRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// CreateReview - создает отзыв. Возвращает ID созданного отзыва
func (r *repo) CreateReview(ctx context.Context, review *model.Review) (int, error) {
	query := sq.Insert(table).
		Columns(colTitle, colContent, colContentHash, colRating, colAddressID, colUserID).
		Values(review.Title, review.Content, review.ContentHash, review.Rating, review.AddressID, review.UserID).
		Suffix("RETURNING " + colID + ", " + colCreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return 0, err
	}

	return review.ID, nil
}

// GetReviewByID - возвращает отзыв по его ID
func (r *repo) GetReviewByID(ctx context.Context, id int) (*model.Review, error) {
	query := sq.Select(colID, colTitle, colContent, colContentHash, colRating, colAddressID, colUserID, colCreatedAt).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var review model.Review
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&review.ID, &review.Title, &review.Content, &review.ContentHash,
			&review.Rating, &review.AddressID, &review.UserID, &review.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &review, nil
}

// HasDuplicateReview - проверяет, оставлял ли пользователь отзыв
// с тем же содержимым на тот же адрес
func (r *repo) HasDuplicateReview(ctx context.Context, userID, addressID int, contentHash string) (bool, error) {
	query := sq.Select(colID).
		From(table).
		Where(sq.Eq{colUserID: userID, colAddressID: addressID, colContentHash: contentHash}).
		Limit(1).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// ListReviewsByAddress - отзывы на адрес вместе с авторами
func (r *repo) ListReviewsByAddress(ctx context.Context, addressID int) ([]model.ReviewWithAuthor, error) {
	query := sq.Select(
		"r.id", "r.title", "r.content", "r.rating", "r.address_id", "r.user_id", "r.created_at",
		"u.id", "u.email", "u.name").
		From(table + " r").
		Join("users u ON r." + colUserID + " = u.id").
		Where(sq.Eq{"r." + colAddressID: addressID}).
		OrderBy("r." + colCreatedAt + " DESC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []model.ReviewWithAuthor
	for rows.Next() {
		var item model.ReviewWithAuthor
		err := rows.Scan(
			&item.Review.ID, &item.Review.Title, &item.Review.Content, &item.Review.Rating,
			&item.Review.AddressID, &item.Review.UserID, &item.Review.CreatedAt,
			&item.User.ID, &item.User.Email, &item.User.Name)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, item)
	}

	return reviews, rows.Err()
}

// ListReviewsByUser - отзывы пользователя вместе с адресами,
// используется в профиле
func (r *repo) ListReviewsByUser(ctx context.Context, userID int) ([]model.ReviewWithAddress, error) {
	query := sq.Select(
		"r.id", "r.title", "r.content", "r.rating", "r.address_id", "r.user_id", "r.created_at",
		"a.id", "a.address", "a.latitude", "a.longitude").
		From(table + " r").
		Join("addresses a ON r." + colAddressID + " = a.id").
		Where(sq.Eq{"r." + colUserID: userID}).
		OrderBy("r." + colCreatedAt + " DESC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []model.ReviewWithAddress
	for rows.Next() {
		var item model.ReviewWithAddress
		err := rows.Scan(
			&item.Review.ID, &item.Review.Title, &item.Review.Content, &item.Review.Rating,
			&item.Review.AddressID, &item.Review.UserID, &item.Review.CreatedAt,
			&item.Address.ID, &item.Address.Address, &item.Address.Latitude, &item.Address.Longitude)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, item)
	}

	return reviews, rows.Err()
}

// UpdateReview - обновляет заголовок, текст и оценку отзыва
func (r *repo) UpdateReview(ctx context.Context, review *model.Review) error {
	query := sq.Update(table).
		Set(colTitle, review.Title).
		Set(colContent, review.Content).
		Set(colContentHash, review.ContentHash).
		Set(colRating, review.Rating).
		Where(sq.Eq{colID: review.ID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

// DeleteReview - удаляет отзыв по его ID
func (r *repo) DeleteReview(ctx context.Context, id int) error {
	query := sq.Delete(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
