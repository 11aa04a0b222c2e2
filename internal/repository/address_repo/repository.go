package address_repo

import (
	"context"
	"errors"
	"strings"

	"reviewmap_backend/internal/model"
	"reviewmap_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "addresses"
	colID        = "id"
	colAddress   = "address"
	colLatitude  = "latitude"
	colLongitude = "longitude"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewAddressRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.AddressRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// CreateAddress - создает адрес с координатами.
// Возвращает ID созданного адреса
func (r *repo) CreateAddress(ctx context.Context, address *model.Address) (int, error) {
	query := sq.Insert(table).
		Columns(colAddress, colLatitude, colLongitude).
		Values(address.Address, address.Latitude, address.Longitude).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetAddressByValue - точечный lookup по строке адреса (колонка уникальна)
func (r *repo) GetAddressByValue(ctx context.Context, address string) (*model.Address, error) {
	query := sq.Select(colID, colAddress, colLatitude, colLongitude).
		From(table).
		Where(sq.Eq{colAddress: address}).
		PlaceholderFormat(sq.Dollar)

	return r.queryOne(ctx, query)
}

// GetAddressByID - возвращает адрес по его ID
func (r *repo) GetAddressByID(ctx context.Context, id int) (*model.Address, error) {
	query := sq.Select(colID, colAddress, colLatitude, colLongitude).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	return r.queryOne(ctx, query)
}

// ListAddresses - возвращает все адреса
func (r *repo) ListAddresses(ctx context.Context) ([]model.Address, error) {
	query := sq.Select(colID, colAddress, colLatitude, colLongitude).
		From(table).
		OrderBy(colID).
		PlaceholderFormat(sq.Dollar)

	return r.queryMany(ctx, query)
}

// SearchAddresses - поиск по подстроке без учета регистра
func (r *repo) SearchAddresses(ctx context.Context, search string) ([]model.Address, error) {
	pattern := "%" + strings.ToLower(search) + "%"

	query := sq.Select(colID, colAddress, colLatitude, colLongitude).
		From(table).
		Where(sq.ILike{colAddress: pattern}).
		OrderBy(colID).
		PlaceholderFormat(sq.Dollar)

	return r.queryMany(ctx, query)
}

// DeleteAddress - удаляет адрес, отзывы удаляются каскадом
func (r *repo) DeleteAddress(ctx context.Context, id int) error {
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

func (r *repo) queryOne(ctx context.Context, query sq.SelectBuilder) (*model.Address, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var address model.Address
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&address.ID, &address.Address, &address.Latitude, &address.Longitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &address, nil
}

func (r *repo) queryMany(ctx context.Context, query sq.SelectBuilder) ([]model.Address, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []model.Address
	for rows.Next() {
		var address model.Address
		if err := rows.Scan(&address.ID, &address.Address, &address.Latitude, &address.Longitude); err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}

	return addresses, rows.Err()
}
