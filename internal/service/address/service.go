package address

import (
	"context"
	"errors"

	"reviewmap_backend/internal/model"
	"reviewmap_backend/internal/repository"
	"reviewmap_backend/internal/service"
)

// Geocoder - внешний геокодер адресов. Возвращает nil без ошибки,
// если адрес не удалось найти
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*model.Location, error)
}

type serv struct {
	addressRepo repository.AddressRepository
	reviewRepo  repository.ReviewRepository
	geocoder    Geocoder
}

func NewAddressService(
	addressRepo repository.AddressRepository,
	reviewRepo repository.ReviewRepository,
	geocoder Geocoder,
) service.AddressService {
	return &serv{
		addressRepo: addressRepo,
		reviewRepo:  reviewRepo,
		geocoder:    geocoder,
	}
}

// FindOrCreate - ищет адрес по точному совпадению строки, при
// промахе геокодирует и создает запись
func (s *serv) FindOrCreate(ctx context.Context, addressStr string) (*model.Address, error) {
	existing, err := s.addressRepo.GetAddressByValue(ctx, addressStr)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	location, err := s.geocoder.Geocode(ctx, addressStr)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, model.ErrInvalidInput
	}

	address := &model.Address{
		Address:   addressStr,
		Latitude:  location.Lat,
		Longitude: location.Lng,
	}

	address.ID, err = s.addressRepo.CreateAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	return address, nil
}

func (s *serv) ListAddresses(ctx context.Context) ([]model.Address, error) {
	return s.addressRepo.ListAddresses(ctx)
}

func (s *serv) AddressByID(ctx context.Context, id int) (*model.Address, error) {
	return s.addressRepo.GetAddressByID(ctx, id)
}

func (s *serv) DeleteAddress(ctx context.Context, id int) (*model.Address, error) {
	address, err := s.addressRepo.GetAddressByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.addressRepo.DeleteAddress(ctx, id); err != nil {
		return nil, err
	}

	return address, nil
}

// Search - поиск адресов по подстроке, пустой запрос возвращает все.
// Каждый найденный адрес отдается вместе с отзывами
func (s *serv) Search(ctx context.Context, query string) ([]model.AddressReviews, error) {
	var (
		addresses []model.Address
		err       error
	)

	if query == "" {
		addresses, err = s.addressRepo.ListAddresses(ctx)
	} else {
		addresses, err = s.addressRepo.SearchAddresses(ctx, query)
	}
	if err != nil {
		return nil, err
	}

	results := make([]model.AddressReviews, 0, len(addresses))
	for _, a := range addresses {
		reviews, err := s.reviewRepo.ListReviewsByAddress(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		results = append(results, model.AddressReviews{
			Address: a,
			Reviews: reviews,
		})
	}

	return results, nil
}
