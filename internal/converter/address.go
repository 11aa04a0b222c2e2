package converter

import (
	addressDto "reviewmap_backend/internal/api/dto/address"
	"reviewmap_backend/internal/model"
)

func ToAddressResponse(address *model.Address) addressDto.AddressResponse {
	return addressDto.AddressResponse{
		ID:        address.ID,
		Address:   address.Address,
		Latitude:  address.Latitude,
		Longitude: address.Longitude,
	}
}

func ToAddressResponses(addresses []model.Address) []addressDto.AddressResponse {
	result := make([]addressDto.AddressResponse, len(addresses))
	for i := range addresses {
		result[i] = ToAddressResponse(&addresses[i])
	}
	return result
}

func ToAddressWithReviewsResponse(item *model.AddressReviews) addressDto.AddressWithReviewsResponse {
	return addressDto.AddressWithReviewsResponse{
		ID:        item.Address.ID,
		Address:   item.Address.Address,
		Latitude:  item.Address.Latitude,
		Longitude: item.Address.Longitude,
		Reviews:   ToReviewsWithAuthor(item.Reviews),
	}
}

func ToAddressWithReviewsResponses(items []model.AddressReviews) []addressDto.AddressWithReviewsResponse {
	result := make([]addressDto.AddressWithReviewsResponse, len(items))
	for i := range items {
		result[i] = ToAddressWithReviewsResponse(&items[i])
	}
	return result
}
