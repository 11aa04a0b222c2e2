package model

type Address struct {
	ID        int
	Address   string
	Latitude  float64
	Longitude float64
}

// Location - координаты, которые возвращает геокодер
type Location struct {
	Lat float64
	Lng float64
}

// AddressReviews - адрес вместе с отзывами на него,
// используется в поиске и группировке по адресам
type AddressReviews struct {
	Address Address
	Reviews []ReviewWithAuthor
}
