package models

// Coordinates географические координаты точки.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeocodeRequest запрос POST /location/geocode.
type GeocodeRequest struct {
	Address string `json:"address" validate:"required"`
}

// GeocodeResult ответ геокодирования адреса.
type GeocodeResult struct {
	Coordinates       Coordinates       `json:"coordinates"`
	FormattedAddress  string            `json:"formatted_address"`
	AddressComponents AddressComponents `json:"address_components"`
}

// AddressComponents разобранные части адреса.
type AddressComponents struct {
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`
	Province string `json:"province,omitempty"`
}

// ReverseGeocodeRequest запрос POST /location/reverse-geocode.
type ReverseGeocodeRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// ReverseGeocodeResult ответ обратного геокодирования.
type ReverseGeocodeResult struct {
	AddressInfo AddressInfo `json:"address_info"`
}

// AddressInfo адресная информация по координатам.
type AddressInfo struct {
	FormattedAddress string            `json:"formatted_address"`
	Components       AddressComponents `json:"components"`
}

// AmenitiesRequest запрос POST /location/amenities.
type AmenitiesRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Radius    int     `json:"radius" validate:"required,gt=0,lte=50000"`
}

// AmenitiesResult ответ поиска объектов инфраструктуры рядом с точкой.
// Ключ карты — категория (school, hospital и т.п.).
type AmenitiesResult struct {
	Summary   AmenitiesSummary   `json:"summary"`
	Amenities map[string][]Place `json:"amenities"`
}

// AmenitiesSummary сводка по результатам поиска.
type AmenitiesSummary struct {
	TotalAmenities  int `json:"total_amenities"`
	CategoriesFound int `json:"categories_found"`
	SearchRadius    int `json:"search_radius"`
}

// Place один найденный объект инфраструктуры.
type Place struct {
	Name             string  `json:"name"`
	Rating           float64 `json:"rating,omitempty"`
	UserRatingsTotal int     `json:"user_ratings_total,omitempty"`
}

// GenerateMapRequest запрос POST /location/generate-map.
type GenerateMapRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Zoom      int     `json:"zoom,omitempty" validate:"omitempty,gte=1,lte=20"`
	Size      string  `json:"size,omitempty"`
	MapType   string  `json:"maptype,omitempty"`
}

// GenerateMapResult ответ генерации статической карты.
type GenerateMapResult struct {
	MapURLs MapURLs `json:"map_urls"`
}

// MapURLs ссылки на сгенерированные карты.
type MapURLs struct {
	StaticMap      string `json:"static_map"`
	InteractiveMap string `json:"interactive_map"`
}
