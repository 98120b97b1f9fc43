// Package location реализует геосервисы стаба бэкенда.
//
// Реальные геосервисы — внешние интеграции бэкенда и в стабе не вызываются:
// ответы детерминированно выводятся из входных данных, чтобы клиент получал
// стабильные и правдоподобные результаты по Шри-Ланке.
package location

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/proval-lk/valuer-client/internal/models"
)

// Service отвечает на гео-запросы каннед-данными.
type Service struct{}

// New создаёт новый экземпляр Service.
func New() *Service {
	return &Service{}
}

// известные районы для правдоподобных ответов
var districts = []struct {
	city     string
	district string
	province string
	lat, lng float64
}{
	{"Colombo", "Colombo", "Western", 6.9271, 79.8612},
	{"Kandy", "Kandy", "Central", 7.2906, 80.6337},
	{"Galle", "Galle", "Southern", 6.0535, 80.2210},
	{"Jaffna", "Jaffna", "Northern", 9.6615, 80.0255},
	{"Kurunegala", "Kurunegala", "North Western", 7.4863, 80.3647},
}

// Geocode переводит адрес в координаты со смещением в сторону Шри-Ланки.
func (s *Service) Geocode(req models.GeocodeRequest) *models.GeocodeResult {
	d := districts[hashString(strings.ToLower(req.Address))%uint32(len(districts))]

	// небольшое детерминированное смещение внутри района
	offset := float64(hashString(req.Address)%1000)/100000.0 - 0.005

	return &models.GeocodeResult{
		Coordinates: models.Coordinates{
			Latitude:  d.lat + offset,
			Longitude: d.lng + offset,
		},
		FormattedAddress: fmt.Sprintf("%s, %s, Sri Lanka", strings.TrimSpace(req.Address), d.city),
		AddressComponents: models.AddressComponents{
			City:     d.city,
			District: d.district,
			Province: d.province,
		},
	}
}

// ReverseGeocode возвращает адресную информацию по координатам.
func (s *Service) ReverseGeocode(req models.ReverseGeocodeRequest) *models.ReverseGeocodeResult {
	d := nearest(req.Latitude, req.Longitude)

	return &models.ReverseGeocodeResult{
		AddressInfo: models.AddressInfo{
			FormattedAddress: fmt.Sprintf("%.4f, %.4f - %s, Sri Lanka", req.Latitude, req.Longitude, d.city),
			Components: models.AddressComponents{
				City:     d.city,
				District: d.district,
				Province: d.province,
			},
		},
	}
}

// Amenities возвращает объекты инфраструктуры вокруг точки.
func (s *Service) Amenities(req models.AmenitiesRequest) *models.AmenitiesResult {
	d := nearest(req.Latitude, req.Longitude)

	amenities := map[string][]models.Place{
		"school": {
			{Name: d.city + " Central College", Rating: 4.3, UserRatingsTotal: 120},
			{Name: d.city + " Primary School", Rating: 4.0, UserRatingsTotal: 58},
		},
		"hospital": {
			{Name: d.city + " General Hospital", Rating: 3.9, UserRatingsTotal: 210},
		},
		"bank": {
			{Name: "Bank of Ceylon " + d.city, Rating: 3.7, UserRatingsTotal: 85},
			{Name: "People's Bank " + d.city, Rating: 3.8, UserRatingsTotal: 64},
		},
		"supermarket": {
			{Name: "Cargills Food City " + d.city, Rating: 4.1, UserRatingsTotal: 97},
		},
	}

	total := 0
	for _, places := range amenities {
		total += len(places)
	}
	return &models.AmenitiesResult{
		Summary: models.AmenitiesSummary{
			TotalAmenities:  total,
			CategoriesFound: len(amenities),
			SearchRadius:    req.Radius,
		},
		Amenities: amenities,
	}
}

// GenerateMap возвращает ссылки на статическую и интерактивную карты.
func (s *Service) GenerateMap(req models.GenerateMapRequest) *models.GenerateMapResult {
	zoom := req.Zoom
	if zoom == 0 {
		zoom = 15
	}
	size := req.Size
	if size == "" {
		size = "600x400"
	}
	maptype := req.MapType
	if maptype == "" {
		maptype = "roadmap"
	}

	return &models.GenerateMapResult{
		MapURLs: models.MapURLs{
			StaticMap: fmt.Sprintf(
				"https://maps.googleapis.com/maps/api/staticmap?center=%.6f,%.6f&zoom=%d&size=%s&maptype=%s&markers=%.6f,%.6f",
				req.Latitude, req.Longitude, zoom, size, maptype, req.Latitude, req.Longitude,
			),
			InteractiveMap: fmt.Sprintf(
				"https://www.google.com/maps/@%.6f,%.6f,%dz",
				req.Latitude, req.Longitude, zoom,
			),
		},
	}
}

func nearest(lat, lng float64) struct {
	city     string
	district string
	province string
	lat, lng float64
} {
	best := districts[0]
	bestDist := distance2(lat, lng, best.lat, best.lng)
	for _, d := range districts[1:] {
		if dd := distance2(lat, lng, d.lat, d.lng); dd < bestDist {
			best, bestDist = d, dd
		}
	}
	return best
}

func distance2(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := lat1 - lat2
	dLng := lng1 - lng2
	return dLat*dLat + dLng*dLng
}

func hashString(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
