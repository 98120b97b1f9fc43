package cli

import (
	"context"

	"github.com/proval-lk/valuer-client/internal/models"
)

// locationView гео-инструменты: геокодирование, обратное геокодирование,
// поиск инфраструктуры и генерация карты.
func (a *App) locationView(ctx context.Context) error {
	if !a.allowed() {
		return nil
	}

	tool, err := promptText(a.reader, a.out, "Tool (geocode/reverse/amenities/map)")
	if err != nil {
		return err
	}

	switch tool {
	case "geocode":
		return a.geocodeView(ctx)
	case "reverse":
		return a.reverseGeocodeView(ctx)
	case "amenities":
		return a.amenitiesView(ctx)
	case "map":
		return a.generateMapView(ctx)
	default:
		a.println("Unknown tool:", tool)
		return nil
	}
}

func (a *App) geocodeView(ctx context.Context) error {
	address, err := promptText(a.reader, a.out, "Address (e.g., Colombo Fort, Sri Lanka)")
	if err != nil {
		return err
	}
	if address == "" {
		a.println("Address is required")
		return nil
	}

	var result models.GeocodeResult
	if err := a.api.Post(ctx, "/location/geocode", models.GeocodeRequest{Address: address}, &result); err != nil {
		return err
	}
	a.printf("Coordinates: %f, %f\n", result.Coordinates.Latitude, result.Coordinates.Longitude)
	a.printf("Address:     %s\n", result.FormattedAddress)
	if result.AddressComponents.City != "" {
		a.printf("City:        %s\n", result.AddressComponents.City)
	}
	if result.AddressComponents.District != "" {
		a.printf("District:    %s\n", result.AddressComponents.District)
	}
	return nil
}

func (a *App) reverseGeocodeView(ctx context.Context) error {
	req, err := a.promptCoordinates()
	if err != nil {
		return err
	}

	var result models.ReverseGeocodeResult
	payload := models.ReverseGeocodeRequest{Latitude: req.Latitude, Longitude: req.Longitude}
	if err := a.api.Post(ctx, "/location/reverse-geocode", payload, &result); err != nil {
		return err
	}
	info := result.AddressInfo
	a.printf("Address: %s\n", info.FormattedAddress)
	if info.Components.City != "" {
		a.printf("City: %s, District: %s, Province: %s\n",
			info.Components.City, info.Components.District, info.Components.Province)
	}
	return nil
}

func (a *App) amenitiesView(ctx context.Context) error {
	coords, err := a.promptCoordinates()
	if err != nil {
		return err
	}
	radius, err := promptInt(a.reader, a.out, "Radius in meters [5000]", 5000)
	if err != nil {
		return err
	}

	var result models.AmenitiesResult
	payload := models.AmenitiesRequest{Latitude: coords.Latitude, Longitude: coords.Longitude, Radius: radius}
	if err := a.api.Post(ctx, "/location/amenities", payload, &result); err != nil {
		return err
	}

	a.printf("Found %d amenities in %d categories within %dm radius\n",
		result.Summary.TotalAmenities, result.Summary.CategoriesFound, result.Summary.SearchRadius)
	for category, places := range result.Amenities {
		if len(places) == 0 {
			continue
		}
		a.printf("  %s (%d):\n", category, len(places))
		for _, place := range places {
			if place.Rating > 0 {
				a.printf("    %s - rating %.1f (%d reviews)\n", place.Name, place.Rating, place.UserRatingsTotal)
			} else {
				a.printf("    %s\n", place.Name)
			}
		}
	}
	return nil
}

func (a *App) generateMapView(ctx context.Context) error {
	coords, err := a.promptCoordinates()
	if err != nil {
		return err
	}
	zoom, err := promptInt(a.reader, a.out, "Zoom [15]", 15)
	if err != nil {
		return err
	}
	maptype, err := promptDefault(a.reader, a.out, "Map type", "roadmap")
	if err != nil {
		return err
	}

	var result models.GenerateMapResult
	payload := models.GenerateMapRequest{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
		Zoom:      zoom,
		Size:      "600x400",
		MapType:   maptype,
	}
	if err := a.api.Post(ctx, "/location/generate-map", payload, &result); err != nil {
		return err
	}
	a.printf("Static map:      %s\n", result.MapURLs.StaticMap)
	a.printf("Interactive map: %s\n", result.MapURLs.InteractiveMap)
	return nil
}

func (a *App) promptCoordinates() (models.Coordinates, error) {
	lat, err := promptFloat(a.reader, a.out, "Latitude", 0)
	if err != nil {
		return models.Coordinates{}, err
	}
	lng, err := promptFloat(a.reader, a.out, "Longitude", 0)
	if err != nil {
		return models.Coordinates{}, err
	}
	return models.Coordinates{Latitude: lat, Longitude: lng}, nil
}
