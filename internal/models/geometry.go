package models

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// SRID WGS84, в котором хранятся все геометрии
const SRID = 4326

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidGeometry    = errors.New("invalid geometry")
)

// NewPoint создает точку из широты и долготы. orb хранит координаты в порядке (lon, lat).
func NewPoint(lat, lon float64) orb.Point {
	return orb.Point{lon, lat}
}

// ValidatePoint проверяет диапазоны широты и долготы
func ValidatePoint(p orb.Point) error {
	if p.Lat() < -90 || p.Lat() > 90 || p.Lon() < -180 || p.Lon() > 180 {
		return fmt.Errorf("point (%f, %f): %w", p.Lat(), p.Lon(), ErrInvalidCoordinates)
	}
	return nil
}

// ValidatePolygon проверяет, что каждое кольцо замкнуто и содержит минимум 4 точки
func ValidatePolygon(poly orb.Polygon) error {
	if len(poly) == 0 {
		return fmt.Errorf("polygon has no rings: %w", ErrInvalidGeometry)
	}
	for i, ring := range poly {
		if len(ring) < 4 {
			return fmt.Errorf("ring %d has %d points, need at least 4: %w", i, len(ring), ErrInvalidGeometry)
		}
		if !ring.Closed() {
			return fmt.Errorf("ring %d is not closed: %w", i, ErrInvalidGeometry)
		}
		for _, p := range ring {
			if err := ValidatePoint(p); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateMultiPolygon проверяет каждый полигон мультиполигона
func ValidateMultiPolygon(mp orb.MultiPolygon) error {
	if len(mp) == 0 {
		return fmt.Errorf("multipolygon has no polygons: %w", ErrInvalidGeometry)
	}
	for _, poly := range mp {
		if err := ValidatePolygon(poly); err != nil {
			return err
		}
	}
	return nil
}

// MarshalGeometry кодирует геометрию в GeoJSON для ST_GeomFromGeoJSON.
// Для nil-геометрии возвращает nil, что в запросе превращается в NULL.
func MarshalGeometry(g orb.Geometry) (*string, error) {
	if g == nil {
		return nil, nil
	}
	data, err := geojson.NewGeometry(g).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal geometry: %w", err)
	}
	s := string(data)
	return &s, nil
}

// UnmarshalGeometry разбирает результат ST_AsGeoJSON
func UnmarshalGeometry(data []byte) (orb.Geometry, error) {
	if len(data) == 0 {
		return nil, nil
	}
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal geometry: %w", err)
	}
	return g.Geometry(), nil
}

// AsPolygon приводит геометрию к полигону (nil допустим)
func AsPolygon(g orb.Geometry) (orb.Polygon, error) {
	if g == nil {
		return nil, nil
	}
	poly, ok := g.(orb.Polygon)
	if !ok {
		return nil, fmt.Errorf("expected Polygon, got %s: %w", g.GeoJSONType(), ErrInvalidGeometry)
	}
	return poly, nil
}

// AsMultiPolygon приводит геометрию к мультиполигону. Одиночный полигон оборачивается.
func AsMultiPolygon(g orb.Geometry) (orb.MultiPolygon, error) {
	switch v := g.(type) {
	case nil:
		return nil, nil
	case orb.MultiPolygon:
		return v, nil
	case orb.Polygon:
		return orb.MultiPolygon{v}, nil
	default:
		return nil, fmt.Errorf("expected MultiPolygon, got %s: %w", g.GeoJSONType(), ErrInvalidGeometry)
	}
}

// AsPoint приводит геометрию к точке
func AsPoint(g orb.Geometry) (orb.Point, error) {
	p, ok := g.(orb.Point)
	if !ok {
		if g == nil {
			return orb.Point{}, fmt.Errorf("point is required: %w", ErrInvalidGeometry)
		}
		return orb.Point{}, fmt.Errorf("expected Point, got %s: %w", g.GeoJSONType(), ErrInvalidGeometry)
	}
	return p, nil
}
