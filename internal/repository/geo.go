package repository

import (
	"github.com/paulmach/orb"
	"github.com/shenikar/crime_analysis_system/internal/models"
)

// Геометрии передаются в PostGIS как GeoJSON: ST_GeomFromGeoJSON($n)::geography.
// Пустая геометрия превращается в NULL.

func polygonParam(p orb.Polygon) (*string, error) {
	if len(p) == 0 {
		return nil, nil
	}
	return models.MarshalGeometry(p)
}

func multiPolygonParam(mp orb.MultiPolygon) (*string, error) {
	if len(mp) == 0 {
		return nil, nil
	}
	return models.MarshalGeometry(mp)
}

// scanPolygon разбирает результат ST_AsGeoJSON, NULL дает nil
func scanPolygon(data []byte) (orb.Polygon, error) {
	g, err := models.UnmarshalGeometry(data)
	if err != nil {
		return nil, err
	}
	return models.AsPolygon(g)
}

func scanMultiPolygon(data []byte) (orb.MultiPolygon, error) {
	g, err := models.UnmarshalGeometry(data)
	if err != nil {
		return nil, err
	}
	return models.AsMultiPolygon(g)
}
