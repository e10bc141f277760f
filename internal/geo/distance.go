// Package geo содержит чистое ядро проксимити-логики: расстояния,
// окна расписаний, допуск к чек-ину и список намерений прийти.
// Пакет не делает I/O и не читает системные часы - момент времени
// всегда передается параметром.
package geo

import (
	"math"

	"github.com/streetbites/streetbites_backend/internal/models"
)

const earthRadiusMeters = 6371000

// DistanceMeters вычисляет расстояние по дуге большого круга (формула
// гаверсинусов) в метрах. Координаты вне диапазона не валидируются -
// за корректность отвечает слой ввода данных.
func DistanceMeters(a, b models.Coordinate) float64 {
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// IsWithinRadius проверяет попадание в радиус, граница включительно
func IsWithinRadius(a, b models.Coordinate, radiusMeters float64) bool {
	return DistanceMeters(a, b) <= radiusMeters
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
