package models

// Coordinate - пара координат WGS84 в десятичных градусах
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
