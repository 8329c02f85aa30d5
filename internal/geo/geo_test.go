package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine_SamePoint(t *testing.T) {
	// Автобус на точных координатах остановки дает нулевое расстояние
	d := Haversine(55.7558, 37.6173, 55.7558, 37.6173)
	assert.Zero(t, d)
}

func TestHaversine_KnownDistance(t *testing.T) {
	// Москва - Санкт-Петербург, около 634 км
	d := Haversine(55.7558, 37.6173, 59.9343, 30.3351)
	assert.InDelta(t, 634000, d, 5000)
}

func TestHaversine_ShortDistance(t *testing.T) {
	// Сдвиг примерно на 111 м по широте
	d := Haversine(55.7558, 37.6173, 55.7568, 37.6173)
	assert.InDelta(t, 111, d, 2)
}

func TestHaversine_Symmetry(t *testing.T) {
	d1 := Haversine(40.7128, -74.0060, 34.0522, -118.2437)
	d2 := Haversine(34.0522, -118.2437, 40.7128, -74.0060)
	assert.InDelta(t, d1, d2, 1e-6)
}

func TestHaversine_TriangleInequality(t *testing.T) {
	// Для тройки точек прямое расстояние не превышает сумму через третью
	a := [2]float64{55.7558, 37.6173}
	b := [2]float64{59.9343, 30.3351}
	c := [2]float64{56.8389, 60.6057}

	ab := Haversine(a[0], a[1], b[0], b[1])
	bc := Haversine(b[0], b[1], c[0], c[1])
	ac := Haversine(a[0], a[1], c[0], c[1])

	assert.LessOrEqual(t, ac, ab+bc)
}
