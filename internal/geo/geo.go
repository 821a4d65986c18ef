// geo содержит чистые геометрические вычисления на сфере:
// расстояние по дуге большого круга и форматирование дистанций для выдачи.
// Пакет не имеет внутренних зависимостей и не выполняет валидацию диапазонов —
// корректность координат обеспечивает вызывающая сторона.
package geo

import (
	"fmt"
	"math"
)

// earthRadiusKm — средний радиус Земли (сферическая аппроксимация).
const earthRadiusKm = 6371.0

// degToRad переводит градусы в радианы.
func degToRad(d float64) float64 {
	return d * math.Pi / 180.0
}

// DistanceKm возвращает расстояние между двумя точками в километрах
// по формуле гаверсинуса. Вход — широта/долгота в градусах.
//
// Свойства:
//   - симметричность: DistanceKm(a, b) == DistanceKm(b, a);
//   - DistanceKm(a, a) == 0;
//   - результат всегда конечен и неотрицателен для валидных диапазонов.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	rLat1 := degToRad(lat1)
	rLat2 := degToRad(lat2)
	dLat := degToRad(lat2 - lat1)
	dLon := degToRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// DistanceM — то же расстояние в метрах.
func DistanceM(lat1, lon1, lat2, lon2 float64) float64 {
	return DistanceKm(lat1, lon1, lat2, lon2) * 1000.0
}

// FormatDistance форматирует дистанцию (в метрах) для показа пользователю:
//   - меньше 1000 м — целые метры: "450 m";
//   - от 1000 м — километры с одним знаком: "2.5 km".
//
// Разделитель дробной части фиксированный, без локализации.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	}

	return fmt.Sprintf("%.1f km", meters/1000.0)
}
