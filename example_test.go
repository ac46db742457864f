package linkage_test

import (
	"fmt"
	"math"

	"github.com/lvlath/linkage"
)

// haversine returns the great-circle distance in miles between two
// latitude/longitude points.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 3958.756 // miles

	lat1, lon1 = lat1*math.Pi/180, lon1*math.Pi/180
	lat2, lon2 = lat2*math.Pi/180, lon2*math.Pi/180

	deltaLat := lat2 - lat1
	deltaLon := lon2 - lon1
	x := math.Pow(math.Sin(deltaLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(deltaLon/2), 2)
	return 2.0 * earthRadius * math.Atan(math.Sqrt(x))
}

// Example clusters a handful of central-Massachusetts municipalities by the
// great-circle distance between them, using average linkage.
func Example() {
	coordinates := [][2]float64{
		{42.5833333, -71.8027778}, // Fitchburg
		{42.2791667, -71.4166667}, // Framingham
		{42.3458333, -71.5527778}, // Marlborough
		{42.1513889, -71.6500000}, // Northbridge
		{42.3055556, -71.5250000}, // Southborough
		{42.2694444, -71.6166667}, // Westborough
	}

	condensed := make([]float64, 0, len(coordinates)*(len(coordinates)-1)/2)
	for row := 0; row < len(coordinates)-1; row++ {
		for col := row + 1; col < len(coordinates); col++ {
			a, b := coordinates[row], coordinates[col]
			condensed = append(condensed, haversine(a[0], a[1], b[0], b[1]))
		}
	}

	dend := linkage.Linkage(condensed, len(coordinates), linkage.MethodAverage)
	for _, step := range dend.Steps() {
		fmt.Printf("%d %d %.6f %d\n", step.Cluster1, step.Cluster2, step.Dissimilarity, step.Size)
	}

	// Output:
	// 2 4 3.123797 2
	// 5 6 5.757158 3
	// 1 7 8.139260 4
	// 3 8 12.483148 5
	// 0 9 25.589444 6
}
