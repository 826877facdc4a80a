package utils

import "math"

// RoundWithOneDecimalPlace arredonda para uma casa decimal (ex.: média de leads por dia)
func RoundWithOneDecimalPlace(f float64) float64 {
	return math.Round(f*10) / 10
}

// RoundToInt arredonda para o inteiro mais próximo, com meio para longe do zero
func RoundToInt(f float64) int64 {
	return int64(math.Round(f))
}
