package tools

import (
	"math/rand"
	"strconv"
	"time"
)

var seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// RandomCode returns a 6-digit numeric code, uniform over [100000, 999999].
func RandomCode() string {
	n := 100000 + seededRand.Intn(900000)
	return strconv.Itoa(n)
}
