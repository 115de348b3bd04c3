package utils

import (
	"fmt"
	"math/rand"
)

// GenerateEventCode returns a shareable join code like "GF123456": the GF
// prefix followed by six digits, never with a leading zero.
func GenerateEventCode() string {
	return fmt.Sprintf("GF%d", 100000+rand.Intn(900000))
}
