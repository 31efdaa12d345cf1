package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== FLIGHT NUMBER ====================

// GenerateFlightNumber creates a carrier-prefixed flight number, e.g. GQ-4821
func GenerateFlightNumber() string {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	return fmt.Sprintf("GQ-%04d", rand.Intn(10000))
}

// ==================== BAGGAGE TAG ====================

const baggageTagAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const baggageTagLength = 8

// GenerateBaggageTag creates a random alphanumeric baggage tracking code.
// Uniqueness is checked against the database by the caller.
func GenerateBaggageTag() string {
	rand.New(rand.NewSource(time.Now().UnixNano()))

	tag := make([]byte, baggageTagLength)
	for i := range tag {
		tag[i] = baggageTagAlphabet[rand.Intn(len(baggageTagAlphabet))]
	}

	return string(tag)
}

// ==================== TRANSACTION ID ====================

// GenerateTransactionID creates a payment reference with timestamp.
// Format: PAY-YYYYMMDD-HHMMSS-RANDOM
func GenerateTransactionID() string {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("PAY-%s-%s-%s", datePart, timePart, randomPart)
}
