package response_test

import (
	"testing"

	"theatre-booking/internal/dto/response"

	"github.com/stretchr/testify/assert"
)

func TestAvailabilityLabel(t *testing.T) {
	assert.Equal(t, response.SoldOutLabel, response.AvailabilityLabel(0))
	assert.Equal(t, 5, response.AvailabilityLabel(5))
	assert.Equal(t, 1, response.AvailabilityLabel(1))

	// Oversold stays numeric so the anomaly remains visible
	assert.Equal(t, -2, response.AvailabilityLabel(-2))
}
