package services

import (
	"context"
	"math"

	apperrors "github.com/AnsarulIslam10/MediCamp-Server/pkg/errors"
)

// ChargeAuthorizer is the external payment collaborator. It authorizes a
// charge for an amount in minor units and returns the client secret the
// frontend completes the payment with.
type ChargeAuthorizer interface {
	CreatePaymentIntent(ctx context.Context, amountMinor int64) (clientSecret string, err error)
}

// ChargeService validates fee amounts and delegates authorization to the
// configured gateway.
type ChargeService struct {
	gateway ChargeAuthorizer
}

func NewChargeService(gateway ChargeAuthorizer) *ChargeService {
	return &ChargeService{gateway: gateway}
}

// MinorUnits converts a decimal currency amount to the smallest-unit integer
// representation (multiply by 100, truncate). Rejects NaN, infinite, zero
// and negative amounts.
func MinorUnits(fee float64) (int64, error) {
	if math.IsNaN(fee) || math.IsInf(fee, 0) {
		return 0, apperrors.BadRequest("Camp fee must be a number")
	}
	if fee <= 0 {
		return 0, apperrors.BadRequest("Camp fee must be greater than zero")
	}
	return int64(math.Trunc(fee * 100)), nil
}

// ChargeAmount validates the fee and asks the gateway for a payment
// authorization, returning the client secret.
func (s *ChargeService) ChargeAmount(ctx context.Context, fee float64) (string, error) {
	amount, err := MinorUnits(fee)
	if err != nil {
		return "", err
	}
	return s.gateway.CreatePaymentIntent(ctx, amount)
}
