package recommender

import (
	"fmt"
	"math"
)

// beyond this the exponential would overflow; the sigmoid is saturated anyway
const sigmoidOverflow = 700.0

// ContentModel is a fixed-parameter logistic model:
// P(match) = 1 / (1 + e^-(b + w·x)). It is pure and stateless.
type ContentModel struct {
	intercept float64
	weights   [featureDim]float64
}

// NewContentModel validates the weight dimension at construction time so a
// mismatch is a startup failure, not a silent runtime bug.
func NewContentModel(intercept float64, weights []float64) (ContentModel, error) {
	w, err := WeightsFromSlice(weights)
	if err != nil {
		return ContentModel{}, fmt.Errorf("content model: %w", err)
	}
	return ContentModel{intercept: intercept, weights: w}, nil
}

// Linear returns z = b + w·x.
func (m ContentModel) Linear(x [featureDim]float64) float64 {
	return m.intercept + dot(m.weights, x)
}

// Score applies the logistic function to the linear combination.
func (m ContentModel) Score(x [featureDim]float64) float64 {
	return sigmoid(m.Linear(x))
}

func sigmoid(z float64) float64 {
	if z > sigmoidOverflow {
		return 1.0
	}
	if z < -sigmoidOverflow {
		return 0.0
	}
	return 1.0 / (1.0 + math.Exp(-z))
}
