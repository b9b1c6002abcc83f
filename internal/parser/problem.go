// Package parser provides utilities for decoding optimization problem
// documents. It handles structural validation of the raw input; semantic
// validation lives in the optimizer package.
package parser

import (
	"encoding/json"
	"fmt"

	"github.com/planfab/core/internal/models"
)

func ParseProblem(data []byte) (*models.Problem, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty problem document")
	}

	var problem models.Problem
	if err := json.Unmarshal(data, &problem); err != nil {
		return nil, fmt.Errorf("failed to unmarshal problem: %w", err)
	}

	if problem.Objective == "" {
		return nil, fmt.Errorf("invalid problem: missing objective field")
	}

	if len(problem.Products) == 0 {
		return nil, fmt.Errorf("invalid problem: missing products field")
	}

	if len(problem.Resources) == 0 {
		return nil, fmt.Errorf("invalid problem: missing resources field")
	}

	return &problem, nil
}
