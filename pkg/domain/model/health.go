package model

import "github.com/m-mizutani/hookcord/pkg/domain/types"

// HealthStatus is the body of GET /health. Channels lists the delivery
// channels that have a webhook configured.
type HealthStatus struct {
	Status   string          `json:"status"`
	Service  string          `json:"service"`
	Version  string          `json:"version"`
	Channels []types.Channel `json:"channels"`
}
