package orchestrator

import (
	"github.com/elC0mpa/cloud-optimizer/model"
	svc "github.com/elC0mpa/cloud-optimizer/service"
)

type service struct {
	engine svc.AggregationService
}

// OrchestratorService runs the workflow selected by the CLI flags.
type OrchestratorService interface {
	Orchestrate(flags model.Flags) error
}
