package usecase

import (
	"sync"

	"github.com/mechafix/dispatch/internal/pkg/models"
	"github.com/mechafix/dispatch/services/dispatch"
)

// DispatchUC implements the dispatch use case interface
type DispatchUC struct {
	cfg          *models.Config
	requestRepo  dispatch.RequestRepo
	mechanicRepo dispatch.MechanicRepo
	dispatchGW   dispatch.DispatchGW

	// escalation timers keyed by request ID
	escMu       sync.Mutex
	escalations map[string]*EscalationTimer
}

// NewDispatchUC creates a new dispatch use case
func NewDispatchUC(
	cfg *models.Config,
	requestRepo dispatch.RequestRepo,
	mechanicRepo dispatch.MechanicRepo,
	dispatchGW dispatch.DispatchGW,
) *DispatchUC {
	return &DispatchUC{
		cfg:          cfg,
		requestRepo:  requestRepo,
		mechanicRepo: mechanicRepo,
		dispatchGW:   dispatchGW,
		escalations:  make(map[string]*EscalationTimer),
	}
}
