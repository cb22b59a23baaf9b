// Package tui provides an interactive terminal user interface for finsync.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/finsync/internal/core/domain"
	"github.com/custodia-labs/finsync/internal/core/ports/driving"
)

// NoticeFeed hands over notices raised while a sync ran.
type NoticeFeed interface {
	Drain() []domain.Notice
}

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Sync runs batch and single-account syncs.
	Sync driving.SyncOrchestrator

	// Accounts lists the accounts shown in the main view.
	Accounts driving.AccountService

	// Notices is optional. Without it the view derives the notice from the summary.
	Notices NoticeFeed
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Sync == nil {
		return ErrMissingSyncOrchestrator
	}
	if p.Accounts == nil {
		return ErrMissingAccountService
	}
	return nil
}
