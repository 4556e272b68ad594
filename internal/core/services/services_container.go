package services

import (
	portsrepo "github.com/murphysheldon05/tsmroofpro-sub002/internal/core/ports/repositories"
	portssvc "github.com/murphysheldon05/tsmroofpro-sub002/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, notifier portssvc.NotificationDispatcher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Commission = NewCommissionService(
		repos.CommissionRepo,
		repos.RevisionLogRepo,
		repos.StatusLogRepo,
		repos.DeniedJobRepo,
	)
	container.Workflow = NewWorkflowService(
		repos.CommissionRepo,
		repos.RevisionLogRepo,
		repos.StatusLogRepo,
		repos.DeniedJobRepo,
		notifier,
	)

	return container
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.WorkflowSvcFacade   = (*workflowService)(nil)
	_ portssvc.CommissionSvcFacade = (*commissionService)(nil)
	_ portssvc.UserSvcFacade       = (*userService)(nil)
)
