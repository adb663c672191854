package usecases

import (
	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/usecases/security"
)

// UsecasesWithCreds builds request-scoped use cases: each one carries the
// caller's credentials and the permission gate built from them.
type UsecasesWithCreds struct {
	Usecases
	credentials models.Credentials
}

func (usecases *UsecasesWithCreds) Credentials() models.Credentials {
	return usecases.credentials
}

func (usecases *UsecasesWithCreds) NewEnforceSecurity() security.EnforceSecurity {
	return &security.EnforceSecurityImpl{
		Credentials: usecases.credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceWorkflowSecurity() security.EnforceSecurityWorkflow {
	return &security.EnforceSecurityWorkflowImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceAuditSecurity() security.EnforceSecurityAudit {
	return &security.EnforceSecurityAuditImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceSnapshotSecurity() security.EnforceSecuritySnapshot {
	return &security.EnforceSecuritySnapshotImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceEvidenceSecurity() security.EnforceSecurityEvidence {
	return &security.EnforceSecurityEvidenceImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.credentials,
	}
}

func (usecases *UsecasesWithCreds) NewWorkflowUseCase() WorkflowUseCase {
	return WorkflowUseCase{
		enforceSecurity:    usecases.NewEnforceWorkflowSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.TaraDbRepository,
		credentials:        usecases.credentials,
	}
}

func (usecases *UsecasesWithCreds) NewAuditUseCase() AuditUseCase {
	return AuditUseCase{
		enforceSecurity: usecases.NewEnforceAuditSecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.TaraDbRepository,
		credentials:     usecases.credentials,
	}
}

func (usecases *UsecasesWithCreds) NewSnapshotUseCase() SnapshotUseCase {
	return SnapshotUseCase{
		enforceSecurity:    usecases.NewEnforceSnapshotSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.TaraDbRepository,
		artifactReader:     usecases.Repositories.TaraDbRepository,
		credentials:        usecases.credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEvidenceUseCase() EvidenceUseCase {
	return EvidenceUseCase{
		enforceSecurity:    usecases.NewEnforceEvidenceSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.TaraDbRepository,
		blobRepository:     usecases.Repositories.BlobRepository,
		bucketUrl:          usecases.evidenceBucketUrl,
		credentials:        usecases.credentials,
	}
}
