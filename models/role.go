package models

import "slices"

type Role int

const (
	NO_ROLE Role = iota
	VIEWER
	ANALYST
	REVIEWER
	RISK_MANAGER
	ADMIN
)

func (r Role) String() string {
	switch r {
	case NO_ROLE:
		return "NO_ROLE"
	case VIEWER:
		return "VIEWER"
	case ANALYST:
		return "ANALYST"
	case REVIEWER:
		return "REVIEWER"
	case RISK_MANAGER:
		return "RISK_MANAGER"
	case ADMIN:
		return "ADMIN"
	default:
		return "UNKNOWN_ROLE"
	}
}

func RoleFromString(s string) Role {
	switch s {
	case "VIEWER":
		return VIEWER
	case "ANALYST":
		return ANALYST
	case "REVIEWER":
		return REVIEWER
	case "RISK_MANAGER":
		return RISK_MANAGER
	case "ADMIN":
		return ADMIN
	}
	return NO_ROLE
}

var ROLES_PERMISSIONS = map[Role][]Permission{
	VIEWER: {
		WORKFLOW_READ,
		AUDIT_READ,
		SNAPSHOT_READ,
		EVIDENCE_READ,
	},
	ANALYST: {
		WORKFLOW_READ,
		WORKFLOW_CREATE,
		WORKFLOW_SUBMIT,
		AUDIT_READ,
		AUDIT_WRITE,
		SNAPSHOT_READ,
		EVIDENCE_READ,
		EVIDENCE_UPLOAD,
	},
	REVIEWER: {
		WORKFLOW_READ,
		WORKFLOW_CREATE,
		WORKFLOW_SUBMIT,
		WORKFLOW_APPROVE,
		WORKFLOW_SIGNOFF,
		AUDIT_READ,
		AUDIT_WRITE,
		SNAPSHOT_READ,
		EVIDENCE_READ,
		EVIDENCE_UPLOAD,
	},
	RISK_MANAGER: {
		WORKFLOW_READ,
		WORKFLOW_CREATE,
		WORKFLOW_SUBMIT,
		WORKFLOW_APPROVE,
		WORKFLOW_RELEASE,
		WORKFLOW_SIGNOFF,
		AUDIT_READ,
		AUDIT_WRITE,
		SNAPSHOT_CREATE,
		SNAPSHOT_READ,
		EVIDENCE_READ,
		EVIDENCE_UPLOAD,
		EVIDENCE_DELETE,
	},
	ADMIN: {
		WORKFLOW_READ,
		WORKFLOW_CREATE,
		WORKFLOW_SUBMIT,
		WORKFLOW_APPROVE,
		WORKFLOW_RELEASE,
		WORKFLOW_SIGNOFF,
		AUDIT_READ,
		AUDIT_WRITE,
		SNAPSHOT_CREATE,
		SNAPSHOT_READ,
		EVIDENCE_READ,
		EVIDENCE_UPLOAD,
		EVIDENCE_DELETE,
	},
}

func (r Role) Permissions() []Permission {
	permissions := ROLES_PERMISSIONS[r]
	if permissions == nil {
		return []Permission{}
	}
	return permissions
}

func (r Role) HasPermission(permission Permission) bool {
	return slices.Contains(r.Permissions(), permission)
}
