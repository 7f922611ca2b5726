package domain

type VPC struct {
	ID        string
	IsDefault bool
}

type Subnet struct {
	ID    string
	VPCID string
}

type InternetGateway struct {
	ID           string
	AttachedVPCs []string
}

func (g InternetGateway) AttachedTo(vpcID string) bool {
	for _, attached := range g.AttachedVPCs {
		if attached == vpcID {
			return true
		}
	}
	return false
}

type VPCOutcomeStatus string

const (
	VPCOutcomeNoDefaultVPC VPCOutcomeStatus = "no_default_vpc"
	VPCOutcomeDeleted      VPCOutcomeStatus = "deleted"
)

type VPCOutcome struct {
	Status            VPCOutcomeStatus
	Region            string
	VPCID             string
	DeletedSubnets    []string
	FailedSubnets     []string
	InternetGatewayID string
	DryRun            bool
}
