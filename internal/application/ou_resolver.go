package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/bnema/aws-accounts-cli/internal/ports"
)

// OUResolver maps slash-separated OU paths to OU ids by walking the tree from a
// starting OU, one ListChildOUs pagination per segment.
type OUResolver struct {
	org    ports.Organization
	rootID domain.OUID
}

func NewOUResolver(org ports.Organization, rootID domain.OUID) *OUResolver {
	return &OUResolver{org: org, rootID: rootID}
}

func (r *OUResolver) RootID() domain.OUID {
	return r.rootID
}

// Resolve returns the id of the OU addressed by ouPath. An empty start means the
// root. "/", the root id itself and paths that are empty once their slashes are
// stripped all resolve to the root without calling the organization.
func (r *OUResolver) Resolve(ctx context.Context, ouPath string, start domain.OUID) (domain.OUID, error) {
	if trimmed := strings.TrimSpace(ouPath); trimmed == domain.RootPath || domain.OUID(trimmed) == r.rootID {
		return r.rootID, nil
	}

	segments := domain.SplitOUPath(ouPath)
	if len(segments) == 0 {
		return r.rootID, nil
	}

	current := start
	if current == "" {
		current = r.rootID
	}
	for _, segment := range segments {
		children, err := r.Children(ctx, current)
		if err != nil {
			return "", err
		}

		next, ok := childNamed(children, segment)
		if !ok {
			return "", &domain.OUNotFoundError{Path: ouPath, Segment: segment, ChildrenSeen: ouNames(children)}
		}
		current = next
	}

	return current, nil
}

// Children lists every direct child OU of parentID across all pages.
func (r *OUResolver) Children(ctx context.Context, parentID domain.OUID) ([]domain.OrganizationalUnit, error) {
	var (
		children []domain.OrganizationalUnit
		token    string
	)
	for {
		page, err := r.org.ListChildOUs(ctx, parentID, token)
		if err != nil {
			return nil, fmt.Errorf("list child organizational units of %s: %w", parentID, err)
		}
		children = append(children, page.Items...)
		if page.NextToken == "" {
			return children, nil
		}
		token = page.NextToken
	}
}

func childNamed(children []domain.OrganizationalUnit, name string) (domain.OUID, bool) {
	for _, child := range children {
		if child.Name == name {
			return child.ID, true
		}
	}
	return "", false
}

func ouNames(children []domain.OrganizationalUnit) []string {
	names := make([]string, 0, len(children))
	for _, child := range children {
		names = append(names, child.Name)
	}
	return names
}
