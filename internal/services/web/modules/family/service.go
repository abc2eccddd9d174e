package family

import (
	"strings"

	"github.com/homeoinvent/homeoinvent/internal/platform/id"
	"github.com/homeoinvent/homeoinvent/internal/services/familysync"
	apperrors "github.com/homeoinvent/homeoinvent/internal/services/web/platform/errors"
)

// SyncGateway is the family sync state the module reads and changes.
type SyncGateway interface {
	Connect(familyID, memberID, memberName string)
	Disconnect()
	IsConnected() bool
	Membership() familysync.Membership
}

type service struct {
	sync  SyncGateway
	newID func() (string, error)
}

func newService(sync SyncGateway) service {
	return service{sync: sync, newID: id.NewID}
}

func (s service) available() error {
	if s.sync == nil {
		return apperrors.EK(apperrors.KindUnavailable, "error.storage_unavailable", "family sync is not configured")
	}
	return nil
}

func (s service) status() (familysync.Membership, bool, error) {
	if err := s.available(); err != nil {
		return familysync.Membership{}, false, err
	}
	membership := s.sync.Membership()
	return membership, membership.FamilyID != "", nil
}

// connect stores a complete membership. A blank member id is generated.
func (s service) connect(familyID, memberID, memberName string) error {
	if err := s.available(); err != nil {
		return err
	}
	familyID = strings.TrimSpace(familyID)
	if familyID == "" {
		return apperrors.EK(apperrors.KindInvalidInput, "error.family_id_required", "family id is required")
	}
	memberName = strings.TrimSpace(memberName)
	if memberName == "" {
		return apperrors.EK(apperrors.KindInvalidInput, "error.member_name_required", "member name is required")
	}
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		generated, err := s.newID()
		if err != nil {
			return err
		}
		memberID = generated
	}
	s.sync.Connect(familyID, memberID, memberName)
	return nil
}

func (s service) disconnect() error {
	if err := s.available(); err != nil {
		return err
	}
	s.sync.Disconnect()
	return nil
}
