// Package familysync tracks which household the current HomeoInvent process
// is sharing its inventory with.
//
// Real-time replication between family members is owned by the family's cloud
// document database client. This package only remembers the identity of the
// connected family and member so pages can show it; it performs no network
// I/O and has no failure modes.
package familysync

import (
	"log"
	"sync"
)

// Membership identifies the connected family and the local member.
type Membership struct {
	FamilyID   string
	MemberID   string
	MemberName string
}

// Service holds the current family membership. The zero value is ready to use
// and disconnected.
type Service struct {
	mu         sync.RWMutex
	membership Membership
	logf       func(string, ...any)
}

// New returns a disconnected service that reports through logf. A nil logf
// falls back to log.Printf.
func New(logf func(string, ...any)) *Service {
	return &Service{logf: logf}
}

// Connect stores the family membership, replacing any previous one.
func (s *Service) Connect(familyID, memberID, memberName string) {
	s.mu.Lock()
	s.membership = Membership{
		FamilyID:   familyID,
		MemberID:   memberID,
		MemberName: memberName,
	}
	s.mu.Unlock()
	s.log("family sync connected family_id=%s member_id=%s member_name=%q", familyID, memberID, memberName)
}

// Disconnect clears the family membership.
func (s *Service) Disconnect() {
	s.mu.Lock()
	s.membership = Membership{}
	s.mu.Unlock()
	s.log("family sync disconnected")
}

// IsConnected reports whether a family identifier is currently set.
func (s *Service) IsConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.membership.FamilyID != ""
}

// Membership returns a snapshot of the stored identifiers.
func (s *Service) Membership() Membership {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.membership
}

func (s *Service) log(format string, args ...any) {
	if s.logf != nil {
		s.logf(format, args...)
		return
	}
	log.Printf(format, args...)
}
