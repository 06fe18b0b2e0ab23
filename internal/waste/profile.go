package waste

import (
	"github.com/cleanninja/clean_ninja_api/internal/model"
	"github.com/cleanninja/clean_ninja_api/util"
)

// ensureProfileLocked creates the profile on first sight of an identity.
// Caller must hold s.mu for writing.
func (s *Service) ensureProfileLocked(identity model.UserSnapshot) *model.UserProfile {
	profile, ok := s.profiles[identity.ID]
	if !ok {
		profile = &model.UserProfile{
			ID:          identity.ID,
			DisplayName: identity.DisplayName,
			Username:    util.Slugify(identity.DisplayName),
			CreatedAt:   s.now(),
		}
		s.profiles[identity.ID] = profile
	}
	return profile
}

// Profile returns the caller's profile, creating it on first access. The
// returned value is a copy; counters are maintained by report mutations.
func (s *Service) Profile(caller model.UserSnapshot) model.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	return *s.ensureProfileLocked(caller)
}

// ProfileByID looks up an existing profile without creating one.
func (s *Service) ProfileByID(userID string) (model.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return model.UserProfile{}, &NotFoundError{Kind: "profile", ID: userID}
	}
	return *profile, nil
}
