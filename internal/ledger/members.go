package ledger

import (
	"strings"
	"time"

	"github.com/praiadomeio/app-ampm/internal/models"
	"github.com/praiadomeio/app-ampm/internal/utils"
)

// SaveMember registers a new member (empty input ID) or edits an existing one, stamping the audit trail.
// A new member gets creator and updater set to the actor and the join date set to today.
// An edit keeps id, creator and join date, and overwrites everything else.
func SaveMember(members []models.Member, input models.MemberInput, actor models.User, now time.Time) ([]models.Member, models.Member, error) {
	if !actor.Role.CanEdit() {
		return members, models.Member{}, models.ErrForbidden
	}

	stamp := FormatTimestamp(now)
	if input.ID == "" {
		member := models.Member{
			ID:            newID(),
			Name:          input.Name,
			CPF:           input.CPF,
			Email:         input.Email,
			Phone:         input.Phone,
			Address:       input.Address,
			JoinDate:      now.Format(DisplayDate),
			BirthDate:     input.BirthDate,
			Active:        input.Active,
			CreatedByID:   actor.ID,
			CreatedByName: actor.Name,
			UpdatedByID:   actor.ID,
			UpdatedByName: actor.Name,
			UpdatedAt:     stamp,
		}
		out := make([]models.Member, 0, len(members)+1)
		out = append(out, members...)
		return append(out, member), member, nil
	}

	idx := memberIndex(members, input.ID)
	if idx < 0 {
		return members, models.Member{}, models.ErrMemberNotFound
	}

	member := members[idx]
	member.Name = input.Name
	member.CPF = input.CPF
	member.Email = input.Email
	member.Phone = input.Phone
	member.BirthDate = input.BirthDate
	member.Active = input.Active
	member.Address = input.Address
	member.UpdatedByID = actor.ID
	member.UpdatedByName = actor.Name
	member.UpdatedAt = stamp

	out := append([]models.Member(nil), members...)
	out[idx] = member
	return out, member, nil
}

// FindMember returns the member with the given id
func FindMember(members []models.Member, id string) (models.Member, bool) {
	if idx := memberIndex(members, id); idx >= 0 {
		return members[idx], true
	}
	return models.Member{}, false
}

// SearchMembers filters members by name (ignoring case) or CPF, and by membership status.
// CPF matches either the stored text or its digits.
func SearchMembers(members []models.Member, term string, status models.MemberStatusFilter) []models.Member {
	term = strings.TrimSpace(term)
	lower := strings.ToLower(term)
	digits := utils.CPFDigits(term)

	out := make([]models.Member, 0, len(members))
	for _, m := range members {
		switch status {
		case models.MemberStatusActive:
			if !m.Active {
				continue
			}
		case models.MemberStatusInactive:
			if m.Active {
				continue
			}
		}
		if term != "" &&
			!containsFold(m.Name, lower) &&
			!strings.Contains(m.CPF, term) &&
			(digits == "" || !strings.Contains(utils.CPFDigits(m.CPF), digits)) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func memberIndex(members []models.Member, id string) int {
	for i, m := range members {
		if m.ID == id {
			return i
		}
	}
	return -1
}
