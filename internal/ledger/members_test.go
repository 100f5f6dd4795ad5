package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praiadomeio/app-ampm/internal/models"
)

func TestSaveMember_Create(t *testing.T) {
	actor := models.User{ID: "u1", Name: "Ana", Role: models.RoleEditor}
	now := time.Date(2024, time.May, 4, 14, 5, 9, 0, time.UTC)
	input := models.MemberInput{
		Name:      "Carlos Pereira",
		CPF:       "000.111.222-33",
		BirthDate: "1990-12-01",
		Active:    true,
		Address:   models.Address{Street: "Rua Chile", Number: "5"},
	}

	before := sampleMembers()
	out, member, err := SaveMember(before, input, actor, now)
	require.NoError(t, err)

	assert.Len(t, before, 3, "input slice is untouched")
	require.Len(t, out, 4)
	assert.Equal(t, member, out[3])
	assert.NotEmpty(t, member.ID)
	assert.Equal(t, "04/05/2024", member.JoinDate)
	assert.Equal(t, "u1", member.CreatedByID)
	assert.Equal(t, "Ana", member.CreatedByName)
	assert.Equal(t, "u1", member.UpdatedByID)
	assert.Equal(t, "Ana", member.UpdatedByName)
	assert.Equal(t, "04/05/2024 14:05:09", member.UpdatedAt)
}

func TestSaveMember_UpdateKeepsCreator(t *testing.T) {
	creator := models.User{ID: "u1", Name: "Ana", Role: models.RoleEditor}
	editor := models.User{ID: "u2", Name: "Bruno", Role: models.RoleAdmin}

	created := time.Date(2024, time.January, 2, 8, 0, 0, 0, time.UTC)
	members, original, err := SaveMember(nil, models.MemberInput{Name: "Carlos", Active: true}, creator, created)
	require.NoError(t, err)

	edited := created.AddDate(0, 1, 0)
	input := models.MemberInput{ID: original.ID, Name: "Carlos Silva", Active: false}
	out, updated, err := SaveMember(members, input, editor, edited)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, original.JoinDate, updated.JoinDate)
	assert.Equal(t, "u1", updated.CreatedByID)
	assert.Equal(t, "Ana", updated.CreatedByName)
	assert.Equal(t, "u2", updated.UpdatedByID)
	assert.Equal(t, "Bruno", updated.UpdatedByName)
	assert.Equal(t, "02/02/2024 08:00:00", updated.UpdatedAt)
	assert.Equal(t, "Carlos Silva", updated.Name)
	assert.False(t, updated.Active)

	assert.Equal(t, "Carlos", members[0].Name, "previous collection is untouched")
}

func TestSaveMember_Errors(t *testing.T) {
	viewer := models.User{ID: "v", Name: "Vera", Role: models.RoleViewer}
	editor := models.User{ID: "e", Name: "Eva", Role: models.RoleEditor}
	members := sampleMembers()

	out, _, err := SaveMember(members, models.MemberInput{Name: "X"}, viewer, time.Now())
	assert.ErrorIs(t, err, models.ErrForbidden)
	assert.Len(t, out, 3)

	out, _, err = SaveMember(members, models.MemberInput{ID: "missing", Name: "X"}, editor, time.Now())
	assert.ErrorIs(t, err, models.ErrMemberNotFound)
	assert.Equal(t, members, out)
}

func TestSearchMembers(t *testing.T) {
	members := sampleMembers()

	tests := []struct {
		name   string
		term   string
		status models.MemberStatusFilter
		want   []string
	}{
		{"everyone", "", models.MemberStatusAll, []string{"m1", "m2", "m3"}},
		{"active", "", models.MemberStatusActive, []string{"m1", "m2"}},
		{"inactive", "", models.MemberStatusInactive, []string{"m3"}},
		{"name ignoring case", "joão", models.MemberStatusAll, []string{"m2"}},
		{"formatted cpf", "987.654", models.MemberStatusAll, []string{"m2"}},
		{"cpf digits", "11122233344", models.MemberStatusAll, []string{"m3"}},
		{"name and status", "maria", models.MemberStatusInactive, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchMembers(members, tt.term, tt.status)
			ids := make([]string, 0, len(got))
			for _, m := range got {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFindMember(t *testing.T) {
	m, ok := FindMember(sampleMembers(), "m2")
	require.True(t, ok)
	assert.Equal(t, "João Lima", m.Name)

	_, ok = FindMember(sampleMembers(), "nope")
	assert.False(t, ok)
}
