package usecase

import (
	"testing"

	"reviewdb/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestActor_CanEdit_Owner(t *testing.T) {
	actor := Actor{ID: "user-1", Role: entity.RoleUser}
	assert.True(t, actor.CanEdit("user-1"))
	assert.False(t, actor.CanEdit("user-2"))
}

func TestActor_CanEdit_Moderator(t *testing.T) {
	actor := Actor{ID: "mod-1", Role: entity.RoleModerator}
	assert.True(t, actor.CanEdit("user-2"))
}

func TestActor_CanEdit_Admin(t *testing.T) {
	actor := Actor{ID: "admin-1", Role: entity.RoleAdmin}
	assert.True(t, actor.CanEdit("user-2"))
}

func TestEffectiveRole(t *testing.T) {
	assert.Equal(t, entity.RoleUser, EffectiveRole(&entity.User{Role: entity.RoleUser}))
	assert.Equal(t, entity.RoleModerator, EffectiveRole(&entity.User{Role: entity.RoleModerator}))
	assert.Equal(t, entity.RoleAdmin, EffectiveRole(&entity.User{Role: entity.RoleAdmin}))

	// staff and superuser flags grant admin regardless of the stored role
	assert.Equal(t, entity.RoleAdmin, EffectiveRole(&entity.User{Role: entity.RoleUser, IsStaff: true}))
	assert.Equal(t, entity.RoleAdmin, EffectiveRole(&entity.User{Role: entity.RoleUser, IsSuperuser: true}))
}

func TestRoundRating(t *testing.T) {
	assert.Nil(t, roundRating(nil))

	avg := 8.0
	rounded := roundRating(&avg)
	assert.NotNil(t, rounded)
	assert.InDelta(t, 8.0, *rounded, 0.0001)

	avg = 6.66666
	rounded = roundRating(&avg)
	assert.InDelta(t, 6.7, *rounded, 0.0001)
}

func TestRoundRating_TiesToEven(t *testing.T) {
	avg := 7.25
	rounded := roundRating(&avg)
	assert.InDelta(t, 7.2, *rounded, 0.0001)

	avg = 7.75
	rounded = roundRating(&avg)
	assert.InDelta(t, 7.8, *rounded, 0.0001)

	avg = 7.5
	rounded = roundRating(&avg)
	assert.InDelta(t, 7.5, *rounded, 0.0001)
}
