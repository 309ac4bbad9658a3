package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcademy_GetAcademyAdaptsWireRecord(t *testing.T) {
	id := uuid.New()
	uc := NewAcademyUsecase(fakeAcademyRepo{raw: map[uuid.UUID]map[string]any{
		id: {"id": id.String(), "academy_name": "Go School", "is_verified": true},
	}})

	p, err := uc.GetAcademy(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Go School", p.Name)
	assert.True(t, p.Verified)

	_, err = uc.GetAcademy(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrAcademyNotFound)
}
