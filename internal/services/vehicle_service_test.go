package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/fleet-usage/internal/apperr"
	"github.com/fleetops/fleet-usage/internal/models"
	"github.com/fleetops/fleet-usage/internal/store"
)

func TestVehicleService_Get(t *testing.T) {
	service := NewVehicleService(store.NewMemoryVehicleStore())
	created := service.Create(models.VehicleInput{Plate: "ABC-1234", Color: "Azul", Make: "Fiat"})

	t.Run("existing vehicle", func(t *testing.T) {
		vehicle, err := service.Get(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, vehicle)
	})

	t.Run("missing vehicle is NotFound", func(t *testing.T) {
		_, err := service.Get("missing")
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestVehicleService_Update(t *testing.T) {
	service := NewVehicleService(store.NewMemoryVehicleStore())
	created := service.Create(models.VehicleInput{Plate: "ABC-1234", Color: "Azul", Make: "Fiat"})

	t.Run("updates an existing vehicle", func(t *testing.T) {
		color := "Preto"
		vehicle, err := service.Update(created.ID, models.VehiclePatch{Color: &color})
		require.NoError(t, err)
		assert.Equal(t, "Preto", vehicle.Color)
		assert.Equal(t, "ABC-1234", vehicle.Plate)
	})

	t.Run("missing vehicle is NotFound", func(t *testing.T) {
		_, err := service.Update("missing", models.VehiclePatch{})
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestVehicleService_Delete(t *testing.T) {
	service := NewVehicleService(store.NewMemoryVehicleStore())
	created := service.Create(models.VehicleInput{Plate: "ABC-1234", Color: "Azul", Make: "Fiat"})

	require.NoError(t, service.Delete(created.ID))

	err := service.Delete(created.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestVehicleService_List(t *testing.T) {
	service := NewVehicleService(store.NewMemoryVehicleStore())
	service.Create(models.VehicleInput{Plate: "A", Color: "Azul", Make: "Fiat"})
	service.Create(models.VehicleInput{Plate: "B", Color: "Preto", Make: "Ford"})

	assert.Len(t, service.List(models.VehicleFilter{}), 2)
	assert.Len(t, service.List(models.VehicleFilter{Make: "ford"}), 1)
}
