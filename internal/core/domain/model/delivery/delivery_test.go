package delivery_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []delivery.ItemRef {
	t.Helper()

	item, err := delivery.NewItemRef("CAM-X100", "Camera X100", 2)
	require.NoError(t, err)
	return []delivery.ItemRef{item}
}

func pooledDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	d, err := delivery.NewDelivery(kernel.NewUUID(), "INV-1001", testItems(t), time.Now().UTC())
	require.NoError(t, err)
	return d
}

func claimedDelivery(t *testing.T, workerID, vehicleID kernel.UUID) *delivery.Delivery {
	t.Helper()

	d := pooledDelivery(t)
	require.NoError(t, d.Claim(workerID, vehicleID, time.Now().UTC()))
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("should create pooled delivery with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		now := time.Now().UTC()

		d, err := delivery.NewDelivery(id, "INV-1001", testItems(t), now)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, "INV-1001", d.InvoiceRef())
		assert.Equal(t, delivery.Pooled, d.Status())
		assert.Nil(t, d.Worker())
		assert.Nil(t, d.Vehicle())
		assert.Nil(t, d.ClaimedAt())
		assert.Equal(t, now, d.CreatedAt())
		assert.False(t, d.IsArchived())
	})

	t.Run("should fail without invoice reference", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), "", testItems(t), time.Now().UTC())

		require.Error(t, err)
		assert.Nil(t, d)
		assert.ErrorIs(t, err, delivery.ErrInvoiceRefIsRequired)
	})

	t.Run("should fail with empty item list", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), "INV-1001", nil, time.Now().UTC())

		require.Error(t, err)
		assert.Nil(t, d)
		assert.ErrorIs(t, err, delivery.ErrItemsAreRequired)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		d, err := delivery.NewDelivery(invalidID, "INV-1001", testItems(t), time.Now().UTC())

		require.Error(t, err)
		assert.Nil(t, d)
	})

	t.Run("should fail with unconstructed item", func(t *testing.T) {
		items := []delivery.ItemRef{{}}

		d, err := delivery.NewDelivery(kernel.NewUUID(), "INV-1001", items, time.Now().UTC())

		require.Error(t, err)
		assert.Nil(t, d)
		assert.ErrorIs(t, err, delivery.ErrItemRefIsNotConstructed)
	})
}

func TestDeliveryClaim(t *testing.T) {
	t.Run("should set worker, vehicle and claim time together", func(t *testing.T) {
		d := pooledDelivery(t)
		workerID := kernel.NewUUID()
		vehicleID := kernel.NewUUID()
		now := time.Now().UTC()

		err := d.Claim(workerID, vehicleID, now)

		require.NoError(t, err)
		assert.Equal(t, delivery.Claimed, d.Status())
		require.NotNil(t, d.Worker())
		assert.True(t, d.Worker().IsEqual(workerID))
		require.NotNil(t, d.Vehicle())
		assert.True(t, d.Vehicle().IsEqual(vehicleID))
		require.NotNil(t, d.ClaimedAt())
		assert.Equal(t, now, *d.ClaimedAt())
	})

	t.Run("should fail on second claim", func(t *testing.T) {
		d := claimedDelivery(t, kernel.NewUUID(), kernel.NewUUID())

		err := d.Claim(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
		assert.Equal(t, delivery.Claimed, d.Status())
	})

	t.Run("should fail with invalid identifiers", func(t *testing.T) {
		d := pooledDelivery(t)
		var invalidID kernel.UUID

		err := d.Claim(invalidID, kernel.NewUUID(), time.Now().UTC())

		require.Error(t, err)
		assert.Equal(t, delivery.Pooled, d.Status())
	})
}

func TestDeliveryOwnership(t *testing.T) {
	workerID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()

	t.Run("should let the owner start the route", func(t *testing.T) {
		d := claimedDelivery(t, workerID, vehicleID)

		require.NoError(t, d.StartRoute(workerID))
		assert.Equal(t, delivery.OutForDelivery, d.Status())
	})

	t.Run("should reject a non-owner starting the route", func(t *testing.T) {
		d := claimedDelivery(t, workerID, vehicleID)

		err := d.StartRoute(kernel.NewUUID())

		require.ErrorIs(t, err, delivery.ErrNotOwner)
		assert.Equal(t, delivery.Claimed, d.Status())
	})

	t.Run("should reject a non-owner delaying", func(t *testing.T) {
		d := claimedDelivery(t, workerID, vehicleID)
		require.NoError(t, d.StartRoute(workerID))

		err := d.Delay(kernel.NewUUID())

		require.ErrorIs(t, err, delivery.ErrNotOwner)
		assert.Equal(t, delivery.OutForDelivery, d.Status())
	})

	t.Run("should reject a non-owner completing", func(t *testing.T) {
		d := claimedDelivery(t, workerID, vehicleID)
		require.NoError(t, d.StartRoute(workerID))

		err := d.Complete(kernel.NewUUID())

		require.ErrorIs(t, err, delivery.ErrNotOwner)
		assert.Equal(t, delivery.OutForDelivery, d.Status())
	})

	t.Run("should reject actions on an unclaimed delivery", func(t *testing.T) {
		d := pooledDelivery(t)

		err := d.StartRoute(workerID)

		require.ErrorIs(t, err, delivery.ErrNotOwner)
	})
}

func TestDeliveryLifecycle(t *testing.T) {
	workerID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()

	t.Run("should walk the happy path to completed", func(t *testing.T) {
		d := claimedDelivery(t, workerID, vehicleID)

		require.NoError(t, d.StartRoute(workerID))
		require.NoError(t, d.Delay(workerID))
		require.NoError(t, d.StartRoute(workerID))
		require.NoError(t, d.Complete(workerID))

		assert.Equal(t, delivery.Completed, d.Status())
	})

	t.Run("should complete directly from delayed", func(t *testing.T) {
		d := claimedDelivery(t, workerID, vehicleID)
		require.NoError(t, d.StartRoute(workerID))
		require.NoError(t, d.Delay(workerID))

		require.NoError(t, d.Complete(workerID))
		assert.Equal(t, delivery.Completed, d.Status())
	})

	t.Run("should reject completing twice", func(t *testing.T) {
		d := claimedDelivery(t, workerID, vehicleID)
		require.NoError(t, d.StartRoute(workerID))
		require.NoError(t, d.Complete(workerID))

		err := d.Complete(workerID)

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})
}

func TestDeliveryCancel(t *testing.T) {
	t.Run("should cancel a pooled delivery without ownership", func(t *testing.T) {
		d := pooledDelivery(t)

		require.NoError(t, d.Cancel())
		assert.Equal(t, delivery.Canceled, d.Status())
	})

	t.Run("should cancel an in-progress delivery keeping its assignment", func(t *testing.T) {
		workerID := kernel.NewUUID()
		d := claimedDelivery(t, workerID, kernel.NewUUID())
		require.NoError(t, d.StartRoute(workerID))

		require.NoError(t, d.Cancel())
		assert.Equal(t, delivery.Canceled, d.Status())
		assert.NotNil(t, d.Worker())
	})

	t.Run("should reject canceling a terminal delivery", func(t *testing.T) {
		d := pooledDelivery(t)
		require.NoError(t, d.Cancel())

		err := d.Cancel()

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})
}

func TestDeliveryArchive(t *testing.T) {
	t.Run("should archive a terminal delivery", func(t *testing.T) {
		d := pooledDelivery(t)
		require.NoError(t, d.Cancel())

		require.NoError(t, d.Archive())
		assert.True(t, d.IsArchived())
	})

	t.Run("should reject archiving a non-terminal delivery", func(t *testing.T) {
		d := pooledDelivery(t)

		err := d.Archive()

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
		assert.False(t, d.IsArchived())
	})
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("should restore a claimed delivery", func(t *testing.T) {
		id := kernel.NewUUID()
		workerID := kernel.NewUUID()
		vehicleID := kernel.NewUUID()
		claimedAt := time.Now().UTC()
		createdAt := claimedAt.Add(-time.Hour)

		d, err := delivery.RestoreDelivery(
			id, "INV-1001", testItems(t), delivery.Claimed,
			&workerID, &vehicleID, &claimedAt, createdAt, false,
		)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.Claimed, d.Status())
	})

	t.Run("should reject a claimed row without assignment", func(t *testing.T) {
		d, err := delivery.RestoreDelivery(
			kernel.NewUUID(), "INV-1001", testItems(t), delivery.Claimed,
			nil, nil, nil, time.Now().UTC(), false,
		)

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
		assert.Nil(t, d)
	})

	t.Run("should reject a pooled row with assignment", func(t *testing.T) {
		workerID := kernel.NewUUID()
		vehicleID := kernel.NewUUID()

		d, err := delivery.RestoreDelivery(
			kernel.NewUUID(), "INV-1001", testItems(t), delivery.Pooled,
			&workerID, &vehicleID, nil, time.Now().UTC(), false,
		)

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
		assert.Nil(t, d)
	})
}
