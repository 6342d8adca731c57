package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentacar/internal/entities"
)

func tempFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "bookings.json")
}

func TestLoadMissingFileStartsEmpty(t *testing.T) {
	repo := NewBookingRepository(tempFile(t))
	assert.Empty(t, repo.List())
}

func TestLoadCorruptFileStartsEmpty(t *testing.T) {
	path := tempFile(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	repo := NewBookingRepository(path)
	assert.Empty(t, repo.List())

	// The collection must still be usable after a recovered read failure.
	b := &entities.Booking{Vehicle: "Civic"}
	require.NoError(t, repo.Insert(b))
	assert.Equal(t, 1, b.ID)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := tempFile(t)
	repo := NewBookingRepository(path)

	first := &entities.Booking{
		Vehicle:    "Civic",
		PickupDate: "2024-06-01",
		ReturnDate: "2024-06-05",
		Location:   "Main Office (Batkhela, Malakand, KPK)",
		Name:       "Ali",
		Email:      "ali@example.com",
		Contact:    "0300-0000000",
		Status:     "Pending",
		CreatedAt:  "2024-05-20T10:00:00Z",
	}
	second := &entities.Booking{Vehicle: "Corolla", Name: "Sara", Status: "Pending"}
	require.NoError(t, repo.Insert(first))
	require.NoError(t, repo.Insert(second))

	reloaded := NewBookingRepository(path)
	require.Equal(t, repo.List(), reloaded.List())
	assert.Equal(t, "Civic", reloaded.List()[0].Vehicle)
	assert.Equal(t, "Corolla", reloaded.List()[1].Vehicle)
}

func TestInsertAssignsSequentialIDs(t *testing.T) {
	repo := NewBookingRepository(tempFile(t))

	for want := 1; want <= 3; want++ {
		b := &entities.Booking{Vehicle: "Civic"}
		require.NoError(t, repo.Insert(b))
		assert.Equal(t, want, b.ID)
	}
}

func TestNextIDSeededFromExistingMax(t *testing.T) {
	path := tempFile(t)
	data := `[{"id":3,"vehicle":"Civic"},{"id":7,"vehicle":"Corolla"},{"vehicle":"Mehran"}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	repo := NewBookingRepository(path)
	b := &entities.Booking{Vehicle: "Alto"}
	require.NoError(t, repo.Insert(b))
	assert.Equal(t, 8, b.ID)
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	repo := NewBookingRepository(tempFile(t))

	b1 := &entities.Booking{Vehicle: "Civic"}
	b2 := &entities.Booking{Vehicle: "Corolla"}
	require.NoError(t, repo.Insert(b1))
	require.NoError(t, repo.Insert(b2))
	require.NoError(t, repo.Delete(b2.ID))

	b3 := &entities.Booking{Vehicle: "Alto"}
	require.NoError(t, repo.Insert(b3))
	assert.Equal(t, 3, b3.ID)
}

func TestUpdateStatus(t *testing.T) {
	repo := NewBookingRepository(tempFile(t))
	b := &entities.Booking{Vehicle: "Civic", Status: "Pending"}
	require.NoError(t, repo.Insert(b))

	require.NoError(t, repo.UpdateStatus(b.ID, "Accepted"))
	got, err := repo.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Accepted", got.Status)

	assert.ErrorIs(t, repo.UpdateStatus(999, "Accepted"), ErrBookingNotFound)
}

func TestDeleteNotFound(t *testing.T) {
	repo := NewBookingRepository(tempFile(t))
	b := &entities.Booking{Vehicle: "Civic"}
	require.NoError(t, repo.Insert(b))

	require.NoError(t, repo.Delete(b.ID))
	assert.ErrorIs(t, repo.Delete(b.ID), ErrBookingNotFound)

	_, err := repo.Get(b.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
