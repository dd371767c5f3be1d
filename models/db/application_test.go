package dbmodels

import (
	"testing"

	"ppalink-backend/models"

	"github.com/stretchr/testify/require"
)

func TestIsAllowStatusChange(t *testing.T) {
	makeApp := func(status models.ApplicationStatus) Application {
		return Application{Status: status}
	}

	t.Run("повторная установка того же статуса игнорируется", func(t *testing.T) {
		ok, err := makeApp(models.ApplicationStatusReviewing).IsAllowStatusChange(models.ApplicationStatusReviewing)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("разрешённые переходы", func(t *testing.T) {
		cases := []struct {
			from models.ApplicationStatus
			to   models.ApplicationStatus
		}{
			{models.ApplicationStatusApplied, models.ApplicationStatusReviewing},
			{models.ApplicationStatusReviewing, models.ApplicationStatusOffer},
			{models.ApplicationStatusInterview, models.ApplicationStatusOffer},
			{models.ApplicationStatusApplied, models.ApplicationStatusRejected},
			{models.ApplicationStatusReviewing, models.ApplicationStatusRejected},
			{models.ApplicationStatusInterview, models.ApplicationStatusRejected},
			{models.ApplicationStatusOffer, models.ApplicationStatusRejected},
		}
		for _, c := range cases {
			ok, err := makeApp(c.from).IsAllowStatusChange(c.to)
			require.NoError(t, err, "переход %v -> %v", c.from, c.to)
			require.True(t, ok, "переход %v -> %v", c.from, c.to)
		}
	})

	t.Run("запрещённые переходы", func(t *testing.T) {
		cases := []struct {
			from models.ApplicationStatus
			to   models.ApplicationStatus
		}{
			{models.ApplicationStatusInterview, models.ApplicationStatusReviewing},
			{models.ApplicationStatusApplied, models.ApplicationStatusOffer},
			{models.ApplicationStatusRejected, models.ApplicationStatusReviewing},
			{models.ApplicationStatusWithdrawn, models.ApplicationStatusReviewing},
		}
		for _, c := range cases {
			ok, err := makeApp(c.from).IsAllowStatusChange(c.to)
			require.Error(t, err, "переход %v -> %v", c.from, c.to)
			require.False(t, ok, "переход %v -> %v", c.from, c.to)
		}
	})

	t.Run("INTERVIEW не выставляется сменой статуса", func(t *testing.T) {
		ok, err := makeApp(models.ApplicationStatusReviewing).IsAllowStatusChange(models.ApplicationStatusInterview)
		require.Error(t, err)
		require.False(t, ok)
	})

	t.Run("неизвестный статус отклоняется", func(t *testing.T) {
		ok, err := makeApp(models.ApplicationStatusApplied).IsAllowStatusChange("UNKNOWN")
		require.Error(t, err)
		require.False(t, ok)
	})
}
