// path: reports/service_test.go
package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljh8159/rail-back/apperr"
	"github.com/ljh8159/rail-back/models"
)

func TestSubmitMirrorsUserpageColumns(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)

	r, err := svc.Submit(context.Background(), SubmitInput{
		UserID:   "kim",
		Location: "서울역 2번 출구",
		Lat:      37.556,
		Lng:      126.972,
		AIStage:  models.StagePending,
	})
	require.NoError(t, err)

	assert.Equal(t, models.TypeReport, r.Type)
	assert.Equal(t, r.Type, r.ForUserpageType)
	assert.Equal(t, r.AIStage, r.ForUserpageStage)
	assert.Equal(t, int64(1), r.ID)
}

func TestSubmitDefaults(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	r, err := svc.Submit(context.Background(), SubmitInput{
		Location: "부산역",
		AIStage:  models.StageConfirmed,
	})
	require.NoError(t, err)

	assert.Equal(t, models.GuestUserID, r.UserID)
	// Default timestamp is wall clock plus a literal nine hours.
	assert.Equal(t, base.Add(9*time.Hour), r.Timestamp)
}

func TestSubmitKeepsCallerTimestamp(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)

	ts := time.Date(2025, 5, 2, 3, 4, 5, 0, time.UTC)
	r, err := svc.Submit(context.Background(), SubmitInput{
		Location:  "대전역",
		AIStage:   models.StagePending,
		Timestamp: ts,
	})
	require.NoError(t, err)
	assert.Equal(t, ts, r.Timestamp)
}

func TestSubmitMissingLocation(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)

	_, err := svc.Submit(context.Background(), SubmitInput{AIStage: models.StagePending})
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)

	// Nothing was inserted.
	n, err := store.Count(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDispatchClaimsAllPendingAtLocation(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	r1, err := svc.Submit(ctx, SubmitInput{UserID: "a", Location: "수원역", AIStage: models.StagePending})
	require.NoError(t, err)
	r2, err := svc.Submit(ctx, SubmitInput{UserID: "b", Location: "수원역", AIStage: models.StageConfirmed})
	require.NoError(t, err)
	other, err := svc.Submit(ctx, SubmitInput{UserID: "c", Location: "인천역", AIStage: models.StagePending})
	require.NoError(t, err)

	require.NoError(t, svc.Dispatch(ctx, "수원역", "responder1"))

	for _, id := range []int64{r1.ID, r2.ID} {
		got := store.get(id)
		assert.Equal(t, models.TypeDispatched, got.Type)
		assert.Equal(t, models.StageDispatched, got.AIStage)
		assert.Equal(t, "responder1", got.DispatchUserID)
		// Reporter-side history is untouched by the claim.
		assert.Equal(t, models.TypeReport, got.ForUserpageType)
	}

	untouched := store.get(other.ID)
	assert.Equal(t, models.TypeReport, untouched.Type)
	assert.Empty(t, untouched.DispatchUserID)
}

func TestDispatchNoMatchIsNoOp(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)

	require.NoError(t, svc.Dispatch(context.Background(), "없는곳", "responder1"))
}

func TestAdminDecideLastWriteWins(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	r, err := svc.Submit(ctx, SubmitInput{Location: "서울역", AIStage: models.StagePending})
	require.NoError(t, err)

	require.NoError(t, svc.AdminDecide(ctx, r.ID, models.StageConfirmed))
	require.NoError(t, svc.AdminDecide(ctx, r.ID, models.StageRejected))

	got := store.get(r.ID)
	assert.Equal(t, models.StageRejected, got.AIStage)
	assert.Equal(t, models.StageRejected, got.ForUserpageStage)
	// The decision never moves the type pair.
	assert.Equal(t, models.TypeReport, got.Type)
	assert.Equal(t, models.TypeReport, got.ForUserpageType)
}

func TestAdminDecideInvalidStage(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)

	for _, stage := range []int{0, 1, 2, 4, 6} {
		err := svc.AdminDecide(context.Background(), 1, stage)
		var ve *apperr.ValidationError
		assert.ErrorAs(t, err, &ve, "stage %d", stage)
	}
}

func TestAdminDecideUnknownID(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)

	err := svc.AdminDecide(context.Background(), 42, models.StageConfirmed)
	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
}
