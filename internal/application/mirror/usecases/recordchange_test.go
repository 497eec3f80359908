package usecases

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/infrastructure/metrics"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/testdb"
	"github.com/lumenhq/lumen/internal/infrastructure/pubsub"
	"github.com/lumenhq/lumen/internal/infrastructure/repository"
	"github.com/lumenhq/lumen/internal/shared/db"
	apperrors "github.com/lumenhq/lumen/internal/shared/errors"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

type recorderFixture struct {
	uc           *RecordChangeUseCase
	versionRepo  mirror.ConfigVersionRepository
	activityRepo mirror.ActivityLogRepository
	hub          *pubsub.VersionHub
}

func newRecorderFixture(t *testing.T) recorderFixture {
	t.Helper()
	gdb := testdb.New(t)
	log := logger.NewNop()
	f := recorderFixture{
		versionRepo:  repository.NewConfigVersionRepository(gdb, log),
		activityRepo: repository.NewActivityLogRepository(gdb, log),
		hub:          pubsub.NewVersionHub(log),
	}
	f.uc = NewRecordChangeUseCase(db.NewTransactionManager(gdb), f.activityRepo, f.versionRepo, f.hub, log)
	return f
}

func TestRecordChange_BumpsOncePerCall(t *testing.T) {
	f := newRecorderFixture(t)
	ctx := context.Background()

	events, cancel := f.hub.Subscribe()
	defer cancel()

	f.uc.Record(ctx, mirror.Change{Action: mirror.ActionCalendarDelete, UserID: "admin", Details: map[string]any{"id": "cal_1"}})

	v, err := f.versionRepo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Version)

	entries, err := f.activityRepo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "calendar.delete", entries[0].Action)
	assert.Equal(t, "calendar", entries[0].Category)
	assert.Equal(t, "admin", entries[0].UserID)

	select {
	case e := <-events:
		assert.Equal(t, int64(1), e.Version)
		assert.Equal(t, mirror.ActionCalendarDelete, e.Action)
	case <-time.After(time.Second):
		t.Fatal("no version event published")
	}

	f.uc.Record(ctx, mirror.Change{Action: mirror.ActionMirrorRefresh})
	v, err = f.versionRepo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.Version)
}

func TestRecordChange_ConcurrentRecordsAreNotLost(t *testing.T) {
	f := newRecorderFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.uc.Record(ctx, mirror.Change{Action: mirror.ActionWidgetsUpdate})
		}()
	}
	wg.Wait()

	v, err := f.versionRepo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), v.Version)
}

func TestRecordChange_ActivityFailureSkipsBump(t *testing.T) {
	versions := &mockVersionRepository{
		BumpFunc: func(context.Context) (*mirror.ConfigVersion, error) {
			t.Fatal("bump must not run after a failed activity write")
			return nil, nil
		},
	}
	activity := &mockActivityRepository{
		AppendFunc: func(context.Context, *mirror.ActivityEntry) error { return errors.New("disk full") },
	}
	hub := pubsub.NewVersionHub(logger.NewNop())
	events, cancel := hub.Subscribe()
	defer cancel()

	before := testutil.ToFloat64(metrics.VersionBumpFailures)
	uc := NewRecordChangeUseCase(inlineTx{}, activity, versions, hub, logger.NewNop())
	uc.Record(context.Background(), mirror.Change{Action: mirror.ActionSettingsUpdate})

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.VersionBumpFailures))
	select {
	case e := <-events:
		t.Fatalf("unexpected publish %+v", e)
	default:
	}
}

func TestRecordChange_BumpFailureRollsBackActivity(t *testing.T) {
	gdb := testdb.New(t)
	log := logger.NewNop()
	activityRepo := repository.NewActivityLogRepository(gdb, log)
	versions := &mockVersionRepository{
		BumpFunc: func(context.Context) (*mirror.ConfigVersion, error) { return nil, errors.New("locked") },
	}

	uc := NewRecordChangeUseCase(db.NewTransactionManager(gdb), activityRepo, versions, nil, log)
	uc.Record(context.Background(), mirror.Change{Action: mirror.ActionAIUpdate})

	entries, err := activityRepo.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRefreshMirror_ReportsFailedBump(t *testing.T) {
	versions := &mockVersionRepository{
		BumpFunc: func(context.Context) (*mirror.ConfigVersion, error) { return nil, errors.New("database is closed") },
	}
	recorder := NewRecordChangeUseCase(inlineTx{}, &mockActivityRepository{}, versions, nil, logger.NewNop())
	uc := NewRefreshMirrorUseCase(recorder, logger.NewNop())

	err := uc.Execute(context.Background(), "admin")

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "Failed to refresh mirror", appErr.Message)
}

func TestRefreshMirror_Succeeds(t *testing.T) {
	f := newRecorderFixture(t)
	uc := NewRefreshMirrorUseCase(f.uc, logger.NewNop())

	require.NoError(t, uc.Execute(context.Background(), "admin"))

	v, err := f.versionRepo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Version)
}
