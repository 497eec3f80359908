package usecases

import (
	"context"

	"github.com/lumenhq/lumen/internal/domain/mirror"
	apperrors "github.com/lumenhq/lumen/internal/shared/errors"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// RefreshMirrorUseCase forces every display to reload by bumping the
// version without touching any other data.
type RefreshMirrorUseCase struct {
	committer ChangeCommitter
	logger    logger.Interface
}

func NewRefreshMirrorUseCase(committer ChangeCommitter, logger logger.Interface) *RefreshMirrorUseCase {
	return &RefreshMirrorUseCase{committer: committer, logger: logger}
}

func (uc *RefreshMirrorUseCase) Execute(ctx context.Context, userID string) error {
	err := uc.committer.Commit(ctx, mirror.Change{
		Action: mirror.ActionMirrorRefresh,
		UserID: userID,
	})
	if err != nil {
		return apperrors.WrapInternal("Failed to refresh mirror", err)
	}
	return nil
}
