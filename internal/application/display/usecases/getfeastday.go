package usecases

import (
	"time"

	"github.com/lumenhq/lumen/internal/application/display/dto"
	"github.com/lumenhq/lumen/internal/domain/liturgy"
	"github.com/lumenhq/lumen/internal/shared/biztime"
)

// GetFeastDayUseCase describes today's liturgical day. It is computed
// locally and cannot fail.
type GetFeastDayUseCase struct {
	now func() time.Time
}

func NewGetFeastDayUseCase() *GetFeastDayUseCase {
	return &GetFeastDayUseCase{now: biztime.NowUTC}
}

func (uc *GetFeastDayUseCase) Day() liturgy.Day {
	return liturgy.DayFor(biztime.Local(uc.now()))
}

func (uc *GetFeastDayUseCase) Execute() dto.FeastDayResponse {
	return dto.ToFeastDayResponse(uc.Day())
}
