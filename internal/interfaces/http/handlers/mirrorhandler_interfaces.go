package handlers

import (
	"context"

	"github.com/lumenhq/lumen/internal/application/mirror/dto"
	"github.com/lumenhq/lumen/internal/domain/mirror"
)

// Dependencies of MirrorHandler

type mirrorService interface {
	GetConfigVersion(ctx context.Context) mirror.VersionView
	RecordHeartbeat(ctx context.Context, hb mirror.Heartbeat) bool
	BuildInfo() dto.BuildInfoResponse
}
