package usecase

import (
	"context"

	"github.com/fekuna/omnipos-opname-service/internal/opname"
	"github.com/fekuna/omnipos-opname-service/internal/opname/dto"
	"github.com/fekuna/omnipos-opname-service/internal/opname/export"
	"go.uber.org/zap"
)

func (uc *opnameUseCase) ExportSession(ctx context.Context, sessionID string) (*dto.ExportFile, error) {
	session, err := uc.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.ListAllItems(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, opname.ErrNothingToExport
	}

	content, err := export.WriteXLSX(export.Rows(items))
	if err != nil {
		uc.logger.Error("failed to build opname workbook", zap.String("session_id", session.ID), zap.Error(err))
		return nil, err
	}
	return &dto.ExportFile{
		FileName: export.FileName(session.Title, uc.clock.Now()),
		Content:  content,
		Rows:     len(items),
	}, nil
}
