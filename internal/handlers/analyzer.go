package handlers

import (
	"context"
	"mime/multipart"

	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/services"
)

// uploadAnalyzer runs the matcher on an uploaded resume. The spooled
// file is removed once analysis returns.
type uploadAnalyzer struct {
	matcher        services.MatcherService
	storageService services.StorageService
	log            *zap.Logger
}

func (a *uploadAnalyzer) analyze(ctx context.Context, file *multipart.FileHeader) (*models.Analysis, error) {
	filename, filePath, err := a.storageService.SaveFile(file)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := a.storageService.DeleteFile(filename); err != nil {
			a.log.Warn("failed to remove uploaded resume", zap.String("file", filename), zap.Error(err))
		}
	}()

	a.log.Info("resume uploaded",
		zap.String("original_name", file.Filename),
		zap.Int64("size", file.Size),
	)

	return a.matcher.Analyze(ctx, filePath)
}
