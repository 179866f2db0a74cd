package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/resqcart/aiml-service/internal/domain/models"
	"github.com/resqcart/aiml-service/internal/repository/mongodb"
)

// recordDecision appends a pricing decision to the audit log, best effort.
// Failures are logged, never surfaced to the client.
func recordDecision(ctx context.Context, repo mongodb.Repository, logger *zap.Logger, rec models.DecisionRecord) {
	if repo == nil {
		return
	}

	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now()

	saveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := repo.SaveDecision(saveCtx, rec); err != nil {
		logger.Warn("failed to record pricing decision", zap.Error(err), zap.String("decision_id", rec.ID))
	}
}
