package pharmacy

import (
	"context"
	"simrs-service/internal/pkg/dto/responses"
)

type PharmacyUsecase interface {
	DispenseVisit(ctx context.Context, visitID, actorName string) (*responses.DispenseVisit, error)
}
