package dnd

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"slate/internal/timing"
)

// Entity is a stored record type whose rows the saver can update.
type Entity interface {
	EntityName() string
	Update(ctx context.Context, id string, payload map[string]any) error
}

// SaveRequest is one write-through request. Callbacks are optional.
type SaveRequest struct {
	Entity    Entity
	DocID     string
	Payload   map[string]any
	OnSuccess func()
	OnFailure func(error)
}

// Saver debounces write-through persistence per entity/doc key. Rapid
// repeated saves within the window collapse to the last payload; each
// committed write is a single attempt with no retry. Storage failures are
// logged, announced, and reported via OnFailure, never returned to the
// caller of Save.
type Saver struct {
	debounce  *timing.Debouncer
	announcer *Announcer
	log       *zap.Logger
}

func NewSaver(debounce *timing.Debouncer, announcer *Announcer, log *zap.Logger) *Saver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Saver{debounce: debounce, announcer: announcer, log: log}
}

// Save schedules a debounced write. Missing Entity or DocID fails
// synchronously before anything is scheduled.
func (s *Saver) Save(ctx context.Context, req SaveRequest) error {
	if req.Entity == nil {
		return errors.New("save: entity is required")
	}
	if req.DocID == "" {
		return errors.New("save: doc id is required")
	}
	s.debounce.Call(saveKey(req.Entity.EntityName(), req.DocID), func() {
		s.commit(ctx, req)
	})
	return nil
}

// Cancel drops a pending save for the entity/doc key.
func (s *Saver) Cancel(entityName, docID string) bool {
	return s.debounce.Cancel(saveKey(entityName, docID))
}

// Flush commits a pending save for the entity/doc key immediately.
func (s *Saver) Flush(entityName, docID string) bool {
	return s.debounce.Flush(saveKey(entityName, docID))
}

func (s *Saver) commit(ctx context.Context, req SaveRequest) {
	if err := req.Entity.Update(ctx, req.DocID, req.Payload); err != nil {
		s.log.Error("save failed",
			zap.String("entity", req.Entity.EntityName()),
			zap.String("doc", req.DocID),
			zap.Error(err))
		if s.announcer != nil {
			s.announcer.Announce("Saving failed, the last change was not stored")
		}
		if req.OnFailure != nil {
			req.OnFailure(err)
		}
		return
	}
	if req.OnSuccess != nil {
		req.OnSuccess()
	}
}

func saveKey(entityName, docID string) string {
	return entityName + "/" + docID
}
