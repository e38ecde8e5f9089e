package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/planner-backend/internal/config"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

// DuplicateChecker finds an owner's active activity with the same title
// and area, compared case-insensitively. It returns nil when there is none.
type DuplicateChecker interface {
	FindDuplicate(ctx context.Context, ownerID uuid.UUID, title, area string, excludeID *uuid.UUID) (*domain.Activity, error)
}

// ScanStore lists an owner's active activities.
type ScanStore interface {
	ListActiveByOwner(ctx context.Context, ownerID uuid.UUID, excludeID *uuid.UUID) ([]domain.Activity, error)
}

// NativeStore compares title and area case-insensitively itself.
type NativeStore interface {
	FindActiveByTitleArea(ctx context.Context, ownerID uuid.UUID, title, area string, excludeID *uuid.UUID) (*domain.Activity, error)
	SupportsCaseInsensitiveLookup() bool
}

// ScanChecker loads the owner's activities and compares them in memory.
// It works with any store.
type ScanChecker struct {
	store ScanStore
}

// NewScanChecker creates a ScanChecker.
func NewScanChecker(store ScanStore) *ScanChecker {
	return &ScanChecker{store: store}
}

func (c *ScanChecker) FindDuplicate(ctx context.Context, ownerID uuid.UUID, title, area string, excludeID *uuid.UUID) (*domain.Activity, error) {
	existing, err := c.store.ListActiveByOwner(ctx, ownerID, excludeID)
	if err != nil {
		return nil, fmt.Errorf("list owner activities: %w", err)
	}

	for i := range existing {
		a := existing[i]
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		if a.IsDeleted() {
			continue
		}
		if domain.SameTitleArea(a.Title, a.Area, title, area) {
			return &a, nil
		}
	}
	return nil, nil
}

// NativeChecker delegates the comparison to the store.
type NativeChecker struct {
	store NativeStore
}

// NewNativeChecker creates a NativeChecker.
func NewNativeChecker(store NativeStore) *NativeChecker {
	return &NativeChecker{store: store}
}

func (c *NativeChecker) FindDuplicate(ctx context.Context, ownerID uuid.UUID, title, area string, excludeID *uuid.UUID) (*domain.Activity, error) {
	a, err := c.store.FindActiveByTitleArea(ctx, ownerID, title, area, excludeID)
	if err != nil {
		return nil, fmt.Errorf("find by title and area: %w", err)
	}
	return a, nil
}

// NewDuplicateChecker selects the checker for strategy: scan, native, or
// auto (native when the store supports it, scan otherwise).
func NewDuplicateChecker(strategy string, store ScanStore) (DuplicateChecker, error) {
	native, hasNative := store.(NativeStore)
	hasNative = hasNative && native.SupportsCaseInsensitiveLookup()

	switch strategy {
	case config.DuplicateStrategyScan:
		return NewScanChecker(store), nil
	case config.DuplicateStrategyNative:
		if !hasNative {
			return nil, fmt.Errorf("duplicate strategy %q: store has no case-insensitive lookup", strategy)
		}
		return NewNativeChecker(native), nil
	case config.DuplicateStrategyAuto, "":
		if hasNative {
			return NewNativeChecker(native), nil
		}
		return NewScanChecker(store), nil
	default:
		return nil, fmt.Errorf("unknown duplicate strategy %q", strategy)
	}
}
