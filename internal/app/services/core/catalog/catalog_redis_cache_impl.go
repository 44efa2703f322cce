package catalog

import (
	"context"
	"fmt"
	"simrs-service/internal/app/models"
	sharedredis "simrs-service/internal/app/services/shared/redis"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	cacheKeyDrugFormat            = "catalog:drug:%s"
	cacheKeyServiceItemFormat     = "catalog:service_item:%s"
	cacheKeyRoomTariffFormat      = "catalog:room_tariff:%s:%s"
	cacheKeyAmbulanceConfigFormat = "catalog:ambulance_config:%s"
)

// CatalogCachedRepository is a read-through cache in front of the mongo
// repository. Cache failures never fail a request: a broken cache degrades to
// direct reads, logged at warn level.
type CatalogCachedRepository struct {
	Log   *zap.Logger
	Cache sharedredis.KVStore
	Next  CatalogRepository
	TTL   time.Duration
}

func NewCatalogCachedRepository(logger *zap.Logger, cache sharedredis.KVStore, next CatalogRepository, ttlSeconds int) CatalogRepository {
	return &CatalogCachedRepository{
		Log:   logger,
		Cache: cache,
		Next:  next,
		TTL:   time.Duration(ttlSeconds) * time.Second,
	}
}

func (r *CatalogCachedRepository) FindDrugByID(ctx context.Context, drugID string) (*models.Drug, error) {
	key := fmt.Sprintf(cacheKeyDrugFormat, drugID)
	drug := &models.Drug{}
	if r.readCached(ctx, key, drug) {
		return drug, nil
	}

	found, err := r.Next.FindDrugByID(ctx, drugID)
	if err != nil || found == nil {
		return found, err
	}
	r.writeCached(ctx, key, found)
	return found, nil
}

func (r *CatalogCachedRepository) FindServiceItemByID(ctx context.Context, itemID string) (*models.ServiceItem, error) {
	key := fmt.Sprintf(cacheKeyServiceItemFormat, itemID)
	item := &models.ServiceItem{}
	if r.readCached(ctx, key, item) {
		return item, nil
	}

	found, err := r.Next.FindServiceItemByID(ctx, itemID)
	if err != nil || found == nil {
		return found, err
	}
	r.writeCached(ctx, key, found)
	return found, nil
}

func (r *CatalogCachedRepository) FindRoomTariff(ctx context.Context, roomClass, subCategory string) (*models.RoomTariff, error) {
	key := fmt.Sprintf(cacheKeyRoomTariffFormat, roomClass, subCategory)
	tariff := &models.RoomTariff{}
	if r.readCached(ctx, key, tariff) {
		return tariff, nil
	}

	found, err := r.Next.FindRoomTariff(ctx, roomClass, subCategory)
	if err != nil || found == nil {
		return found, err
	}
	r.writeCached(ctx, key, found)
	return found, nil
}

func (r *CatalogCachedRepository) FindAmbulanceConfig(ctx context.Context, vehicleType string) (*models.AmbulanceConfig, error) {
	key := fmt.Sprintf(cacheKeyAmbulanceConfigFormat, vehicleType)
	config := &models.AmbulanceConfig{}
	if r.readCached(ctx, key, config) {
		return config, nil
	}

	found, err := r.Next.FindAmbulanceConfig(ctx, vehicleType)
	if err != nil || found == nil {
		return found, err
	}
	r.writeCached(ctx, key, found)
	return found, nil
}

func (r *CatalogCachedRepository) UpsertAmbulanceConfig(ctx context.Context, config *models.AmbulanceConfig) error {
	err := r.Next.UpsertAmbulanceConfig(ctx, config)
	if err != nil {
		return err
	}
	r.invalidate(ctx, fmt.Sprintf(cacheKeyAmbulanceConfigFormat, config.VehicleType))
	return nil
}

func (r *CatalogCachedRepository) DecrementStock(ctx context.Context, drugID string, quantity int) error {
	err := r.Next.DecrementStock(ctx, drugID, quantity)
	if err != nil {
		return err
	}
	r.invalidate(ctx, fmt.Sprintf(cacheKeyDrugFormat, drugID))
	return nil
}

func (r *CatalogCachedRepository) IncrementStock(ctx context.Context, drugID string, quantity int) error {
	err := r.Next.IncrementStock(ctx, drugID, quantity)
	if err != nil {
		return err
	}
	r.invalidate(ctx, fmt.Sprintf(cacheKeyDrugFormat, drugID))
	return nil
}

func (r *CatalogCachedRepository) readCached(ctx context.Context, key string, out interface{}) bool {
	raw, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Log.Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		r.Log.Warn("catalog cache entry corrupt", zap.String("key", key), zap.Error(err))
		r.invalidate(ctx, key)
		return false
	}
	return true
}

func (r *CatalogCachedRepository) writeCached(ctx context.Context, key string, value interface{}) {
	if err := r.Cache.Set(ctx, key, value, r.TTL); err != nil {
		r.Log.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *CatalogCachedRepository) invalidate(ctx context.Context, key string) {
	if err := r.Cache.Delete(ctx, key); err != nil {
		r.Log.Warn("catalog cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}
