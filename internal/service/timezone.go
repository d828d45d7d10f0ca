package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/24svcs/svcs-api/internal/cache"
	"github.com/24svcs/svcs-api/internal/repository"
	"github.com/24svcs/svcs-api/pkg/logger"
	"github.com/24svcs/svcs-api/storage/redis"
)

// TimezoneCacheTTL 组织时区缓存时长，时区变更最迟这么久后对所有实例生效
const TimezoneCacheTTL = time.Hour

// TimezoneResolver 解析组织的 IANA 时区
// 任一环节失败都回退到 UTC，打卡操作不因时区解析失败而中断
type TimezoneResolver struct {
	orgs  *repository.OrganizationRepo
	store cache.Store
}

func NewTimezoneResolver(orgs *repository.OrganizationRepo, store cache.Store) *TimezoneResolver {
	return &TimezoneResolver{orgs: orgs, store: store}
}

// Resolve 返回组织时区，永不失败
func (r *TimezoneResolver) Resolve(ctx context.Context, orgID string) *time.Location {
	key := redis.Key("tz", orgID)

	if name, ok, err := r.store.Get(ctx, key); err == nil && ok {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
		logger.Logger.Warn("Cached timezone is invalid, falling back to UTC",
			zap.String("organization_id", orgID),
			zap.String("timezone", name),
		)
		return time.UTC
	}

	prefs, err := r.orgs.GetPreferences(ctx, orgID)
	if err != nil {
		logger.Logger.Warn("Failed to load organization preferences, falling back to UTC",
			zap.String("organization_id", orgID),
			zap.Error(err),
		)
		return time.UTC
	}
	if prefs == nil || prefs.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(prefs.Timezone)
	if err != nil {
		logger.Logger.Warn("Organization timezone is invalid, falling back to UTC",
			zap.String("organization_id", orgID),
			zap.String("timezone", prefs.Timezone),
		)
		return time.UTC
	}

	if err := r.store.Set(ctx, key, prefs.Timezone, TimezoneCacheTTL); err != nil {
		logger.Logger.Warn("Failed to cache organization timezone",
			zap.String("organization_id", orgID),
			zap.Error(err),
		)
	}

	return loc
}
